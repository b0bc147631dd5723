package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set with -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// product prefixes the User-Agent header.
const product = "gomonzo"

// Info describes the running build.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit,omitempty"`
	GoVersion string    `json:"go_version"`
	BuildDate time.Time `json:"build_date,omitempty"`
	Dirty     bool      `json:"dirty,omitempty"`
}

// Get returns the build information, filling blanks from debug.ReadBuildInfo.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
	}
	if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
		info.BuildDate = t
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = shortCommit(s.Value)
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		case "vcs.time":
			if info.BuildDate.IsZero() {
				if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
					info.BuildDate = t
				}
			}
		}
	}
	return info
}

// Short returns "<version>[-<commit>][-dirty]".
func Short() string {
	info := Get()
	s := info.Version
	if info.GitCommit != "" {
		s += "-" + info.GitCommit
	}
	if info.Dirty {
		s += "-dirty"
	}
	return s
}

// String renders the build information for the version command.
func (i Info) String() string {
	s := fmt.Sprintf("%s %s", product, i.Version)
	if i.GitCommit != "" {
		s += " (" + i.GitCommit + ")"
	}
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	if !i.BuildDate.IsZero() {
		s += " built " + i.BuildDate.UTC().Format(time.RFC3339)
	}
	return s
}

// UserAgent is the User-Agent header sent with every API request.
func UserAgent() string {
	return product + "/" + Version
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
