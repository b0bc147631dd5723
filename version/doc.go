// Package version reports the gomonzo build version.
//
// Version and commit are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/gomonzo/version.Version=0.3.0" ./cmd/monzo
//
// When unset, the commit and build time are read from the module's VCS
// build settings.
package version
