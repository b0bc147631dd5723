package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/kbukum/gomonzo/errors"
)

// FileSystem abstracts the file operations of the loader for tests.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	UserConfigDir() (string, error)
}

// RealFileSystem implements FileSystem using the os package and godotenv.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadEnv loads a .env file. Variables already set in the environment win.
func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (RealFileSystem) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// Resolver finds config and env files for a command.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
// Empty means none was found.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths when set, otherwise the first
// existing candidate in the search path.
func (r *Resolver) ResolveFiles(name string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.first(r.configCandidates(name))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.first([]string{".env." + name, ".env"})
	}
	return resolved
}

func (r *Resolver) configCandidates(name string) []string {
	paths := []string{
		"./config.yml",
		filepath.Join(".", "cmd", name, "config.yml"),
	}
	if dir, err := r.FileSystem.UserConfigDir(); err == nil && dir != "" {
		paths = append(paths, filepath.Join(dir, name, "config.yml"))
	}
	return paths
}

func (r *Resolver) first(paths []string) string {
	for _, p := range paths {
		if r.FileSystem.Exists(p) {
			return p
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// LoadConfig reads configuration for the named command into cfg, which must
// be a pointer to a struct with mapstructure tags. Missing files are not an
// error; unreadable ones are.
func LoadConfig(name string, cfg any, opts ...LoaderOption) error {
	lc := LoaderConfig{FileSystem: RealFileSystem{}}
	for _, opt := range opts {
		opt(&lc)
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(name, lc)

	v := viper.New()

	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return apperrors.InvalidConfig(fmt.Errorf("read %s: %w", files.ConfigFile, err))
		}
	}

	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			return apperrors.InvalidConfig(fmt.Errorf("load %s: %w", files.EnvFile, err))
		}
	}

	bindEnv(v, os.Environ())

	if err := v.Unmarshal(cfg); err != nil {
		return apperrors.InvalidConfig(fmt.Errorf("decode config: %w", err))
	}
	return nil
}
