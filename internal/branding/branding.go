// Package branding provides compile-time identity values for the CLI.
//
// Forks edit branding.yaml in this directory; Go's //go:embed bakes it into
// the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	EnvPrefix          string `yaml:"env_prefix"`
	ConfigDir          string `yaml:"config_dir"`
	DefaultProjectName string `yaml:"default_project_name"`
	GeneratorPrefix    string `yaml:"generator_prefix"`
	GitHubUser         string `yaml:"github_user"`
	GitHubHost         string `yaml:"github_host"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:            "create-xx",
			DisplayName:        "create-xx",
			Description:        "Scaffold a new project from the bundled template",
			EnvPrefix:          "CREATE_XX",
			ConfigDir:          "create-xx",
			DefaultProjectName: "create-xx",
			GeneratorPrefix:    "create-",
			GitHubUser:         "xnscu",
			GitHubHost:         "github.com",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-xx").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_XX").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigDir returns the directory name used under the XDG config home.
func ConfigDir() string { load(); return defaults.ConfigDir }

// DefaultProjectName is used when neither an argument nor an answer names
// the target directory.
func DefaultProjectName() string { load(); return defaults.DefaultProjectName }

// GeneratorPrefix is the conventional prefix of generator package names.
// It is stripped to derive CREATE_NAME.
func GeneratorPrefix() string { load(); return defaults.GeneratorPrefix }

// GitHubUser returns the default GitHub account offered at the prompt.
func GitHubUser() string { load(); return defaults.GitHubUser }

// GitHubHost returns the SSH host used in generated remote URLs.
func GitHubHost() string { load(); return defaults.GitHubHost }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("github_user") → "CREATE_XX_GITHUB_USER".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
