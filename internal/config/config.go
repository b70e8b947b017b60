package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/xx-labs/create-xx/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyGitHubUser  = "github_user"
	KeyGitHubScope = "github_scope"
	KeyTemplateDir = "template_dir"
	KeyEnvFile     = "env_file"
)

// Keys lists every recognized key, in display order.
var Keys = []string{KeyGitHubUser, KeyGitHubScope, KeyTemplateDir, KeyEnvFile}

// Settings is the typed view over the loaded configuration.
type Settings struct {
	GitHubUser  string
	GitHubScope string
	TemplateDir string
	EnvFile     string
}

// Dir returns the config directory. CREATE_XX_CONFIG_DIR overrides the XDG
// location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("config_dir")); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, branding.ConfigDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyGitHubUser, branding.GitHubUser())
	viper.SetDefault(KeyGitHubScope, "private")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the loaded settings. Load must be called first.
func Current() Settings {
	return Settings{
		GitHubUser:  viper.GetString(KeyGitHubUser),
		GitHubScope: viper.GetString(KeyGitHubScope),
		TemplateDir: viper.GetString(KeyTemplateDir),
		EnvFile:     viper.GetString(KeyEnvFile),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnown reports whether key is a recognized configuration key.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
