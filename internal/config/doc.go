// Package config manages user-level settings stored at
// $XDG_CONFIG_HOME/create-xx/config.yaml. It provides functions to load, read,
// and write keys such as the default GitHub account offered at the prompt.
package config
