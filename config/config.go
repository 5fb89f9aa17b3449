// Copyright © 2023 The Gomon Project.

// Package config reads the proctree settings from the environment.
package config

import (
	"runtime"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that configure proctree, e.g. PROCTREE_PROCFS.
const EnvPrefix = "proctree"

// Config holds the proctree settings.
type Config struct {
	// Procfs is the mount point of the process information filesystem.
	Procfs string `mapstructure:"procfs"`
	// Root is the pid whose descendants are listed.
	Root int `mapstructure:"root"`
	// Workers bounds the concurrent status reads.
	Workers int `mapstructure:"workers"`
	// LogLevel is the level of diagnostic logging on stderr.
	LogLevel string `mapstructure:"loglevel"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	v.SetDefault("procfs", "/proc")
	v.SetDefault("root", 0)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("loglevel", "warning")

	v.AutomaticEnv()

	var config Config
	err := v.Unmarshal(&config)
	return config, err
}
