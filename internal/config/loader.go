package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configDir  = ".ducklogs"
	configFile = "config"
	configType = "yaml"
	logFile    = "ducklogs.log"
	envPrefix  = "DUCKLOGS"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_base", "http://localhost:8080")
	v.SetDefault("timeout", "60s")
	v.SetDefault("language", "")
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)
	v.SetDefault("defaults.region", "ap-northeast-1")
	v.SetDefault("defaults.endpoint", "")
	v.SetDefault("defaults.uri", "s3://your-bucket/logs/*.parquet")
	v.SetDefault("defaults.format", "parquet")
	v.SetDefault("defaults.limit", 100)
	v.SetDefault("defaults.sql", "SELECT 1 AS ok")
}

// Default returns the built-in configuration without reading any file or
// environment variable.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load reads the configuration from path, or from ~/.ducklogs/config.yaml when
// path is empty. A missing default file yields the defaults; a missing
// explicit file is an error. DUCKLOGS_* environment variables override the
// file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// VITE_API_BASE is what the web build of the UI was configured with.
	if err := v.BindEnv("api_base", envPrefix+"_API_BASE", "VITE_API_BASE"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	resolved := path
	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := configDirPath()
		if err != nil {
			return nil, fmt.Errorf("config dir: %w", err)
		}
		v.SetConfigName(configFile)
		v.SetConfigType(configType)
		v.AddConfigPath(dir)
		resolved = filepath.Join(dir, configFile+"."+configType)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Path = resolved

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveLanguage stores the language preference in the file at path, keeping
// every other key the file already has.
func SaveLanguage(path, code string) error {
	if path == "" {
		dir, err := configDirPath()
		if err != nil {
			return fmt.Errorf("config dir: %w", err)
		}
		path = filepath.Join(dir, configFile+"."+configType)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(configType)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	v.Set("language", code)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultLogPath returns ~/.ducklogs/ducklogs.log.
func DefaultLogPath() (string, error) {
	dir, err := configDirPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFile), nil
}

func configDirPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir), nil
}
