package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the config file looked for in the storage
// directory when TM_CONFIG does not name one explicitly.
const DefaultConfigFilename = "taskman.yaml"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if one exists
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults (already done in NewConfig)

	// Step 2: Load from the config file
	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}

	// Step 3: Load from environment variables
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 4: Validate the configuration
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// loadConfigFile applies the YAML config file when present. A path named by
// TM_CONFIG must exist; the default file is optional.
func (l *Loader) loadConfigFile() error {
	path := os.Getenv("TM_CONFIG")
	required := path != ""
	if path == "" {
		path = DefaultConfigFilename
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return l.config.ApplyFile(data)
}

// fileConfig mirrors Config with optional fields so that keys absent from
// the YAML file leave the current values untouched.
type fileConfig struct {
	Storage struct {
		Dir            *string `yaml:"dir"`
		TasksFilename  *string `yaml:"tasks_filename"`
		UsersFilename  *string `yaml:"users_filename"`
		DirPermissions *uint32 `yaml:"dir_permissions"`
	} `yaml:"storage"`
	Format struct {
		DateFormat *string `yaml:"date_format"`
		LabelWidth *int    `yaml:"label_width"`
	} `yaml:"format"`
	Reports struct {
		TaskOverviewFilename *string `yaml:"task_overview_filename"`
		UserOverviewFilename *string `yaml:"user_overview_filename"`
		LabelWidth           *int    `yaml:"label_width"`
		TitleWidth           *int    `yaml:"title_width"`
	} `yaml:"reports"`
	Application struct {
		AdminUsername *string `yaml:"admin_username"`
		AdminPassword *string `yaml:"admin_password"`
		Verbose       *bool   `yaml:"verbose"`
	} `yaml:"application"`
}

// ApplyFile overlays YAML config file contents onto the configuration
func (c *Config) ApplyFile(data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.Storage.Dir != nil {
		c.Storage.Dir = *fc.Storage.Dir
	}
	if fc.Storage.TasksFilename != nil {
		c.Storage.TasksFilename = *fc.Storage.TasksFilename
	}
	if fc.Storage.UsersFilename != nil {
		c.Storage.UsersFilename = *fc.Storage.UsersFilename
	}
	if fc.Storage.DirPermissions != nil {
		c.Storage.DirPermissions = *fc.Storage.DirPermissions
	}

	if fc.Format.DateFormat != nil {
		c.Format.DateFormat = *fc.Format.DateFormat
	}
	if fc.Format.LabelWidth != nil {
		c.Format.LabelWidth = *fc.Format.LabelWidth
	}

	if fc.Reports.TaskOverviewFilename != nil {
		c.Reports.TaskOverviewFilename = *fc.Reports.TaskOverviewFilename
	}
	if fc.Reports.UserOverviewFilename != nil {
		c.Reports.UserOverviewFilename = *fc.Reports.UserOverviewFilename
	}
	if fc.Reports.LabelWidth != nil {
		c.Reports.LabelWidth = *fc.Reports.LabelWidth
	}
	if fc.Reports.TitleWidth != nil {
		c.Reports.TitleWidth = *fc.Reports.TitleWidth
	}

	if fc.Application.AdminUsername != nil {
		c.Application.AdminUsername = *fc.Application.AdminUsername
	}
	if fc.Application.AdminPassword != nil {
		c.Application.AdminPassword = *fc.Application.AdminPassword
	}
	if fc.Application.Verbose != nil {
		c.Application.Verbose = *fc.Application.Verbose
	}

	return nil
}
