package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration options for the task manager application
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Format      FormatConfig      `yaml:"format"`
	Reports     ReportsConfig     `yaml:"reports"`
	Application ApplicationConfig `yaml:"application"`
}

// StorageConfig holds flat-file storage configuration
type StorageConfig struct {
	Dir            string `yaml:"dir" env:"TM_DATA_DIR"`
	TasksFilename  string `yaml:"tasks_filename" env:"TM_TASKS_FILENAME"`
	UsersFilename  string `yaml:"users_filename" env:"TM_USERS_FILENAME"`
	DirPermissions uint32 `yaml:"dir_permissions" env:"TM_DIR_PERMISSIONS"`
}

// FormatConfig holds display and input formatting configuration
type FormatConfig struct {
	DateFormat string `yaml:"date_format" env:"TM_DATE_FORMAT"`
	LabelWidth int    `yaml:"label_width" env:"TM_LABEL_WIDTH"`
}

// ReportsConfig holds report generation configuration
type ReportsConfig struct {
	TaskOverviewFilename string `yaml:"task_overview_filename" env:"TM_TASK_OVERVIEW_FILENAME"`
	UserOverviewFilename string `yaml:"user_overview_filename" env:"TM_USER_OVERVIEW_FILENAME"`
	LabelWidth           int    `yaml:"label_width" env:"TM_REPORT_LABEL_WIDTH"`
	TitleWidth           int    `yaml:"title_width" env:"TM_REPORT_TITLE_WIDTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	AdminUsername string `yaml:"admin_username" env:"TM_ADMIN_USERNAME"`
	AdminPassword string `yaml:"admin_password" env:"TM_ADMIN_PASSWORD"`
	Verbose       bool   `yaml:"verbose" env:"TM_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults.
// The storage directory defaults to the working directory so that existing
// tasks.txt and user.txt files are picked up in place.
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir:            ".",
			TasksFilename:  "tasks.txt",
			UsersFilename:  "user.txt",
			DirPermissions: 0755,
		},
		Format: FormatConfig{
			DateFormat: "02-01-2006",
			LabelWidth: 20,
		},
		Reports: ReportsConfig{
			TaskOverviewFilename: "task_overview.txt",
			UserOverviewFilename: "user_overview.txt",
			LabelWidth:           40,
			TitleWidth:           80,
		},
		Application: ApplicationConfig{
			AdminUsername: "admin",
			AdminPassword: "password",
			Verbose:       false,
		},
	}
}

// GetTasksPath returns the full path to the tasks storage file
func (c *Config) GetTasksPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.TasksFilename)
}

// GetUsersPath returns the full path to the credential storage file
func (c *Config) GetUsersPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.UsersFilename)
}

// GetTaskOverviewPath returns the full path to the task overview report file
func (c *Config) GetTaskOverviewPath() string {
	return filepath.Join(c.Storage.Dir, c.Reports.TaskOverviewFilename)
}

// GetUserOverviewPath returns the full path to the user overview report file
func (c *Config) GetUserOverviewPath() string {
	return filepath.Join(c.Storage.Dir, c.Reports.UserOverviewFilename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("TM_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TM_TASKS_FILENAME"); filename != "" {
		c.Storage.TasksFilename = filename
	}
	if filename := os.Getenv("TM_USERS_FILENAME"); filename != "" {
		c.Storage.UsersFilename = filename
	}
	if perms := os.Getenv("TM_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	// Format configuration
	if format := os.Getenv("TM_DATE_FORMAT"); format != "" {
		c.Format.DateFormat = format
	}
	if width := os.Getenv("TM_LABEL_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Format.LabelWidth = w
		}
	}

	// Reports configuration
	if filename := os.Getenv("TM_TASK_OVERVIEW_FILENAME"); filename != "" {
		c.Reports.TaskOverviewFilename = filename
	}
	if filename := os.Getenv("TM_USER_OVERVIEW_FILENAME"); filename != "" {
		c.Reports.UserOverviewFilename = filename
	}
	if width := os.Getenv("TM_REPORT_LABEL_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Reports.LabelWidth = w
		}
	}
	if width := os.Getenv("TM_REPORT_TITLE_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Reports.TitleWidth = w
		}
	}

	// Application configuration
	if username := os.Getenv("TM_ADMIN_USERNAME"); username != "" {
		c.Application.AdminUsername = username
	}
	if password := os.Getenv("TM_ADMIN_PASSWORD"); password != "" {
		c.Application.AdminPassword = password
	}
	if verbose := os.Getenv("TM_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.TasksFilename == "" {
		return &ConfigError{Field: "storage.tasks_filename", Message: "tasks filename cannot be empty"}
	}
	if c.Storage.UsersFilename == "" {
		return &ConfigError{Field: "storage.users_filename", Message: "users filename cannot be empty"}
	}
	if c.Storage.TasksFilename == c.Storage.UsersFilename {
		return &ConfigError{Field: "storage.users_filename", Message: "tasks and users filenames must differ"}
	}

	if c.Format.DateFormat == "" {
		return &ConfigError{Field: "format.date_format", Message: "date format cannot be empty"}
	}
	if c.Format.LabelWidth < 1 {
		return &ConfigError{Field: "format.label_width", Message: "label width must be positive"}
	}

	if c.Reports.TaskOverviewFilename == "" {
		return &ConfigError{Field: "reports.task_overview_filename", Message: "task overview filename cannot be empty"}
	}
	if c.Reports.UserOverviewFilename == "" {
		return &ConfigError{Field: "reports.user_overview_filename", Message: "user overview filename cannot be empty"}
	}
	if c.Reports.LabelWidth < 1 {
		return &ConfigError{Field: "reports.label_width", Message: "report label width must be positive"}
	}
	if c.Reports.TitleWidth < 10 {
		return &ConfigError{Field: "reports.title_width", Message: "report title width must be at least 10"}
	}

	if c.Application.AdminUsername == "" {
		return &ConfigError{Field: "application.admin_username", Message: "admin username cannot be empty"}
	}
	if c.Application.AdminPassword == "" {
		return &ConfigError{Field: "application.admin_password", Message: "admin password cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
