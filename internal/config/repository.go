package config

import (
	"fmt"
	"os"
	"path/filepath"

	"taskman/internal/repository/textfile"
)

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (textfile.Repository, error) {
	repo, err := textfile.New(textfile.Options{
		TasksPath:         config.GetTasksPath(),
		UsersPath:         config.GetUsersPath(),
		BootstrapUsername: config.Application.AdminUsername,
		BootstrapPassword: config.Application.AdminPassword,
		DirPermissions:    os.FileMode(config.Storage.DirPermissions),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates a repository in a throwaway directory for testing
func CreateTestRepository(dir string) (textfile.Repository, error) {
	repo, err := textfile.New(textfile.Options{
		TasksPath: filepath.Join(dir, "tasks.txt"),
		UsersPath: filepath.Join(dir, "user.txt"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test storage: %w", err)
	}

	return repo, nil
}
