package textfile

import (
	"context"
	"os"
	"path/filepath"

	"taskman/internal/domain"
	"taskman/internal/errors"
	"taskman/internal/logging"
)

// Repository defines the interface for flat-file storage operations
type Repository interface {
	// Task collection
	LoadTasks(ctx context.Context) ([]domain.Task, error)
	SaveTasks(ctx context.Context, tasks []domain.Task) error

	// Credential mapping
	LoadCredentials(ctx context.Context) (map[string]string, error)
	SaveCredentials(ctx context.Context, creds map[string]string) error

	// Utility
	Close() error
}

// Options configures a FileRepository
type Options struct {
	TasksPath         string
	UsersPath         string
	BootstrapUsername string
	BootstrapPassword string
	DirPermissions    os.FileMode
	FilePermissions   os.FileMode
}

// FileRepository implements the Repository interface over two UTF-8 text
// files. Saves rewrite each file in place: there is no locking, no atomic
// rename and no crash consistency, since exactly one process is assumed to
// operate on a given pair of files.
type FileRepository struct {
	tasksPath         string
	usersPath         string
	bootstrapUsername string
	bootstrapPassword string
	filePerms         os.FileMode
}

// New creates a new flat-file repository, creating an empty tasks file and
// a bootstrapped credential file when either is missing.
func New(opts Options) (*FileRepository, error) {
	if opts.BootstrapUsername == "" {
		opts.BootstrapUsername = "admin"
	}
	if opts.BootstrapPassword == "" {
		opts.BootstrapPassword = "password"
	}
	if opts.DirPermissions == 0 {
		opts.DirPermissions = 0755
	}
	if opts.FilePermissions == 0 {
		opts.FilePermissions = 0644
	}

	r := &FileRepository{
		tasksPath:         opts.TasksPath,
		usersPath:         opts.UsersPath,
		bootstrapUsername: opts.BootstrapUsername,
		bootstrapPassword: opts.BootstrapPassword,
		filePerms:         opts.FilePermissions,
	}

	for _, path := range []string{opts.TasksPath, opts.UsersPath} {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, opts.DirPermissions); err != nil {
			return nil, errors.NewStorageError("create storage directory", err)
		}
	}

	if err := r.ensureTasksFile(); err != nil {
		return nil, err
	}
	if err := r.ensureUsersFile(); err != nil {
		return nil, err
	}

	return r, nil
}

// Close releases the repository. Flat files hold no open handles between
// operations, so this only exists for interface symmetry.
func (r *FileRepository) Close() error {
	return nil
}

// LoadTasks loads and decodes the full task collection. A missing file
// yields an empty collection; malformed content resolves to empty through
// the codec's fallback chain rather than an error.
func (r *FileRepository) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewStorageError("load tasks", err)
	}

	data, err := os.ReadFile(r.tasksPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewStorageError("read tasks file", err)
	}

	tasks := DecodeTasks(string(data))
	logging.Debugf("loaded %d tasks from %s\n", len(tasks), r.tasksPath)
	return tasks, nil
}

// SaveTasks encodes and rewrites the full task collection in place
func (r *FileRepository) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("save tasks", err)
	}

	if err := os.WriteFile(r.tasksPath, []byte(EncodeTasks(tasks)), r.filePerms); err != nil {
		return errors.NewStorageError("write tasks file", err)
	}
	return nil
}

// LoadCredentials loads the username to password mapping, bootstrapping
// the file with the default administrative entry if it is missing.
func (r *FileRepository) LoadCredentials(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewStorageError("load credentials", err)
	}

	if err := r.ensureUsersFile(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.usersPath)
	if err != nil {
		return nil, errors.NewStorageError("read users file", err)
	}

	creds := DecodeCredentials(string(data))
	logging.Debugf("loaded %d credentials from %s\n", len(creds), r.usersPath)
	return creds, nil
}

// SaveCredentials encodes and rewrites the full credential mapping in place
func (r *FileRepository) SaveCredentials(ctx context.Context, creds map[string]string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("save credentials", err)
	}

	if err := os.WriteFile(r.usersPath, []byte(EncodeCredentials(creds)), r.filePerms); err != nil {
		return errors.NewStorageError("write users file", err)
	}
	return nil
}

func (r *FileRepository) ensureTasksFile() error {
	if _, err := os.Stat(r.tasksPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.NewStorageError("stat tasks file", err)
	}

	if err := os.WriteFile(r.tasksPath, nil, r.filePerms); err != nil {
		return errors.NewStorageError("create tasks file", err)
	}
	return nil
}

func (r *FileRepository) ensureUsersFile() error {
	if _, err := os.Stat(r.usersPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.NewStorageError("stat users file", err)
	}

	bootstrap := EncodeCredentials(map[string]string{
		r.bootstrapUsername: r.bootstrapPassword,
	})
	if err := os.WriteFile(r.usersPath, []byte(bootstrap), r.filePerms); err != nil {
		return errors.NewStorageError("create users file", err)
	}
	logging.Debugf("bootstrapped credential store at %s\n", r.usersPath)
	return nil
}
