package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskman/internal/api"
	"taskman/internal/config"
	"taskman/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "taskman",
		Short: "A command-line task management application",
		Long: `Task Manager (taskman) is a command-line application for assigning and
tracking tasks across a small team, persisted to flat text files.

FEATURES:
  • Login against a flat credential store (auto-created on first run)
  • Register users, add tasks, view and filter tasks, mark complete, edit
  • Generate task and user overview reports
  • Admin-only statistics view
  • Backward compatible with the legacy semicolon-delimited storage format

EXAMPLES:
  taskman                                  # Start an interactive session
  taskman report                           # Regenerate report files and exit

CONFIGURATION:
  Configuration follows this priority order: command-line flags >
  environment variables > config file (taskman.yaml) > defaults

    TM_DATA_DIR                            Storage directory (default: .)
    TM_TASKS_FILENAME                      Tasks file name (default: tasks.txt)
    TM_USERS_FILENAME                      Users file name (default: user.txt)
    TM_ADMIN_USERNAME                      Administrative username (default: admin)
    TM_ADMIN_PASSWORD                      Bootstrap admin password (default: password)
    TM_DATE_FORMAT                         Date input/display format (default: 02-01-2006)
    TM_CONFIG                              Path to a YAML config file
    TM_DEBUG                               Enable debug output when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, closeRepo, err := root.buildApp()
			if err != nil {
				return err
			}
			defer closeRepo()

			return app.Run(cmd.Context())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// buildApp wires repository, services and API into an interactive App
func (r *RootCommand) buildApp() (*App, func(), error) {
	repo, err := config.CreateRepository(r.config)
	if err != nil {
		return nil, nil, err
	}

	container := services.NewServiceContainer(repo, r.config)
	businessAPI := api.NewBusinessAPI(container, r.config)
	app := NewApp(businessAPI, r.config)

	return app, func() { repo.Close() }, nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("data-dir", "", "Storage directory (overrides TM_DATA_DIR)")
	flags.String("tasks-file", "", "Tasks file name (overrides TM_TASKS_FILENAME)")
	flags.String("users-file", "", "Users file name (overrides TM_USERS_FILENAME)")
	flags.String("admin-user", "", "Administrative username (overrides TM_ADMIN_USERNAME)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TM_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Regenerate report files",
		Long: `Regenerate the task overview and user overview report files from the
current task and credential stores, without starting an interactive session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := config.CreateRepository(r.config)
			if err != nil {
				return err
			}
			defer repo.Close()

			container := services.NewServiceContainer(repo, r.config)
			businessAPI := api.NewBusinessAPI(container, r.config)

			ctx := cmd.Context()
			if err := businessAPI.LoadUsers(ctx); err != nil {
				return err
			}
			if err := businessAPI.LoadTasks(ctx); err != nil {
				return err
			}
			if err := businessAPI.GenerateReports(ctx); err != nil {
				return err
			}

			fmt.Println("Reports generated successfully.")
			return nil
		},
	}

	r.cmd.AddCommand(reportCmd)
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dataDir, _ := flags.GetString("data-dir"); dataDir != "" {
		r.config.Storage.Dir = dataDir
	}
	if tasksFile, _ := flags.GetString("tasks-file"); tasksFile != "" {
		r.config.Storage.TasksFilename = tasksFile
	}
	if usersFile, _ := flags.GetString("users-file"); usersFile != "" {
		r.config.Storage.UsersFilename = usersFile
	}
	if adminUser, _ := flags.GetString("admin-user"); adminUser != "" {
		r.config.Application.AdminUsername = adminUser
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}
