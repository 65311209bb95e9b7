package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hookrunner/internal"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	"github.com/rios0rios0/hookrunner/internal/infrastructure/controllers"
)

// flagAdder is implemented by controllers that declare their own flags.
type flagAdder interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "hookrunner",
		Short: "GitOps bridge between GitHub webhooks and local working copies",
		Long: `Receive GitHub push deliveries and keep local working copies in sync
with the pushed branch or tag, and manage the webhook subscription itself.

Usage modes:
  hookrunner serve         Run the webhook server
  hookrunner synchronize   Clone or update one working copy
  hookrunner install       Register the webhook on a repository
  hookrunner uninstall     Remove the webhook from a repository
  hookrunner hooks         List a repository's webhooks`,
		Version:       entities.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if format, _ := command.Flags().GetString("log-format"); format == "json" {
				//nolint:exhaustruct // defaults are fine
				logger.SetFormatter(&logger.JSONFormatter{})
			}
		},
	}

	controllers.AddGlobalFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().String("log-format", "text", "Log format: text or json")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if fa, ok := ctrl.(flagAdder); ok {
			fa.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'hookrunner': %s", err)
	}
}
