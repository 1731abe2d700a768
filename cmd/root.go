package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/NovaQuest/internal/app"
)

var logLevel string

// runner is the part of the application the commands drive.
type runner interface {
	Start() error
	Stop()
}

var newRunner = func(opts app.Options) (runner, error) {
	a, err := app.NewApplication(opts)
	if err != nil {
		return nil, err
	}
	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "novaquest",
	Short: "Explore NASA imagery and ask an AI about the cosmos",
	Long: `Nova Quest searches the NASA image archive, shows the Astronomy Picture
of the Day and answers astronomy questions with a generative model, all from
the terminal.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// runTUI always stops a started application, so in-flight requests are
// drained and the log file is closed even when the UI fails.
func runTUI() error {
	application, err := newRunner(app.Options{LogLevel: logLevel})
	if err != nil {
		return err
	}
	defer application.Stop()

	return application.Start()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.AddCommand(profileCmd)
}
