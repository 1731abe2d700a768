package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rorical/NovaQuest/internal/app"
	"github.com/Rorical/NovaQuest/internal/config"
	"github.com/Rorical/NovaQuest/internal/core"
	"github.com/Rorical/NovaQuest/internal/logging"
	"github.com/Rorical/NovaQuest/internal/models"
	"github.com/Rorical/NovaQuest/internal/render"
	"github.com/Rorical/NovaQuest/ui/components"
)

// Querier is the part of the dispatcher the query command needs.
type Querier interface {
	Dispatch(ctx context.Context, q models.Query) (*models.Result, error)
	DispatchRandom(ctx context.Context, mode models.Mode) (*models.Result, error)
}

var (
	queryMode   string
	queryRandom bool
	queryWidth  int
)

var queryCmd = &cobra.Command{
	Use:   "query [text...]",
	Short: "Run a single query and print the result",
	Long: `Run one query without the terminal UI. Modes: image-search, picture-of-day,
planetary-data, ai-description, ai-apod (aliases: image, apod, planet,
describe, apod-ai). With --random no text is needed.`,
	Example: `  novaquest query --mode image mars rover
  novaquest query --mode apod 2024-01-15
  novaquest query --mode planet --random`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := models.ParseMode(queryMode)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		level := cfg.GetLogLevel()
		if logLevel != "" {
			level = logLevel
		}
		logger := logging.NewConsole("novaquest", level)
		d, _ := app.NewDispatcher(cfg, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runQuery(ctx, cmd.OutOrStdout(), d, mode, strings.Join(args, " "), queryRandom, queryWidth)
	},
}

var errEmptyQuery = errors.New("enter a search term or use --random")

func runQuery(ctx context.Context, out io.Writer, d Querier, mode models.Mode, text string, random bool, width int) error {
	var (
		result *models.Result
		err    error
	)
	if random {
		result, err = d.DispatchRandom(ctx, mode)
	} else {
		q := models.Query{Text: text, Mode: mode}
		if q.IsEmpty() {
			return errEmptyQuery
		}
		result, err = d.Dispatch(ctx, q)
	}
	if err != nil {
		var failure *core.FetchFailure
		if errors.As(err, &failure) {
			return errors.New(failure.Message)
		}
		return err
	}

	_, err = fmt.Fprintln(out, components.RenderNode(render.Render(result), width))
	return err
}

func init() {
	queryCmd.Flags().StringVarP(&queryMode, "mode", "m", string(models.ModeImageSearch), "query mode")
	queryCmd.Flags().BoolVarP(&queryRandom, "random", "r", false, "fetch something random for the mode's family")
	queryCmd.Flags().IntVarP(&queryWidth, "width", "w", 100, "output width in columns")
	rootCmd.AddCommand(queryCmd)
}
