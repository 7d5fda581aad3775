package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/assistant"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/config"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/llm"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/logging"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/tui"
)

var version = "dev"

var (
	// Global flags
	configPath string
	verbose    bool

	// Set up by PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
	client llm.Client

	// connect is replaced in tests.
	connect = llm.NewClient
)

var rootCmd = &cobra.Command{
	Use:   "fico",
	Short: "SAP FICO implementation assistant",
	Long: `fico answers SAP Finance & Controlling questions with Gemini.

Run without arguments to start the interactive terminal UI. Queries are
checked for relevance before a full answer is requested.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.LoadFile(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// The TUI owns the terminal, so it only logs to file.
		console := cmd != cmd.Root()
		logger, err = logging.New(logging.FromConfig(cfg, console, verbose))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		client, err = connect(cmd.Context(), cfg, logger)
		if err != nil && !errors.Is(err, llm.ErrMissingAPIKey) {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/fico/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, assistant.Message(err))
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	app := tui.NewApp(tui.Options{
		Config: cfg,
		Client: client,
		Logger: logger,
	})
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func newService() *assistant.Service {
	return assistant.New(client, cfg, logger)
}

// commandContext bounds one CLI request by the configured timeout.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, cfg.RequestTimeout)
}
