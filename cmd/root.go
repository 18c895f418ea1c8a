package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/toolbelt/internal/app"
	"github.com/ryan-rushton/toolbelt/internal/config"
	"github.com/ryan-rushton/toolbelt/internal/counter"
	"github.com/ryan-rushton/toolbelt/internal/log"
	"github.com/ryan-rushton/toolbelt/internal/output"
	"github.com/ryan-rushton/toolbelt/internal/qrcode"
	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/runner"
	"github.com/ryan-rushton/toolbelt/internal/store"

	_ "github.com/ryan-rushton/toolbelt/internal/tools/filetools"
	_ "github.com/ryan-rushton/toolbelt/internal/tools/mediatools"
	_ "github.com/ryan-rushton/toolbelt/internal/tools/texttools"
)

var (
	configPath string
	verbose    bool
	outputDir  string
)

var rootCmd = &cobra.Command{
	Use:           "toolbelt",
	Short:         "Everyday file, image and text tools",
	Long:          "toolbelt - All Your Tools in One Place: converters, generators and text utilities in the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, true)
		if err != nil {
			return err
		}
		defer s.Close()

		m := app.New(s.deps(), counter.New(s.store, nil))
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&configPath, "config", "", "config file (default ./.toolbelt.yaml or $XDG_CONFIG_HOME/toolbelt/config.yaml)")
	f.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	f.StringVarP(&outputDir, "output", "o", "", "directory saved results are written to")
}

// session is the configuration, logger and store one command runs with.
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   store.KV
	closers []io.Closer
}

// openSession loads the configuration, applies flag overrides and opens the
// log file. withStore also opens the SQLite store.
func openSession(cmd *cobra.Command, withStore bool) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("output") {
		cfg.OutputDir = outputDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &session{cfg: cfg}
	logger, closer, err := log.OpenFile(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return nil, err
	}
	s.logger = logger
	s.closers = append(s.closers, closer)
	logger.Debug("session opened", "config", cfg.ConfigFilePath, "command", cmd.Name())

	if withStore {
		db, err := store.Open(cfg.DataDir, store.DefaultOptions())
		if err != nil {
			logger.Warn("opening store, falling back to memory", "error", err)
			s.store = store.NewMemory()
		} else {
			s.store = db
			s.closers = append(s.closers, db)
		}
	}
	return s, nil
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			fmt.Fprintln(os.Stderr, "closing:", err)
		}
	}
}

func (s *session) deps() registry.Deps {
	return registry.Deps{
		Env: runner.Env{
			Store:         s.store,
			Saver:         output.NewSaver(s.cfg.OutputDir),
			Clipboard:     output.SystemClipboard,
			Logger:        s.logger,
			SkipTutorials: s.cfg.SkipTutorials,
		},
		QR: qrcode.New(s.cfg.QREndpoint, s.cfg.QRSize, s.cfg.HTTPTimeout),
	}
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the command line. An interrupt cancels headless runs.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
