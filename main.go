package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/openclaw/terminal-qr/api"
	"github.com/openclaw/terminal-qr/config"
	"github.com/openclaw/terminal-qr/matrix"
	"github.com/openclaw/terminal-qr/render"
	"github.com/openclaw/terminal-qr/script"
	"github.com/openclaw/terminal-qr/session"
	"github.com/openclaw/terminal-qr/tui"
)

var version = "v0.1.0"

func main() {
	root := &cobra.Command{
		Use:          "terminal-qr",
		Short:        "Turn text into QR codes that terminals can draw",
		SilenceUsage: true,
	}

	var configPath string
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")

	// --- serve command -------------------------------------------------------
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}
	root.AddCommand(serveCmd)

	// --- generate command ----------------------------------------------------
	var (
		genDialect string
		genWidth   string
		genOut     string
		genCopy    bool
	)
	generateCmd := &cobra.Command{
		Use:   "generate [text]",
		Short: "Print a script that draws the QR code for text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(configPath, args[0], genDialect, genWidth, genOut, genCopy)
		},
	}
	generateCmd.Flags().StringVarP(&genDialect, "dialect", "d", "", "Script dialect: windows, powershell or linux")
	generateCmd.Flags().StringVarP(&genWidth, "terminal-width", "w", "", "Spaces per module")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Write the script to this file (\"-\" for a default name)")
	generateCmd.Flags().BoolVar(&genCopy, "copy", false, "Copy the script to the clipboard")
	root.AddCommand(generateCmd)

	// --- show command --------------------------------------------------------
	var showWidth string
	showCmd := &cobra.Command{
		Use:   "show [text]",
		Short: "Draw the QR code for text in this terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(configPath, args[0], showWidth)
		},
	}
	showCmd.Flags().StringVarP(&showWidth, "terminal-width", "w", "", "Spaces per module")
	root.AddCommand(showCmd)

	// --- tui command ---------------------------------------------------------
	var (
		tuiSaveDir string
		tuiLogFile string
	)
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(configPath, tuiSaveDir, tuiLogFile)
		},
	}
	tuiCmd.Flags().StringVar(&tuiSaveDir, "save-dir", ".", "Directory for saved scripts")
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "Write logs to this file")
	root.AddCommand(tuiCmd)

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("terminal-qr %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the slog logger for the configured level.
func newLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// newSession builds a controller session from cfg.
func newSession(cfg *config.Config, log *slog.Logger) *session.Session {
	return session.New(matrix.NewQREncoder(), log, sessionOptions(cfg)...)
}

func sessionOptions(cfg *config.Config) []session.Option {
	return []session.Option{
		session.WithDialect(cfg.Dialect),
		session.WithDefaultWidths(session.Widths{Terminal: cfg.TerminalWidth, Preview: cfg.PreviewWidth}),
	}
}

// runServe is the web UI entrypoint that wires all components together.
func runServe(configPath string) error {
	// 1. Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Setup logger
	log := newLogger(cfg.LogLevel, os.Stdout)
	slog.SetDefault(log)

	log.Info("starting terminal-qr", "version", version, "port", cfg.Port, "dialect", cfg.Dialect)

	// 3. Session store
	sessions := api.NewSessionStore(
		cfg.SessionTTL.Duration,
		cfg.SessionCleanup.Duration,
		matrix.NewQREncoder(),
		log,
		sessionOptions(cfg)...,
	)

	// 4. Start HTTP server
	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: api.NewRouter(&api.Server{
			Sessions: sessions,
			Log:      log,
			Version:  version,
		}),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr, "url", fmt.Sprintf("http://localhost:%d/", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 5. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("HTTP server: %w", err)
	}

	log.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("goodbye")
	return nil
}

// runGenerate prints, saves or copies the script for text.
func runGenerate(configPath, text, dialect, width, out string, copyScript bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dialect != "" {
		d, err := script.ParseDialect(dialect)
		if err != nil {
			return err
		}
		cfg.Dialect = d
	}
	log := newLogger(cfg.LogLevel, os.Stderr)
	sess := newSession(cfg, log)

	view, err := sess.Generate(session.Input{Text: text, TerminalWidth: width})
	if err != nil {
		return errors.New(session.UserMessage(err))
	}

	if copyScript {
		if err := sess.Copy(session.SystemClipboard{}); err != nil {
			return errors.New(session.UserMessage(err))
		}
		fmt.Fprintln(os.Stderr, "Script copied to clipboard!")
	}

	switch out {
	case "":
		if !copyScript {
			fmt.Print(view.Script)
		}
	default:
		dl, err := sess.Download()
		if err != nil {
			return err
		}
		path := out
		if out == "-" {
			path = dl.FileName
		}
		if err := os.WriteFile(path, dl.Body, 0o755); err != nil {
			return fmt.Errorf("write script: %w", err)
		}
		log.Info("script written", "path", path, "dialect", sess.Dialect())
	}
	return nil
}

// runShow draws the grid directly, as the Linux script would.
func runShow(configPath, text, width string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger(cfg.LogLevel, os.Stderr)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Warn("stdout is not a terminal, escape sequences will be written verbatim")
	}

	sess := newSession(cfg, log)
	if _, err := sess.Generate(session.Input{Text: text, TerminalWidth: width}); err != nil {
		return errors.New(session.UserMessage(err))
	}
	fmt.Print(render.Terminal(sess.Grid(), sess.Widths().Terminal))
	return nil
}

// runTUI starts the interactive UI. Logs are discarded unless logFile is set
// since the UI owns the terminal.
func runTUI(configPath, saveDir, logFile string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log := newLogger(cfg.LogLevel, logOut)

	if info, err := os.Stat(saveDir); err != nil || !info.IsDir() {
		return fmt.Errorf("save dir %q is not a directory", saveDir)
	}

	model := tui.New(newSession(cfg, log), session.SystemClipboard{}, saveDir)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
