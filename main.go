package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"library-desk/internal/config"
	"library-desk/library"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	envFile   string
	seed      string
	script    string
	logLevel  string
	logFormat string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "library-desk",
		Short:         "Keep track of books, members and loans at a small library",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runDesk(cmd, flags, stdin, stdout, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&flags.envFile, "env-file", ".env", "optional dotenv file with LIBRARYDESK_* settings")
	cmd.Flags().StringVar(&flags.seed, "seed", "", "JSON fixture to load into the catalog at start-up")
	cmd.Flags().StringVar(&flags.script, "script", "", "read commands from this file instead of stdin")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "diagnostic log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "diagnostic log format (text, json)")
	return cmd
}

func runDesk(cmd *cobra.Command, flags rootFlags, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(flags.envFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = flags.logFormat
	}
	if cmd.Flags().Changed("seed") {
		cfg.SeedFile = flags.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Logger(stderr)
	if err != nil {
		return err
	}

	desk := library.NewLibrarian(cfg.Librarian.Name, cfg.Librarian.Age, cfg.Librarian.Contact, cfg.Librarian.EmployeeID)
	mgr, err := library.NewLibraryManager(library.WithLogger(logger), library.WithDeskLibrarian(desk))
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer mgr.Close()

	if cfg.SeedFile != "" {
		outcomes, err := mgr.LoadFixture(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("load seed: %w", err)
		}
		for _, out := range outcomes {
			if !out.OK() {
				fmt.Fprintf(stderr, "seed: %s\n", out.Message)
			}
		}
	}

	in := stdin
	interactive := isTerminal(stdin)
	if flags.script != "" {
		f, err := os.Open(filepath.Clean(flags.script))
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
		interactive = false
	}

	return newShell(in, stdout, mgr, interactive, cfg.TimeLayout).run()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
