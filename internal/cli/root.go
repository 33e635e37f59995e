// Package cli wires configuration, storage, the deck and the terminal UI
// into the deckgrip command.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deckgrip/internal/config"
	"deckgrip/internal/discovery"
	"deckgrip/internal/logging"
	"deckgrip/internal/storage"
)

// app holds the global flags and the resources built from them
type app struct {
	configPath string
	verbose    bool
	noPersist  bool

	cfg    *config.Config
	logger *zap.Logger
	sync   func()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "deckgrip [deck.md | dir]",
		Short: "Present markdown slide decks in the terminal",
		Long: `deckgrip presents a markdown file as slides. Slides are separated by
lines containing only "---". Speaker notes and settings are kept between runs.

With a directory (or no argument) deckgrip looks for decks below it and
presents the only one found.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.sync != nil {
				a.sync()
			}
		},
		RunE: a.runPresent,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default: user config dir)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.noPersist, "no-persist", false, "Keep notes and settings in memory only")

	root.AddCommand(
		&cobra.Command{
			Use:   "present [deck.md | dir]",
			Short: "Present a deck (default command)",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runPresent,
		},
		&cobra.Command{
			Use:   "check <deck.md>",
			Short: "Validate a deck and print its outline",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runCheck,
		},
		newNotesCmd(a),
		&cobra.Command{
			Use:   "list [dir...]",
			Short: "List decks found below the given directories",
			RunE:  a.runList,
		},
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "deckgrip:", err)
		os.Exit(1)
	}
}

// setup loads the config and builds the logger once per invocation
func (a *app) setup() error {
	if a.cfg != nil {
		return nil
	}

	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.NewConfigServiceAt(filepath.Dir(a.configPath)).LoadFromPath(a.configPath)
	} else {
		cfg, err = config.LoadOrCreate(config.NewConfigService())
	}
	if err != nil {
		return err
	}

	logger, sync, err := logging.New(cfg.Log, a.verbose)
	if err != nil {
		return err
	}
	a.cfg, a.logger, a.sync = cfg, logger, sync
	a.logger.Debug("config loaded", zap.String("storage", cfg.Storage.Driver), zap.String("path", cfg.Storage.Path))
	return nil
}

func (a *app) openKV() (storage.KV, error) {
	if a.noPersist {
		return storage.NewMemoryKV(), nil
	}
	kv, err := storage.Open(a.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return kv, nil
}

// resolveDeck turns the optional argument into a deck file. Directories are
// scanned and must contain exactly one deck.
func (a *app) resolveDeck(ctx context.Context, args []string) (string, error) {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return abs, nil
	}

	found, err := discovery.NewScanner(a.logger).Scan(ctx, []string{abs})
	if err != nil {
		return "", err
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("no decks found in %s", abs)
	case 1:
		return found[0].Path, nil
	}
	paths := make([]string, 0, len(found))
	for _, f := range found {
		paths = append(paths, "  "+f.Path)
	}
	return "", fmt.Errorf("%d decks found in %s, pick one:\n%s", len(found), abs, strings.Join(paths, "\n"))
}
