// Package cli implements the partshelf command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/partshelf/partshelf/internal/paths"
	"github.com/partshelf/partshelf/internal/sqlite"
	"github.com/partshelf/partshelf/pkg/catalog"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dbPath    string
	logLevel  string
}

var flags rootFlags

// NewRootCmd creates the top-level "partshelf" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "partshelf",
		Short: "A personal inventory catalog",
		Long: "Partshelf manages a tree of part categories, typed inventory records,\n" +
			"per-category display headers, and attached reference documents\n" +
			"backed by a local SQLite catalog.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "catalog database file (default: from config)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newTreeCmd())
	root.AddCommand(newCategoryCmd())
	root.AddCommand(newPartCmd())
	root.AddCommand(newHeaderCmd())
	root.AddCommand(newDocCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newImportCmd())

	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// newLogger builds the CLI logger writing console output to stderr.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

// openCatalog loads the config, opens the catalog database, makes sure the
// schema exists, and builds the factory. The caller must defer
// conn.Disconnect().
func openCatalog() (*catalog.Factory, *sqlite.Connector, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	log := newLogger(cfg.LogLevel)

	dbPath, err := paths.ResolveDBPath(flags.dbPath, cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve db path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	cfg.DBPath = dbPath
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	conn := sqlite.NewConnector(dbPath, log)
	if err := conn.Connect(); err != nil {
		return nil, nil, fmt.Errorf("connect catalog: %w", err)
	}

	store := sqlite.NewStore(conn, log)
	if err := store.EnsureSchema(); err != nil {
		conn.Disconnect()
		return nil, nil, fmt.Errorf("ensure schema: %w", err)
	}

	return catalog.New(store, cfg, log), conn, nil
}

// exitError prints the error to stderr and exits with the given code.
func exitError(code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
