package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/config"
	"github.com/abhisek/mathforge/internal/store"
)

// cfg is resolved before every command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "mathforge",
	Short: "Procedural K-8 math problem generator",
	Long: `Mathforge generates K-8 math practice problems for more than a hundred
operations at four difficulty levels, assembles reproducible daily challenges
and scores them with bonus stars and coins.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides MATHFORGE_DB env var)")
	pf.Bool("no-store", false, "Do not record challenges, rewards or sessions")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(questionCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(rewardsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the persistent flags, environment and config file
// into cfg and installs the configured logger. Subcommand flags such as
// --level are not bound, so an unknown level still reaches the generators.
func loadConfig(cmd *cobra.Command) error {
	v, err := config.NewViper(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	c, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = c
	slog.SetDefault(config.NewLogger(cfg, cmd.ErrOrStderr()))
	return nil
}

// resolveDBPath returns the database path using --db flag or MATHFORGE_DB
// (highest priority), then the default XDG path.
func resolveDBPath() (string, error) {
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store. It returns a nil store when persistence
// is disabled.
func openStore() (*store.Store, error) {
	if cfg != nil && cfg.NoStore {
		return nil, nil
	}
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	slog.Debug("opened store", "path", dbPath)
	return st, nil
}

// eventRepo returns the store's repo, or nil for a nil store.
func eventRepo(st *store.Store) store.EventRepo {
	if st == nil {
		return nil
	}
	return st.EventRepo()
}

// defaultLevel returns flag if set, else the configured default level.
func defaultLevel(flag string) string {
	if flag != "" {
		return flag
	}
	if cfg != nil {
		return cfg.Level
	}
	return "easy"
}

// defaultChallengeType returns flag if set, else the configured default type.
func defaultChallengeType(flag string) string {
	if flag != "" {
		return flag
	}
	if cfg != nil {
		return cfg.ChallengeType
	}
	return "standard_mixed"
}
