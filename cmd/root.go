package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/config"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/lang"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/learner"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/logger"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lingo",
	Short: "Learner-state service for the language-learning apps",
	Long: "lingo owns the learner rules behind the web and mobile clients: " +
		"CEFR level slider, onboarding gate, learned words and streaks.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGO_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log service activity to stderr")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(positionCmd)
	rootCmd.AddCommand(onboardingCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(apikeyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the file named by --config plus the environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" {
		p = cfg.Database.Path
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// deps is what store-backed commands share.
type deps struct {
	cfg     config.Config
	log     *logger.Logger
	store   *store.Store
	learner *learner.Service
}

func (r *deps) Close() {
	r.store.Close()
	r.log.Sync()
}

// newLogger builds the configured logger. Inspection commands stay quiet
// unless --verbose is set or always is true.
func newLogger(cmd *cobra.Command, cfg config.Config, always bool) (*logger.Logger, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose && !always {
		return logger.Nop(), nil
	}
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

// openDeps loads config, opens the store and builds the learner service.
func openDeps(cmd *cobra.Command, alwaysLog bool) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cmd, cfg, alwaysLog)
	if err != nil {
		return nil, err
	}
	scale, err := cfg.Scale()
	if err != nil {
		return nil, fmt.Errorf("build level scale: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Debug("database opened", "path", dbPath)

	svc := learner.NewService(learner.Options{
		Profiles: st.ProfileRepo(),
		Progress: st.ProgressRepo(),
		Words:    st.WordRepo(),
		Scale:    scale,
		Catalog:  lang.Default,
		Logger:   log,
	})
	return &deps{cfg: cfg, log: log, store: st, learner: svc}, nil
}
