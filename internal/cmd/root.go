package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flowsync/internal"
	"flowsync/internal/clock"
	"flowsync/internal/config"
	"flowsync/internal/logging"
	"flowsync/internal/seed"
	"flowsync/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "flowsync",
	Short: "FlowSync AI productivity dashboard",
	Long: `FlowSync renders a demo productivity dashboard in the terminal: a focus
timer, today's tasks and meetings, a weekly productivity chart and a few
canned insights. Nothing is saved between runs.`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/flowsync/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.AddCommand(headCmd)
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/flowsync")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("FLOWSYNC")
	// FLOWSYNC_LOGGING_LEVEL for logging.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.ReadInConfig()
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger = logger.WithSession(uuid.NewString())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	repo, err := store.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer repo.Close()

	if err := repo.Seed(ctx, seed.Default()); err != nil {
		return fmt.Errorf("failed to seed session store: %w", err)
	}
	data, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dashboard data: %w", err)
	}

	m := internal.NewModel(data,
		internal.WithStore(repo),
		internal.WithContext(ctx),
		internal.WithLogger(logger),
		internal.WithFullHelp(cfg.TUI.ShowFullHelp),
	)

	var opts []tea.ProgramOption
	if cfg.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, tea.WithContext(ctx))
	p := tea.NewProgram(m, opts...)

	ticker := clock.Start(ctx, time.Second, func(now time.Time) {
		p.Send(internal.MsgTick{Now: now})
	})
	defer ticker.Stop()

	logger.Info("dashboard started", "tasks", len(data.Tasks), "meetings", len(data.Meetings))
	_, err = p.Run()
	ticker.Stop()
	m.Timer.Stop()
	logger.Info("dashboard stopped", "focus_seconds", m.Timer.Elapsed())

	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
