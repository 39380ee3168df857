package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/talentdb/internal/api"
	"github.com/zjrosen/talentdb/internal/app"
	"github.com/zjrosen/talentdb/internal/config"
	"github.com/zjrosen/talentdb/internal/flags"
	"github.com/zjrosen/talentdb/internal/log"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const (
	envPrefix         = "TALENTDB"
	localConfigPath   = ".talentdb/config.yaml"
	defaultLogPath    = "debug.log"
	markdownStyleAuto = ""
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "talentdb",
	Short: "A terminal client for a candidate registration service",
	Long: `A terminal user interface for registering, searching, and deleting
job candidates stored by a talentdb REST service.

Run without arguments to open the interactive client. The list, search, add,
and delete subcommands do the same work headlessly and print JSON.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/talentdb/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (path from TALENTDB_LOG, default debug.log)")
	rootCmd.PersistentFlags().StringP("base-url", "u", "",
		"candidate service address (overrides api.base_url)")
}

func initConfig() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	// Bind flags to viper
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("base-url"))

	defaults := config.Defaults()
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout", defaults.API.Timeout)
	viper.SetDefault("ui.toast_duration", defaults.UI.ToastDuration)
	viper.SetDefault("ui.show_stats", defaults.UI.ShowStats)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	// TALENTDB_API_BASE_URL overrides api.base_url, and so on.
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .talentdb/config.yaml (current directory)
		// 2. ~/.config/talentdb/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "talentdb"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default in the user config dir
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if defaultPath := userConfigPath(); defaultPath != "" {
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	cfg = config.Config{}
	_ = viper.Unmarshal(&cfg)
	if cfg.Tracing.FilePath == "" {
		cfg.Tracing.FilePath = config.DefaultTracesFilePath()
	}
}

// userConfigPath returns ~/.config/talentdb/config.yaml, or "" without a home dir.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "talentdb", "config.yaml")
}

// configFilePath is where config edits are written.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return userConfigPath()
}

var logCleanup func()

// setupLogging initializes the debug log when --debug or TALENTDB_DEBUG is set.
// TALENTDB_LOG_LEVEL raises the threshold (debug, info, warn, error).
func setupLogging(_ *cobra.Command, _ []string) error {
	if !debugFlag && os.Getenv(envPrefix+"_DEBUG") == "" {
		return nil
	}
	logPath := os.Getenv(envPrefix + "_LOG")
	if logPath == "" {
		logPath = defaultLogPath
	}

	level, err := log.ParseLevel(os.Getenv(envPrefix + "_LOG_LEVEL"))
	if err != nil {
		return err
	}

	cleanup, err := log.Init(logPath, "talentdb", level)
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	logCleanup = cleanup
	log.Info(log.CatConfig, "talentdb starting", "version", version, "config", viper.ConfigFileUsed(),
		"base_url", cfg.API.BaseURL)
	return nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	s, err := openSession(version)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(
		newAppModel(ctx, s.client),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// newAppModel builds the interactive model from the loaded configuration.
func newAppModel(ctx context.Context, svc api.Service) app.Model {
	return app.New(app.Config{
		Service:       svc,
		Flags:         flags.New(cfg.Flags),
		ToastDuration: cfg.UI.ToastDuration,
		ShowStats:     cfg.UI.ShowStats,
		MarkdownStyle: markdownStyleAuto,
		Context:       ctx,
	})
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logCleanup != nil {
			logCleanup()
		}
	}()
	return rootCmd.ExecuteContext(context.Background())
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
