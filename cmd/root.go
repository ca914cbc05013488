package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/darkwater/console-timeline/pkg/timeline/config"
	"github.com/darkwater/console-timeline/pkg/timeline/renderer"
	ebitenhost "github.com/darkwater/console-timeline/pkg/timeline/renderer/ebiten"
)

var rootCmd = &cobra.Command{
	Use:   "console-timeline",
	Short: "Timeline of game console lineages",
	Long: `console-timeline draws every console of the major lineages on a shared
time axis, from release to end of production, with lifetime sales on hover.
Without a subcommand it opens a window.`,
	Version:       renderer.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runWindow,
}

// Execute runs the command line and exits non-zero on error. An interrupt
// cancels the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .console-timeline.yaml)")
	flags.String("catalog", "", "YAML catalog file (default: built-in data)")
	flags.Bool("watch", false, "reload the catalog file when it changes")
	flags.String("locale", "", "UI language, e.g. de")
	flags.Bool("debug", false, "debug logging")

	for _, name := range []string{"catalog", "watch", "locale", "debug"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("console-timeline %s (%s)\n", renderer.Version, renderer.Commit))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".console-timeline")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runWindow opens the timeline window
func runWindow(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	prefsPath, err := a.cfg.PrefsFile()
	if err != nil {
		a.logger.Warn("preferences disabled", "err", err)
		prefsPath = ""
	}
	prefs, err := config.LoadPrefs(prefsPath)
	if err != nil {
		a.logger.Warn("ignoring preferences", "err", err)
	}

	host, err := ebitenhost.New(ebitenhost.Options{
		Source:        a.source,
		Theme:         a.theme,
		RowHeight:     a.cfg.RowHeight,
		InitialScale:  a.cfg.InitialScale,
		Width:         a.cfg.Window.Width,
		Height:        a.cfg.Window.Height,
		Prefs:         prefs,
		PrefsPath:     prefsPath,
		ScreenshotDir: a.cfg.ScreenshotDir,
		Logger:        a.logger,
	})
	if err != nil {
		return err
	}

	var r renderer.Renderer = host
	return r.Run(cmd.Context())
}
