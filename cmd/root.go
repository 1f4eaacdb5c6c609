package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/wallpanel/internal/config"
	"github.com/ytget/wallpanel/internal/logger"
	"github.com/ytget/wallpanel/internal/preview"
	"github.com/ytget/wallpanel/internal/ui"
)

const AppID = "com.ytget.wallpanel"

var (
	cfgFile string
	verbose bool

	// Populated by PersistentPreRunE for every command.
	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wallpanel",
	Short: "Control panel for the calendar wallpaper renderer",
	Long: `wallpanel lets you pick a device, language, timezone and weekend style,
previews the wallpaper the renderer produces for them and copies the link.

Examples:
  wallpanel
  wallpanel url --device iphone-15 --timezone 3
  wallpanel qr --lang ru --out wallpaper-qr.png`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runPanel,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "wallpanel.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if verbose {
		c.Log.Level = "debug"
	}
	cfg = c
	log = logger.New(c.Log)
	slog.SetDefault(log)
	return nil
}

func runPanel(cmd *cobra.Command, args []string) error {
	log.Info("starting", "version", Version, "origin", cfg.Origin)

	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewPanelTheme())

	window := a.NewWindow(fmt.Sprintf("%s %s", ui.AppTitle, Version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(a, cfg)

	previewSvc := preview.NewService(settings.GetOrigin, nil)
	previewSvc.SetTimeout(cfg.Preview.Timeout)
	previewSvc.SetMaxDimension(cfg.Preview.MaxDimension)
	previewSvc.SetLogger(log)

	if _, err := ui.NewRootUI(window, a, settings, previewSvc, ui.Options{Logger: log}); err != nil {
		return fmt.Errorf("building panel: %w", err)
	}

	window.ShowAndRun()
	return nil
}
