package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-signup/internal/config"
	"github.com/goliatone/go-signup/pkg/locale"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/renderers/tui"
	"github.com/goliatone/go-signup/pkg/renderers/vanilla"
)

var (
	// Global flags
	verbose     bool
	configFile  string
	envFile     string
	localeFlag  string
	breakpoint  int
	themeName   string
	themeVar    string
	assetPrefix string

	// Resolved configuration
	cfg config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "signup",
	Short: "Sign-up form: render it, serve it, or fill it in from a terminal",
	Long: `signup hosts a single sign-up form with email, password, a terms
checkbox and optional preferences.

Settings come from defaults, an optional YAML file (--config), a .env file,
SIGNUP_* environment variables and finally command-line flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(config.WithFile(configFile), config.WithEnvFiles(envFile))
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, &loaded)
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		// Initialize logger
		level, err := cfg.Level()
		if err != nil {
			return err
		}
		zapConfig := zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file (ignored when missing)")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "Page language (en or es)")
	rootCmd.PersistentFlags().IntVar(&breakpoint, "breakpoint", 0, "Compact layout breakpoint in pixels")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Theme name")
	rootCmd.PersistentFlags().StringVar(&themeVar, "variant", "", "Theme variant")
	rootCmd.PersistentFlags().StringVar(&assetPrefix, "asset-prefix", "", "URL prefix for static assets")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(promptCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlagOverrides copies explicitly set flags over the loaded settings.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("locale") {
		c.Locale = localeFlag
	}
	if flags.Changed("breakpoint") {
		c.Breakpoint = breakpoint
	}
	if flags.Changed("theme") {
		c.Theme = themeName
	}
	if flags.Changed("variant") {
		c.Variant = themeVar
	}
	if flags.Changed("asset-prefix") {
		c.AssetPrefix = assetPrefix
	}
	if flags.Changed("addr") {
		c.Addr = serveAddr
	}
	if flags.Changed("assets-dir") {
		c.AssetsDir = serveAssetsDir
	}
}

// resolveTheme selects the configured theme from the built-in manifest.
func resolveTheme() (*render.ThemeConfig, error) {
	selector, err := render.NewThemeSelector(render.DefaultManifest())
	if err != nil {
		return nil, err
	}
	return render.ResolveTheme(selector, cfg.Theme, cfg.Variant)
}

// newRegistry registers the HTML renderer (the default) and the terminal
// renderer configured with tuiOptions.
func newRegistry(tuiOptions ...tui.Option) (*render.Registry, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	terminal, err := tui.New(append([]tui.Option{tui.WithLogger(logger)}, tuiOptions...)...)
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	for _, renderer := range []render.Renderer{html, terminal} {
		if err := registry.Register(renderer); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func translator() (*locale.Catalog, error) {
	catalog, err := locale.Default()
	if err != nil {
		return nil, fmt.Errorf("load locale catalogs: %w", err)
	}
	return catalog, nil
}
