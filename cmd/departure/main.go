package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"departure/internal/debug"
	"departure/internal/version"
	"departure/pkg/action"
	"departure/pkg/config"
	guitheme "departure/pkg/gui/theme"
	"departure/pkg/theme"
)

type options struct {
	configPath     string
	themeSource    string
	generateConfig bool
	printTheme     bool
	printCSS       bool
	debugEnabled   bool
	showVersion    bool
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "departure",
		Short: "A keyboard-driven session exit menu for the terminal",
		Long: `Departure shows a configurable menu of session actions such as lock,
logout, suspend, reboot and shutdown, themed from your system colors.

Each action can carry a single-key keybind; Esc always closes the menu.
Actions marked with confirm ask before running.

Examples:
  departure                         # launch with ~/.config/departure/config.json
  departure --config ./my.json      # launch with a specific config
  departure --generate-config       # write the default config and exit
  departure --print-theme           # show the resolved colors and exit
  departure --theme-source manual   # override the configured theme source`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if opts.showVersion {
				fmt.Println(version.Short())
				return nil
			}
			return run(opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to the configuration file")
	rootCmd.Flags().StringVar(&opts.themeSource, "theme-source", "", "Override the theme source (manual, system, file, command)")
	rootCmd.Flags().BoolVar(&opts.generateConfig, "generate-config", false, "Write the default configuration and exit")
	rootCmd.Flags().BoolVar(&opts.printTheme, "print-theme", false, "Print the resolved theme colors and exit")
	rootCmd.Flags().BoolVar(&opts.printCSS, "print-css", false, "Print the rendered stylesheet and exit")
	rootCmd.Flags().BoolVarP(&opts.debugEnabled, "debug", "d", false, "Write debug output to ~/.departure/debug.log")
	rootCmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts options) error {
	configPath := opts.configPath
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("no config path available: %w", err)
		}
		configPath = p
	}

	if opts.generateConfig {
		return generateConfig(configPath)
	}

	var debugLogger *debug.DebugLogger
	if opts.debugEnabled {
		debugLogger = debug.InitDebugLogger()
		theme.DebugLog = debug.DebugLog
		action.DebugLog = debug.DebugLog
		debug.DebugLog("departure %s starting, config %s", version.Short(), configPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.themeSource != "" {
		cfg.Theme.Source = opts.themeSource
	}

	colors, err := theme.NewResolver(cfg.Theme).Resolve()
	if err != nil {
		// A broken theme config aborts startup; extraction already degrades
		// malformed theme content to defaults, so this only fires on
		// misconfiguration.
		debug.DebugLog("theme resolution failed: %v", err)
		return fmt.Errorf("resolving theme: %w", err)
	}

	if opts.printTheme {
		printTheme(colors)
		return nil
	}
	if opts.printCSS {
		fmt.Print(theme.RenderCSS(colors))
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("departure needs an interactive terminal (try --print-theme or --print-css)")
	}

	var reloads chan theme.Colors
	var stopWatch func() error
	if cfg.Theme.WatchFile && cfg.Theme.Source == "file" && cfg.Theme.FilePath != "" {
		reloads = make(chan theme.Colors, 1)
		resolver := theme.NewResolver(cfg.Theme)
		stopWatch, err = theme.WatchFile(cfg.Theme.FilePath, func() {
			fresh, rerr := resolver.Resolve()
			if rerr != nil {
				debug.DebugLog("theme reload failed: %v", rerr)
				return
			}
			select {
			case reloads <- fresh:
			default:
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: theme file watching disabled: %v\n", err)
			reloads = nil
		}
	}

	p := tea.NewProgram(newModel(cfg, colors, reloads, debugLogger), tea.WithAltScreen())
	_, runErr := p.Run()

	if stopWatch != nil {
		if werr := stopWatch(); werr != nil {
			debug.DebugLog("stopping theme watcher: %v", werr)
		}
	}
	if debugLogger != nil {
		debugLogger.Close()
	}
	if runErr != nil {
		return fmt.Errorf("error running program: %v", runErr)
	}
	return nil
}

func generateConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := config.Default().Save(path); err != nil {
		return err
	}
	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}

// printTheme shows each resolved color next to a swatch drawn in that color.
func printTheme(colors theme.Colors) {
	out := termenv.NewOutput(os.Stdout)
	show := func(name, value string) {
		swatch := out.String("██").Foreground(out.Color(swatchColor(value)))
		fmt.Printf("%-12s %s %s\n", name, swatch, value)
	}
	show("background", colors.Background)
	show("primary", colors.Primary)
	show("secondary", colors.Secondary)
	show("text", colors.Text)
	show("danger", colors.Danger)
}

// swatchColor flattens rgba()/rgb() literals the same way the UI does so the
// swatch matches what the menu will use.
func swatchColor(value string) string {
	return string(guitheme.TermColor(value))
}
