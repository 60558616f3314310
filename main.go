package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"viewtrack/config"
	"viewtrack/log"
	"viewtrack/ui"
	"viewtrack/viewport"
)

var (
	version = "0.1.0"

	terminalFlag   bool
	fireOnInitFlag bool

	rootCmd = &cobra.Command{
		Use:   "viewtrack",
		Short: "viewtrack - watch the terminal's viewport breakpoint live.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := loadConfig()

			p := tea.NewProgram(ui.NewWatch(cfg), tea.WithAltScreen())

			// Reload the breakpoint ladder when the config file changes.
			stopWatch, err := config.Watch(func(cfg *config.Config) {
				p.Send(ui.ConfigReloadedMsg{Config: cfg})
			})
			if err != nil {
				log.WarningLog.Printf("config watch unavailable: %v", err)
			} else {
				defer stopWatch()
			}

			_, err = p.Run()
			return err
		},
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Print the current dimensions and active viewport once",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := loadConfig()
			tracker := viewport.NewTracker(viewport.NewTTY())
			tracker.Initialize(cfg.TrackerConfig(nil))

			vp, ok := tracker.CurrentViewport()
			if !ok {
				return fmt.Errorf("no viewport classified: ladder has no threshold at or below width %d", tracker.Width())
			}

			out := termenv.NewOutput(os.Stdout)
			name := out.String(vp.Name).Bold().Foreground(out.Color("2"))
			fmt.Printf("%d x %d  %s (>=%d)\n", tracker.Width(), tracker.Height(), name, vp.MinWidth)
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			configPath, err := config.ConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", configPath, configJson)
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of viewtrack",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("viewtrack version %s\n", version)
		},
	}
)

// loadConfig applies the flag overrides on top of the config file.
func loadConfig() *config.Config {
	cfg := config.LoadConfig()
	if terminalFlag {
		cfg.Viewports = viewport.TerminalViewports()
	}
	if fireOnInitFlag {
		cfg.FireOnChangeOnInit = true
	}
	return cfg
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&terminalFlag, "terminal", "t", false,
		"Use the terminal-column ladder (tiny/compact/standard/wide) instead of the configured one")
	rootCmd.PersistentFlags().BoolVar(&fireOnInitFlag, "fire-on-init", false,
		"Fire the change callback once at startup")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
