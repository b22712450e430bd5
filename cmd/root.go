package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fontlens/fontlens/pkg/app"
	"github.com/fontlens/fontlens/pkg/config"
)

var (
	flags = struct {
		ConfigFile string
		Backend    string
	}{}

	root = &cobra.Command{
		Use:   "fontlens",
		Short: "Fontlens is a terminal font browser",
		Long: `Fontlens enumerates the fonts installed on this machine through one of
three backends (fontconfig, metrics, fontset), lets you filter and page
through them, and previews the face you pick.`,
		Args: cobra.MaximumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			m, err := app.New(cfg)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewFromFile(flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if flags.Backend != "" {
		cfg.Backend = flags.Backend
	}
	return cfg, nil
}

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "~/.fontlens.yaml", "configuration file")
	root.PersistentFlags().StringVarP(&flags.Backend, "backend", "b", "", "enumeration backend (fontconfig, metrics, fontset)")
}

func Execute() {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
