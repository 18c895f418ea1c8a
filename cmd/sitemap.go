package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryan-rushton/toolbelt/internal/config"
	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/sitemap"
)

// now is replaced in tests.
var now = time.Now

func baseURL() (string, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid config: %w", err)
	}
	return cfg.BaseURL, nil
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "sitemap",
		Short: "Print sitemap.xml for the published catalog",
		Long:  "Prints a sitemap with the homepage and one entry per tool under base_url",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := baseURL()
			if err != nil {
				return err
			}
			doc, err := sitemap.Build(base, registry.Paths(), now())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "robots",
		Short: "Print robots.txt for the published catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := baseURL()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), sitemap.Robots(base))
			return err
		},
	})
}
