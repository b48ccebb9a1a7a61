package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/indigo-rhapsody/indigo-admin/internal/config"
)

// resolvedConfig is what the config command prints. The session secret is
// never included.
type resolvedConfig struct {
	Environment string `yaml:"environment"`
	APIBaseURL  string `yaml:"api_base_url"`
	APITimeout  string `yaml:"api_timeout"`
	Debug       bool   `yaml:"debug"`
	AppName     string `yaml:"app_name"`
	AppVersion  string `yaml:"app_version"`
	Addr        string `yaml:"addr"`
	PageSize    int    `yaml:"page_size"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFolder)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		env, err := cfg.ResolveEnvironment(lookup)
		if err != nil {
			return fmt.Errorf("resolve environment: %w", err)
		}

		out, err := yaml.Marshal(resolvedConfig{
			Environment: env.Name,
			APIBaseURL:  env.APIBaseURL,
			APITimeout:  env.APITimeout.String(),
			Debug:       env.Debug,
			AppName:     env.AppName,
			AppVersion:  env.AppVersion,
			Addr:        cfg.Public.Addr,
			PageSize:    cfg.Public.PageSize,
		})
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
