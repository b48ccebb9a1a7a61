// Command indigo-admin serves the Indigo Rhapsody administrator console.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/indigo-rhapsody/indigo-admin/internal/config"
)

const envPrefix = "INDIGO"

var (
	// configFolder is set by the --config-folder flag.
	configFolder string

	// settings resolves environment keys from flags and INDIGO_* variables.
	settings = viper.New()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "indigo-admin",
	Short: "Indigo Rhapsody administrator console",
	Long: `indigo-admin serves the server-rendered administration console of the
Indigo Rhapsody marketplace. It talks to the backend REST API on behalf of a
signed-in administrator.`,
	SilenceUsage: true,
}

func init() {
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFolder, "config-folder", "config", "path to folder with public.yaml and private.yaml")
	// String flags so that an unset flag does not override the profile.
	flags.String("env", "", "environment: production, testing or development (INDIGO_CURRENT_ENV)")
	flags.String("api-timeout", "", "backend request timeout, e.g. 30s or 30000 (INDIGO_API_TIMEOUT)")
	flags.String("debug", "", "enable debug mode (INDIGO_APP_DEBUG)")

	mustBind(config.KeyCurrentEnv, "env")
	mustBind(config.KeyAPITimeout, "api-timeout")
	mustBind(config.KeyAppDebug, "debug")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func mustBind(key, flag string) {
	if err := settings.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func lookup(key string) string {
	return settings.GetString(key)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		env, err := (*config.Config)(nil).ResolveEnvironment(lookup)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "indigo-admin %s\n", config.DefaultAppVersion)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", env.AppName, env.AppVersion)
	},
}
