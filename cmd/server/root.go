package main

import (
	"github.com/Lixing-Zhang/product-catalog/internal/config"
	"github.com/Lixing-Zhang/product-catalog/internal/version"
	"github.com/spf13/cobra"
)

// settings collects defaults, environment and flags; flags take precedence
var settings = config.New()

var rootCmd = &cobra.Command{
	Use:   "catalog-server",
	Short: "Read-only product catalog HTTP API",
	Long: `catalog-server loads a static JSON product catalog at startup and serves
search, listing and filter queries over HTTP.

Every flag can also be set through the environment, e.g. CATALOG_PATH or PORT.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("catalog-server version %s\n", version.Version)
	},
}

func init() {
	rootCmd.SetVersionTemplate("catalog-server version {{.Version}}\n")
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.Flags()
	flags.String("port", "", "Port to listen on (env PORT, default 8080)")
	flags.String("host", "", "Host to bind to (env HOST, default 0.0.0.0)")
	flags.String("catalog", "", "Path to the products JSON file (env CATALOG_PATH, default products.json)")
	flags.String("log-level", "", "debug, info, warn or error (env LOG_LEVEL, default info)")
	flags.String("config", "", "Optional config file, json/yaml/toml (env CONFIG_FILE)")

	bindings := map[string]string{
		config.KeyPort:        "port",
		config.KeyHost:        "host",
		config.KeyCatalogPath: "catalog",
		config.KeyLogLevel:    "log-level",
		config.KeyConfigFile:  "config",
	}
	for key, flag := range bindings {
		if err := settings.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}
