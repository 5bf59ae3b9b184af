package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"webradar/website/pkg/core"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webradar web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		devMode, _ := cmd.Flags().GetBool("dev")
		listenAddr, _ := cmd.Flags().GetString("listen")
		domain, _ := cmd.Flags().GetString("domain")
		proxy, _ := rootCmd.PersistentFlags().GetString("proxy")

		if listenAddr == "" {
			listenAddr = viper.GetString("server.listen")
		}
		if domain == "" {
			domain = viper.GetString("server.domain")
		}

		return core.Run(core.ServerConfig{
			DevMode:       devMode,
			ListenAddr:    listenAddr,
			Domain:        domain,
			Proxy:         proxy,
			CacheTTL:      time.Duration(viper.GetInt("cache.ttl_minutes")) * time.Minute,
			GitHubToken:   viper.GetString("github.token"),
			YouTubeAPIKey: viper.GetString("youtube.api_key"),
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolP("dev", "d", false, "Enable development mode (HTTP on localhost:7000)")
	serveCmd.Flags().String("listen", "", "HTTP listen address (default from config, :8080)")
	serveCmd.Flags().String("domain", "", "Public domain name (optional)")
}
