package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"webradar/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `	             _                   _
	__      ____| |__  _ __ __ _  __| | __ _ _ __
	\ \ /\ / / _' | '_ \| '__/ _' |/ _' |/ _' | '__|
	 \ V  V / (_| | |_) | | | (_| | (_| | (_| | |
	  \_/\_/ \___/|_.__/|_|  \__,_|\__,_|\__,_|_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "webradar",
	Short: "A public-web signal radar for names, companies and terms.",
	Long: LOGO + `webradar fans a search term out across open news feeds, Wikipedia,
Hacker News, Reddit, GitHub, Bluesky, Wikidata and court-system search,
merges and ranks what comes back, and prints or serves the result.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.webradar.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("proxy", "", "", "HTTP Proxy (Useful for debugging. Example: http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".webradar")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.webradar.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("github.token", "")
	viper.SetDefault("youtube.api_key", "")
	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("server.domain", "")
	viper.SetDefault("cache.ttl_minutes", 10)

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
