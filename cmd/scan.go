package cmd

import (
	"context"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"webradar/pkg/scan"
	"webradar/pkg/whttp"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <term>",
	Short: "Run a full radar scan for a term",
	Long:  "Fans the term out across all source categories and prints the merged results.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		term := strings.Join(args, " ")
		proxy, _ := rootCmd.PersistentFlags().GetString("proxy")
		verbose, _ := cmd.Flags().GetBool("verbose")

		token, _ := cmd.Flags().GetString("token")
		if token == "" {
			token = viper.GetString("github.token")
		}

		client, err := whttp.NewClient(proxy)
		if err != nil {
			log.Fatal("Invalid Proxy String")
		}

		scanner := scan.NewScanner(client, token)
		scanner.Scan(context.Background(), term, &printerSink{verbose: verbose})
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringP("token", "t", "", "GitHub API token for profile enrichment (optional)")
	scanCmd.Flags().BoolP("verbose", "v", false, "Print per-source progress lines")
}
