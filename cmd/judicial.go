package cmd

import (
	"context"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"webradar/pkg/scan"
	"webradar/pkg/whttp"
)

// judicialCmd represents the judicial command
var judicialCmd = &cobra.Command{
	Use:   "judicial <term>",
	Short: "Search court-system sources for a term",
	Long:  "Runs only the judicial surface: site-scoped search queries filtered by a court-system keyword gate.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		term := strings.Join(args, " ")
		proxy, _ := rootCmd.PersistentFlags().GetString("proxy")
		verbose, _ := cmd.Flags().GetBool("verbose")

		client, err := whttp.NewClient(proxy)
		if err != nil {
			log.Fatal("Invalid Proxy String")
		}

		scanner := scan.NewScanner(client, "")
		scanner.ScanJudicial(context.Background(), term, &printerSink{verbose: verbose})
	},
}

func init() {
	rootCmd.AddCommand(judicialCmd)
	judicialCmd.Flags().BoolP("verbose", "v", false, "Print progress lines")
}
