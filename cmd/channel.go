package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"webradar/pkg/platforms/youtube"
	"webradar/pkg/whttp"
)

// channelCmd represents the channel command
var channelCmd = &cobra.Command{
	Use:   "channel <url-or-id>",
	Short: "Resolve a YouTube channel and list its latest uploads",
	Long:  "Accepts a channel id, channel URL, @handle or /user/ URL and prints the upload feed.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		proxy, _ := rootCmd.PersistentFlags().GetString("proxy")
		limit, _ := cmd.Flags().GetInt("limit")

		apiKey, _ := cmd.Flags().GetString("api-key")
		if apiKey == "" {
			apiKey = viper.GetString("youtube.api_key")
		}

		// Channel resolution sits outside the scan path, so retries are fine here.
		client, err := whttp.NewResolverClient(proxy, 2)
		if err != nil {
			log.Fatal("Invalid Proxy String")
		}

		yt := youtube.New(client, apiKey)
		ctx := context.Background()

		channelID, err := yt.ResolveChannel(ctx, args[0])
		if err != nil {
			log.Fatal("Nao foi possivel resolver este canal: ", err)
		}

		feed, err := yt.ChannelFeed(ctx, channelID)
		if err != nil {
			log.Fatal("Falha ao carregar feed do canal: ", err)
		}

		if limit < 1 {
			limit = 1
		}
		if limit > 20 {
			limit = 20
		}
		videos := feed.Videos
		if len(videos) > limit {
			videos = videos[:limit]
		}

		fmt.Printf("%s (%s)\n%s\n", feed.ChannelTitle, feed.ChannelID, feed.ChannelURL)
		for _, video := range videos {
			fmt.Printf("- %s\n  %s %s\n", video.Title, printDate(video.Published), video.URL)
		}
	},
}

func init() {
	rootCmd.AddCommand(channelCmd)
	channelCmd.Flags().IntP("limit", "n", 8, "Maximum number of videos to print (1-20)")
	channelCmd.Flags().String("api-key", "", "YouTube Data API key for @handle resolution (optional)")
}
