package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/researchaccelerator-hub/youtube-archiver/client"
	"github.com/researchaccelerator-hub/youtube-archiver/common"
	"github.com/researchaccelerator-hub/youtube-archiver/config"
	"github.com/researchaccelerator-hub/youtube-archiver/crawl"
	"github.com/researchaccelerator-hub/youtube-archiver/report"
)

var (
	flagURL         string
	flagOutputDir   string
	flagTimeout     time.Duration
	flagChannelInfo bool
)

var rootCmd = &cobra.Command{
	Use:   "yt-archiver",
	Short: "Archive the uploads of a YouTube channel to a text report",
	Long: `yt-archiver resolves a YouTube channel handle, fetches the channel's
metadata and complete uploads list via the YouTube Data API, and writes a
human-readable report to <output-dir>/<handle>_videos.txt.

Configuration comes from the environment (YOUTUBE_API_KEY,
YOUTUBE_CHANNEL_URL, ARCHIVER_OUTPUT_DIR); flags override it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runArchive,
}

func init() {
	rootCmd.Flags().StringVar(&flagURL, "url", "", "Channel URL or @handle (overrides YOUTUBE_CHANNEL_URL)")
	rootCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Directory to write the report to (overrides ARCHIVER_OUTPUT_DIR)")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "HTTP timeout for API calls (overrides ARCHIVER_TIMEOUT)")
	rootCmd.Flags().BoolVar(&flagChannelInfo, "channel-info", true, "Include the channel header block in the report")
}

func runArchive(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("url") {
		cfg.ChannelURL = flagURL
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = flagOutputDir
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if cmd.Flags().Changed("channel-info") {
		cfg.IncludeChannelInfo = flagChannelInfo
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	handle, err := common.ExtractHandle(cfg.ChannelURL)
	if err != nil {
		return err
	}

	runID := common.GenerateRunID()
	log.Logger = log.With().Str("run_id", runID).Logger()
	log.Info().Str("handle", handle).Msg("Starting archiver")

	ctx := context.Background()

	yt, err := client.NewYouTubeDataClient(cfg.APIKey, cfg.Timeout)
	if err != nil {
		return err
	}

	if err := yt.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := yt.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Error disconnecting YouTube client")
		}
	}()

	archiver := crawl.NewArchiver(yt, report.NewWriter(cfg.OutputDir), cfg.IncludeChannelInfo)

	count, err := archiver.Run(ctx, handle)
	if err != nil {
		return err
	}

	if count > 0 {
		fmt.Printf("Successfully saved information for %d videos.\n", count)
	}

	return nil
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Archive run failed")
		fmt.Fprintf(os.Stderr, "An error occurred: %s\n", err)
		os.Exit(1)
	}
}
