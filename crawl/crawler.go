// Package crawl wires channel resolution, uploads pagination and report
// writing into a single archive run.
package crawl

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/researchaccelerator-hub/youtube-archiver/common"
	youtubemodel "github.com/researchaccelerator-hub/youtube-archiver/model/youtube"
)

// ReportWriter renders the collected data to a file and returns its path.
type ReportWriter interface {
	Write(handle string, info *youtubemodel.ChannelInfo, videos []*youtubemodel.VideoRecord) (string, error)
}

// Archiver runs a complete archive of one channel.
type Archiver struct {
	client             youtubemodel.Client
	writer             ReportWriter
	includeChannelInfo bool
}

// NewArchiver creates a new archiver
func NewArchiver(client youtubemodel.Client, writer ReportWriter, includeChannelInfo bool) *Archiver {
	return &Archiver{
		client:             client,
		writer:             writer,
		includeChannelInfo: includeChannelInfo,
	}
}

// Run archives the uploads of the channel behind handle and returns the
// number of videos written. The channel ID is resolved exactly once; an
// empty channel skips file creation and reports zero.
func (a *Archiver) Run(ctx context.Context, handle string) (int, error) {
	log.Info().Str("handle", handle).Msg("Starting archive run")

	channelID, err := a.client.ResolveChannelID(ctx, handle)
	if err != nil {
		log.Error().Err(err).Str("handle", handle).Msg("Failed to resolve channel")
		return 0, err
	}

	var info *youtubemodel.ChannelInfo
	if a.includeChannelInfo {
		info, err = a.client.GetChannelInfo(ctx, channelID)
		if err != nil {
			log.Error().Err(err).Str("channel_id", channelID).Msg("Failed to get channel info")
			return 0, err
		}
	}

	playlistID, err := a.client.GetUploadsPlaylistID(ctx, channelID)
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("Failed to resolve uploads playlist")
		return 0, err
	}

	videos, truncated, err := a.CollectUploads(ctx, playlistID)
	if err != nil {
		return 0, err
	}

	if len(videos) == 0 {
		log.Info().Str("handle", handle).Msg("No videos found for this channel")
		return 0, nil
	}

	path, err := a.writer.Write(handle, info, videos)
	if err != nil {
		log.Error().Err(err).Str("handle", handle).Msg("Failed to write report")
		return 0, err
	}

	log.Info().
		Str("handle", handle).
		Str("channel_id", channelID).
		Str("path", path).
		Int("video_count", len(videos)).
		Bool("truncated", truncated).
		Msg("Archive run completed")

	return len(videos), nil
}

// CollectUploads walks the uploads playlist page by page, following the
// continuation token until it is absent. A failed page request terminates
// the walk early and keeps the records collected so far; truncated reports
// whether that happened. Malformed timestamps are the exception: they
// indicate an upstream contract violation and fail the whole collection.
func (a *Archiver) CollectUploads(ctx context.Context, playlistID string) ([]*youtubemodel.VideoRecord, bool, error) {
	var videos []*youtubemodel.VideoRecord
	pageToken := ""

	for pageNum := 1; ; pageNum++ {
		page, err := a.client.FetchUploadsPage(ctx, playlistID, pageToken)
		if err != nil {
			if errors.Is(err, common.ErrBadTimestamp) {
				return nil, false, err
			}

			log.Warn().
				Err(err).
				Str("playlist_id", playlistID).
				Int("page", pageNum).
				Int("videos_collected", len(videos)).
				Msg("Failed to fetch uploads page, keeping partial results")
			return videos, true, nil
		}

		videos = append(videos, page.Videos...)

		if page.NextPageToken == "" {
			return videos, false, nil
		}
		pageToken = page.NextPageToken
	}
}
