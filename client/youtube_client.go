// Package client implements the YouTube Data API client used by the archiver
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/researchaccelerator-hub/youtube-archiver/common"
	youtubemodel "github.com/researchaccelerator-hub/youtube-archiver/model/youtube"
)

// maxPageSize is the upstream maximum for playlistItems.list.
const maxPageSize = 50

// missingFieldSentinel is reported for optional channel fields the API omits.
const missingFieldSentinel = "N/A"

// resolveStrategy is one ordered attempt at turning a handle into a channel
// ID. It reports a miss instead of an error; lookup failures are treated as
// "try the next strategy".
type resolveStrategy struct {
	name string
	fn   func(ctx context.Context, handle string) (string, bool)
}

// YouTubeDataClient implements the youtube.Client interface on top of the
// YouTube Data API v3.
type YouTubeDataClient struct {
	service    *ytapi.Service
	apiKey     string
	timeout    time.Duration
	limiter    *rate.Limiter
	strategies []resolveStrategy
}

var _ youtubemodel.Client = (*YouTubeDataClient)(nil)

// NewYouTubeDataClient creates a new YouTube data client
func NewYouTubeDataClient(apiKey string, timeout time.Duration) (*YouTubeDataClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &YouTubeDataClient{
		apiKey:  apiKey,
		timeout: timeout,
		// Stays well inside the default per-minute quota.
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
	}

	c.strategies = []resolveStrategy{
		{name: "legacy_username", fn: c.lookupByUsername},
		{name: "channel_search", fn: c.lookupBySearch},
	}

	return c, nil
}

// Connect establishes a connection to the YouTube API
func (c *YouTubeDataClient) Connect(ctx context.Context) error {
	log.Info().Msg("Connecting to YouTube API")

	httpClient := &http.Client{
		Timeout: c.timeout,
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(c.apiKey), option.WithHTTPClient(httpClient))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create YouTube service")
		return fmt.Errorf("failed to create YouTube service: %w", err)
	}

	c.service = service
	log.Info().Msg("Connected to YouTube API successfully")
	return nil
}

// Disconnect closes the connection to the YouTube API
func (c *YouTubeDataClient) Disconnect(ctx context.Context) error {
	// No explicit disconnect needed for the YouTube API client
	c.service = nil
	return nil
}

// ResolveChannelID turns a channel handle into a stable channel ID by
// trying each resolution strategy in order and short-circuiting on the
// first hit. The direct-lookup endpoint only serves legacy usernames, not
// modern handles, so a search fallback is required; search may return a
// wrong channel for ambiguous handles.
func (c *YouTubeDataClient) ResolveChannelID(ctx context.Context, handle string) (string, error) {
	if c.service == nil {
		return "", ErrNotConnected
	}

	for _, strategy := range c.strategies {
		id, ok := strategy.fn(ctx, handle)
		if !ok {
			log.Debug().Str("handle", handle).Str("strategy", strategy.name).Msg("Resolution strategy missed")
			continue
		}

		log.Info().
			Str("handle", handle).
			Str("channel_id", id).
			Str("strategy", strategy.name).
			Msg("Resolved channel ID")
		return id, nil
	}

	return "", fmt.Errorf("%w: %s", ErrChannelNotFound, handle)
}

// lookupByUsername attempts an exact lookup against the legacy-username
// endpoint.
func (c *YouTubeDataClient) lookupByUsername(ctx context.Context, handle string) (string, bool) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", false
	}

	response, err := c.service.Channels.List([]string{"id"}).
		ForUsername(handle).
		Context(ctx).
		Do()
	if err != nil {
		log.Debug().Err(err).Str("handle", handle).Msg("Legacy username lookup failed")
		return "", false
	}

	if len(response.Items) == 0 {
		return "", false
	}

	return response.Items[0].Id, true
}

// lookupBySearch runs a fuzzy channel search with the handle as query text
// and takes the first hit.
func (c *YouTubeDataClient) lookupBySearch(ctx context.Context, handle string) (string, bool) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", false
	}

	response, err := c.service.Search.List([]string{"snippet"}).
		Q(handle).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		log.Debug().Err(err).Str("handle", handle).Msg("Channel search failed")
		return "", false
	}

	if len(response.Items) == 0 || response.Items[0].Snippet == nil {
		return "", false
	}

	return response.Items[0].Snippet.ChannelId, true
}

// GetChannelInfo retrieves information about a YouTube channel
func (c *YouTubeDataClient) GetChannelInfo(ctx context.Context, channelID string) (*youtubemodel.ChannelInfo, error) {
	if c.service == nil {
		return nil, ErrNotConnected
	}

	log.Info().Str("channel_id", channelID).Msg("Fetching YouTube channel info")

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	response, err := c.service.Channels.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(channelID).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("Failed to get channel from YouTube API")
		return nil, fmt.Errorf("failed to get channel from YouTube API: %w", err)
	}

	if len(response.Items) == 0 {
		log.Error().Str("channel_id", channelID).Msg("Channel not found on YouTube")
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channelID)
	}

	item := response.Items[0]

	info := &youtubemodel.ChannelInfo{
		ID:        item.Id,
		CustomURL: missingFieldSentinel,
		Country:   missingFieldSentinel,
	}

	if item.Snippet != nil {
		info.Title = item.Snippet.Title
		info.Description = item.Snippet.Description
		if item.Snippet.CustomUrl != "" {
			info.CustomURL = item.Snippet.CustomUrl
		}
		if item.Snippet.Country != "" {
			info.Country = item.Snippet.Country
		}

		publishedAt, err := common.ParsePublishedAt(item.Snippet.PublishedAt)
		if err != nil {
			log.Warn().Err(err).Str("channel_id", channelID).Msg("Failed to parse channel creation date")
		} else {
			info.PublishedAt = publishedAt
		}
	}

	if item.Statistics != nil {
		info.SubscriberCount = int64(item.Statistics.SubscriberCount)
		info.ViewCount = int64(item.Statistics.ViewCount)
		info.VideoCount = int64(item.Statistics.VideoCount)
	}

	log.Info().
		Str("channel_id", info.ID).
		Str("title", info.Title).
		Int64("subscribers", info.SubscriberCount).
		Int64("view_count", info.ViewCount).
		Int64("video_count", info.VideoCount).
		Msg("YouTube channel info retrieved")

	return info, nil
}

// GetUploadsPlaylistID resolves the ID of the channel's uploads playlist.
func (c *YouTubeDataClient) GetUploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	if c.service == nil {
		return "", ErrNotConnected
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	response, err := c.service.Channels.List([]string{"contentDetails"}).
		Id(channelID).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("Failed to get channel from YouTube API")
		return "", fmt.Errorf("failed to get channel from YouTube API: %w", err)
	}

	if len(response.Items) == 0 || response.Items[0].ContentDetails == nil ||
		response.Items[0].ContentDetails.RelatedPlaylists == nil ||
		response.Items[0].ContentDetails.RelatedPlaylists.Uploads == "" {
		log.Error().Str("channel_id", channelID).Msg("No uploads playlist for channel")
		return "", fmt.Errorf("%w: %s", ErrNoUploadsPlaylist, channelID)
	}

	playlistID := response.Items[0].ContentDetails.RelatedPlaylists.Uploads
	log.Info().Str("channel_id", channelID).Str("playlist_id", playlistID).Msg("Resolved uploads playlist")
	return playlistID, nil
}

// FetchUploadsPage fetches one page of up to 50 items from the uploads
// playlist. A malformed publish timestamp fails the call; it signals an
// upstream contract violation rather than a transient fault.
func (c *YouTubeDataClient) FetchUploadsPage(ctx context.Context, playlistID, pageToken string) (*youtubemodel.UploadsPage, error) {
	if c.service == nil {
		return nil, ErrNotConnected
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	call := c.service.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(maxPageSize).
		Context(ctx)

	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist items: %w", err)
	}

	page := &youtubemodel.UploadsPage{
		Videos:        make([]*youtubemodel.VideoRecord, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}

	for _, item := range response.Items {
		if item.Snippet == nil || item.Snippet.ResourceId == nil {
			log.Warn().Str("playlist_id", playlistID).Msg("Skipping playlist item without snippet")
			continue
		}

		videoID := item.Snippet.ResourceId.VideoId
		if videoID == "" || item.Snippet.Title == "" {
			log.Warn().Str("playlist_id", playlistID).Str("video_id", videoID).Msg("Skipping playlist item without ID or title")
			continue
		}

		publishedAt, err := common.ParsePublishedAt(item.Snippet.PublishedAt)
		if err != nil {
			return nil, err
		}

		page.Videos = append(page.Videos, &youtubemodel.VideoRecord{
			ID:          videoID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			URL:         youtubemodel.WatchURL(videoID),
			PublishedAt: publishedAt,
		})
	}

	log.Debug().
		Str("playlist_id", playlistID).
		Int("item_count", len(page.Videos)).
		Bool("has_next_page", page.NextPageToken != "").
		Msg("Fetched uploads page")

	return page, nil
}
