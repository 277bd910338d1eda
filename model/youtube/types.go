// Package youtube contains YouTube-specific data models
package youtube

import (
	"context"
	"time"
)

// ChannelInfo represents the descriptive and statistical metadata of a channel.
// CustomURL and Country carry "N/A" when the API omits them.
type ChannelInfo struct {
	ID              string
	Title           string
	Description     string
	CustomURL       string
	Country         string
	PublishedAt     time.Time
	SubscriberCount int64
	ViewCount       int64
	VideoCount      int64
}

// VideoRecord represents a single uploaded video as listed in the channel's
// uploads playlist. Records keep the API's return order.
type VideoRecord struct {
	ID          string
	Title       string
	Description string
	URL         string
	PublishedAt time.Time
}

// UploadsPage is one page of the uploads playlist. An empty NextPageToken
// means there are no further pages.
type UploadsPage struct {
	Videos        []*VideoRecord
	NextPageToken string
}

// WatchURL derives the public watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// Client defines the methods needed for YouTube API operations
type Client interface {
	// Connect establishes a connection to the YouTube API
	Connect(ctx context.Context) error

	// Disconnect closes the connection to the YouTube API
	Disconnect(ctx context.Context) error

	// ResolveChannelID turns a channel handle into a stable channel ID
	ResolveChannelID(ctx context.Context, handle string) (string, error)

	// GetChannelInfo retrieves information about a YouTube channel
	GetChannelInfo(ctx context.Context, channelID string) (*ChannelInfo, error)

	// GetUploadsPlaylistID resolves the ID of the channel's uploads playlist
	GetUploadsPlaylistID(ctx context.Context, channelID string) (string, error)

	// FetchUploadsPage fetches one page of the uploads playlist
	FetchUploadsPage(ctx context.Context, playlistID, pageToken string) (*UploadsPage, error)
}
