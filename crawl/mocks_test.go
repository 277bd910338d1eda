package crawl

import (
	"context"
	"fmt"
	"time"

	youtubemodel "github.com/researchaccelerator-hub/youtube-archiver/model/youtube"
)

// pageResult is one canned answer for FetchUploadsPage.
type pageResult struct {
	page *youtubemodel.UploadsPage
	err  error
}

// MockClient implements youtubemodel.Client with canned responses.
type MockClient struct {
	resolveID  string
	resolveErr error

	info    *youtubemodel.ChannelInfo
	infoErr error

	playlistID  string
	playlistErr error

	pages []pageResult

	resolveCalls int
	infoCalls    int
	fetchCalls   int
	fetchTokens  []string
}

func (m *MockClient) Connect(ctx context.Context) error    { return nil }
func (m *MockClient) Disconnect(ctx context.Context) error { return nil }

func (m *MockClient) ResolveChannelID(ctx context.Context, handle string) (string, error) {
	m.resolveCalls++
	if m.resolveErr != nil {
		return "", m.resolveErr
	}
	return m.resolveID, nil
}

func (m *MockClient) GetChannelInfo(ctx context.Context, channelID string) (*youtubemodel.ChannelInfo, error) {
	m.infoCalls++
	if m.infoErr != nil {
		return nil, m.infoErr
	}
	return m.info, nil
}

func (m *MockClient) GetUploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	if m.playlistErr != nil {
		return "", m.playlistErr
	}
	return m.playlistID, nil
}

func (m *MockClient) FetchUploadsPage(ctx context.Context, playlistID, pageToken string) (*youtubemodel.UploadsPage, error) {
	m.fetchTokens = append(m.fetchTokens, pageToken)
	if m.fetchCalls >= len(m.pages) {
		return nil, fmt.Errorf("unexpected page request %d", m.fetchCalls+1)
	}
	result := m.pages[m.fetchCalls]
	m.fetchCalls++
	return result.page, result.err
}

// reset clears call tracking so the same canned data can be replayed.
func (m *MockClient) reset() {
	m.resolveCalls = 0
	m.infoCalls = 0
	m.fetchCalls = 0
	m.fetchTokens = nil
}

// makeVideos builds n sequential video records, numbered from start.
func makeVideos(start, n int) []*youtubemodel.VideoRecord {
	videos := make([]*youtubemodel.VideoRecord, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("vid%04d", start+i)
		videos = append(videos, &youtubemodel.VideoRecord{
			ID:          id,
			Title:       fmt.Sprintf("Video %d", start+i),
			Description: fmt.Sprintf("Description of video %d", start+i),
			URL:         youtubemodel.WatchURL(id),
			PublishedAt: time.Date(2023, time.May, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(start+i) * time.Hour),
		})
	}
	return videos
}
