// Package report renders the collected channel data to a text report.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	youtubemodel "github.com/researchaccelerator-hub/youtube-archiver/model/youtube"
)

const (
	headerSeparator = "=================================================="
	videoSeparator  = "--------------------------------------------------"
	dateLayout      = "January 02, 2006"
)

// Writer renders archive reports into an output directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a report writer rooted at outputDir.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// PathFor returns the report path for a channel handle.
func (w *Writer) PathFor(handle string) string {
	return filepath.Join(w.outputDir, handle+"_videos.txt")
}

// Write renders the report for a channel and writes it to
// <outputDir>/<handle>_videos.txt, overwriting any previous run. The
// channel header block is included when info is non-nil. Returns the path
// of the written file.
func (w *Writer) Write(handle string, info *youtubemodel.ChannelInfo, videos []*youtubemodel.VideoRecord) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var b strings.Builder

	if info != nil {
		writeChannelHeader(&b, handle, info)
	} else {
		b.WriteString("Videos from " + handle + "\n")
		b.WriteString(headerSeparator + "\n\n")
	}

	for _, video := range videos {
		writeVideoBlock(&b, video)
	}

	path := w.PathFor(handle)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	log.Info().
		Str("path", path).
		Int("video_count", len(videos)).
		Msg("Report written")

	return path, nil
}

func writeChannelHeader(b *strings.Builder, handle string, info *youtubemodel.ChannelInfo) {
	b.WriteString(info.Title + "\n")
	b.WriteString(headerSeparator + "\n")
	b.WriteString("URL: https://www.youtube.com/@" + handle + "\n")
	b.WriteString("Created: " + info.PublishedAt.Format(dateLayout) + "\n")
	b.WriteString("Subscribers: " + humanize.Comma(info.SubscriberCount) + "\n")
	b.WriteString("Views: " + humanize.Comma(info.ViewCount) + "\n")
	b.WriteString("Videos: " + humanize.Comma(info.VideoCount) + "\n")
	b.WriteString("Country: " + info.Country + "\n")
	b.WriteString("Description:\n" + info.Description + "\n")
	b.WriteString("\n")
	b.WriteString(headerSeparator + "\n")
	b.WriteString("Videos\n")
	b.WriteString(headerSeparator + "\n\n")
}

func writeVideoBlock(b *strings.Builder, video *youtubemodel.VideoRecord) {
	b.WriteString("Title: " + video.Title + "\n")
	b.WriteString("Posted: " + video.PublishedAt.Format(dateLayout) + "\n")
	b.WriteString("URL: " + video.URL + "\n")
	b.WriteString("Description:\n" + video.Description + "\n")
	b.WriteString(videoSeparator + "\n\n")
}
