// Package common holds shared helpers for handle extraction, run
// identifiers and timestamp parsing.
package common

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoHandle indicates the channel URL carries no @handle token.
	ErrNoHandle = errors.New("channel URL contains no @handle")

	// ErrBadTimestamp indicates an upstream publish timestamp that does not
	// match the documented format even after fractional-second truncation.
	ErrBadTimestamp = errors.New("malformed publish timestamp")
)

// publishedAtLayout is the fixed UTC layout the Data API uses for
// publishedAt fields.
const publishedAtLayout = "2006-01-02T15:04:05Z"

// GenerateRunID generates a unique identifier used to correlate all log
// lines of a single archive run.
func GenerateRunID() string {
	return uuid.NewString()
}

// ExtractHandle pulls the channel handle out of a URL-like string. The
// handle is everything after the first '@', trimmed at the next path or
// query separator, e.g. "https://www.youtube.com/@somechannel/videos"
// yields "somechannel".
func ExtractHandle(channelURL string) (string, error) {
	_, after, found := strings.Cut(channelURL, "@")
	if !found {
		return "", fmt.Errorf("%w: %q", ErrNoHandle, channelURL)
	}

	handle := after
	if i := strings.IndexAny(after, "/?"); i >= 0 {
		handle = after[:i]
	}

	if handle == "" {
		return "", fmt.Errorf("%w: %q", ErrNoHandle, channelURL)
	}

	return handle, nil
}

// ParsePublishedAt parses an upstream publish timestamp. Timestamps are
// always UTC in the form "2006-01-02T15:04:05Z", but some responses append
// a fractional-seconds component inconsistently; those are truncated at the
// first '.' before parsing. Returns ErrBadTimestamp when the truncated form
// still does not parse.
func ParsePublishedAt(raw string) (time.Time, error) {
	value := raw
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		value = raw[:i] + "Z"
	}

	t, err := time.Parse(publishedAtLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, raw)
	}

	return t, nil
}
