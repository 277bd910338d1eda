package client

import "errors"

var (
	// ErrChannelNotFound indicates that no resolution strategy produced a
	// channel ID, or that a resolved ID yields no channel.
	ErrChannelNotFound = errors.New("channel not found on YouTube")

	// ErrNoUploadsPlaylist indicates the channel has no resolvable uploads
	// playlist.
	ErrNoUploadsPlaylist = errors.New("channel has no uploads playlist")

	// ErrNotConnected indicates an API call was attempted before Connect.
	ErrNotConnected = errors.New("YouTube client not connected")
)
