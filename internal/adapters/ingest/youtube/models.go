package youtube

import (
	"bytes"
	"io"
)

// Video is the public metadata of one watch page
type Video struct {
	ID          string
	Title       string
	Description string
	ChannelID   string
	ChannelName string
}

func bytesReader(b []byte) io.Reader { return bytes.NewReader(b) }
