package domain

import "context"

// VideoSource lists and hydrates candidate videos
type VideoSource interface {
	Search(ctx context.Context, query string, max int) ([]string, error)
	ChannelVideos(ctx context.Context, channelID string, max int) ([]string, error)
	Video(ctx context.Context, id string) (VideoMeta, error)
}

// TranscriptSource fetches spoken-word text for a video. A missing
// transcript is an error the runner treats as non-fatal
type TranscriptSource interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

// SponsorSource reports whether a video carries known sponsor segments
type SponsorSource interface {
	Sponsored(ctx context.Context, videoID string) (bool, error)
}

// RunnerPort executes discovery runs
type RunnerPort interface {
	Run(ctx context.Context, in RunInput) (Stats, error)
}
