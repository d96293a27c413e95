package module

import (
	"context"

	"backr/internal/adapters/ingest/youtube"
	"backr/internal/services/discovery/domain"
)

// videoSource adapts the youtube scraper to the discovery port
type videoSource struct {
	c *youtube.Client
}

func (v *videoSource) Search(ctx context.Context, query string, max int) ([]string, error) {
	return v.c.Search(ctx, query, max)
}

func (v *videoSource) ChannelVideos(ctx context.Context, channelID string, max int) ([]string, error) {
	return v.c.ChannelVideos(ctx, channelID, max)
}

func (v *videoSource) Video(ctx context.Context, id string) (domain.VideoMeta, error) {
	vid, err := v.c.Video(ctx, id)
	if err != nil {
		return domain.VideoMeta{}, err
	}
	return domain.VideoMeta{
		ID:          vid.ID,
		Title:       vid.Title,
		Description: vid.Description,
		ChannelID:   vid.ChannelID,
		ChannelName: vid.ChannelName,
	}, nil
}
