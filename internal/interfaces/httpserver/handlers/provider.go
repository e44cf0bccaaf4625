package handlers

import (
	"github.com/rs/zerolog"

	"github.com/granite-climbing/beta-api/internal/config"
	"github.com/granite-climbing/beta-api/internal/domain/betavideo"
	"github.com/granite-climbing/beta-api/internal/domain/hashtag"
)

// Provider wires HTTP handlers.
type Provider struct {
	Hashtag    *HashtagHandler
	BetaVideos *BetaVideoHandler
}

func NewProvider(cfg *config.Config, hashtagService *hashtag.Service, betaVideoService *betavideo.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Hashtag:    NewHashtagHandler(cfg, hashtagService, log),
		BetaVideos: NewBetaVideoHandler(betaVideoService, log),
	}
}
