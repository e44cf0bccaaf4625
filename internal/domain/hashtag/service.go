package hashtag

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/granite-climbing/beta-api/internal/config"
	"github.com/granite-climbing/beta-api/internal/infrastructure/metrics"
)

// Provider performs the outbound Graph API calls.
//
// LookupHashtag returns an empty identifier when the provider has no match
// for the tag, including when the upstream answers a non-2xx status; only
// transport-level failures surface as errors. RecentMedia follows the same
// convention: a non-2xx listing yields a nil slice and nil error.
type Provider interface {
	LookupHashtag(ctx context.Context, tag string) (string, error)
	RecentMedia(ctx context.Context, hashtagID string, limit int) ([]MediaItem, error)
}

// IDCache stores resolved hashtag identifiers for the freshness window.
type IDCache interface {
	Get(tag string) (string, bool)
	Put(tag, id string)
}

// Service resolves hashtags and fetches their recent media.
type Service struct {
	cfg      *config.Config
	provider Provider
	cache    IDCache
	log      zerolog.Logger
}

func NewService(cfg *config.Config, provider Provider, cache IDCache, log zerolog.Logger) *Service {
	return &Service{
		cfg:      cfg,
		provider: provider,
		cache:    cache,
		log:      log.With().Str("component", "hashtag-service").Logger(),
	}
}

// Resolve maps a tag to its Graph API identifier. An empty identifier with a
// nil error means the tag is unknown upstream; unresolved tags are not
// cached, so they are retried on the next call.
func (s *Service) Resolve(ctx context.Context, tag string) (string, error) {
	if id, ok := s.cache.Get(tag); ok {
		metrics.RecordCacheLookup(true)
		return id, nil
	}
	metrics.RecordCacheLookup(false)

	id, err := s.provider.LookupHashtag(ctx, tag)
	if err != nil {
		return "", err
	}
	if id == "" {
		s.log.Debug().Str("tag", tag).Msg("hashtag not found upstream")
		return "", nil
	}

	s.cache.Put(tag, id)
	return id, nil
}

// RecentMedia returns the first page of recent media for a tag. An
// unresolvable tag or a non-2xx listing response degrades to an empty slice;
// only transport failures are reported as errors.
func (s *Service) RecentMedia(ctx context.Context, tag string) ([]MediaItem, error) {
	id, err := s.Resolve(ctx, tag)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return []MediaItem{}, nil
	}

	items, err := s.provider.RecentMedia(ctx, id, s.cfg.MediaPageLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []MediaItem{}, nil
	}
	return items, nil
}
