package betavideo

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/granite-climbing/beta-api/internal/infrastructure/metrics"
	"github.com/granite-climbing/beta-api/internal/utils/igurl"
	"github.com/granite-climbing/beta-api/internal/utils/platformerrors"
)

// Repository defines persistence operations needed by the service.
type Repository interface {
	ListApproved(ctx context.Context, problemSlug string) ([]BetaVideo, error)
	FindByPostID(ctx context.Context, problemSlug, postID string) (*BetaVideo, error)
	Create(ctx context.Context, video *BetaVideo) error
}

// ThumbnailFetcher resolves a public thumbnail for an Instagram post URL.
type ThumbnailFetcher interface {
	Thumbnail(ctx context.Context, instagramURL string) (string, error)
}

// Service manages beta video submissions.
type Service struct {
	repo   Repository
	thumbs ThumbnailFetcher
	log    zerolog.Logger
}

func NewService(repo Repository, thumbs ThumbnailFetcher, log zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		thumbs: thumbs,
		log:    log.With().Str("component", "betavideo-service").Logger(),
	}
}

// ListApproved returns the approved submissions for a problem, newest first.
func (s *Service) ListApproved(ctx context.Context, problemSlug string) ([]BetaVideo, error) {
	if problemSlug == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "Missing problem parameter", nil)
	}
	return s.repo.ListApproved(ctx, problemSlug)
}

// Submit validates and stores a new beta video link. Submitting the same post
// for the same problem twice is rejected with a conflict, not merged.
func (s *Service) Submit(ctx context.Context, problemSlug, instagramURL string) (*BetaVideo, error) {
	if problemSlug == "" || instagramURL == "" {
		metrics.RecordSubmission("invalid")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "Missing required fields", nil)
	}

	postID, ok := igurl.ExtractPostID(instagramURL)
	if !ok {
		metrics.RecordSubmission("invalid")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "Invalid Instagram URL format", nil)
	}

	existing, err := s.repo.FindByPostID(ctx, problemSlug, postID)
	if err != nil {
		metrics.RecordSubmission("error")
		return nil, err
	}
	if existing != nil {
		metrics.RecordSubmission("duplicate")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeConflict, "Video already submitted for this problem", nil)
	}

	// Thumbnail enrichment is cosmetic; a failed fetch must not fail the
	// submission.
	thumbnailURL, err := s.thumbs.Thumbnail(ctx, instagramURL)
	if err != nil {
		s.log.Warn().Err(err).Str("url", instagramURL).Msg("thumbnail fetch failed, continuing without it")
		thumbnailURL = ""
	}

	video := &BetaVideo{
		ProblemSlug:     problemSlug,
		InstagramURL:    instagramURL,
		InstagramPostID: postID,
		ThumbnailURL:    thumbnailURL,
		Status:          StatusApproved,
		SubmittedAt:     time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, video); err != nil {
		if platformerrors.IsType(err, platformerrors.ErrorTypeConflict) {
			metrics.RecordSubmission("duplicate")
		} else {
			metrics.RecordSubmission("error")
		}
		return nil, err
	}

	metrics.RecordSubmission("accepted")
	return video, nil
}
