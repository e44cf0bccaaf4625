package betavideo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/granite-climbing/beta-api/internal/domain/betavideo"
	"github.com/granite-climbing/beta-api/internal/infrastructure/database/entities"
	"github.com/granite-climbing/beta-api/internal/utils/platformerrors"
)

// Repository handles beta video persistence.
type Repository struct {
	db *gorm.DB
}

var _ domain.Repository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListApproved(ctx context.Context, problemSlug string) ([]domain.BetaVideo, error) {
	var rows []entities.BetaVideo
	err := r.db.WithContext(ctx).
		Where("problem_slug = ? AND status = ?", problemSlug, string(domain.StatusApproved)).
		Order("submitted_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list beta videos",
			err,
		)
	}

	videos := make([]domain.BetaVideo, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, mapEntity(row))
	}
	return videos, nil
}

func (r *Repository) FindByPostID(ctx context.Context, problemSlug, postID string) (*domain.BetaVideo, error) {
	var entity entities.BetaVideo
	err := r.db.WithContext(ctx).
		Where("problem_slug = ? AND instagram_post_id = ?", problemSlug, postID).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find beta video by post id",
			err,
		)
	}
	video := mapEntity(entity)
	return &video, nil
}

func (r *Repository) Create(ctx context.Context, video *domain.BetaVideo) error {
	entity := entities.BetaVideo{
		ProblemSlug:     video.ProblemSlug,
		InstagramURL:    video.InstagramURL,
		InstagramPostID: video.InstagramPostID,
		ThumbnailURL:    video.ThumbnailURL,
		Status:          string(video.Status),
		SubmittedAt:     video.SubmittedAt,
	}
	err := r.db.WithContext(ctx).Create(&entity).Error
	if err != nil {
		// The unique index on (problem_slug, instagram_post_id) backs the
		// pre-insert existence check; a concurrent duplicate lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict,
				"Video already submitted for this problem",
				err,
			)
		}
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create beta video",
			err,
		)
	}
	video.ID = entity.ID
	return nil
}

func mapEntity(entity entities.BetaVideo) domain.BetaVideo {
	return domain.BetaVideo{
		ID:              entity.ID,
		ProblemSlug:     entity.ProblemSlug,
		InstagramURL:    entity.InstagramURL,
		InstagramPostID: entity.InstagramPostID,
		ThumbnailURL:    entity.ThumbnailURL,
		Status:          domain.Status(entity.Status),
		SubmittedAt:     entity.SubmittedAt,
	}
}
