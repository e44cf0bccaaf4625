package entities

import "time"

// BetaVideo represents a persisted beta video submission. The composite
// unique index enforces at most one row per (problem, post) pair at the
// storage layer, so concurrent duplicate submissions cannot both land.
type BetaVideo struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	ProblemSlug     string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_beta_videos_problem_post"`
	InstagramURL    string    `gorm:"type:varchar(255);not null"`
	InstagramPostID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_beta_videos_problem_post"`
	ThumbnailURL    string    `gorm:"type:varchar(512)"`
	Status          string    `gorm:"type:varchar(16);not null;index"`
	SubmittedAt     time.Time `gorm:"not null;index"`
}

func (BetaVideo) TableName() string {
	return "beta_videos"
}
