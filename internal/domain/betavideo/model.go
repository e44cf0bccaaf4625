package betavideo

import "time"

// Status is the moderation state of a submission. Submissions are currently
// auto-approved; pending and rejected exist in the vocabulary but nothing
// writes them.
type Status string

const (
	StatusApproved Status = "approved"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

// BetaVideo is a user-submitted link to an externally hosted video showing
// how to climb a specific problem.
type BetaVideo struct {
	ID              int64     `json:"id"`
	ProblemSlug     string    `json:"problem_slug"`
	InstagramURL    string    `json:"instagram_url"`
	InstagramPostID string    `json:"instagram_post_id"`
	ThumbnailURL    string    `json:"thumbnail_url,omitempty"`
	Status          Status    `json:"status"`
	SubmittedAt     time.Time `json:"submitted_at"`
}
