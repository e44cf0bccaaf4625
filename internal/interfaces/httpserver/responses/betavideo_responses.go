package responses

import (
	"time"

	"github.com/granite-climbing/beta-api/internal/domain/betavideo"
)

// BetaVideoResponse is one submission in a list response.
type BetaVideoResponse struct {
	ID           int64     `json:"id"`
	ProblemSlug  string    `json:"problem_slug"`
	InstagramURL string    `json:"instagram_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// ListBetaVideosResponse wraps the approved submissions for a problem.
type ListBetaVideosResponse struct {
	Videos []BetaVideoResponse `json:"videos"`
}

// BuildListBetaVideosResponse creates the list payload from domain objects.
func BuildListBetaVideosResponse(videos []betavideo.BetaVideo) ListBetaVideosResponse {
	out := make([]BetaVideoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, BetaVideoResponse{
			ID:           v.ID,
			ProblemSlug:  v.ProblemSlug,
			InstagramURL: v.InstagramURL,
			ThumbnailURL: v.ThumbnailURL,
			Status:       string(v.Status),
			SubmittedAt:  v.SubmittedAt,
		})
	}
	return ListBetaVideosResponse{Videos: out}
}

// SubmitBetaVideoResponse acknowledges an accepted submission.
type SubmitBetaVideoResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}
