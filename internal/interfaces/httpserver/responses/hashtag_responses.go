package responses

import (
	"github.com/granite-climbing/beta-api/internal/domain/hashtag"
)

// HashtagMediaResponse wraps the recent media for a hashtag search.
type HashtagMediaResponse struct {
	Data []hashtag.MediaItem `json:"data"`
}
