package requests

// SubmitBetaVideoRequest is the POST /beta-videos payload. Field names match
// what the site UI sends.
type SubmitBetaVideoRequest struct {
	ProblemSlug  string `json:"problemSlug"`
	InstagramURL string `json:"instagramUrl"`
}
