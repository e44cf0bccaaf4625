package hashtag

// MediaItem is one entry of a hashtag's recent media. It is rebuilt from the
// Graph API response on every fetch and never persisted.
type MediaItem struct {
	ID           string `json:"id"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Permalink    string `json:"permalink"`
	MediaType    string `json:"media_type"`
}
