// Package igurl extracts Instagram post identifiers from share URLs.
package igurl

import "regexp"

// Matches both post and reel permalinks:
//   - https://www.instagram.com/p/ABC123/
//   - https://instagram.com/p/ABC123/
//   - https://www.instagram.com/reel/ABC123/
var postPattern = regexp.MustCompile(`instagram\.com/(p|reel)/([A-Za-z0-9_-]+)`)

// ExtractPostID returns the post identifier embedded in an Instagram URL.
// The second return value is false when the URL does not look like an
// Instagram post or reel link.
func ExtractPostID(rawURL string) (string, bool) {
	match := postPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return "", false
	}
	return match[2], true
}
