// Package graphapi talks to the Instagram Graph API and the public oEmbed
// endpoint. The access token never leaves this process; the static site goes
// through this service instead of calling Instagram directly.
package graphapi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/granite-climbing/beta-api/internal/config"
	"github.com/granite-climbing/beta-api/internal/domain/betavideo"
	"github.com/granite-climbing/beta-api/internal/domain/hashtag"
	"github.com/granite-climbing/beta-api/internal/infrastructure/metrics"
)

const mediaFields = "id,media_url,thumbnail_url,permalink,media_type"

// Client implements the Graph API calls behind the hashtag and beta video
// services.
type Client struct {
	httpClient  *resty.Client
	baseURL     string
	oembedURL   string
	accessToken string
	userID      string
	log         zerolog.Logger
}

var (
	_ hashtag.Provider           = (*Client)(nil)
	_ betavideo.ThumbnailFetcher = (*Client)(nil)
)

// NewClient creates a Graph API client from the service configuration.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	httpClient := resty.New().
		SetTimeout(cfg.RemoteFetchTimeout).
		SetHeader("User-Agent", "granite-beta-api/1.0")

	return &Client{
		httpClient:  httpClient,
		baseURL:     cfg.GraphAPIBaseURL,
		oembedURL:   cfg.OEmbedBaseURL,
		accessToken: cfg.InstagramAccessToken,
		userID:      cfg.InstagramUserID,
		log:         log.With().Str("component", "graphapi-client").Logger(),
	}
}

type hashtagSearchResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

type recentMediaResponse struct {
	Data []struct {
		ID           string `json:"id"`
		MediaURL     string `json:"media_url"`
		ThumbnailURL string `json:"thumbnail_url"`
		Permalink    string `json:"permalink"`
		MediaType    string `json:"media_type"`
	} `json:"data"`
}

type oembedResponse struct {
	ThumbnailURL string `json:"thumbnail_url"`
}

// LookupHashtag resolves a tag to its opaque Graph API identifier. An empty
// result set or a non-2xx response yields an empty identifier and nil error.
func (c *Client) LookupHashtag(ctx context.Context, tag string) (string, error) {
	started := time.Now()
	var result hashtagSearchResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":            tag,
			"user_id":      c.userID,
			"access_token": c.accessToken,
		}).
		SetResult(&result).
		Get(c.baseURL + "/ig_hashtag_search")

	if err != nil {
		metrics.RecordGraphCall("hashtag_search", "transport_error", time.Since(started).Seconds())
		return "", fmt.Errorf("query hashtag search: %w", err)
	}
	if resp.IsError() {
		metrics.RecordGraphCall("hashtag_search", strconv.Itoa(resp.StatusCode()), time.Since(started).Seconds())
		c.log.Debug().Str("tag", tag).Int("status", resp.StatusCode()).Msg("hashtag search returned non-success status")
		return "", nil
	}
	metrics.RecordGraphCall("hashtag_search", strconv.Itoa(resp.StatusCode()), time.Since(started).Seconds())

	if len(result.Data) == 0 {
		return "", nil
	}
	return result.Data[0].ID, nil
}

// RecentMedia fetches the first page of recent media for a resolved hashtag.
// A non-2xx response yields a nil slice and nil error.
func (c *Client) RecentMedia(ctx context.Context, hashtagID string, limit int) ([]hashtag.MediaItem, error) {
	started := time.Now()
	var result recentMediaResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"user_id":      c.userID,
			"fields":       mediaFields,
			"limit":        strconv.Itoa(limit),
			"access_token": c.accessToken,
		}).
		SetResult(&result).
		Get(c.baseURL + "/" + hashtagID + "/recent_media")

	if err != nil {
		metrics.RecordGraphCall("recent_media", "transport_error", time.Since(started).Seconds())
		return nil, fmt.Errorf("query recent media: %w", err)
	}
	if resp.IsError() {
		metrics.RecordGraphCall("recent_media", strconv.Itoa(resp.StatusCode()), time.Since(started).Seconds())
		c.log.Debug().Str("hashtag_id", hashtagID).Int("status", resp.StatusCode()).Msg("recent media returned non-success status")
		return nil, nil
	}
	metrics.RecordGraphCall("recent_media", strconv.Itoa(resp.StatusCode()), time.Since(started).Seconds())

	items := make([]hashtag.MediaItem, 0, len(result.Data))
	for _, record := range result.Data {
		items = append(items, hashtag.MediaItem{
			ID:           record.ID,
			MediaURL:     record.MediaURL,
			ThumbnailURL: record.ThumbnailURL,
			Permalink:    record.Permalink,
			MediaType:    record.MediaType,
		})
	}
	return items, nil
}

// Thumbnail fetches a post thumbnail via the public oEmbed endpoint. No
// access token is required.
func (c *Client) Thumbnail(ctx context.Context, instagramURL string) (string, error) {
	started := time.Now()
	var result oembedResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"url":    instagramURL,
			"fields": "thumbnail_url",
		}).
		SetResult(&result).
		Get(c.oembedURL + "/instagram_oembed")

	if err != nil {
		metrics.RecordGraphCall("oembed", "transport_error", time.Since(started).Seconds())
		return "", fmt.Errorf("query oembed: %w", err)
	}
	metrics.RecordGraphCall("oembed", strconv.Itoa(resp.StatusCode()), time.Since(started).Seconds())
	if resp.IsError() {
		return "", fmt.Errorf("oembed returned status %d", resp.StatusCode())
	}
	return result.ThumbnailURL, nil
}
