package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/granite-climbing/beta-api/internal/config"
	domain "github.com/granite-climbing/beta-api/internal/domain/hashtag"
	"github.com/granite-climbing/beta-api/internal/interfaces/httpserver/responses"
)

// HashtagHandler proxies Instagram hashtag media searches.
type HashtagHandler struct {
	cfg     *config.Config
	service *domain.Service
	log     zerolog.Logger
}

func NewHashtagHandler(cfg *config.Config, service *domain.Service, log zerolog.Logger) *HashtagHandler {
	return &HashtagHandler{
		cfg:     cfg,
		service: service,
		log:     log.With().Str("component", "hashtag-handler").Logger(),
	}
}

// Search godoc
// @Summary      Search recent hashtag media
// @Description  Resolves a hashtag and returns its first page of recent media. The Graph API access token stays server-side.
// @Tags         hashtag
// @Produce      json
// @Param        hashtag  query     string  true  "Hashtag without the leading #"
// @Success      200      {object}  responses.HashtagMediaResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Failure      502      {object}  responses.ErrorResponse
// @Router       / [get]
func (h *HashtagHandler) Search(c *gin.Context) {
	if !h.cfg.InstagramConfigured() {
		responses.RespondError(c, http.StatusInternalServerError, "Instagram API not configured")
		return
	}

	tag := c.Query("hashtag")
	if tag == "" {
		responses.RespondError(c, http.StatusBadRequest, "Missing ?hashtag= parameter")
		return
	}

	items, err := h.service.RecentMedia(c.Request.Context(), tag)
	if err != nil {
		h.log.Error().Err(err).Str("tag", tag).Msg("hashtag search failed")
		responses.RespondError(c, http.StatusBadGateway, "Failed to fetch Instagram data")
		return
	}

	c.JSON(http.StatusOK, responses.HashtagMediaResponse{Data: items})
}
