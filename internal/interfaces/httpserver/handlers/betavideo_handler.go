package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/granite-climbing/beta-api/internal/domain/betavideo"
	"github.com/granite-climbing/beta-api/internal/interfaces/httpserver/requests"
	"github.com/granite-climbing/beta-api/internal/interfaces/httpserver/responses"
)

// BetaVideoHandler exposes beta video submission and retrieval.
type BetaVideoHandler struct {
	service *domain.Service
	log     zerolog.Logger
}

func NewBetaVideoHandler(service *domain.Service, log zerolog.Logger) *BetaVideoHandler {
	return &BetaVideoHandler{
		service: service,
		log:     log.With().Str("component", "betavideo-handler").Logger(),
	}
}

// List godoc
// @Summary      List approved beta videos
// @Description  Returns the approved submissions for a problem, newest first.
// @Tags         beta-videos
// @Produce      json
// @Param        problem  query     string  true  "Problem slug"
// @Success      200      {object}  responses.ListBetaVideosResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /beta-videos [get]
func (h *BetaVideoHandler) List(c *gin.Context) {
	problemSlug := c.Query("problem")
	if problemSlug == "" {
		responses.RespondError(c, http.StatusBadRequest, "Missing problem parameter")
		return
	}

	videos, err := h.service.ListApproved(c.Request.Context(), problemSlug)
	if err != nil {
		h.log.Error().Err(err).Str("problem", problemSlug).Msg("list beta videos failed")
		responses.HandleError(c, err, "Failed to fetch beta videos")
		return
	}

	c.JSON(http.StatusOK, responses.BuildListBetaVideosResponse(videos))
}

// Submit godoc
// @Summary      Submit a beta video link
// @Description  Stores an Instagram post or reel link for a problem. Duplicate submissions are rejected with 409.
// @Tags         beta-videos
// @Accept       json
// @Produce      json
// @Param        request  body      requests.SubmitBetaVideoRequest  true  "Submission"
// @Success      201      {object}  responses.SubmitBetaVideoResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      409      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /beta-videos [post]
func (h *BetaVideoHandler) Submit(c *gin.Context) {
	var req requests.SubmitBetaVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	video, err := h.service.Submit(c.Request.Context(), req.ProblemSlug, req.InstagramURL)
	if err != nil {
		responses.HandleError(c, err, "Failed to submit beta video")
		return
	}

	c.JSON(http.StatusCreated, responses.SubmitBetaVideoResponse{Success: true, ID: video.ID})
}
