package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/granite-climbing/beta-api/internal/domain/betavideo"
	"github.com/granite-climbing/beta-api/internal/interfaces/httpserver/handlers"
	"github.com/granite-climbing/beta-api/internal/interfaces/httpserver/responses"
)

// MockBetaVideoRepository is a mock implementation of betavideo.Repository.
type MockBetaVideoRepository struct {
	ListApprovedFunc func(ctx context.Context, problemSlug string) ([]betavideo.BetaVideo, error)
	FindByPostIDFunc func(ctx context.Context, problemSlug, postID string) (*betavideo.BetaVideo, error)
	CreateFunc       func(ctx context.Context, video *betavideo.BetaVideo) error
}

func (m *MockBetaVideoRepository) ListApproved(ctx context.Context, problemSlug string) ([]betavideo.BetaVideo, error) {
	if m.ListApprovedFunc != nil {
		return m.ListApprovedFunc(ctx, problemSlug)
	}
	return []betavideo.BetaVideo{}, nil
}

func (m *MockBetaVideoRepository) FindByPostID(ctx context.Context, problemSlug, postID string) (*betavideo.BetaVideo, error) {
	if m.FindByPostIDFunc != nil {
		return m.FindByPostIDFunc(ctx, problemSlug, postID)
	}
	return nil, nil
}

func (m *MockBetaVideoRepository) Create(ctx context.Context, video *betavideo.BetaVideo) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, video)
	}
	video.ID = 1
	return nil
}

// MockThumbnails is a mock implementation of betavideo.ThumbnailFetcher.
type MockThumbnails struct {
	ThumbnailFunc func(ctx context.Context, instagramURL string) (string, error)
}

func (m *MockThumbnails) Thumbnail(ctx context.Context, instagramURL string) (string, error) {
	if m.ThumbnailFunc != nil {
		return m.ThumbnailFunc(ctx, instagramURL)
	}
	return "", nil
}

func newBetaVideoRouter(repo betavideo.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := betavideo.NewService(repo, &MockThumbnails{}, zerolog.Nop())
	handler := handlers.NewBetaVideoHandler(service, zerolog.Nop())

	engine := gin.New()
	engine.GET("/beta-videos", handler.List)
	engine.POST("/beta-videos", handler.Submit)
	return engine
}

func TestBetaVideoHandler_List_MissingProblem(t *testing.T) {
	router := newBetaVideoRouter(&MockBetaVideoRepository{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/beta-videos", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp responses.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if resp.Error != "Missing problem parameter" {
		t.Errorf("error = %q, want missing problem message", resp.Error)
	}
}

func TestBetaVideoHandler_List_Success(t *testing.T) {
	submitted := time.Date(2026, 8, 12, 14, 0, 0, 0, time.UTC)
	repo := &MockBetaVideoRepository{
		ListApprovedFunc: func(ctx context.Context, problemSlug string) ([]betavideo.BetaVideo, error) {
			return []betavideo.BetaVideo{
				{
					ID:              3,
					ProblemSlug:     problemSlug,
					InstagramURL:    "https://www.instagram.com/p/ABC123/",
					InstagramPostID: "ABC123",
					ThumbnailURL:    "https://cdn.example.com/abc.jpg",
					Status:          betavideo.StatusApproved,
					SubmittedAt:     submitted,
				},
			}, nil
		},
	}
	router := newBetaVideoRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/beta-videos?problem=midnight-lichen", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var resp responses.ListBetaVideosResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if len(resp.Videos) != 1 {
		t.Fatalf("len(videos) = %d, want 1", len(resp.Videos))
	}
	v := resp.Videos[0]
	if v.Status != "approved" {
		t.Errorf("status = %q, want approved", v.Status)
	}
	if v.ProblemSlug != "midnight-lichen" || v.InstagramURL != "https://www.instagram.com/p/ABC123/" {
		t.Errorf("unexpected payload: %+v", v)
	}
}

func TestBetaVideoHandler_List_EmptyIsArrayNotNull(t *testing.T) {
	router := newBetaVideoRouter(&MockBetaVideoRepository{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/beta-videos?problem=midnight-lichen", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != `{"videos":[]}` {
		t.Errorf("body = %s, want empty videos array", got)
	}
}

func TestBetaVideoHandler_Submit_Success(t *testing.T) {
	repo := &MockBetaVideoRepository{
		CreateFunc: func(ctx context.Context, video *betavideo.BetaVideo) error {
			video.ID = 42
			return nil
		},
	}
	router := newBetaVideoRouter(repo)

	body := `{"problemSlug":"midnight-lichen","instagramUrl":"https://www.instagram.com/reel/XYZ_9-9/"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/beta-videos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}
	var resp responses.SubmitBetaVideoResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if !resp.Success || resp.ID != 42 {
		t.Errorf("response = %+v, want success with id 42", resp)
	}
}

func TestBetaVideoHandler_Submit_Errors(t *testing.T) {
	tests := []struct {
		name       string
		repo       *MockBetaVideoRepository
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed json",
			repo:       &MockBetaVideoRepository{},
			body:       `{"problemSlug":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing required fields",
		},
		{
			name:       "missing fields",
			repo:       &MockBetaVideoRepository{},
			body:       `{"problemSlug":"midnight-lichen"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing required fields",
		},
		{
			name:       "invalid url",
			repo:       &MockBetaVideoRepository{},
			body:       `{"problemSlug":"midnight-lichen","instagramUrl":"https://example.com/p/ABC123/"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid Instagram URL format",
		},
		{
			name: "duplicate submission",
			repo: &MockBetaVideoRepository{
				FindByPostIDFunc: func(ctx context.Context, problemSlug, postID string) (*betavideo.BetaVideo, error) {
					return &betavideo.BetaVideo{ID: 7, ProblemSlug: problemSlug, InstagramPostID: postID}, nil
				},
			},
			body:       `{"problemSlug":"midnight-lichen","instagramUrl":"https://www.instagram.com/p/ABC123/"}`,
			wantStatus: http.StatusConflict,
			wantError:  "Video already submitted for this problem",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBetaVideoRouter(tt.repo)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/beta-videos", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.wantStatus, w.Body.String())
			}
			var resp responses.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
			if resp.Error != tt.wantError {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
			}
		})
	}
}
