package betavideo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/granite-climbing/beta-api/internal/domain/betavideo"
	"github.com/granite-climbing/beta-api/internal/utils/platformerrors"
)

// MockRepository is a mock implementation of betavideo.Repository for testing.
type MockRepository struct {
	ListApprovedFunc func(ctx context.Context, problemSlug string) ([]betavideo.BetaVideo, error)
	FindByPostIDFunc func(ctx context.Context, problemSlug, postID string) (*betavideo.BetaVideo, error)
	CreateFunc       func(ctx context.Context, video *betavideo.BetaVideo) error

	Created []*betavideo.BetaVideo
}

func (m *MockRepository) ListApproved(ctx context.Context, problemSlug string) ([]betavideo.BetaVideo, error) {
	if m.ListApprovedFunc != nil {
		return m.ListApprovedFunc(ctx, problemSlug)
	}
	return []betavideo.BetaVideo{}, nil
}

func (m *MockRepository) FindByPostID(ctx context.Context, problemSlug, postID string) (*betavideo.BetaVideo, error) {
	if m.FindByPostIDFunc != nil {
		return m.FindByPostIDFunc(ctx, problemSlug, postID)
	}
	return nil, nil
}

func (m *MockRepository) Create(ctx context.Context, video *betavideo.BetaVideo) error {
	m.Created = append(m.Created, video)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, video)
	}
	return nil
}

// MockThumbnailFetcher is a mock implementation of betavideo.ThumbnailFetcher.
type MockThumbnailFetcher struct {
	ThumbnailFunc func(ctx context.Context, instagramURL string) (string, error)
}

func (m *MockThumbnailFetcher) Thumbnail(ctx context.Context, instagramURL string) (string, error) {
	if m.ThumbnailFunc != nil {
		return m.ThumbnailFunc(ctx, instagramURL)
	}
	return "", nil
}

func TestService_ListApproved_RequiresProblemSlug(t *testing.T) {
	svc := betavideo.NewService(&MockRepository{}, &MockThumbnailFetcher{}, zerolog.Nop())

	_, err := svc.ListApproved(context.Background(), "")
	if !platformerrors.IsType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("ListApproved(\"\") error = %v, want validation error", err)
	}
}

func TestService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name         string
		problemSlug  string
		instagramURL string
		wantMessage  string
	}{
		{
			name:         "missing slug",
			problemSlug:  "",
			instagramURL: "https://www.instagram.com/p/ABC123/",
			wantMessage:  "Missing required fields",
		},
		{
			name:         "missing url",
			problemSlug:  "midnight-lichen",
			instagramURL: "",
			wantMessage:  "Missing required fields",
		},
		{
			name:         "not an instagram post url",
			problemSlug:  "midnight-lichen",
			instagramURL: "https://example.com/p/ABC123/",
			wantMessage:  "Invalid Instagram URL format",
		},
		{
			name:         "profile url without post path",
			problemSlug:  "midnight-lichen",
			instagramURL: "https://www.instagram.com/granitebeta/",
			wantMessage:  "Invalid Instagram URL format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockRepository{}
			svc := betavideo.NewService(repo, &MockThumbnailFetcher{}, zerolog.Nop())

			_, err := svc.Submit(context.Background(), tt.problemSlug, tt.instagramURL)
			if !platformerrors.IsType(err, platformerrors.ErrorTypeValidation) {
				t.Fatalf("Submit() error = %v, want validation error", err)
			}
			var pErr *platformerrors.PlatformError
			if !errors.As(err, &pErr) || pErr.Message != tt.wantMessage {
				t.Errorf("Submit() message = %v, want %q", err, tt.wantMessage)
			}
			if len(repo.Created) != 0 {
				t.Errorf("Create was called %d times, want 0", len(repo.Created))
			}
		})
	}
}

func TestService_Submit_Success(t *testing.T) {
	repo := &MockRepository{}
	thumbs := &MockThumbnailFetcher{
		ThumbnailFunc: func(ctx context.Context, instagramURL string) (string, error) {
			return "https://cdn.example.com/thumb.jpg", nil
		},
	}
	svc := betavideo.NewService(repo, thumbs, zerolog.Nop())

	video, err := svc.Submit(context.Background(), "midnight-lichen", "https://www.instagram.com/reel/XYZ_9-9/")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if video.InstagramPostID != "XYZ_9-9" {
		t.Errorf("InstagramPostID = %q, want XYZ_9-9", video.InstagramPostID)
	}
	if video.Status != betavideo.StatusApproved {
		t.Errorf("Status = %q, want %q", video.Status, betavideo.StatusApproved)
	}
	if video.ThumbnailURL != "https://cdn.example.com/thumb.jpg" {
		t.Errorf("ThumbnailURL = %q, want enriched value", video.ThumbnailURL)
	}
	if video.SubmittedAt.IsZero() {
		t.Error("SubmittedAt is zero, want server-side timestamp")
	}
	if len(repo.Created) != 1 {
		t.Fatalf("Create was called %d times, want 1", len(repo.Created))
	}
}

func TestService_Submit_DuplicateIsConflict(t *testing.T) {
	repo := &MockRepository{
		FindByPostIDFunc: func(ctx context.Context, problemSlug, postID string) (*betavideo.BetaVideo, error) {
			return &betavideo.BetaVideo{ID: 7, ProblemSlug: problemSlug, InstagramPostID: postID}, nil
		},
	}
	svc := betavideo.NewService(repo, &MockThumbnailFetcher{}, zerolog.Nop())

	_, err := svc.Submit(context.Background(), "midnight-lichen", "https://www.instagram.com/p/ABC123/")
	if !platformerrors.IsType(err, platformerrors.ErrorTypeConflict) {
		t.Fatalf("Submit() error = %v, want conflict", err)
	}
	if len(repo.Created) != 0 {
		t.Errorf("Create was called %d times, want 0", len(repo.Created))
	}
}

func TestService_Submit_ThumbnailFailureIsTolerated(t *testing.T) {
	repo := &MockRepository{}
	thumbs := &MockThumbnailFetcher{
		ThumbnailFunc: func(ctx context.Context, instagramURL string) (string, error) {
			return "", errors.New("oembed endpoint unavailable")
		},
	}
	svc := betavideo.NewService(repo, thumbs, zerolog.Nop())

	video, err := svc.Submit(context.Background(), "midnight-lichen", "https://www.instagram.com/p/ABC123/")
	if err != nil {
		t.Fatalf("Submit() error = %v, want success without thumbnail", err)
	}
	if video.ThumbnailURL != "" {
		t.Errorf("ThumbnailURL = %q, want empty", video.ThumbnailURL)
	}
	if video.Status != betavideo.StatusApproved {
		t.Errorf("Status = %q, want %q", video.Status, betavideo.StatusApproved)
	}
}

func TestService_Submit_ConflictFromCreatePassesThrough(t *testing.T) {
	conflict := platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeConflict, "Video already submitted for this problem", nil)
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, video *betavideo.BetaVideo) error {
			return conflict
		},
	}
	svc := betavideo.NewService(repo, &MockThumbnailFetcher{}, zerolog.Nop())

	_, err := svc.Submit(context.Background(), "midnight-lichen", "https://www.instagram.com/p/ABC123/")
	if !platformerrors.IsType(err, platformerrors.ErrorTypeConflict) {
		t.Fatalf("Submit() error = %v, want conflict from unique index race", err)
	}
}
