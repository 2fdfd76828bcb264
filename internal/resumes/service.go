package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-analytics/internal/extract"
	"resume-analytics/internal/scoring"
	"resume-analytics/internal/shared/metrics"
	"resume-analytics/internal/shared/storage/object"
	"resume-analytics/internal/shared/telemetry"
)

const defaultMaxBytes = 10 << 20 // 10MB

// Service stores uploaded resumes and their parsed text.
type Service struct {
	Store    object.ObjectStore
	Repo     Repo
	MaxBytes int64
	Now      func() time.Time
}

func NewService(store object.ObjectStore, repo Repo, maxBytes int64) *Service {
	return &Service{Store: store, Repo: repo, MaxBytes: maxBytes, Now: time.Now}
}

// Upload validates the file type, parses the text, keeps the original bytes
// in object storage and records the resume.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Resume, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return Resume{}, fmt.Errorf("%w: No file selected", ErrInvalidInput)
	}
	mime, err := extract.MimeFor(fileName)
	if err != nil {
		return Resume{}, err
	}

	limit := s.MaxBytes
	if limit <= 0 {
		limit = defaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return Resume{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return Resume{}, ErrTooLarge
	}

	parsed, err := extract.Parse(ctx, data, fileName)
	if err != nil {
		return Resume{}, fmt.Errorf("parse %s: %w", fileName, err)
	}

	storageKey, size, _, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Resume{}, fmt.Errorf("store upload: %w", err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	res := Resume{
		ID:           uuid.NewString(),
		UserID:       userID,
		FileName:     fileName,
		MimeType:     mime,
		SizeBytes:    size,
		StorageKey:   storageKey,
		OriginalText: parsed.RawText,
		CleanedText:  parsed.CleanedText,
		WordCount:    parsed.WordCount,
		Email:        parsed.Email,
		Phone:        parsed.Phone,
		Role:         scoring.FallbackRole,
		Level:        scoring.FallbackLevel,
		CreatedAt:    now().UTC(),
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, err
	}
	metrics.IncUpload()
	telemetry.Info("resume.uploaded", map[string]any{
		"user_id":    userID,
		"resume_id":  res.ID,
		"word_count": res.WordCount,
		"size_bytes": res.SizeBytes,
	})
	return res, nil
}

// Get returns a resume owned by userID.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	if strings.TrimSpace(resumeID) == "" {
		return Resume{}, fmt.Errorf("%w: resumeId is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// List returns the user's resumes, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if userID == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
