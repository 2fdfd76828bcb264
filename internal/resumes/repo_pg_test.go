package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var resumeCols = []string{"id", "user_id", "file_name", "mime_type", "size_bytes", "storage_key", "original_text", "cleaned_text", "word_count", "email", "phone", "role", "level", "created_at"}

func TestPGRepoCreateNullsEmptyContacts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	res := Resume{
		ID: "r-1", UserID: "u-1", FileName: "cv.pdf", MimeType: "application/pdf", SizeBytes: 10,
		StorageKey: "k", OriginalText: "Raw", CleanedText: "raw", WordCount: 1,
		Role: "data_analyst", Level: "intermediate", CreatedAt: time.Now().UTC(),
	}
	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(res.ID, res.UserID, res.FileName, res.MimeType, res.SizeBytes, res.StorageKey,
			res.OriginalText, res.CleanedText, res.WordCount, nil, nil, res.Role, res.Level, res.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDScopesToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM resumes").
		WithArgs("r-1", "u-1").
		WillReturnRows(sqlmock.NewRows(resumeCols).
			AddRow("r-1", "u-1", "cv.pdf", "application/pdf", 10, "k", "Raw", "raw", 1, "a@b.co", nil, "data_analyst", "fresher", created))
	mock.ExpectQuery("FROM resumes").
		WithArgs("r-1", "u-2").
		WillReturnRows(sqlmock.NewRows(resumeCols))

	res, err := repo.GetByID(context.Background(), "u-1", "r-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if res.Email != "a@b.co" || res.Phone != "" || res.Level != "fresher" {
		t.Fatalf("unexpected resume: %+v", res)
	}
	if _, err := repo.GetByID(context.Background(), "u-2", "r-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
