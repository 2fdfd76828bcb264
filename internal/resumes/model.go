package resumes

import "time"

// Resume is an uploaded resume together with its extracted text.
type Resume struct {
	ID           string
	UserID       string
	FileName     string
	MimeType     string
	SizeBytes    int64
	StorageKey   string
	OriginalText string
	CleanedText  string
	WordCount    int
	Email        string
	Phone        string
	Role         string
	Level        string
	CreatedAt    time.Time
}
