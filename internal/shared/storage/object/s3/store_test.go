package s3

import (
	"strings"
	"testing"

	"resume-analytics/internal/shared/storage/object"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "reports/abc/a1.docx", want: "reports/abc/a1.docx"},
		{name: "env prefix", prefix: "prod", key: "reports/abc/a1.docx", want: "prod/reports/abc/a1.docx"},
		{name: "slashes trimmed", prefix: "/prod/", key: "/resumes/abc/x_cv.pdf", want: "prod/resumes/abc/x_cv.pdf"},
		{name: "empty key", prefix: "prod", key: "", want: "prod"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(normalizePrefix(tt.prefix), tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestResumeObjectKeyUnderPrefix(t *testing.T) {
	key, err := object.ResumeKey("user-1", "cv.pdf")
	if err != nil {
		t.Fatalf("ResumeKey: %v", err)
	}
	got := applyPrefix(normalizePrefix(" analytics/ "), key)
	if !strings.HasPrefix(got, "analytics/resumes/") || !strings.HasSuffix(got, "_cv.pdf") {
		t.Fatalf("unexpected object key %q", got)
	}
}
