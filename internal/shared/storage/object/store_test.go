package object

import (
	"io"
	"strings"
	"testing"

	"resume-analytics/internal/shared/util"
)

func TestResumeKeyLayout(t *testing.T) {
	a, err := ResumeKey("user-1", "Jane CV.docx")
	if err != nil {
		t.Fatalf("ResumeKey: %v", err)
	}
	b, _ := ResumeKey("user-1", "Jane CV.docx")
	if a == b {
		t.Fatalf("expected unique keys, got %q twice", a)
	}
	prefix := "resumes/" + util.HashUserKey("user-1") + "/"
	if !strings.HasPrefix(a, prefix) || !strings.HasSuffix(a, "_Jane CV.docx") {
		t.Fatalf("unexpected key %q", a)
	}
	if _, err := ResumeKey("user-1", "../etc.pdf"); err == nil {
		t.Fatalf("expected traversal to be rejected")
	}
}

func TestReportKey(t *testing.T) {
	if got := ReportKey("abc", "a1"); got != "reports/abc/a1.docx" {
		t.Fatalf("unexpected report key %q", got)
	}
}

func TestSniffReplaysHead(t *testing.T) {
	r, mime, err := Sniff(strings.NewReader("%PDF-1.7 body"))
	if err != nil {
		t.Fatalf("Sniff: %v", err)
	}
	if mime != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", mime)
	}
	all, _ := io.ReadAll(r)
	if string(all) != "%PDF-1.7 body" {
		t.Fatalf("body not replayed: %q", all)
	}
}
