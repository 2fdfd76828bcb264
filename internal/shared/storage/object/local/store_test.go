package local

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpen(t *testing.T) {
	store := New(t.TempDir())
	payload := []byte("%PDF-1.4 resume body")

	key, size, mime, err := store.Save(context.Background(), "user-1", "My CV.pdf", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len(payload)) {
		t.Fatalf("expected size %d, got %d", len(payload), size)
	}
	if mime != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", mime)
	}
	if !strings.HasSuffix(key, "_My CV.pdf") {
		t.Fatalf("unexpected key %q", key)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestSaveWithKeyRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.SaveWithKey(context.Background(), "../escape.docx", "application/octet-stream", strings.NewReader("x")); err == nil {
		t.Fatalf("expected traversal to be rejected")
	}
	if _, err := store.Open(context.Background(), "/etc/passwd"); err == nil {
		t.Fatalf("expected absolute key to be rejected")
	}

	n, err := store.SaveWithKey(context.Background(), "reports/u/a.docx", "application/octet-stream", strings.NewReader("PK"))
	if err != nil || n != 2 {
		t.Fatalf("SaveWithKey: n=%d err=%v", n, err)
	}
}

func TestSaveHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, _, err := New(t.TempDir()).Save(ctx, "u", "cv.pdf", strings.NewReader("x")); err == nil {
		t.Fatalf("expected context error")
	}
}
