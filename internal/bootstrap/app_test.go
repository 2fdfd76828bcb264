package bootstrap_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-analytics/internal/bootstrap"
	"resume-analytics/internal/shared/config"
)

func docx(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` +
		text + `</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func newApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Port:             "0",
		Env:              "dev",
		CORSAllowOrigin:  []string{"http://localhost:5173"},
		ObjectStoreType:  "local",
		LocalStoreDir:    t.TempDir(),
		JWTSecret:        "test-secret",
		LoginMaxAttempts: 5,
		MaxUploadBytes:   1 << 20,
		RateLimitRPS:     100,
		RateLimitBurst:   100,
	}
	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	if app.DB != nil {
		t.Fatalf("expected in-memory repositories")
	}
	return app
}

func send(t *testing.T, r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestUploadAnalyzeAndDownloadReport(t *testing.T) {
	app := newApp(t)
	r := app.Router

	resp := send(t, r, http.MethodPost, "/api/v1/auth/register", `{"email":"ana@example.com","password":"Str0ngPass"}`, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", resp.Code, resp.Body.String())
	}
	resp = send(t, r, http.MethodPost, "/api/v1/auth/login", `{"email":"ana@example.com","password":"Str0ngPass"}`, "")
	var session struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &session); err != nil || session.AccessToken == "" {
		t.Fatalf("login: %d %s", resp.Code, resp.Body.String())
	}

	if resp := send(t, r, http.MethodGet, "/api/v1/history", "", ""); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "ana.docx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = fw.Write(docx(t, "Ana Silva ana@example.com 555-123-4567 Experience with SQL, Python, Excel, Tableau. Education. Skills: analytics, visualization."))
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("upload: %d %s", resp.Code, resp.Body.String())
	}
	var uploaded struct {
		ResumeID string `json:"resumeId"`
	}
	_ = json.Unmarshal(resp.Body.Bytes(), &uploaded)

	resp = send(t, r, http.MethodPost, "/api/v1/analyze", `{"resumeId":"`+uploaded.ResumeID+`"}`, session.AccessToken)
	if resp.Code != http.StatusOK {
		t.Fatalf("analyze: %d %s", resp.Code, resp.Body.String())
	}
	var analyzed struct {
		AnalysisID string `json:"analysisId"`
		Role       string `json:"role"`
	}
	_ = json.Unmarshal(resp.Body.Bytes(), &analyzed)
	if analyzed.Role != "data_analyst" {
		t.Fatalf("unexpected role %q", analyzed.Role)
	}

	resp = send(t, r, http.MethodGet, "/api/v1/report/"+analyzed.AnalysisID, "", session.AccessToken)
	if resp.Code != http.StatusOK || !strings.HasPrefix(resp.Body.String(), "PK") {
		t.Fatalf("report: %d", resp.Code)
	}

	resp = send(t, r, http.MethodGet, "/metrics", "", "")
	if !strings.Contains(resp.Body.String(), "analysis_total 1") {
		t.Fatalf("expected analysis counter, got %s", resp.Body.String())
	}
}

func TestHealthIsPublic(t *testing.T) {
	app := newApp(t)

	resp := send(t, app.Router, http.MethodGet, "/api/v1/health", "", "")
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "healthy") {
		t.Fatalf("unexpected health response %d %s", resp.Code, resp.Body.String())
	}
}
