// AngelaMos | 2026
// upload_test.go

package upload

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cricketacademy/academy-api/internal/config"
	"github.com/cricketacademy/academy-api/internal/core"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 32)...)

func testConfig(dir string) config.UploadConfig {
	return config.UploadConfig{
		Dir:            dir,
		MaxSizeBytes:   1 << 20,
		AllowedDomains: []string{"127.0.0.1", "googleusercontent.com"},
		ConnectTimeout: 2 * time.Second,
		FetchTimeout:   5 * time.Second,
		MaxRedirects:   5,
	}
}

func newTestService(t *testing.T) (*Service, *Fetcher, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	cfg := testConfig(dir)
	fetcher := NewFetcher(cfg)
	return NewService(store, fetcher, cfg.MaxSizeBytes, nil), fetcher, dir
}

func storedFile(t *testing.T, dir, publicURL string) []byte {
	t.Helper()
	require.True(t, strings.HasPrefix(publicURL, PublicPrefix))
	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(publicURL, PublicPrefix)))
	require.NoError(t, err)
	return data
}

func TestCheck(t *testing.T) {
	f := NewFetcher(testConfig(""))
	f.driveHosts = []string{"drive.google.com"}
	f.allowed = append(f.allowed, "drive.google.com")

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"non http scheme", "ftp://127.0.0.1/a.png", "", true},
		{"disallowed host", "https://evil.example/a.png", "", true},
		{"suffix without dot is not a subdomain", "https://evilgoogleusercontent.com/a.png", "", true},
		{"subdomain allowed", "https://lh3.googleusercontent.com/a.png", "https://lh3.googleusercontent.com/a.png", false},
		{"drive share link", "https://drive.google.com/file/d/ABC123/view?usp=sharing",
			"https://drive.google.com/uc?export=download&id=ABC123", false},
		{"drive open link", "https://drive.google.com/open?id=XYZ", "https://drive.google.com/uc?export=download&id=XYZ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := f.Check(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, core.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestSaveFromURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/pic", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	})
	mux.HandleFunc("/page", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html></html>"))
	})
	mux.HandleFunc("/missing", http.NotFound)
	mux.HandleFunc("/empty", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
	})
	mux.HandleFunc("/away", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://evil.example/pic", http.StatusFound)
	})
	mux.HandleFunc("/hop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/pic", http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc, _, dir := newTestService(t)
	ctx := context.Background()

	t.Run("stored path is returned unchanged", func(t *testing.T) {
		resp, err := svc.SaveFromURL(ctx, FromURLRequest{URL: "/uploads/already.png"})
		require.NoError(t, err)
		assert.Equal(t, "/uploads/already.png", resp.URL)
	})

	t.Run("image is stored with content type extension", func(t *testing.T) {
		resp, err := svc.SaveFromURL(ctx, FromURLRequest{URL: srv.URL + "/pic", Filename: "photo.jpeg"})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(resp.URL, ".png"))
		assert.Equal(t, pngBytes, storedFile(t, dir, resp.URL))
	})

	t.Run("allowed redirect is followed", func(t *testing.T) {
		resp, err := svc.SaveFromURL(ctx, FromURLRequest{URL: srv.URL + "/hop"})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(resp.URL, ".png"))
	})

	rejects := map[string]string{
		"html":                  "/page",
		"not found":             "/missing",
		"empty body":            "/empty",
		"redirect off the list": "/away",
	}
	for name, p := range rejects {
		t.Run(name, func(t *testing.T) {
			_, err := svc.SaveFromURL(ctx, FromURLRequest{URL: srv.URL + p})
			require.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

func TestDriveConfirmFlow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/uc", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("id") == "LOCKED":
			w.WriteHeader(http.StatusForbidden)
		case q.Get("confirm") == "":
			http.SetCookie(w, &http.Cookie{Name: "download_warning", Value: "w1"})
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<a href="/uc?export=download&confirm=TOKEN9&id=FILE1">Download anyway</a>`))
		case q.Get("confirm") == "TOKEN9" && q.Get("id") == "FILE1":
			if c, err := r.Cookie("download_warning"); err != nil || c.Value != "w1" {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(pngBytes)
		default:
			http.NotFound(w, r)
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	svc, fetcher, dir := newTestService(t)
	fetcher.driveHosts = []string{"127.0.0.1"}
	fetcher.driveBase = srv.URL

	resp, err := svc.SaveFromURL(context.Background(), FromURLRequest{URL: srv.URL + "/file/d/FILE1/view"})
	require.NoError(t, err)
	assert.Equal(t, pngBytes, storedFile(t, dir, resp.URL))

	_, err = svc.SaveFromURL(context.Background(), FromURLRequest{URL: srv.URL + "/open?id=LOCKED"})
	require.ErrorIs(t, err, errDriveForbidden)
}

func multipartRequest(t *testing.T, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadFileHandler(t *testing.T) {
	svc, _, dir := newTestService(t)
	r := chi.NewRouter()
	NewHandler(svc).RegisterAdminRoutes(r)

	tests := []struct {
		name     string
		filename string
		data     []byte
		wantCode int
		wantExt  string
	}{
		{"png keeps its name extension", "team.PNG", pngBytes, http.StatusCreated, ".png"},
		{"sniffed extension without name", "blob", pngBytes, http.StatusCreated, ".png"},
		{"text rejected", "notes.txt", []byte("just text"), http.StatusBadRequest, ""},
		{"empty rejected", "empty.png", nil, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, multipartRequest(t, tt.filename, tt.data))
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantExt != "" {
				assert.Contains(t, rec.Body.String(), tt.wantExt)
			}
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFileServer(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("a.png", pngBytes))

	h := FileServer(store)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/a.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pngBytes, rec.Body.Bytes())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Error(t, store.Save("../escape.png", pngBytes))
}
