// AngelaMos | 2026
// fetch.go

package upload

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/cricketacademy/academy-api/internal/config"
	"github.com/cricketacademy/academy-api/internal/core"
)

const browserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var (
	driveFilePath = regexp.MustCompile(`/file/d/([^/]+)`)
	confirmToken  = regexp.MustCompile(`confirm=([0-9A-Za-z_\-]+)`)

	errDriveForbidden = core.ValidationError(
		"access denied (403) fetching the Google Drive file; share the file publicly " +
			"or use a direct download link (folders cannot be downloaded)")
	errEmptyBody = core.ValidationError("empty content from url")
)

// aeadSuites covers TLS 1.2. TLS 1.3 suites are all AEAD and not
// configurable.
var aeadSuites = []uint16{
	tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
	tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
}

type Download struct {
	Data        []byte
	ContentType string
}

type Fetcher struct {
	client     *http.Client
	allowed    []string
	driveHosts []string
	driveBase  string
	maxSize    int64
}

func NewFetcher(cfg config.UploadConfig) *Fetcher {
	f := &Fetcher{
		allowed:    cfg.AllowedDomains,
		driveHosts: []string{"drive.google.com", "docs.google.com"},
		driveBase:  "https://drive.google.com",
		maxSize:    cfg.MaxSizeBytes,
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			MinVersion:   tls.VersionTLS12,
			CipherSuites: aeadSuites,
		},
		TLSHandshakeTimeout: cfg.ConnectTimeout,
		ForceAttemptHTTP2:   true,
	}

	maxRedirects := cfg.MaxRedirects
	f.client = &http.Client{
		Transport: transport,
		Timeout:   cfg.FetchTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			if !f.hostAllowed(req.URL.Hostname()) {
				return fmt.Errorf("redirect to disallowed host %s", req.URL.Hostname())
			}
			return nil
		},
	}
	return f
}

func matchesHost(host string, domains []string) bool {
	host = strings.ToLower(host)
	for _, d := range domains {
		d = strings.ToLower(d)
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

func (f *Fetcher) hostAllowed(host string) bool {
	return host != "" && matchesHost(host, f.allowed)
}

func (f *Fetcher) isDrive(host string) bool {
	return matchesHost(host, f.driveHosts)
}

func driveFileID(u *url.URL) string {
	if m := driveFilePath.FindStringSubmatch(u.Path); m != nil {
		return m[1]
	}
	return u.Query().Get("id")
}

// Check validates the scheme and host and rewrites Drive share links to
// the direct download endpoint.
func (f *Fetcher) Check(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, core.ValidationError("invalid url; only http(s) urls are allowed")
	}
	if !f.hostAllowed(u.Hostname()) {
		return nil, core.ValidationError("url host is not allowed: " + u.Hostname())
	}

	if f.isDrive(u.Hostname()) {
		if id := driveFileID(u); id != "" {
			direct, err := url.Parse(f.driveBase + "/uc?export=download&id=" + url.QueryEscape(id))
			if err != nil {
				return nil, fmt.Errorf("build drive url: %w", err)
			}
			return direct, nil
		}
	}
	return u, nil
}

func (f *Fetcher) get(ctx context.Context, target *url.URL, origin, cookie string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build fetch request: %w", err)
	}
	req.Header.Set("User-Agent", browserAgent)
	req.Header.Set("Accept", "image/*,video/*,*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Origin", origin)
	req.Header.Set("Referer", origin+"/")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, core.ValidationError("failed to fetch url: " + unwrapURLError(err).Error())
	}
	return resp, nil
}

func unwrapURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

func (f *Fetcher) read(resp *http.Response, drive bool) (*Download, error) {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		if drive && resp.StatusCode == http.StatusForbidden {
			return nil, errDriveForbidden
		}
		return nil, core.ValidationError(fmt.Sprintf("failed to fetch url: HTTP %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, core.ValidationError("failed to read url body: " + err.Error())
	}
	if len(data) == 0 {
		return nil, errEmptyBody
	}
	if int64(len(data)) > f.maxSize {
		return nil, core.ValidationError(fmt.Sprintf("file too large; maximum size is %d MB", f.maxSize>>20))
	}
	return &Download{Data: data, ContentType: resp.Header.Get("Content-Type")}, nil
}

func cookieHeader(resp *http.Response) string {
	cookies := resp.Cookies()
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}

// Fetch downloads target. When Drive answers with its HTML interstitial,
// the confirm token is replayed together with the cookies it set.
func (f *Fetcher) Fetch(ctx context.Context, target *url.URL) (*Download, error) {
	origin := target.Scheme + "://" + target.Host
	drive := f.isDrive(target.Hostname())

	resp, err := f.get(ctx, target, origin, "")
	if err != nil {
		return nil, err
	}
	cookie := cookieHeader(resp)
	out, err := f.read(resp, drive)
	if err != nil {
		return nil, err
	}

	if !drive || !strings.HasPrefix(out.ContentType, "text/html") {
		return out, nil
	}

	m := confirmToken.FindSubmatch(out.Data)
	id := driveFileID(target)
	if m == nil || id == "" {
		return out, nil
	}

	confirmURL, err := url.Parse(f.driveBase + "/uc?export=download&confirm=" +
		url.QueryEscape(string(m[1])) + "&id=" + url.QueryEscape(id))
	if err != nil {
		return nil, fmt.Errorf("build drive confirm url: %w", err)
	}
	resp, err = f.get(ctx, confirmURL, origin, cookie)
	if err != nil {
		return nil, err
	}
	return f.read(resp, true)
}
