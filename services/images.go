package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"mkh-consultation-backend/config"
)

// MaxReportImages caps how many images any renderer receives per document.
const MaxReportImages = 4

// mimeByExtension maps local file extensions onto MIME types. Remote fetches
// trust the Content-Type header instead.
var mimeByExtension = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

const defaultMIME = "image/jpeg"

// ImageAsset is one materialized image ready for embedding.
type ImageAsset struct {
	Path     string
	Filename string
	MIME     string
	Bytes    []byte
}

// DataURL encodes the asset as a base64 data-URL for canvas-style embedding.
func (a *ImageAsset) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", a.MIME, base64.StdEncoding.EncodeToString(a.Bytes))
}

// ContentID derives the inline-attachment identifier for position i:
// image_{i}_{filename lowercased, alphanumerics only}.
func (a *ImageAsset) ContentID(i int) string {
	return fmt.Sprintf("image_%d_%s", i, sanitizeFilename(a.Filename))
}

func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ImageLoader resolves consultation image paths to binary assets, local
// static directory first, HTTP fallback second.
type ImageLoader struct {
	AssetRoot string
	BaseURL   string
	Client    *http.Client
}

// NewImageLoader builds a loader from the package configuration.
func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		AssetRoot: config.Assets.Root,
		BaseURL:   config.Assets.BaseURL,
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Load materializes one image. Every failure mode returns nil so callers
// render a placeholder instead of aborting the document.
func (l *ImageLoader) Load(imagePath string) *ImageAsset {
	if imagePath == "" {
		return nil
	}

	if strings.HasPrefix(imagePath, "/") && !strings.HasPrefix(imagePath, "http") {
		if asset := l.loadLocal(imagePath); asset != nil {
			return asset
		}
	}
	return l.loadRemote(imagePath)
}

// LoadAll materializes up to max paths sequentially, preserving order.
// Failed entries stay in place as nil slots so positions remain stable.
func (l *ImageLoader) LoadAll(paths []string, max int) []*ImageAsset {
	if len(paths) > max {
		paths = paths[:max]
	}
	assets := make([]*ImageAsset, len(paths))
	for i, p := range paths {
		assets[i] = l.Load(p)
	}
	return assets
}

func (l *ImageLoader) loadLocal(imagePath string) *ImageAsset {
	full := filepath.Join(l.AssetRoot, filepath.FromSlash(imagePath))
	data, err := os.ReadFile(full)
	if err != nil {
		return nil
	}

	mime := mimeByExtension[strings.ToLower(filepath.Ext(imagePath))]
	if mime == "" {
		mime = defaultMIME
	}
	return &ImageAsset{
		Path:     imagePath,
		Filename: path.Base(imagePath),
		MIME:     mime,
		Bytes:    data,
	}
}

func (l *ImageLoader) loadRemote(imagePath string) *ImageAsset {
	url := imagePath
	if !strings.HasPrefix(url, "http") {
		url = l.BaseURL + imagePath
	}

	resp, err := l.Client.Get(url)
	if err != nil {
		log.Printf("Image fetch failed for %s: %v", url, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Image fetch for %s returned status %d", url, resp.StatusCode)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Image read failed for %s: %v", url, err)
		return nil
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = defaultMIME
	}
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}

	return &ImageAsset{
		Path:     imagePath,
		Filename: path.Base(imagePath),
		MIME:     mime,
		Bytes:    data,
	}
}
