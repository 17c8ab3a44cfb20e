package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"
	"time"

	// register decoders for the formats admins upload
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ImageLoader fetches template background art. Supported references: http(s)
// URLs (fetched with a bounded timeout so share-image generation can fail
// over instead of hanging), data: URIs, and local file paths.
type ImageLoader struct {
	client *http.Client
}

// NewImageLoader creates a loader whose remote fetches give up after timeout.
func NewImageLoader(timeout time.Duration) *ImageLoader {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ImageLoader{
		client: &http.Client{Timeout: timeout},
	}
}

// Load resolves an image reference and decodes it.
func (l *ImageLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return nil, fmt.Errorf("image reference is empty")
	case strings.HasPrefix(ref, "data:"):
		return l.loadDataURI(ref)
	case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
		return l.loadRemote(ctx, ref)
	default:
		return l.loadFile(ref)
	}
}

func (l *ImageLoader) loadDataURI(ref string) (image.Image, error) {
	comma := strings.IndexByte(ref, ',')
	if comma < 0 {
		return nil, fmt.Errorf("malformed data URI")
	}
	meta, payload := ref[:comma], ref[comma+1:]

	var data []byte
	var err error
	if strings.Contains(meta, ";base64") {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode data URI: %w", err)
		}
	} else {
		data = []byte(payload)
	}

	img, _, err := image.Decode(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func (l *ImageLoader) loadRemote(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func (l *ImageLoader) loadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
