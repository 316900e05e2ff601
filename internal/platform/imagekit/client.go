package imagekit

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// uploadResponse is the subset of the ImageKit upload response we use.
type uploadResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Client uploads image binaries to ImageKit and returns their hosted URL.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Upload sends the image bytes and returns the hosted URL. The binary never
// reaches application storage; callers persist only the URL.
func (c *Client) Upload(ctx context.Context, data []byte, fileName string) (string, error) {
	form := url.Values{}
	form.Set("file", base64.StdEncoding.EncodeToString(data))
	form.Set("fileName", fileName)
	form.Set("tags", fileName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.UploadURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.PrivateKey, "")

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	var body uploadResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", err
	}
	if res.StatusCode >= 400 {
		return "", fmt.Errorf("imagekit http %d: %s", res.StatusCode, body.Message)
	}
	if body.URL == "" {
		return "", fmt.Errorf("imagekit: empty url in upload response")
	}
	return body.URL, nil
}
