// Package imagekit provides a client for the ImageKit asset host.
// Art images are uploaded there and only the returned URL is persisted.
package imagekit

import (
	"os"
	"time"
)

// Config holds configuration for the ImageKit upload client.
type Config struct {
	PrivateKey string        // API private key, sent as basic-auth username
	UploadURL  string        // Upload endpoint (e.g. "https://upload.imagekit.io/api/v1/files/upload")
	Timeout    time.Duration // HTTP request timeout
}

// LoadConfig loads ImageKit configuration from environment variables.
func LoadConfig() Config {
	return Config{
		PrivateKey: os.Getenv("IMAGEKIT_PRIVATE_KEY"),
		UploadURL:  os.Getenv("IMAGEKIT_UPLOAD_URL"),
		Timeout:    10 * time.Second,
	}
}
