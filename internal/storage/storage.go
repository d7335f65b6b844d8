package storage

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrCredential = errors.New("credential error")
)

const MaxFileSize = 10 * 1024 * 1024

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Policy is the admission rule for uploads, shared between the presign
// service and the uploader coordinator so both reject the same files.
type Policy struct {
	AllowedTypes map[string]bool
	MaxBytes     int64
}

func DefaultPolicy() Policy {
	return Policy{
		AllowedTypes: allowedContentTypes,
		MaxBytes:     MaxFileSize,
	}
}

// Validate checks the declared content type and size before any network
// activity. Order matters: type first, then size.
func (p Policy) Validate(contentType string, sizeBytes int64) error {
	if !p.AllowedTypes[contentType] {
		return fmt.Errorf("%w: unsupported content type: %s (allowed: jpg, png, gif, webp)", ErrValidation, contentType)
	}
	if sizeBytes > p.MaxBytes {
		return fmt.Errorf("%w: file too large: %d bytes (max: %d)", ErrValidation, sizeBytes, p.MaxBytes)
	}
	return nil
}

type Config struct {
	APIEndpoint         string `mapstructure:"api_endpoint"`
	PublicEndpoint      string `mapstructure:"public_endpoint"`
	Bucket              string `mapstructure:"bucket"`
	AccessKey           string `mapstructure:"access_key"`
	SecretKey           string `mapstructure:"secret_key"`
	Region              string `mapstructure:"region"`
	UseSSL              bool   `mapstructure:"use_ssl"`
	PresignUploadTTLSec int    `mapstructure:"presign_upload_ttl_sec"`
	PresignViewTTLSec   int    `mapstructure:"presign_view_ttl_sec"`
}

// PublicURLBase is the root under which uploaded objects are readable,
// {scheme}://{public_endpoint}/{bucket}.
func (c Config) PublicURLBase() string {
	scheme := "https"
	if !c.UseSSL {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, c.PublicEndpoint, c.Bucket)
}

type PresignUploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	FileSize    int64  `json:"fileSize"`
}

// WriteCredential authorizes exactly one PUT of one object. It is minted per
// request and never stored.
type WriteCredential struct {
	UploadURL        string `json:"uploadUrl"`
	PublicURL        string `json:"publicUrl"`
	ObjectKey        string `json:"objectKey"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
}

type ViewURL struct {
	Original  string `json:"original"`
	Presigned string `json:"presigned"`
}
