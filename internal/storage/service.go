package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Service struct {
	signer   Signer
	resolver *URLResolver
	policy   Policy
	config   Config
}

func NewService(signer Signer, resolver *URLResolver, config Config) *Service {
	return &Service{
		signer:   signer,
		resolver: resolver,
		policy:   DefaultPolicy(),
		config:   config,
	}
}

func (s *Service) Policy() Policy {
	return s.policy
}

// PresignUpload validates the declared file metadata and mints a write
// credential for a fresh object key. The caller PUTs the bytes directly to
// storage; they never transit this server.
func (s *Service) PresignUpload(ctx context.Context, req *PresignUploadRequest) (*WriteCredential, error) {
	if req.Filename == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrValidation)
	}
	if err := s.policy.Validate(req.ContentType, req.FileSize); err != nil {
		return nil, err
	}

	key := GenerateObjectKey(req.Filename)
	uploadURL, err := s.signer.PresignPut(ctx, key, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredential, err)
	}

	return &WriteCredential{
		UploadURL:        uploadURL,
		PublicURL:        fmt.Sprintf("%s/%s", s.config.PublicURLBase(), key),
		ObjectKey:        key,
		ExpiresInSeconds: s.config.PresignUploadTTLSec,
	}, nil
}

// RemoveObject deletes the object behind a public URL or raw key. URLs
// outside the managed namespace are ignored, and storage failures are logged
// and swallowed: forgetting the reference is the caller's primary action,
// orphaned objects get cleaned up out-of-band.
func (s *Service) RemoveObject(ctx context.Context, urlOrKey string) {
	key := urlOrKey
	if isURL(urlOrKey) {
		extracted, ok := s.resolver.ObjectKey(urlOrKey)
		if !ok {
			log.Debug().Str("url", urlOrKey).Msg("Skipping delete of unmanaged URL")
			return
		}
		key = extracted
	}
	if key == "" {
		return
	}

	if err := s.signer.DeleteObject(ctx, key); err != nil {
		log.Warn().Err(err).Str("objectKey", key).Msg("Failed to delete storage object")
	}
}

// PresignView mints a time-limited read URL for a managed object. URLs the
// resolver does not recognize pass through unchanged.
func (s *Service) PresignView(ctx context.Context, rawURL string) (string, error) {
	key, ok := s.resolver.ObjectKey(rawURL)
	if !ok {
		return rawURL, nil
	}
	presigned, err := s.signer.PresignGet(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCredential, err)
	}
	return presigned, nil
}

// PresignViewBatch maps every input URL to exactly one output, in order. A
// failing entry falls back to its original URL rather than failing the batch.
func (s *Service) PresignViewBatch(ctx context.Context, rawURLs []string) []ViewURL {
	result := make([]ViewURL, len(rawURLs))
	for i, rawURL := range rawURLs {
		result[i] = ViewURL{Original: rawURL, Presigned: rawURL}
		presigned, err := s.PresignView(ctx, rawURL)
		if err != nil {
			log.Warn().Err(err).Str("url", rawURL).Msg("Failed to presign view URL")
			continue
		}
		result[i].Presigned = presigned
	}
	return result
}

// Check reports whether the storage backend is reachable.
func (s *Service) Check(ctx context.Context) error {
	return s.signer.Check(ctx)
}

func isURL(s string) bool {
	return len(s) > 8 && (s[:7] == "http://" || s[:8] == "https://")
}
