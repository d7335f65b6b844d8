package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockSigner for testing
type mockSigner struct {
	presignPutCalls []string
	presignGetCalls []string
	deleteCalls     []string
	presignPutErr   error
	presignGetErr   error
	deleteErr       error
}

func (m *mockSigner) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	m.presignPutCalls = append(m.presignPutCalls, key)
	if m.presignPutErr != nil {
		return "", m.presignPutErr
	}
	return "https://minio.example.com/portfolio/" + key + "?signed=put", nil
}

func (m *mockSigner) PresignGet(ctx context.Context, key string) (string, error) {
	m.presignGetCalls = append(m.presignGetCalls, key)
	if m.presignGetErr != nil {
		return "", m.presignGetErr
	}
	return "https://minio.example.com/portfolio/" + key + "?signed=get", nil
}

func (m *mockSigner) DeleteObject(ctx context.Context, key string) error {
	m.deleteCalls = append(m.deleteCalls, key)
	return m.deleteErr
}

func (m *mockSigner) Check(ctx context.Context) error {
	return nil
}

func newTestService(signer Signer) *Service {
	config := Config{
		PublicEndpoint:      "minio.example.com",
		APIEndpoint:         "minio.example.com",
		Bucket:              "portfolio",
		UseSSL:              true,
		PresignUploadTTLSec: 600,
		PresignViewTTLSec:   3600,
	}
	resolver := NewURLResolver(config.PublicEndpoint, config.APIEndpoint)
	return NewService(signer, resolver, config)
}

func TestPresignUpload_ShouldRejectDisallowedContentType(t *testing.T) {
	// given
	signer := &mockSigner{}
	service := newTestService(signer)

	// when
	_, err := service.PresignUpload(context.Background(), &PresignUploadRequest{
		Filename:    "malware.exe",
		ContentType: "application/octet-stream",
		FileSize:    100,
	})

	// then
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, signer.presignPutCalls, "no credential request for invalid files")
}

func TestPresignUpload_ShouldRejectOversizedFile(t *testing.T) {
	// given
	signer := &mockSigner{}
	service := newTestService(signer)

	// when
	_, err := service.PresignUpload(context.Background(), &PresignUploadRequest{
		Filename:    "huge.png",
		ContentType: "image/png",
		FileSize:    MaxFileSize + 1,
	})

	// then
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, signer.presignPutCalls)
}

func TestPresignUpload_ShouldMintCredential(t *testing.T) {
	// given
	signer := &mockSigner{}
	service := newTestService(signer)

	// when
	credential, err := service.PresignUpload(context.Background(), &PresignUploadRequest{
		Filename:    "profile photo.jpg",
		ContentType: "image/jpeg",
		FileSize:    1024,
	})

	// then
	assert.NoError(t, err)
	assert.Equal(t, 600, credential.ExpiresInSeconds)
	assert.True(t, strings.HasPrefix(credential.PublicURL, "https://minio.example.com/portfolio/"))
	assert.True(t, strings.HasSuffix(credential.PublicURL, credential.ObjectKey))
	assert.Contains(t, credential.UploadURL, credential.ObjectKey)
}

func TestPresignUpload_ShouldWrapSignerFailure(t *testing.T) {
	// given
	signer := &mockSigner{presignPutErr: fmt.Errorf("storage unreachable")}
	service := newTestService(signer)

	// when
	_, err := service.PresignUpload(context.Background(), &PresignUploadRequest{
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		FileSize:    1024,
	})

	// then
	assert.ErrorIs(t, err, ErrCredential)
}

func TestRemoveObject_ShouldSkipUnmanagedURL(t *testing.T) {
	// given
	signer := &mockSigner{}
	service := newTestService(signer)

	// when
	service.RemoveObject(context.Background(), "https://images.elsewhere.net/photo.jpg")

	// then
	assert.Empty(t, signer.deleteCalls, "no delete request for foreign URLs")
}

func TestRemoveObject_ShouldExtractKeyFromManagedURL(t *testing.T) {
	// given
	signer := &mockSigner{}
	service := newTestService(signer)

	// when
	service.RemoveObject(context.Background(), "https://minio.example.com/portfolio/photo-123-abc.jpg?X-Amz-Signature=x")

	// then
	assert.Equal(t, []string{"photo-123-abc.jpg"}, signer.deleteCalls)
}

func TestRemoveObject_ShouldAcceptRawKey(t *testing.T) {
	// given
	signer := &mockSigner{}
	service := newTestService(signer)

	// when
	service.RemoveObject(context.Background(), "photo-123-abc.jpg")

	// then
	assert.Equal(t, []string{"photo-123-abc.jpg"}, signer.deleteCalls)
}

func TestRemoveObject_ShouldSwallowDeleteFailure(t *testing.T) {
	// given
	signer := &mockSigner{deleteErr: fmt.Errorf("storage unreachable")}
	service := newTestService(signer)

	// when: must not panic or propagate
	service.RemoveObject(context.Background(), "photo-123-abc.jpg")

	// then
	assert.Equal(t, []string{"photo-123-abc.jpg"}, signer.deleteCalls)
}

func TestPresignView_ShouldPassThroughUnmanagedURL(t *testing.T) {
	// given
	signer := &mockSigner{}
	service := newTestService(signer)

	// when
	presigned, err := service.PresignView(context.Background(), "https://images.elsewhere.net/photo.jpg")

	// then
	assert.NoError(t, err)
	assert.Equal(t, "https://images.elsewhere.net/photo.jpg", presigned)
	assert.Empty(t, signer.presignGetCalls)
}

func TestPresignViewBatch_ShouldPreserveOrderAndFallBack(t *testing.T) {
	// given
	signer := &mockSigner{presignGetErr: fmt.Errorf("storage unreachable")}
	service := newTestService(signer)
	urls := []string{
		"https://minio.example.com/portfolio/a.jpg",
		"https://images.elsewhere.net/b.jpg",
	}

	// when
	result := service.PresignViewBatch(context.Background(), urls)

	// then: one output per input, same order, failed entry falls back
	assert.Len(t, result, 2)
	assert.Equal(t, urls[0], result[0].Original)
	assert.Equal(t, urls[0], result[0].Presigned, "failed presign falls back to original")
	assert.Equal(t, urls[1], result[1].Original)
	assert.Equal(t, urls[1], result[1].Presigned, "unmanaged URL passes through")
}

func TestPresignViewBatch_ShouldPresignManagedURLs(t *testing.T) {
	// given
	signer := &mockSigner{}
	service := newTestService(signer)

	// when
	result := service.PresignViewBatch(context.Background(), []string{
		"https://minio.example.com/portfolio/a.jpg",
		"https://images.elsewhere.net/b.jpg",
	})

	// then
	assert.Contains(t, result[0].Presigned, "signed=get")
	assert.Equal(t, "https://images.elsewhere.net/b.jpg", result[1].Presigned)
	assert.Equal(t, []string{"a.jpg"}, signer.presignGetCalls)
}
