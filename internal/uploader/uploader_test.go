package uploader

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/burdych/portfolio_server/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentialFunc(uploadURL string, calls *int) CredentialFunc {
	return func(ctx context.Context, req *storage.PresignUploadRequest) (*storage.WriteCredential, error) {
		if calls != nil {
			*calls++
		}
		key := storage.GenerateObjectKey(req.Filename)
		return &storage.WriteCredential{
			UploadURL:        uploadURL,
			PublicURL:        "https://minio.example.com/portfolio/" + key,
			ObjectKey:        key,
			ExpiresInSeconds: 600,
		}, nil
	}
}

func pngFile(name string, size int) File {
	return File{Name: name, ContentType: "image/png", Data: bytes.Repeat([]byte{0x89}, size)}
}

func TestEnqueue_ShouldRejectDisallowedTypeWithoutNetworkCall(t *testing.T) {
	// given
	credentialCalls := 0
	coordinator := NewCoordinator(storage.DefaultPolicy(), testCredentialFunc("http://unused", &credentialCalls))

	// when
	err := coordinator.Enqueue(context.Background(), File{
		Name:        "report.pdf",
		ContentType: "application/pdf",
		Data:        []byte("not an image"),
	})
	coordinator.Wait()

	// then
	assert.NoError(t, err)
	tasks := coordinator.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, StatusError, tasks[0].Status)
	assert.NotEmpty(t, tasks[0].Err)
	assert.Zero(t, credentialCalls, "no credential request for invalid files")
}

func TestEnqueue_ShouldRejectOversizedFileWithoutNetworkCall(t *testing.T) {
	// given
	credentialCalls := 0
	coordinator := NewCoordinator(storage.DefaultPolicy(), testCredentialFunc("http://unused", &credentialCalls))

	// when
	err := coordinator.Enqueue(context.Background(), pngFile("huge.png", storage.MaxFileSize+1))
	coordinator.Wait()

	// then
	assert.NoError(t, err)
	tasks := coordinator.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, StatusError, tasks[0].Status)
	assert.Zero(t, credentialCalls)
}

func TestEnqueue_ShouldRejectWholeBatchOverMaxFiles(t *testing.T) {
	// given
	coordinator := NewCoordinator(storage.DefaultPolicy(), testCredentialFunc("http://unused", nil), WithMaxFiles(2))
	require.NoError(t, coordinator.Enqueue(context.Background(), File{
		Name:        "report.pdf",
		ContentType: "application/pdf",
		Data:        []byte("x"),
	}))

	// when: 1 existing + 2 new exceeds the ceiling of 2
	err := coordinator.Enqueue(context.Background(), pngFile("a.png", 10), pngFile("b.png", 10))
	coordinator.Wait()

	// then: no partial admission
	assert.Error(t, err)
	assert.Len(t, coordinator.Tasks(), 1)
}

func TestTransfer_ShouldCompleteOn2xx(t *testing.T) {
	// given
	var received []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		body := new(bytes.Buffer)
		body.ReadFrom(r.Body)
		received = body.Bytes()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var completedURL string
	completions := 0
	coordinator := NewCoordinator(storage.DefaultPolicy(), testCredentialFunc(server.URL, nil),
		WithOnComplete(func(publicURL string) {
			completions++
			completedURL = publicURL
		}))

	// when
	require.NoError(t, coordinator.Enqueue(context.Background(), pngFile("photo.png", 4096)))
	coordinator.Wait()

	// then
	tasks := coordinator.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, StatusComplete, tasks[0].Status)
	assert.Equal(t, 100, tasks[0].Progress)
	assert.Equal(t, tasks[0].PublicURL, completedURL)
	assert.Equal(t, 1, completions, "completion callback fires exactly once")
	assert.Len(t, received, 4096)
}

func TestTransfer_ShouldReportMonotonicProgress(t *testing.T) {
	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 1024)
		for {
			if _, err := r.Body.Read(buf); err != nil {
				break
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var mu sync.Mutex
	var observed []int
	coordinator := NewCoordinator(storage.DefaultPolicy(), testCredentialFunc(server.URL, nil),
		WithOnProgress(func(task Task) {
			mu.Lock()
			observed = append(observed, task.Progress)
			mu.Unlock()
		}))

	// when
	require.NoError(t, coordinator.Enqueue(context.Background(), pngFile("photo.png", 256*1024)))
	coordinator.Wait()

	// then
	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, observed)
	for i := 1; i < len(observed); i++ {
		assert.GreaterOrEqual(t, observed[i], observed[i-1], "progress never regresses")
	}
	assert.LessOrEqual(t, observed[len(observed)-1], 100)
	assert.Equal(t, 100, coordinator.Tasks()[0].Progress)
}

func TestTransfer_ShouldFailOnNon2xx(t *testing.T) {
	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	completions := 0
	coordinator := NewCoordinator(storage.DefaultPolicy(), testCredentialFunc(server.URL, nil),
		WithOnComplete(func(string) { completions++ }))

	// when
	require.NoError(t, coordinator.Enqueue(context.Background(), pngFile("photo.png", 128)))
	coordinator.Wait()

	// then
	tasks := coordinator.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, StatusError, tasks[0].Status)
	assert.Empty(t, tasks[0].PublicURL)
	assert.Contains(t, tasks[0].Err, "403")
	assert.Zero(t, completions)
}

func TestTransfer_ShouldFailOnCredentialError(t *testing.T) {
	// given
	coordinator := NewCoordinator(storage.DefaultPolicy(),
		func(ctx context.Context, req *storage.PresignUploadRequest) (*storage.WriteCredential, error) {
			return nil, fmt.Errorf("credential error: storage unreachable")
		})

	// when
	require.NoError(t, coordinator.Enqueue(context.Background(), pngFile("photo.png", 128)))
	coordinator.Wait()

	// then
	tasks := coordinator.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, StatusError, tasks[0].Status)
	assert.Contains(t, tasks[0].Err, "credential error")
}

func TestTransfer_ShouldIsolateFailuresBetweenFiles(t *testing.T) {
	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	coordinator := NewCoordinator(storage.DefaultPolicy(), testCredentialFunc(server.URL, nil))

	// when: one invalid and one valid file in the same batch
	require.NoError(t, coordinator.Enqueue(context.Background(),
		File{Name: "bad.txt", ContentType: "text/plain", Data: []byte("nope")},
		pngFile("good.png", 64),
	))
	coordinator.Wait()

	// then
	tasks := coordinator.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, StatusError, tasks[0].Status)
	assert.Equal(t, StatusComplete, tasks[1].Status)
}

func TestRemove_ShouldDeleteCompletedObjectBestEffort(t *testing.T) {
	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var removed []string
	coordinator := NewCoordinator(storage.DefaultPolicy(), testCredentialFunc(server.URL, nil),
		WithRemoveFunc(func(ctx context.Context, publicURL string) {
			removed = append(removed, publicURL)
		}))
	require.NoError(t, coordinator.Enqueue(context.Background(), pngFile("photo.png", 64)))
	coordinator.Wait()
	task := coordinator.Tasks()[0]

	// when
	coordinator.Remove(context.Background(), task.ID)

	// then
	assert.Empty(t, coordinator.Tasks())
	assert.Equal(t, []string{task.PublicURL}, removed)
}
