package uploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/burdych/portfolio_server/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const DefaultMaxFiles = 10

type Status string

const (
	StatusUploading Status = "uploading"
	StatusComplete  Status = "complete"
	StatusError     Status = "error"
)

// File is one in-memory file handle selected for upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Task tracks one transfer from admission to its terminal state. Complete and
// error are terminal; only explicit removal takes a task out of the set.
type Task struct {
	ID          string
	Filename    string
	ContentType string
	SizeBytes   int64
	Progress    int
	Status      Status
	PublicURL   string
	Err         string
}

// CredentialFunc requests a write credential for a validated file.
type CredentialFunc func(ctx context.Context, req *storage.PresignUploadRequest) (*storage.WriteCredential, error)

// RemoveFunc deletes the storage object behind a public URL, best-effort.
type RemoveFunc func(ctx context.Context, publicURL string)

// Coordinator moves files into object storage through presigned PUTs,
// tracking per-task progress. Transfers run concurrently; each task's state
// is only ever advanced by its own transfer.
type Coordinator struct {
	policy     storage.Policy
	maxFiles   int
	creds      CredentialFunc
	remove     RemoveFunc
	client     *http.Client
	onComplete func(publicURL string)
	onProgress func(task Task)

	mu    sync.Mutex
	tasks []*Task
	wg    sync.WaitGroup
}

type Option func(*Coordinator)

func WithMaxFiles(n int) Option {
	return func(c *Coordinator) { c.maxFiles = n }
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Coordinator) { c.client = client }
}

// WithOnComplete registers a callback invoked exactly once per successful
// transfer with the durable public URL.
func WithOnComplete(fn func(publicURL string)) Option {
	return func(c *Coordinator) { c.onComplete = fn }
}

func WithOnProgress(fn func(task Task)) Option {
	return func(c *Coordinator) { c.onProgress = fn }
}

func WithRemoveFunc(fn RemoveFunc) Option {
	return func(c *Coordinator) { c.remove = fn }
}

func NewCoordinator(policy storage.Policy, creds CredentialFunc, opts ...Option) *Coordinator {
	c := &Coordinator{
		policy:   policy,
		maxFiles: DefaultMaxFiles,
		creds:    creds,
		client:   &http.Client{Timeout: 10 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enqueue admits files for upload. The whole batch is rejected when it would
// push the task count past the ceiling; otherwise each file gets its own
// task immediately, before any network activity. Files failing the policy
// check become terminal error tasks without a network call; valid files start
// transferring concurrently.
func (c *Coordinator) Enqueue(ctx context.Context, files ...File) error {
	c.mu.Lock()
	if len(c.tasks)+len(files) > c.maxFiles {
		c.mu.Unlock()
		return fmt.Errorf("maximum number of files is %d", c.maxFiles)
	}

	type admitted struct {
		task *Task
		file File
	}
	started := make([]admitted, 0, len(files))
	for _, file := range files {
		task := &Task{
			ID:          uuid.NewString(),
			Filename:    file.Name,
			ContentType: file.ContentType,
			SizeBytes:   int64(len(file.Data)),
			Status:      StatusUploading,
		}
		c.tasks = append(c.tasks, task)

		if err := c.policy.Validate(file.ContentType, int64(len(file.Data))); err != nil {
			task.Status = StatusError
			task.Err = err.Error()
			continue
		}
		started = append(started, admitted{task: task, file: file})
	}
	c.mu.Unlock()

	for _, a := range started {
		c.wg.Add(1)
		go func(task *Task, file File) {
			defer c.wg.Done()
			c.transfer(ctx, task, file)
		}(a.task, a.file)
	}
	return nil
}

func (c *Coordinator) transfer(ctx context.Context, task *Task, file File) {
	credential, err := c.creds(ctx, &storage.PresignUploadRequest{
		Filename:    file.Name,
		ContentType: file.ContentType,
		FileSize:    int64(len(file.Data)),
	})
	if err != nil {
		c.fail(task, err.Error())
		return
	}

	body := &progressReader{
		reader: bytes.NewReader(file.Data),
		total:  int64(len(file.Data)),
		report: func(sent int64) { c.reportProgress(task, sent) },
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, credential.UploadURL, body)
	if err != nil {
		c.fail(task, err.Error())
		return
	}
	req.Header.Set("Content-Type", file.ContentType)
	req.ContentLength = int64(len(file.Data))

	resp, err := c.client.Do(req)
	if err != nil {
		c.fail(task, "network error during upload")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.fail(task, fmt.Sprintf("upload failed: %s", resp.Status))
		return
	}

	c.complete(task, credential.PublicURL)
}

func (c *Coordinator) reportProgress(task *Task, sent int64) {
	c.mu.Lock()
	if task.Status != StatusUploading {
		c.mu.Unlock()
		return
	}
	progress := int(sent * 100 / task.SizeBytes)
	// progress never regresses
	if progress <= task.Progress {
		c.mu.Unlock()
		return
	}
	task.Progress = progress
	snapshot := *task
	c.mu.Unlock()

	if c.onProgress != nil {
		c.onProgress(snapshot)
	}
}

func (c *Coordinator) complete(task *Task, publicURL string) {
	c.mu.Lock()
	task.Status = StatusComplete
	task.Progress = 100
	task.PublicURL = publicURL
	c.mu.Unlock()

	if c.onComplete != nil {
		c.onComplete(publicURL)
	}
}

func (c *Coordinator) fail(task *Task, message string) {
	c.mu.Lock()
	task.Status = StatusError
	task.Err = message
	c.mu.Unlock()
	log.Warn().Str("filename", task.Filename).Str("error", message).Msg("Upload failed")
}

// Tasks returns a snapshot of the task set in admission order.
func (c *Coordinator) Tasks() []Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]Task, len(c.tasks))
	for i, task := range c.tasks {
		result[i] = *task
	}
	return result
}

// Remove dismisses a task. For completed uploads the storage object behind
// the public URL is deleted best-effort; failures never block the removal.
func (c *Coordinator) Remove(ctx context.Context, taskID string) {
	c.mu.Lock()
	var removed *Task
	for i, task := range c.tasks {
		if task.ID == taskID {
			removed = task
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if removed != nil && removed.PublicURL != "" && c.remove != nil {
		c.remove(ctx, removed.PublicURL)
	}
}

// Wait blocks until all in-flight transfers have reached a terminal state.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// progressReader reports cumulative bytes read to the transfer as the HTTP
// client consumes the request body.
type progressReader struct {
	reader io.Reader
	total  int64
	sent   int64
	report func(sent int64)
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.sent += int64(n)
		r.report(r.sent)
	}
	return n, err
}
