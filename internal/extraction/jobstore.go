package extraction

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle state of an async extraction job.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job tracks one asynchronous document extraction.
type Job struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Filename  string    `json:"filename"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	Result    *Result   `json:"result,omitempty"`
	ErrorMsg  string    `json:"error,omitempty"`
}

// NewJob creates a pending job with a fresh id.
func NewJob(userID, filename string) *Job {
	return &Job{
		ID:        uuid.New().String(),
		UserID:    userID,
		Filename:  filename,
		Status:    JobPending,
		CreatedAt: time.Now(),
	}
}

// JobStore manages in-memory async extraction jobs with TTL cleanup.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	ttl  time.Duration
	done chan struct{}
}

// NewJobStore creates a job store and starts its background cleanup.
func NewJobStore(ttl time.Duration) *JobStore {
	js := &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
		done: make(chan struct{}),
	}
	go js.cleanup()
	return js
}

// Create stores a new job. Jobs are stored by value so the caller may keep
// mutating its copy between Create and Update without racing readers.
func (js *JobStore) Create(job *Job) error {
	if job.ID == "" {
		return fmt.Errorf("job ID is required")
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	cp := *job
	js.jobs[job.ID] = &cp
	return nil
}

// Get retrieves a snapshot of a job by id.
func (js *JobStore) Get(id string) (*Job, error) {
	js.mu.RLock()
	defer js.mu.RUnlock()
	job, ok := js.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job not found: %s", id)
	}
	cp := *job
	return &cp, nil
}

// Update replaces an existing job's stored state.
func (js *JobStore) Update(job *Job) error {
	js.mu.Lock()
	defer js.mu.Unlock()
	if _, ok := js.jobs[job.ID]; !ok {
		return fmt.Errorf("job not found: %s", job.ID)
	}
	cp := *job
	js.jobs[job.ID] = &cp
	return nil
}

// Stop signals the background cleanup goroutine to exit.
func (js *JobStore) Stop() {
	close(js.done)
}

func (js *JobStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-js.done:
			return
		case <-ticker.C:
			js.mu.Lock()
			now := time.Now()
			for id, job := range js.jobs {
				if now.Sub(job.CreatedAt) > js.ttl {
					delete(js.jobs, id)
				}
			}
			js.mu.Unlock()
		}
	}
}
