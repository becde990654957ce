package main

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statement-engine/internal/classify"
	"statement-engine/internal/config"
	"statement-engine/internal/extraction"
	"statement-engine/internal/model"
	"statement-engine/internal/store"
)

func newTestServer(t *testing.T) (*server, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	jobs := extraction.NewJobStore(time.Hour)
	t.Cleanup(jobs.Stop)
	return &server{
		cfg:  &config.AppConfig{MaxUploadSizeBytes: 1 << 20},
		pipe: extraction.NewPipeline(classify.RuleClassifier{}),
		st:   st,
		jobs: jobs,
	}, st
}

func multipartUpload(t *testing.T, userID string, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if userID != "" {
		require.NoError(t, w.WriteField("userId", userID))
	}
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandleExtractValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("missing user", func(t *testing.T) {
		body, ctype := multipartUpload(t, "", "a.pdf", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/v1/extract", body)
		req.Header.Set("Content-Type", ctype)
		rec := httptest.NewRecorder()

		srv.handleExtract(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		body, ctype := multipartUpload(t, "u1", "", nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/extract", body)
		req.Header.Set("Content-Type", ctype)
		rec := httptest.NewRecorder()

		srv.handleExtract(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unparseable document", func(t *testing.T) {
		body, ctype := multipartUpload(t, "u1", "junk.pdf", []byte("this is not a pdf"))
		req := httptest.NewRequest(http.MethodPost, "/v1/extract", body)
		req.Header.Set("Content-Type", ctype)
		rec := httptest.NewRecorder()

		srv.handleExtract(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleExtractAsync(t *testing.T) {
	srv, _ := newTestServer(t)

	body, ctype := multipartUpload(t, "u1", "junk.pdf", []byte("still not a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/v1/extract?async=1", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()

	srv.handleExtract(rec, req)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var job extraction.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "u1", job.UserID)
	assert.Equal(t, "junk.pdf", job.Filename)

	// The job exists and eventually fails on the unparseable payload.
	require.Eventually(t, func() bool {
		got, err := srv.jobs.Get(job.ID)
		return err == nil && got.Status == extraction.JobFailed
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHandleJobNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/unknown", nil)
	req.SetPathValue("id", "unknown")
	rec := httptest.NewRecorder()

	srv.handleJob(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListTransactions(t *testing.T) {
	srv, st := newTestServer(t)

	_, err := st.SaveTransactions(context.Background(), []model.Transaction{
		{ID: "t1", UserID: "u1", Date: "2024-04-03", Description: "SWIGGY ORDER", Amount: 450, Type: model.Debit, Category: model.CategoryFood},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/u1/transactions", nil)
	req.SetPathValue("userId", "u1")
	rec := httptest.NewRecorder()

	srv.handleListTransactions(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Transactions []model.Transaction `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "t1", resp.Transactions[0].ID)
}
