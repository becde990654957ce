package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"statement-engine/internal/config"
	"statement-engine/internal/document"
	"statement-engine/internal/extraction"
	"statement-engine/internal/store"
)

type server struct {
	cfg  *config.AppConfig
	pipe *extraction.Pipeline
	st   store.Store
	jobs *extraction.JobStore
}

// handleExtract accepts a multipart PDF upload and either processes it
// inline or, with ?async=1, registers a job and returns immediately.
func (s *server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadSizeBytes); err != nil {
		httpError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	userID := r.FormValue("userId")
	if userID == "" {
		httpError(w, http.StatusBadRequest, "userId is required")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		httpError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadSizeBytes))
	if err != nil {
		httpError(w, http.StatusBadRequest, "read upload")
		return
	}

	if r.URL.Query().Get("async") == "1" {
		job := extraction.NewJob(userID, header.Filename)
		if err := s.jobs.Create(job); err != nil {
			httpError(w, http.StatusInternalServerError, "create job")
			return
		}
		go s.runJob(job, data)
		writeJSON(w, http.StatusAccepted, job)
		return
	}

	res, err := s.process(data, userID)
	if err != nil {
		switch extraction.CodeOf(err) {
		case extraction.ErrNoContent, extraction.ErrNoTransactionsFound:
			// Not a server fault: the document just has nothing usable.
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"code":    extraction.CodeOf(err),
				"message": err.Error(),
				"result":  res,
			})
		default:
			slog.Error("extraction failed", "file", header.Filename, "err", err)
			httpError(w, http.StatusBadRequest, "could not process document")
		}
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleJob reports the status (and, when finished, result) of an async job.
func (s *server) handleJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.jobs.Get(r.PathValue("id"))
	if err != nil {
		httpError(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// handleListTransactions returns a user's stored transactions.
func (s *server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := s.st.ListTransactions(r.Context(), r.PathValue("userId"))
	if err != nil {
		slog.Error("list transactions", "err", err)
		httpError(w, http.StatusInternalServerError, "list transactions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": txns})
}

// process decodes, extracts and persists one document.
func (s *server) process(data []byte, userID string) (*extraction.Result, error) {
	content, err := document.Decode(data)
	if err != nil {
		return nil, &extraction.Error{Code: extraction.ErrInvalidDocument, Message: "decode PDF", Cause: err}
	}
	res, err := s.pipe.Process(content, userID)
	if err != nil {
		return res, err
	}
	if _, err := s.st.SaveTransactions(context.Background(), res.Transactions); err != nil {
		slog.Error("persist transactions", "user", userID, "err", err)
	}
	return res, nil
}

// runJob executes an async extraction and records its outcome.
func (s *server) runJob(job *extraction.Job, data []byte) {
	job.Status = extraction.JobRunning
	_ = s.jobs.Update(job)

	res, err := s.process(data, job.UserID)
	if err != nil {
		job.Status = extraction.JobFailed
		job.ErrorMsg = err.Error()
		job.Result = res // keeps the diagnostic preview for empty results
	} else {
		job.Status = extraction.JobCompleted
		job.Result = res
	}
	if err := s.jobs.Update(job); err != nil {
		slog.Warn("job expired before completion", "id", job.ID)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
