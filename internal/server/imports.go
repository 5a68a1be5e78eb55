package server

import (
	"errors"
	"net/http"
	"net/url"

	"samko/internal/worker"

	"go.uber.org/zap"
)

type importRequest struct {
	URL        string `json:"url"`
	Category   string `json:"category"`
	Author     string `json:"author"`
	AuthorRole string `json:"authorRole"`
}

// handleImport queues an external article; the worker files it as a draft.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if s.imports == nil {
		writeError(w, http.StatusServiceUnavailable, "Imports are disabled")
		return
	}

	var req importRequest
	if !s.decode(w, r, &req) {
		return
	}
	if !validArticleURL(req.URL) {
		writeError(w, http.StatusBadRequest, "A valid http(s) url is required")
		return
	}

	job := worker.NewImportJob(req.URL)
	job.Category = req.Category
	job.Author = req.Author
	job.AuthorRole = req.AuthorRole

	if err := s.imports.Push(r.Context(), job); err != nil {
		if errors.Is(err, worker.ErrQueueFull) {
			writeError(w, http.StatusServiceUnavailable, "Import queue is full, try again later")
			return
		}
		s.logger.Error("Failed to queue import", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to queue import")
		return
	}

	s.logger.Info("Import queued", zap.String("job_id", job.ID.String()), zap.String("url", job.URL))
	writeData(w, http.StatusAccepted, job, "Import queued")
}

func validArticleURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
