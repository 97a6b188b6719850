package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/repocache/pkg/domain/interfaces"
	"github.com/m-mizutani/repocache/pkg/domain/model"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/utils/errutil"
	"github.com/m-mizutani/repocache/pkg/utils/logging"
)

type Server struct {
	mux  *chi.Mux
	jobs sync.WaitGroup
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type jobResponse struct {
	Status  string `json:"status"`
	Job     string `json:"job"`
	RunID   string `json:"run_id,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, resp *jobResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

type config struct {
	syncJobs   func(name string) (*model.SyncJob, error)
	exportJobs func(name string) (*model.ExportJob, error)
}

type Option func(*config)

// WithSyncJobLookup replaces the catalogue of sync jobs served by /jobs/sync/{job}
func WithSyncJobLookup(f func(name string) (*model.SyncJob, error)) Option {
	return func(cfg *config) {
		cfg.syncJobs = f
	}
}

// WithExportJobLookup replaces the catalogue of export jobs served by /jobs/export/{job}
func WithExportJobLookup(f func(name string) (*model.ExportJob, error)) Option {
	return func(cfg *config) {
		cfg.exportJobs = f
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		syncJobs:   model.LookupSyncJob,
		exportJobs: model.LookupExportJob,
	}
	for _, opt := range options {
		opt(cfg)
	}

	locks := newJobLock()
	srv := &Server{}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/jobs", func(r chi.Router) {
		r.Post("/sync/{job}", func(w http.ResponseWriter, r *http.Request) {
			name := chi.URLParam(r, "job")
			job, err := cfg.syncJobs(name)
			if err != nil {
				handleJobLookupError(w, r, name, err)
				return
			}

			lockKey := "sync:" + name
			if !locks.tryAcquire(lockKey) {
				writeJSON(w, http.StatusConflict, &jobResponse{Status: "running", Job: name, Message: "job is already running"})
				return
			}

			// The request context is cancelled once the response is sent
			bgCtx := DetachContext(r.Context())
			runID, _ := logging.CtxRunID(bgCtx)
			srv.jobs.Add(1)
			go func() {
				defer srv.jobs.Done()
				defer locks.release(lockKey)
				runSyncJob(bgCtx, uc, job)
			}()

			writeJSON(w, http.StatusAccepted, &jobResponse{Status: "accepted", Job: name, RunID: runID.String()})
		})
		r.Post("/export/{job}", func(w http.ResponseWriter, r *http.Request) {
			name := chi.URLParam(r, "job")
			job, err := cfg.exportJobs(name)
			if err != nil {
				handleJobLookupError(w, r, name, err)
				return
			}

			lockKey := "export:" + name
			if !locks.tryAcquire(lockKey) {
				writeJSON(w, http.StatusConflict, &jobResponse{Status: "running", Job: name, Message: "job is already running"})
				return
			}

			bgCtx := DetachContext(r.Context())
			runID, _ := logging.CtxRunID(bgCtx)
			srv.jobs.Add(1)
			go func() {
				defer srv.jobs.Done()
				defer locks.release(lockKey)
				runExportJob(bgCtx, uc, job)
			}()

			writeJSON(w, http.StatusAccepted, &jobResponse{Status: "accepted", Job: name, RunID: runID.String()})
		})
	})

	srv.mux = r
	return srv
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

// Wait blocks until every job started by the server has returned, or ctx is done.
// Call it after the HTTP server stops accepting requests and before the clients used by jobs are closed.
func (x *Server) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		x.jobs.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func handleJobLookupError(w http.ResponseWriter, r *http.Request, name string, err error) {
	if errors.Is(err, types.ErrUnknownJob) {
		logging.From(r.Context()).Warn("unknown job requested", slog.String("job", name))
		writeJSON(w, http.StatusNotFound, &jobResponse{Status: "error", Job: name, Message: "job not found"})
		return
	}

	errutil.HandleError(r.Context(), "fail to look up job", err)
	writeJSON(w, http.StatusInternalServerError, &jobResponse{Status: "error", Job: name, Message: err.Error()})
}
