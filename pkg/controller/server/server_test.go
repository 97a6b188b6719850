package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repocache/pkg/controller/server"
	"github.com/m-mizutani/repocache/pkg/domain/mock"
	"github.com/m-mizutani/repocache/pkg/domain/model"
)

func TestHealth(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

type acceptedResponse struct {
	Status string `json:"status"`
	Job    string `json:"job"`
	RunID  string `json:"run_id"`
}

func TestSyncJob(t *testing.T) {
	t.Run("runs job in background and returns 202", func(t *testing.T) {
		called := make(chan *model.SyncInput, 1)
		uc := &mock.UseCaseMock{
			SyncRepositoriesFunc: func(ctx context.Context, input *model.SyncInput) (*model.SyncReport, error) {
				called <- input
				return &model.SyncReport{}, nil
			},
		}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/sync/awesome-azd", nil))

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		var resp acceptedResponse
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp.Status).Equal("accepted")
		gt.V(t, resp.Job).Equal("awesome-azd")
		gt.V(t, resp.RunID).NotEqual("")

		select {
		case input := <-called:
			gt.V(t, input.ManifestURL).Equal(model.SyncJobs[model.JobAwesomeAzd].ManifestURL)
			gt.V(t, len(input.Supplemental)).Equal(9)
		case <-time.After(time.Second):
			t.Fatal("sync job was not started")
		}
	})

	t.Run("failed job does not affect response", func(t *testing.T) {
		done := make(chan struct{})
		uc := &mock.UseCaseMock{
			SyncRepositoriesFunc: func(ctx context.Context, input *model.SyncInput) (*model.SyncReport, error) {
				defer close(done)
				return nil, errors.New("no credential")
			},
		}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/sync/ai-apps", nil))
		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("sync job was not started")
		}
	})

	t.Run("running job is not started twice", func(t *testing.T) {
		started := make(chan struct{}, 2)
		finish := make(chan struct{})
		uc := &mock.UseCaseMock{
			SyncRepositoriesFunc: func(ctx context.Context, input *model.SyncInput) (*model.SyncReport, error) {
				started <- struct{}{}
				<-finish
				return &model.SyncReport{}, nil
			},
		}
		srv := server.New(uc)

		rec1 := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec1, httptest.NewRequest(http.MethodPost, "/jobs/sync/awesome-azd", nil))
		gt.V(t, rec1.Code).Equal(http.StatusAccepted)
		<-started

		rec2 := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec2, httptest.NewRequest(http.MethodPost, "/jobs/sync/awesome-azd", nil))
		gt.V(t, rec2.Code).Equal(http.StatusConflict)

		rec3 := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec3, httptest.NewRequest(http.MethodPost, "/jobs/sync/ai-apps", nil))
		gt.V(t, rec3.Code).Equal(http.StatusAccepted)
		<-started

		close(finish)
	})

	t.Run("unknown job", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/sync/nothing", nil))

		gt.V(t, rec.Code).Equal(http.StatusNotFound)
		gt.V(t, len(uc.SyncRepositoriesCalls())).Equal(0)
	})

	t.Run("export job is not a sync job", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/sync/ai-templates", nil))
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/sync/awesome-azd", nil))
		gt.V(t, rec.Code).Equal(http.StatusMethodNotAllowed)
	})

	t.Run("custom catalogue", func(t *testing.T) {
		called := make(chan *model.SyncInput, 1)
		uc := &mock.UseCaseMock{
			SyncRepositoriesFunc: func(ctx context.Context, input *model.SyncInput) (*model.SyncReport, error) {
				called <- input
				return &model.SyncReport{}, nil
			},
		}
		srv := server.New(uc, server.WithSyncJobLookup(func(name string) (*model.SyncJob, error) {
			return &model.SyncJob{Name: model.JobName(name), ManifestURL: "https://example.com/" + name}, nil
		}))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/sync/mine", nil))
		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		select {
		case input := <-called:
			gt.V(t, input.ManifestURL).Equal("https://example.com/mine")
		case <-time.After(time.Second):
			t.Fatal("sync job was not started")
		}
	})

	t.Run("lookup failure other than unknown job", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{}, server.WithSyncJobLookup(func(name string) (*model.SyncJob, error) {
			return nil, errors.New("catalogue unavailable")
		}))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/sync/x", nil))
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}

func TestExportJob(t *testing.T) {
	t.Run("runs export in background", func(t *testing.T) {
		called := make(chan *model.ExportInput, 1)
		uc := &mock.UseCaseMock{
			ExportManifestFunc: func(ctx context.Context, input *model.ExportInput) error {
				called <- input
				return nil
			},
		}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/export/ai-templates", nil))
		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		select {
		case input := <-called:
			gt.V(t, input.Destination.Path()).Equal("ai-templates/templates.json")
		case <-time.After(time.Second):
			t.Fatal("export job was not started")
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/export/awesome-azd", nil))
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
		gt.V(t, len(uc.ExportManifestCalls())).Equal(0)
	})
}

func TestWait(t *testing.T) {
	t.Run("blocks until running jobs return", func(t *testing.T) {
		started := make(chan struct{}, 2)
		finish := make(chan struct{})
		uc := &mock.UseCaseMock{
			SyncRepositoriesFunc: func(ctx context.Context, input *model.SyncInput) (*model.SyncReport, error) {
				started <- struct{}{}
				<-finish
				return &model.SyncReport{}, nil
			},
			ExportManifestFunc: func(ctx context.Context, input *model.ExportInput) error {
				started <- struct{}{}
				<-finish
				return nil
			},
		}
		srv := server.New(uc)

		for _, path := range []string{"/jobs/sync/awesome-azd", "/jobs/export/ai-templates"} {
			rec := httptest.NewRecorder()
			srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
			gt.V(t, rec.Code).Equal(http.StatusAccepted)
			<-started
		}

		waited := make(chan error, 1)
		go func() {
			waited <- srv.Wait(context.Background())
		}()

		select {
		case <-waited:
			t.Fatal("Wait returned while jobs are running")
		case <-time.After(50 * time.Millisecond):
		}

		close(finish)
		select {
		case err := <-waited:
			gt.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Wait did not return after jobs finished")
		}
	})

	t.Run("returns immediately without jobs", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		gt.NoError(t, srv.Wait(context.Background()))
	})

	t.Run("gives up when context is done", func(t *testing.T) {
		finish := make(chan struct{})
		defer close(finish)
		started := make(chan struct{}, 1)
		uc := &mock.UseCaseMock{
			SyncRepositoriesFunc: func(ctx context.Context, input *model.SyncInput) (*model.SyncReport, error) {
				started <- struct{}{}
				<-finish
				return &model.SyncReport{}, nil
			},
		}
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/sync/awesome-azd", nil))
		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		<-started

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := srv.Wait(ctx)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}
