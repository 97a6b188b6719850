package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repocache/pkg/domain/types"
	"github.com/m-mizutani/repocache/pkg/infra"
	"github.com/m-mizutani/repocache/pkg/usecase"
	"github.com/m-mizutani/repocache/pkg/utils/testutil"
)

func TestFetchManifest(t *testing.T) {
	ctx := context.Background()

	t.Run("sends bearer token and decodes references", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodGet)
			gt.V(t, r.Header.Get("Authorization")).Equal("Bearer ghp_test_token")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"title":"x","source":"https://github.com/Foo/Bar"},{"source":"https://example.com/x"}]`))
		}))
		defer srv.Close()

		uc := usecase.New(infra.New(infra.WithHTTPClient(srv.Client())))
		manifest := gt.R1(uc.FetchManifest(ctx, testToken, srv.URL)).NoError(t)
		gt.V(t, len(manifest.References)).Equal(2)
		gt.V(t, manifest.References[0].Source).Equal("https://github.com/Foo/Bar")
		gt.S(t, string(manifest.Raw)).Contains(`"title":"x"`)
	})

	t.Run("non 200 status is an error", func(t *testing.T) {
		client := testutil.HTTPClientFunc(func(req *http.Request) (*http.Response, error) {
			return testutil.NewResponse(http.StatusNotFound, "not found"), nil
		})
		uc := usecase.New(infra.New(infra.WithHTTPClient(client)))
		_, err := uc.FetchManifest(ctx, testToken, testManifestURL)
		gt.Error(t, err)
	})

	t.Run("transport error", func(t *testing.T) {
		client := testutil.HTTPClientFunc(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})
		uc := usecase.New(infra.New(infra.WithHTTPClient(client)))
		_, err := uc.FetchManifest(ctx, testToken, testManifestURL)
		gt.Error(t, err)
	})

	t.Run("body is not JSON", func(t *testing.T) {
		client := testutil.HTTPClientFunc(func(req *http.Request) (*http.Response, error) {
			return testutil.NewResponse(http.StatusOK, "<html></html>"), nil
		})
		uc := usecase.New(infra.New(infra.WithHTTPClient(client)))
		_, err := uc.FetchManifest(ctx, testToken, testManifestURL)
		gt.True(t, errors.Is(err, types.ErrInvalidManifest))
	})

	t.Run("JSON but not an array", func(t *testing.T) {
		client := testutil.HTTPClientFunc(func(req *http.Request) (*http.Response, error) {
			return testutil.NewResponse(http.StatusOK, `{"source":"https://github.com/a/b"}`), nil
		})
		uc := usecase.New(infra.New(infra.WithHTTPClient(client)))
		_, err := uc.FetchManifest(ctx, testToken, testManifestURL)
		gt.True(t, errors.Is(err, types.ErrInvalidManifest))
	})
}

func TestFetchManifestRaw(t *testing.T) {
	body := `[{"source":"https://github.com/a/b","tags":["x"]}]`
	client := testutil.HTTPClientFunc(func(req *http.Request) (*http.Response, error) {
		gt.V(t, req.URL.String()).Equal(testManifestURL)
		return testutil.NewResponse(http.StatusOK, body), nil
	})

	raw := gt.R1(usecase.FetchManifestRawForTest(context.Background(), client, testToken, testManifestURL)).NoError(t)
	gt.V(t, string(raw)).Equal(body)
}
