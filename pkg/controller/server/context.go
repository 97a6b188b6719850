package server

import (
	"context"

	"github.com/m-mizutani/repocache/pkg/utils/logging"
)

// DetachContext returns a context for a job started by a request. It is not
// cancelled with the request but keeps its logger, run ID and clock.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(bgCtx, ctx)
}
