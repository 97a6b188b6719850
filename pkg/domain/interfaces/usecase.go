package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/repocache/pkg/domain/model"
)

type UseCase interface {
	SyncRepositories(ctx context.Context, input *model.SyncInput) (*model.SyncReport, error)
	ExportManifest(ctx context.Context, input *model.ExportInput) error
}
