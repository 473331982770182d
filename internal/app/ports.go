package app

import (
	"context"
	"io"

	"github.com/alexanderramin/repcoach/internal/domain"
)

type LogSetUseCase interface {
	LogSet(ctx context.Context, req LogSetRequest) (*domain.SetRecord, error)
}

type UndoSetUseCase interface {
	UndoLast(ctx context.Context, req UndoSetRequest) (*domain.SetRecord, error)
}

type SessionPlanUseCase interface {
	SessionPlan(ctx context.Context, req SessionPlanRequest) (*SessionPlanResponse, error)
}

type SuggestUseCase interface {
	Suggest(ctx context.Context, req SuggestRequest) (*domain.Recommendation, error)
}

type DeloadUseCase interface {
	Check(ctx context.Context, req DeloadRequest) (*DeloadResponse, error)
}

type ImportLogUseCase interface {
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
}

type ExportLogUseCase interface {
	Export(ctx context.Context, w io.Writer) (int, error)
}
