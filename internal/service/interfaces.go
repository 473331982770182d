package service

import (
	"context"
	"io"

	"github.com/alexanderramin/repcoach/internal/app"
	"github.com/alexanderramin/repcoach/internal/domain"
)

type LogService interface {
	LogSet(ctx context.Context, req app.LogSetRequest) (*domain.SetRecord, error)
	UndoLast(ctx context.Context, req app.UndoSetRequest) (*domain.SetRecord, error)
	ListRecent(ctx context.Context, limit int) ([]domain.SetRecord, error)
	ListAll(ctx context.Context) ([]domain.SetRecord, error)
	Import(ctx context.Context, r io.Reader) (*app.ImportResult, error)
	Export(ctx context.Context, w io.Writer) (int, error)
}

type CoachService interface {
	SessionPlan(ctx context.Context, req app.SessionPlanRequest) (*app.SessionPlanResponse, error)
	Suggest(ctx context.Context, req app.SuggestRequest) (*domain.Recommendation, error)
}

type DeloadService interface {
	Check(ctx context.Context, req app.DeloadRequest) (*app.DeloadResponse, error)
}
