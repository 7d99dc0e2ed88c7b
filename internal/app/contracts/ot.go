package contracts

import (
	"context"
	"medflow-service/internal/pkg/dto/responses"
)

// OTBoardUsecase is the read-only query surface over the theatres. It
// never mutates patient state.
type OTBoardUsecase interface {
	GetTheatreBoard(ctx context.Context, otID string) (*responses.TheatreBoard, error)
	GetAllTheatres(ctx context.Context) (*responses.TheatreOverview, error)
	GetTheatreStats(ctx context.Context) (*responses.TheatreStats, error)
}
