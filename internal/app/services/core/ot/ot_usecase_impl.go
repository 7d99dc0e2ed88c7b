package ot

import (
	"context"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/responses"
	"medflow-service/internal/pkg/exceptions"
	"medflow-service/internal/pkg/utils"
	"sort"
	"time"

	"go.uber.org/zap"
)

// TheatreIDs is the fixed set of operation theatres.
var TheatreIDs = []string{constvars.OT1, constvars.OT2, constvars.OT3}

type otBoardUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewOTBoardUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.OTBoardUsecase {
	return &otBoardUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
	}
}

func (uc *otBoardUsecase) GetTheatreBoard(ctx context.Context, otID string) (*responses.TheatreBoard, error) {
	if !validTheatreID(otID) {
		return nil, exceptions.ErrTheatreNotFound(nil)
	}

	current, err := uc.PatientRepository.FindTheatreCurrent(ctx, otID)
	if err != nil {
		return nil, err
	}
	preOperative, err := uc.PatientRepository.FindTheatrePreOperative(ctx, otID)
	if err != nil {
		return nil, err
	}
	queue, err := uc.PatientRepository.FindTheatreQueue(ctx, otID)
	if err != nil {
		return nil, err
	}
	sortQueue(queue)

	return &responses.TheatreBoard{
		OTID:         otID,
		Current:      current,
		PreOperative: preOperative,
		Queue:        queue,
	}, nil
}

func (uc *otBoardUsecase) GetAllTheatres(ctx context.Context) (*responses.TheatreOverview, error) {
	theatres := make(map[string]*responses.TheatreBoard, len(TheatreIDs))
	for _, otID := range TheatreIDs {
		board, err := uc.GetTheatreBoard(ctx, otID)
		if err != nil {
			return nil, err
		}
		theatres[otID] = board
	}

	stats, err := uc.GetTheatreStats(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.TheatreOverview{
		Theatres: theatres,
		Stats:    stats,
	}, nil
}

func (uc *otBoardUsecase) GetTheatreStats(ctx context.Context) (*responses.TheatreStats, error) {
	totalScheduled, err := uc.PatientRepository.CountTheatreScheduled(ctx)
	if err != nil {
		return nil, err
	}
	inProgress, err := uc.PatientRepository.CountTheatreInProgress(ctx)
	if err != nil {
		return nil, err
	}
	completedToday, err := uc.PatientRepository.CountTheatreCompletedSince(ctx, utils.StartOfDay(time.Now()))
	if err != nil {
		return nil, err
	}

	return &responses.TheatreStats{
		TotalScheduled: totalScheduled,
		InProgress:     inProgress,
		CompletedToday: completedToday,
	}, nil
}

// sortQueue orders a theatre queue for display: priority first, then
// registration time for patients of equal priority.
func sortQueue(queue []models.Patient) {
	sort.SliceStable(queue, func(i, j int) bool {
		ri, rj := models.PriorityRank(queue[i].Priority), models.PriorityRank(queue[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return queue[i].CreatedAt.Before(queue[j].CreatedAt)
	})
}

func validTheatreID(otID string) bool {
	for _, id := range TheatreIDs {
		if id == otID {
			return true
		}
	}
	return false
}
