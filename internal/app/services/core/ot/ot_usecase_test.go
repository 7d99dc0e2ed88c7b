package ot

import (
	"context"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTheatreRepository struct {
	current      map[string]*models.Patient
	preOperative map[string]*models.Patient
	queues       map[string][]models.Patient
	scheduled    int64
	inProgress   int64
	completed    int64
}

func (f *fakeTheatreRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	return "", nil
}

func (f *fakeTheatreRepository) Update(ctx context.Context, patient *models.Patient) error {
	return nil
}

func (f *fakeTheatreRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return nil, nil
}

func (f *fakeTheatreRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	return nil, nil
}

func (f *fakeTheatreRepository) FindRecent(ctx context.Context, limit int) ([]models.Patient, error) {
	return nil, nil
}

func (f *fakeTheatreRepository) SearchByName(ctx context.Context, term string, limit int) ([]models.Patient, error) {
	return nil, nil
}

func (f *fakeTheatreRepository) HighestTokenNumber(ctx context.Context, prefix string) (string, error) {
	return "", nil
}

func (f *fakeTheatreRepository) FindWaitingByDepartment(ctx context.Context, departmentID string) ([]models.Patient, error) {
	return nil, nil
}

func (f *fakeTheatreRepository) FindCurrentInDepartment(ctx context.Context, departmentID string) (*models.Patient, error) {
	return nil, nil
}

func (f *fakeTheatreRepository) CountByDepartmentAndStatus(ctx context.Context, departmentID, status string) (int64, error) {
	return 0, nil
}

func (f *fakeTheatreRepository) CountPendingTransfersByDepartment(ctx context.Context, departmentID string) (int64, error) {
	return 0, nil
}

func (f *fakeTheatreRepository) FindTheatreCurrent(ctx context.Context, otID string) (*models.Patient, error) {
	return f.current[otID], nil
}

func (f *fakeTheatreRepository) FindTheatrePreOperative(ctx context.Context, otID string) (*models.Patient, error) {
	return f.preOperative[otID], nil
}

func (f *fakeTheatreRepository) FindTheatreQueue(ctx context.Context, otID string) ([]models.Patient, error) {
	return append([]models.Patient(nil), f.queues[otID]...), nil
}

func (f *fakeTheatreRepository) CountTheatreScheduled(ctx context.Context) (int64, error) {
	return f.scheduled, nil
}

func (f *fakeTheatreRepository) CountTheatreInProgress(ctx context.Context) (int64, error) {
	return f.inProgress, nil
}

func (f *fakeTheatreRepository) CountTheatreCompletedSince(ctx context.Context, since time.Time) (int64, error) {
	return f.completed, nil
}

func queuePatient(name, priority string, createdAt time.Time) models.Patient {
	return models.Patient{
		Name:      name,
		Priority:  priority,
		TimeModel: models.TimeModel{CreatedAt: createdAt, UpdatedAt: createdAt},
	}
}

func TestGetTheatreBoard(t *testing.T) {
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	t.Run("orders the queue by priority then arrival", func(t *testing.T) {
		repo := &fakeTheatreRepository{
			queues: map[string][]models.Patient{
				constvars.OT1: {
					queuePatient("normal-late", constvars.PriorityNormal, base.Add(3*time.Hour)),
					queuePatient("urgent", constvars.PriorityUrgent, base.Add(2*time.Hour)),
					queuePatient("emergency-late", constvars.PriorityEmergency, base.Add(4*time.Hour)),
					queuePatient("normal-early", constvars.PriorityNormal, base),
					queuePatient("emergency-early", constvars.PriorityEmergency, base.Add(time.Hour)),
				},
			},
		}
		usecase := NewOTBoardUsecase(repo, zap.NewNop())

		board, err := usecase.GetTheatreBoard(context.Background(), constvars.OT1)
		require.NoError(t, err)

		got := make([]string, len(board.Queue))
		for i, patient := range board.Queue {
			got[i] = patient.Name
		}
		assert.Equal(t, []string{"emergency-early", "emergency-late", "urgent", "normal-early", "normal-late"}, got)
	})

	t.Run("unknown theatre id", func(t *testing.T) {
		usecase := NewOTBoardUsecase(&fakeTheatreRepository{}, zap.NewNop())

		_, err := usecase.GetTheatreBoard(context.Background(), "OT9")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("carries current and pre-operative patients", func(t *testing.T) {
		current := queuePatient("on-table", constvars.PriorityNormal, base)
		preOp := queuePatient("being-prepped", constvars.PriorityNormal, base)
		repo := &fakeTheatreRepository{
			current:      map[string]*models.Patient{constvars.OT2: &current},
			preOperative: map[string]*models.Patient{constvars.OT2: &preOp},
		}
		usecase := NewOTBoardUsecase(repo, zap.NewNop())

		board, err := usecase.GetTheatreBoard(context.Background(), constvars.OT2)
		require.NoError(t, err)
		require.NotNil(t, board.Current)
		assert.Equal(t, "on-table", board.Current.Name)
		require.NotNil(t, board.PreOperative)
		assert.Equal(t, "being-prepped", board.PreOperative.Name)
		assert.Empty(t, board.Queue)
	})
}

func TestGetAllTheatres(t *testing.T) {
	repo := &fakeTheatreRepository{
		scheduled:  7,
		inProgress: 2,
		completed:  3,
	}
	usecase := NewOTBoardUsecase(repo, zap.NewNop())

	overview, err := usecase.GetAllTheatres(context.Background())
	require.NoError(t, err)

	require.Len(t, overview.Theatres, 3)
	for _, otID := range TheatreIDs {
		require.Contains(t, overview.Theatres, otID)
		assert.Equal(t, otID, overview.Theatres[otID].OTID)
	}

	require.NotNil(t, overview.Stats)
	assert.Equal(t, int64(7), overview.Stats.TotalScheduled)
	assert.Equal(t, int64(2), overview.Stats.InProgress)
	assert.Equal(t, int64(3), overview.Stats.CompletedToday)
}
