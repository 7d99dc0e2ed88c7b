package departments

import (
	"context"
	"fmt"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDepartmentRepository struct {
	departments map[string]*models.Department
	nextID      int
}

func newFakeDepartmentRepository() *fakeDepartmentRepository {
	return &fakeDepartmentRepository{departments: map[string]*models.Department{}}
}

func (f *fakeDepartmentRepository) Create(ctx context.Context, department *models.Department) (string, error) {
	f.nextID++
	id := fmt.Sprintf("dept-%d", f.nextID)
	stored := *department
	stored.ID = id
	f.departments[id] = &stored
	return id, nil
}

func (f *fakeDepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	stored := *department
	f.departments[department.ID] = &stored
	return nil
}

func (f *fakeDepartmentRepository) FindByID(ctx context.Context, departmentID string) (*models.Department, error) {
	department, ok := f.departments[departmentID]
	if !ok {
		return nil, nil
	}
	copied := *department
	return &copied, nil
}

func (f *fakeDepartmentRepository) FindActive(ctx context.Context) ([]models.Department, error) {
	var active []models.Department
	for _, department := range f.departments {
		if department.IsActive {
			active = append(active, *department)
		}
	}
	return active, nil
}

// fakePatientReads stubs only the board queries; the embedded interface
// panics on anything the departments usecase should never call.
type fakePatientReads struct {
	contracts.PatientRepository
	waiting  map[string][]models.Patient
	current  map[string]*models.Patient
	byStatus map[string]int64
	pending  map[string]int64
}

func (f *fakePatientReads) FindWaitingByDepartment(ctx context.Context, departmentID string) ([]models.Patient, error) {
	return f.waiting[departmentID], nil
}

func (f *fakePatientReads) FindCurrentInDepartment(ctx context.Context, departmentID string) (*models.Patient, error) {
	return f.current[departmentID], nil
}

func (f *fakePatientReads) CountByDepartmentAndStatus(ctx context.Context, departmentID, status string) (int64, error) {
	return f.byStatus[departmentID+"/"+status], nil
}

func (f *fakePatientReads) CountPendingTransfersByDepartment(ctx context.Context, departmentID string) (int64, error) {
	return f.pending[departmentID], nil
}

func waitingPatient(name, priority string, arrivedAt time.Time) models.Patient {
	patient := models.Patient{
		Name:     name,
		Priority: priority,
		Status:   constvars.PatientStatusWaiting,
	}
	patient.CreatedAt = arrivedAt
	return patient
}

func TestListDepartments(t *testing.T) {
	departmentRepo := newFakeDepartmentRepository()
	departmentRepo.departments["dept-1"] = &models.Department{ID: "dept-1", Name: "Cardiology", IsActive: true}
	departmentRepo.departments["dept-2"] = &models.Department{ID: "dept-2", Name: "Orthopedics", IsActive: false}

	patients := &fakePatientReads{
		byStatus: map[string]int64{
			"dept-1/" + constvars.PatientStatusWaiting:    4,
			"dept-1/" + constvars.PatientStatusInProgress: 1,
		},
		pending: map[string]int64{"dept-1": 2},
	}
	uc := NewDepartmentUsecase(departmentRepo, patients, zap.NewNop())

	summaries, err := uc.ListDepartments(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1, "inactive departments stay off the directory")
	assert.Equal(t, "Cardiology", summaries[0].Name)
	assert.Equal(t, int64(4), summaries[0].WaitingCount)
	assert.Equal(t, int64(1), summaries[0].InProgressCount)
	assert.Equal(t, int64(2), summaries[0].PendingTransfers)
}

func TestGetDepartmentBoard(t *testing.T) {
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	departmentRepo := newFakeDepartmentRepository()
	departmentRepo.departments["dept-1"] = &models.Department{ID: "dept-1", Name: "Cardiology", IsActive: true}

	current := waitingPatient("Dr Seen Now", constvars.PriorityNormal, base)
	current.Status = constvars.PatientStatusInProgress

	patients := &fakePatientReads{
		waiting: map[string][]models.Patient{
			"dept-1": {
				waitingPatient("normal-early", constvars.PriorityNormal, base.Add(1*time.Minute)),
				waitingPatient("emergency-late", constvars.PriorityEmergency, base.Add(30*time.Minute)),
				waitingPatient("urgent", constvars.PriorityUrgent, base.Add(10*time.Minute)),
				waitingPatient("emergency-early", constvars.PriorityEmergency, base.Add(5*time.Minute)),
			},
		},
		current:  map[string]*models.Patient{"dept-1": &current},
		byStatus: map[string]int64{"dept-1/" + constvars.PatientStatusInProgress: 1},
		pending:  map[string]int64{"dept-1": 1},
	}
	uc := NewDepartmentUsecase(departmentRepo, patients, zap.NewNop())

	t.Run("orders the queue by priority then arrival", func(t *testing.T) {
		board, err := uc.GetDepartmentBoard(context.Background(), "dept-1")
		require.NoError(t, err)

		var names []string
		for _, patient := range board.Queue {
			names = append(names, patient.Name)
		}
		assert.Equal(t, []string{"emergency-early", "emergency-late", "urgent", "normal-early"}, names)
		assert.Equal(t, int64(4), board.WaitingCount)
		assert.Equal(t, int64(1), board.InProgressCount)
		assert.Equal(t, int64(1), board.PendingTransfers)
		require.NotNil(t, board.CurrentPatient)
		assert.Equal(t, "Dr Seen Now", board.CurrentPatient.Name)
	})

	t.Run("unknown department", func(t *testing.T) {
		_, err := uc.GetDepartmentBoard(context.Background(), "dept-9")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestCreateDepartment(t *testing.T) {
	departmentRepo := newFakeDepartmentRepository()
	uc := NewDepartmentUsecase(departmentRepo, &fakePatientReads{}, zap.NewNop())

	department, err := uc.CreateDepartment(context.Background(), &requests.CreateDepartmentRequest{
		Name:  "Neurology",
		Floor: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "dept-1", department.ID)
	assert.True(t, department.IsActive)
	assert.False(t, department.CreatedAt.IsZero())
}

func TestUpdateDepartment(t *testing.T) {
	departmentRepo := newFakeDepartmentRepository()
	departmentRepo.departments["dept-1"] = &models.Department{ID: "dept-1", Name: "Cardiology", Floor: 2, IsActive: true}
	uc := NewDepartmentUsecase(departmentRepo, &fakePatientReads{}, zap.NewNop())

	t.Run("patches only provided fields", func(t *testing.T) {
		newFloor := 5
		inactive := false
		department, err := uc.UpdateDepartment(context.Background(), "dept-1", &requests.UpdateDepartmentRequest{
			Floor:    &newFloor,
			IsActive: &inactive,
		})
		require.NoError(t, err)
		assert.Equal(t, "Cardiology", department.Name)
		assert.Equal(t, 5, department.Floor)
		assert.False(t, department.IsActive)
	})

	t.Run("unknown department", func(t *testing.T) {
		_, err := uc.UpdateDepartment(context.Background(), "dept-9", &requests.UpdateDepartmentRequest{})
		require.Error(t, err)
	})
}

func TestDeactivateDepartment(t *testing.T) {
	departmentRepo := newFakeDepartmentRepository()
	departmentRepo.departments["dept-1"] = &models.Department{ID: "dept-1", Name: "Cardiology", IsActive: true}
	uc := NewDepartmentUsecase(departmentRepo, &fakePatientReads{}, zap.NewNop())

	require.NoError(t, uc.DeactivateDepartment(context.Background(), "dept-1"))
	assert.False(t, departmentRepo.departments["dept-1"].IsActive)

	err := uc.DeactivateDepartment(context.Background(), "dept-9")
	require.Error(t, err)
}
