package contracts

import (
	"context"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/dto/requests"
	"time"
)

// PatientRepository is the persistence surface of the patient record
// store. Absent documents are reported as (nil, nil), mirroring the
// driver's ErrNoDocuments handling.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (string, error)
	Update(ctx context.Context, patient *models.Patient) error
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindRecent(ctx context.Context, limit int) ([]models.Patient, error)
	SearchByName(ctx context.Context, term string, limit int) ([]models.Patient, error)

	// HighestTokenNumber returns the lexically greatest token with the
	// given date prefix, or "" when no patient registered that day.
	HighestTokenNumber(ctx context.Context, prefix string) (string, error)

	// Department board reads
	FindWaitingByDepartment(ctx context.Context, departmentID string) ([]models.Patient, error)
	FindCurrentInDepartment(ctx context.Context, departmentID string) (*models.Patient, error)
	CountByDepartmentAndStatus(ctx context.Context, departmentID, status string) (int64, error)
	CountPendingTransfersByDepartment(ctx context.Context, departmentID string) (int64, error)

	// Operation theatre reads
	FindTheatreCurrent(ctx context.Context, otID string) (*models.Patient, error)
	FindTheatrePreOperative(ctx context.Context, otID string) (*models.Patient, error)
	FindTheatreQueue(ctx context.Context, otID string) ([]models.Patient, error)
	CountTheatreScheduled(ctx context.Context) (int64, error)
	CountTheatreInProgress(ctx context.Context) (int64, error)
	CountTheatreCompletedSince(ctx context.Context, since time.Time) (int64, error)
}

type PatientUsecase interface {
	GetAllPatients(ctx context.Context) ([]models.Patient, error)
	GetRecentPatients(ctx context.Context) ([]models.Patient, error)
	SearchPatients(ctx context.Context, term string) ([]models.Patient, error)
	GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	UpdateDemographics(ctx context.Context, patientID string, request *requests.UpdatePatientRequest) (*models.Patient, error)
}
