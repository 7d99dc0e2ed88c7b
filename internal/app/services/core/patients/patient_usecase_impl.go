package patients

import (
	"context"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Publisher         contracts.NotificationPublisher
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	publisher contracts.NotificationPublisher,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Publisher:         publisher,
		Log:               logger,
	}
}

func (uc *patientUsecase) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	return uc.PatientRepository.FindAll(ctx)
}

func (uc *patientUsecase) GetRecentPatients(ctx context.Context) ([]models.Patient, error) {
	return uc.PatientRepository.FindRecent(ctx, constvars.RecentPatientsLimit)
}

func (uc *patientUsecase) SearchPatients(ctx context.Context, term string) ([]models.Patient, error) {
	if term == "" {
		return nil, exceptions.ErrSearchTermRequired(nil)
	}
	return uc.PatientRepository.SearchByName(ctx, term, constvars.SearchResultsLimit)
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}

// UpdateDemographics patches the identity fields only, location and
// stage changes go through the flow engine.
func (uc *patientUsecase) UpdateDemographics(ctx context.Context, patientID string, request *requests.UpdatePatientRequest) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	if request.Name != "" {
		patient.Name = request.Name
	}
	if request.Age != nil {
		patient.Age = *request.Age
	}
	if request.Gender != "" {
		patient.Gender = request.Gender
	}
	if request.DepartmentID != "" {
		patient.DepartmentID = request.DepartmentID
	}
	if request.Priority != "" {
		patient.Priority = request.Priority
	}
	if request.ContactNumber != "" {
		patient.ContactNumber = request.ContactNumber
	}
	if request.Status != "" {
		patient.Status = request.Status
	}

	patient.SetUpdatedAt()
	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		return nil, err
	}

	uc.Publisher.Publish(constvars.EventPatientUpdated, patient)
	return patient, nil
}
