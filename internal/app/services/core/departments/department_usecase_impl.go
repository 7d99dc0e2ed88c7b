package departments

import (
	"context"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"medflow-service/internal/pkg/exceptions"
	"sort"

	"go.uber.org/zap"
)

type departmentUsecase struct {
	DepartmentRepository contracts.DepartmentRepository
	PatientRepository    contracts.PatientRepository
	Log                  *zap.Logger
}

func NewDepartmentUsecase(
	departmentRepository contracts.DepartmentRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.DepartmentUsecase {
	return &departmentUsecase{
		DepartmentRepository: departmentRepository,
		PatientRepository:    patientRepository,
		Log:                  logger,
	}
}

func (uc *departmentUsecase) ListDepartments(ctx context.Context) ([]responses.DepartmentSummary, error) {
	departments, err := uc.DepartmentRepository.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]responses.DepartmentSummary, 0, len(departments))
	for _, department := range departments {
		waiting, err := uc.PatientRepository.CountByDepartmentAndStatus(ctx, department.ID, constvars.PatientStatusWaiting)
		if err != nil {
			return nil, err
		}
		inProgress, err := uc.PatientRepository.CountByDepartmentAndStatus(ctx, department.ID, constvars.PatientStatusInProgress)
		if err != nil {
			return nil, err
		}
		pending, err := uc.PatientRepository.CountPendingTransfersByDepartment(ctx, department.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, responses.DepartmentSummary{
			Department:       department,
			WaitingCount:     waiting,
			InProgressCount:  inProgress,
			PendingTransfers: pending,
		})
	}
	return summaries, nil
}

func (uc *departmentUsecase) GetDepartmentBoard(ctx context.Context, departmentID string) (*responses.DepartmentBoard, error) {
	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotFound(nil)
	}

	current, err := uc.PatientRepository.FindCurrentInDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	queue, err := uc.PatientRepository.FindWaitingByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	// repo returns arrival order, priority still outranks it
	sort.SliceStable(queue, func(i, j int) bool {
		ri, rj := models.PriorityRank(queue[i].Priority), models.PriorityRank(queue[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return queue[i].CreatedAt.Before(queue[j].CreatedAt)
	})
	inProgress, err := uc.PatientRepository.CountByDepartmentAndStatus(ctx, departmentID, constvars.PatientStatusInProgress)
	if err != nil {
		return nil, err
	}
	pending, err := uc.PatientRepository.CountPendingTransfersByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	return &responses.DepartmentBoard{
		Department:       *department,
		CurrentPatient:   current,
		Queue:            queue,
		WaitingCount:     int64(len(queue)),
		InProgressCount:  inProgress,
		PendingTransfers: pending,
	}, nil
}

func (uc *departmentUsecase) CreateDepartment(ctx context.Context, request *requests.CreateDepartmentRequest) (*models.Department, error) {
	department := &models.Department{
		Name:        request.Name,
		Description: request.Description,
		Floor:       request.Floor,
		IsActive:    true,
	}
	department.SetCreatedAtUpdatedAt()

	departmentID, err := uc.DepartmentRepository.Create(ctx, department)
	if err != nil {
		return nil, err
	}
	department.ID = departmentID
	return department, nil
}

func (uc *departmentUsecase) UpdateDepartment(ctx context.Context, departmentID string, request *requests.UpdateDepartmentRequest) (*models.Department, error) {
	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotFound(nil)
	}

	if request.Name != "" {
		department.Name = request.Name
	}
	if request.Description != "" {
		department.Description = request.Description
	}
	if request.Floor != nil {
		department.Floor = *request.Floor
	}
	if request.IsActive != nil {
		department.IsActive = *request.IsActive
	}

	department.SetUpdatedAt()
	if err := uc.DepartmentRepository.Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (uc *departmentUsecase) DeactivateDepartment(ctx context.Context, departmentID string) error {
	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return err
	}
	if department == nil {
		return exceptions.ErrDepartmentNotFound(nil)
	}

	department.IsActive = false
	department.SetUpdatedAt()
	return uc.DepartmentRepository.Update(ctx, department)
}
