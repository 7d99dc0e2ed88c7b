package contracts

import (
	"context"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
)

type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) (string, error)
	Update(ctx context.Context, department *models.Department) error
	FindByID(ctx context.Context, departmentID string) (*models.Department, error)
	FindActive(ctx context.Context) ([]models.Department, error)
}

type DepartmentUsecase interface {
	ListDepartments(ctx context.Context) ([]responses.DepartmentSummary, error)
	GetDepartmentBoard(ctx context.Context, departmentID string) (*responses.DepartmentBoard, error)
	CreateDepartment(ctx context.Context, request *requests.CreateDepartmentRequest) (*models.Department, error)
	UpdateDepartment(ctx context.Context, departmentID string, request *requests.UpdateDepartmentRequest) (*models.Department, error)
	DeactivateDepartment(ctx context.Context, departmentID string) error
}
