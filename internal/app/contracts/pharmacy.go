package contracts

import (
	"context"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/dto/requests"
)

type DrugRepository interface {
	Create(ctx context.Context, drug *models.Drug) (string, error)
	Update(ctx context.Context, drug *models.Drug) error
	FindByID(ctx context.Context, drugID string) (*models.Drug, error)
	FindAll(ctx context.Context) ([]models.Drug, error)
	SearchByName(ctx context.Context, term string, limit int) ([]models.Drug, error)
}

type BillRepository interface {
	Create(ctx context.Context, bill *models.PharmacyBill) (string, error)
	FindByID(ctx context.Context, billID string) (*models.PharmacyBill, error)
	FindAll(ctx context.Context) ([]models.PharmacyBill, error)
	Count(ctx context.Context) (int64, error)
}

type PharmacyUsecase interface {
	GetAllDrugs(ctx context.Context) ([]models.Drug, error)
	GetDrugByID(ctx context.Context, drugID string) (*models.Drug, error)
	SearchDrugs(ctx context.Context, term string) ([]models.Drug, error)
	CreateDrug(ctx context.Context, request *requests.CreateDrugRequest) (*models.Drug, error)
	UpdateStock(ctx context.Context, drugID string, request *requests.UpdateStockRequest) (*models.Drug, error)
	CreateBill(ctx context.Context, request *requests.CreateBillRequest) (*models.PharmacyBill, error)
	GetAllBills(ctx context.Context) ([]models.PharmacyBill, error)
	GetBillByID(ctx context.Context, billID string) (*models.PharmacyBill, error)
}
