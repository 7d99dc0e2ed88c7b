package pharmacy

import (
	"context"
	"fmt"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type pharmacyUsecase struct {
	DrugRepository contracts.DrugRepository
	BillRepository contracts.BillRepository
	Log            *zap.Logger
}

func NewPharmacyUsecase(
	drugRepository contracts.DrugRepository,
	billRepository contracts.BillRepository,
	logger *zap.Logger,
) contracts.PharmacyUsecase {
	return &pharmacyUsecase{
		DrugRepository: drugRepository,
		BillRepository: billRepository,
		Log:            logger,
	}
}

func (uc *pharmacyUsecase) GetAllDrugs(ctx context.Context) ([]models.Drug, error) {
	return uc.DrugRepository.FindAll(ctx)
}

func (uc *pharmacyUsecase) GetDrugByID(ctx context.Context, drugID string) (*models.Drug, error) {
	drug, err := uc.DrugRepository.FindByID(ctx, drugID)
	if err != nil {
		return nil, err
	}
	if drug == nil {
		return nil, exceptions.ErrDrugNotFound(nil)
	}
	return drug, nil
}

func (uc *pharmacyUsecase) SearchDrugs(ctx context.Context, term string) ([]models.Drug, error) {
	if term == "" {
		return nil, exceptions.ErrSearchTermRequired(nil)
	}
	return uc.DrugRepository.SearchByName(ctx, term, constvars.SearchResultsLimit)
}

func (uc *pharmacyUsecase) CreateDrug(ctx context.Context, request *requests.CreateDrugRequest) (*models.Drug, error) {
	drug := &models.Drug{
		Name:         request.Name,
		Code:         request.Code,
		Category:     request.Category,
		Manufacturer: request.Manufacturer,
		Description:  request.Description,
		UnitPrice:    request.UnitPrice,
		Stock: models.DrugStock{
			Quantity:      request.Stock.Quantity,
			Unit:          request.Stock.Unit,
			ReorderLevel:  request.Stock.ReorderLevel,
			CriticalLevel: request.Stock.CriticalLevel,
		},
		BatchNumber: request.BatchNumber,
		ExpiryDate:  request.ExpiryDate,
		Location: models.DrugLocation{
			Shelf: request.Location.Shelf,
			Bin:   request.Location.Bin,
		},
		Transactions: []models.StockTransaction{},
	}
	drug.RefreshStatus()
	drug.SetCreatedAtUpdatedAt()

	drugID, err := uc.DrugRepository.Create(ctx, drug)
	if err != nil {
		return nil, err
	}
	drug.ID = drugID
	return drug, nil
}

// UpdateStock applies a received or dispensed movement and logs it in
// the drug's transaction trail. Dispensing never drives stock negative.
func (uc *pharmacyUsecase) UpdateStock(ctx context.Context, drugID string, request *requests.UpdateStockRequest) (*models.Drug, error) {
	drug, err := uc.DrugRepository.FindByID(ctx, drugID)
	if err != nil {
		return nil, err
	}
	if drug == nil {
		return nil, exceptions.ErrDrugNotFound(nil)
	}

	switch request.Type {
	case constvars.StockTransactionReceived:
		drug.Stock.Quantity += request.Quantity
	case constvars.StockTransactionDispensed:
		if drug.Stock.Quantity < request.Quantity {
			return nil, exceptions.ErrInsufficientStock(nil)
		}
		drug.Stock.Quantity -= request.Quantity
	}

	drug.Transactions = append(drug.Transactions, models.StockTransaction{
		Type:      request.Type,
		Quantity:  request.Quantity,
		Timestamp: time.Now(),
	})
	drug.RefreshStatus()

	drug.SetUpdatedAt()
	if err := uc.DrugRepository.Update(ctx, drug); err != nil {
		return nil, err
	}
	return drug, nil
}

// CreateBill dispenses every line item and writes the bill. Stock for
// all items is verified before any deduction so a failing line leaves
// the inventory untouched.
func (uc *pharmacyUsecase) CreateBill(ctx context.Context, request *requests.CreateBillRequest) (*models.PharmacyBill, error) {
	drugs := make([]*models.Drug, len(request.Medicines))
	for i, medicine := range request.Medicines {
		drug, err := uc.DrugRepository.FindByID(ctx, medicine.DrugID)
		if err != nil {
			return nil, err
		}
		if drug == nil {
			return nil, exceptions.ErrDrugNotFound(nil)
		}
		if drug.Stock.Quantity < medicine.Quantity {
			return nil, exceptions.ErrInsufficientStock(nil)
		}
		drugs[i] = drug
	}

	now := time.Now()
	for i, medicine := range request.Medicines {
		drug := drugs[i]
		drug.Stock.Quantity -= medicine.Quantity
		drug.Transactions = append(drug.Transactions, models.StockTransaction{
			Type:      constvars.StockTransactionDispensed,
			Quantity:  medicine.Quantity,
			PatientID: request.PatientID,
			Timestamp: now,
		})
		drug.RefreshStatus()
		drug.SetUpdatedAt()
		if err := uc.DrugRepository.Update(ctx, drug); err != nil {
			return nil, err
		}
	}

	billNumber, err := uc.nextBillNumber(ctx)
	if err != nil {
		return nil, err
	}

	medicines := make([]models.BillMedicine, len(request.Medicines))
	for i, medicine := range request.Medicines {
		medicines[i] = models.BillMedicine{
			DrugID:    medicine.DrugID,
			Quantity:  medicine.Quantity,
			UnitPrice: medicine.UnitPrice,
			Total:     medicine.Total,
		}
	}

	bill := &models.PharmacyBill{
		BillNumber: billNumber,
		Date:       now,
		PatientID:  request.PatientID,
		Doctor:     request.Doctor,
		Medicines:  medicines,
		Subtotal:   request.Subtotal,
		Tax:        request.Tax,
		Total:      request.Total,
	}

	billID, err := uc.BillRepository.Create(ctx, bill)
	if err != nil {
		return nil, err
	}
	bill.ID = billID
	return bill, nil
}

func (uc *pharmacyUsecase) nextBillNumber(ctx context.Context) (string, error) {
	count, err := uc.BillRepository.Count(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", constvars.BillNumberPrefix, constvars.BillNumberSequenceWidth, count+1), nil
}

func (uc *pharmacyUsecase) GetAllBills(ctx context.Context) ([]models.PharmacyBill, error) {
	return uc.BillRepository.FindAll(ctx)
}

func (uc *pharmacyUsecase) GetBillByID(ctx context.Context, billID string) (*models.PharmacyBill, error) {
	bill, err := uc.BillRepository.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, exceptions.ErrBillNotFound(nil)
	}
	return bill, nil
}
