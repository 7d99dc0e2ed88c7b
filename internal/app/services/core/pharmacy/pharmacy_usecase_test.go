package pharmacy

import (
	"context"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDrugRepository struct {
	drugs  map[string]*models.Drug
	nextID int
}

func newFakeDrugRepository() *fakeDrugRepository {
	return &fakeDrugRepository{drugs: map[string]*models.Drug{}}
}

func copyDrug(d *models.Drug) *models.Drug {
	out := *d
	out.Transactions = append([]models.StockTransaction(nil), d.Transactions...)
	return &out
}

func (f *fakeDrugRepository) Create(ctx context.Context, drug *models.Drug) (string, error) {
	f.nextID++
	id := "drug-" + strconv.Itoa(f.nextID)
	drug.ID = id
	f.drugs[id] = copyDrug(drug)
	return id, nil
}

func (f *fakeDrugRepository) Update(ctx context.Context, drug *models.Drug) error {
	f.drugs[drug.ID] = copyDrug(drug)
	return nil
}

func (f *fakeDrugRepository) FindByID(ctx context.Context, drugID string) (*models.Drug, error) {
	drug, ok := f.drugs[drugID]
	if !ok {
		return nil, nil
	}
	return copyDrug(drug), nil
}

func (f *fakeDrugRepository) FindAll(ctx context.Context) ([]models.Drug, error) {
	return nil, nil
}

func (f *fakeDrugRepository) SearchByName(ctx context.Context, term string, limit int) ([]models.Drug, error) {
	return nil, nil
}

type fakeBillRepository struct {
	bills  []*models.PharmacyBill
	nextID int
}

func (f *fakeBillRepository) Create(ctx context.Context, bill *models.PharmacyBill) (string, error) {
	f.nextID++
	id := "bill-" + strconv.Itoa(f.nextID)
	bill.ID = id
	stored := *bill
	f.bills = append(f.bills, &stored)
	return id, nil
}

func (f *fakeBillRepository) FindByID(ctx context.Context, billID string) (*models.PharmacyBill, error) {
	for _, bill := range f.bills {
		if bill.ID == billID {
			out := *bill
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeBillRepository) FindAll(ctx context.Context) ([]models.PharmacyBill, error) {
	out := make([]models.PharmacyBill, len(f.bills))
	for i, bill := range f.bills {
		out[i] = *bill
	}
	return out, nil
}

func (f *fakeBillRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.bills)), nil
}

func seedDrug(repo *fakeDrugRepository, quantity, critical int) string {
	drug := &models.Drug{
		Name:      "Paracetamol 500mg",
		Code:      "PARA500",
		UnitPrice: 2.50,
		Stock: models.DrugStock{
			Quantity:      quantity,
			ReorderLevel:  critical * 2,
			CriticalLevel: critical,
		},
		Transactions: []models.StockTransaction{},
	}
	drug.RefreshStatus()
	id, _ := repo.Create(context.Background(), drug)
	return id
}

func conflictCode(t *testing.T, err error) int {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	return customErr.StatusCode
}

func TestUpdateStock(t *testing.T) {
	t.Run("receiving increases quantity and logs a transaction", func(t *testing.T) {
		drugs := newFakeDrugRepository()
		drugID := seedDrug(drugs, 10, 5)
		usecase := NewPharmacyUsecase(drugs, &fakeBillRepository{}, zap.NewNop())

		drug, err := usecase.UpdateStock(context.Background(), drugID, &requests.UpdateStockRequest{
			Quantity: 40,
			Type:     constvars.StockTransactionReceived,
		})
		require.NoError(t, err)

		assert.Equal(t, 50, drug.Stock.Quantity)
		assert.Equal(t, constvars.DrugStatusAvailable, drug.Status)
		require.Len(t, drug.Transactions, 1)
		assert.Equal(t, constvars.StockTransactionReceived, drug.Transactions[0].Type)
	})

	t.Run("dispensing below the critical level flips the status", func(t *testing.T) {
		drugs := newFakeDrugRepository()
		drugID := seedDrug(drugs, 10, 5)
		usecase := NewPharmacyUsecase(drugs, &fakeBillRepository{}, zap.NewNop())

		drug, err := usecase.UpdateStock(context.Background(), drugID, &requests.UpdateStockRequest{
			Quantity: 6,
			Type:     constvars.StockTransactionDispensed,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, drug.Stock.Quantity)
		assert.Equal(t, constvars.DrugStatusLowStock, drug.Status)
	})

	t.Run("dispensing everything marks it out of stock", func(t *testing.T) {
		drugs := newFakeDrugRepository()
		drugID := seedDrug(drugs, 10, 5)
		usecase := NewPharmacyUsecase(drugs, &fakeBillRepository{}, zap.NewNop())

		drug, err := usecase.UpdateStock(context.Background(), drugID, &requests.UpdateStockRequest{
			Quantity: 10,
			Type:     constvars.StockTransactionDispensed,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, drug.Stock.Quantity)
		assert.Equal(t, constvars.DrugStatusOutOfStock, drug.Status)
	})

	t.Run("insufficient stock conflicts without mutation", func(t *testing.T) {
		drugs := newFakeDrugRepository()
		drugID := seedDrug(drugs, 3, 5)
		usecase := NewPharmacyUsecase(drugs, &fakeBillRepository{}, zap.NewNop())

		_, err := usecase.UpdateStock(context.Background(), drugID, &requests.UpdateStockRequest{
			Quantity: 4,
			Type:     constvars.StockTransactionDispensed,
		})
		require.Error(t, err)
		assert.Equal(t, 409, conflictCode(t, err))

		stored, err := drugs.FindByID(context.Background(), drugID)
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Stock.Quantity)
		assert.Empty(t, stored.Transactions)
	})

	t.Run("unknown drug", func(t *testing.T) {
		usecase := NewPharmacyUsecase(newFakeDrugRepository(), &fakeBillRepository{}, zap.NewNop())

		_, err := usecase.UpdateStock(context.Background(), "missing", &requests.UpdateStockRequest{
			Quantity: 1,
			Type:     constvars.StockTransactionReceived,
		})
		require.Error(t, err)
		assert.Equal(t, 404, conflictCode(t, err))
	})
}

func TestCreateBill(t *testing.T) {
	t.Run("dispenses stock and numbers the bill sequentially", func(t *testing.T) {
		drugs := newFakeDrugRepository()
		drugID := seedDrug(drugs, 100, 10)
		bills := &fakeBillRepository{}
		usecase := NewPharmacyUsecase(drugs, bills, zap.NewNop())

		request := &requests.CreateBillRequest{
			PatientID: "patient-1",
			Doctor:    "Dr. Rao",
			Medicines: []requests.BillMedicineRequest{
				{DrugID: drugID, Quantity: 4, UnitPrice: 2.50, Total: 10},
			},
			Subtotal: 10,
			Tax:      1,
			Total:    11,
		}

		bill, err := usecase.CreateBill(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, "BILL-0001", bill.BillNumber)
		assert.Equal(t, "patient-1", bill.PatientID)

		second, err := usecase.CreateBill(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, "BILL-0002", second.BillNumber)

		stored, err := drugs.FindByID(context.Background(), drugID)
		require.NoError(t, err)
		assert.Equal(t, 92, stored.Stock.Quantity)
		require.Len(t, stored.Transactions, 2)
		assert.Equal(t, constvars.StockTransactionDispensed, stored.Transactions[0].Type)
		assert.Equal(t, "patient-1", stored.Transactions[0].PatientID)
	})

	t.Run("insufficient stock fails before any deduction", func(t *testing.T) {
		drugs := newFakeDrugRepository()
		okID := seedDrug(drugs, 100, 10)
		lowID := seedDrug(drugs, 1, 10)
		usecase := NewPharmacyUsecase(drugs, &fakeBillRepository{}, zap.NewNop())

		_, err := usecase.CreateBill(context.Background(), &requests.CreateBillRequest{
			PatientID: "patient-1",
			Medicines: []requests.BillMedicineRequest{
				{DrugID: okID, Quantity: 5, UnitPrice: 2.50, Total: 12.5},
				{DrugID: lowID, Quantity: 5, UnitPrice: 2.50, Total: 12.5},
			},
		})
		require.Error(t, err)
		assert.Equal(t, 409, conflictCode(t, err))

		// the first line must not have been dispensed
		stored, err := drugs.FindByID(context.Background(), okID)
		require.NoError(t, err)
		assert.Equal(t, 100, stored.Stock.Quantity)
	})

	t.Run("unknown drug in a line item", func(t *testing.T) {
		usecase := NewPharmacyUsecase(newFakeDrugRepository(), &fakeBillRepository{}, zap.NewNop())

		_, err := usecase.CreateBill(context.Background(), &requests.CreateBillRequest{
			PatientID: "patient-1",
			Medicines: []requests.BillMedicineRequest{{DrugID: "missing", Quantity: 1}},
		})
		require.Error(t, err)
		assert.Equal(t, 404, conflictCode(t, err))
	})
}

func TestCreateDrug(t *testing.T) {
	usecase := NewPharmacyUsecase(newFakeDrugRepository(), &fakeBillRepository{}, zap.NewNop())

	drug, err := usecase.CreateDrug(context.Background(), &requests.CreateDrugRequest{
		Name:      "Amoxicillin 250mg",
		Code:      "AMOX250",
		UnitPrice: 8,
		Stock:     requests.DrugStockRequest{Quantity: 0, ReorderLevel: 60, CriticalLevel: 30},
	})
	require.NoError(t, err)
	assert.Equal(t, constvars.DrugStatusOutOfStock, drug.Status)
	assert.NotEmpty(t, drug.ID)
}
