package wards

import (
	"fmt"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

// DefaultWards is the fixed ward directory. Capacity decides how many
// beds the pool pre-creates, it is never resized at runtime.
func DefaultWards() []models.Ward {
	return []models.Ward{
		{ID: "General", Name: "General Ward", Capacity: 20, Floor: 1},
		{ID: "ICU", Name: "Intensive Care Unit", Capacity: 10, Floor: 2},
		{ID: "Recovery", Name: "Recovery Ward", Capacity: 15, Floor: 1},
		{ID: "Pediatric", Name: "Pediatric Ward", Capacity: 12, Floor: 3},
		{ID: "Emergency", Name: "Emergency Ward", Capacity: 8, Floor: 1},
	}
}

// bedPool owns all bed state. Every mutation runs under one mutex so
// allocate-and-occupy is a single critical section, two concurrent
// transfers into the same ward can never claim the same bed.
type bedPool struct {
	mu       sync.Mutex
	wards    []models.Ward
	wardByID map[string]models.Ward
	beds     []*models.Bed
	bedByID  map[string]*models.Bed
	Log      *zap.Logger
}

func NewBedPool(wardList []models.Ward, logger *zap.Logger) contracts.BedPool {
	pool := &bedPool{
		wards:    wardList,
		wardByID: make(map[string]models.Ward, len(wardList)),
		bedByID:  make(map[string]*models.Bed),
		Log:      logger,
	}
	for _, ward := range wardList {
		pool.wardByID[ward.ID] = ward
		for number := 1; number <= ward.Capacity; number++ {
			bed := &models.Bed{
				ID:     fmt.Sprintf("%s-%d", ward.ID, number),
				Number: number,
				Ward:   ward.ID,
			}
			pool.beds = append(pool.beds, bed)
			pool.bedByID[bed.ID] = bed
		}
	}
	return pool
}

func (p *bedPool) Wards() []models.Ward {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Ward, len(p.wards))
	copy(out, p.wards)
	return out
}

func (p *bedPool) Ward(wardID string) (*models.Ward, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ward, ok := p.wardByID[wardID]
	if !ok {
		return nil, exceptions.ErrWardNotFound(nil)
	}
	return &ward, nil
}

func (p *bedPool) Beds() []models.Bed {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Bed, 0, len(p.beds))
	for _, bed := range p.beds {
		out = append(out, copyBed(bed))
	}
	return out
}

func (p *bedPool) WardBeds(wardID string) []models.Bed {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []models.Bed
	for _, bed := range p.beds {
		if bed.Ward == wardID {
			out = append(out, copyBed(bed))
		}
	}
	return out
}

func (p *bedPool) Bed(bedID string) (*models.Bed, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	bed, ok := p.bedByID[bedID]
	if !ok {
		return nil, exceptions.ErrBedNotFound(nil)
	}
	out := copyBed(bed)
	return &out, nil
}

func (p *bedPool) AllocateBed(wardID string, occupant models.BedOccupant) (*models.Bed, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.wardByID[wardID]; !ok {
		return nil, exceptions.ErrWardNotFound(nil)
	}
	// beds are ordered by ward then number, the scan is deterministic
	for _, bed := range p.beds {
		if bed.Ward != wardID || bed.IsOccupied {
			continue
		}
		bed.IsOccupied = true
		bed.Patient = &occupant
		out := copyBed(bed)
		return &out, nil
	}
	return nil, nil
}

func (p *bedPool) Occupy(bedID string, occupant models.BedOccupant) (*models.Bed, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	bed, ok := p.bedByID[bedID]
	if !ok {
		return nil, exceptions.ErrBedNotFound(nil)
	}
	if bed.IsOccupied {
		return nil, exceptions.ErrBedAlreadyOccupied(nil)
	}
	bed.IsOccupied = true
	bed.Patient = &occupant
	out := copyBed(bed)
	return &out, nil
}

func (p *bedPool) Vacate(bedID string) (*models.Bed, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	bed, ok := p.bedByID[bedID]
	if !ok {
		return nil, exceptions.ErrBedNotFound(nil)
	}
	if !bed.IsOccupied || bed.Patient == nil {
		return nil, exceptions.ErrBedNotOccupied(nil)
	}
	bed.IsOccupied = false
	bed.Patient = nil
	out := copyBed(bed)
	return &out, nil
}

func copyBed(bed *models.Bed) models.Bed {
	out := *bed
	if bed.Patient != nil {
		occupant := *bed.Patient
		out.Patient = &occupant
	}
	return out
}
