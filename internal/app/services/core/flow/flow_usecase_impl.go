package flow

import (
	"context"
	"fmt"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/dto/responses"
	"medflow-service/internal/pkg/exceptions"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const wardLockKeyPrefix = "ward_lock:"

// flowUsecase is the transfer and stage engine. All patient location,
// status and stage mutations funnel through here so the invariants
// (single pending transfer, bed occupancy, stage note log) hold no
// matter which endpoint triggered the change.
type flowUsecase struct {
	PatientRepository    contracts.PatientRepository
	DepartmentRepository contracts.DepartmentRepository
	BedPool              contracts.BedPool
	Locker               contracts.LockerService
	Publisher            contracts.NotificationPublisher
	TheatreBoard         contracts.OTBoardUsecase
	WardLockTTL          time.Duration
	Log                  *zap.Logger
}

func NewFlowUsecase(
	patientRepository contracts.PatientRepository,
	departmentRepository contracts.DepartmentRepository,
	bedPool contracts.BedPool,
	locker contracts.LockerService,
	publisher contracts.NotificationPublisher,
	theatreBoard contracts.OTBoardUsecase,
	wardLockTTL time.Duration,
	logger *zap.Logger,
) contracts.FlowUsecase {
	return &flowUsecase{
		PatientRepository:    patientRepository,
		DepartmentRepository: departmentRepository,
		BedPool:              bedPool,
		Locker:               locker,
		Publisher:            publisher,
		TheatreBoard:         theatreBoard,
		WardLockTTL:          wardLockTTL,
		Log:                  logger,
	}
}

func (uc *flowUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatientRequest) (*models.Patient, error) {
	department, err := uc.DepartmentRepository.FindByID(ctx, request.DepartmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotFound(nil)
	}
	if !department.IsActive {
		return nil, exceptions.ErrDepartmentInactive(nil)
	}

	token, err := uc.nextTokenNumber(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	priority := request.Priority
	if priority == "" {
		priority = constvars.PriorityNormal
	}

	patient := &models.Patient{
		TokenNumber:   token,
		Name:          request.Name,
		Age:           *request.Age,
		Gender:        request.Gender,
		ContactNumber: request.ContactNumber,
		DepartmentID:  request.DepartmentID,
		Priority:      priority,
		Status:        constvars.PatientStatusWaiting,
		StageNotes:    []models.StageNote{},
	}
	patient.SetCreatedAtUpdatedAt()

	patientID, err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	uc.Publisher.Publish(constvars.EventPatientCreated, patient)
	return patient, nil
}

// nextTokenNumber builds the daily token: the date prefix plus a three
// digit sequence continuing from the highest token issued today.
func (uc *flowUsecase) nextTokenNumber(ctx context.Context, now time.Time) (string, error) {
	prefix := now.Format(constvars.TokenNumberDateLayout)
	highest, err := uc.PatientRepository.HighestTokenNumber(ctx, prefix)
	if err != nil {
		return "", err
	}

	sequence := 1
	if len(highest) > len(prefix) {
		last, err := strconv.Atoi(highest[len(prefix):])
		if err == nil {
			sequence = last + 1
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, constvars.TokenNumberSequenceWidth, sequence), nil
}

func (uc *flowUsecase) UpdatePatientFlow(ctx context.Context, patientID string, request *requests.UpdatePatientFlowRequest) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	if request.Status != "" {
		patient.Status = request.Status
	}

	touchedTheatre := patient.InTheatre()
	if request.Transfer != nil {
		switch request.Transfer.Type {
		case constvars.TransferTypeDepartment:
			if err := uc.applyDepartmentTransfer(ctx, patient, request.Transfer.TargetID, request.Description); err != nil {
				return nil, err
			}
		case constvars.TransferTypeOT:
			uc.applyTheatreTransfer(patient, request.Transfer.TargetID, request.Description)
			touchedTheatre = true
		case constvars.TransferTypeWard:
			if err := uc.applyWardTransferRequest(patient, request.Transfer.TargetID, request.Description); err != nil {
				return nil, err
			}
		}
	}

	patient.SetUpdatedAt()
	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		return nil, err
	}

	uc.Publisher.Publish(constvars.EventPatientUpdated, patient)
	if touchedTheatre {
		uc.publishTheatreState(ctx)
	}
	return patient, nil
}

// applyDepartmentTransfer moves the patient immediately: new department,
// status back to Waiting, theatre residency dropped.
func (uc *flowUsecase) applyDepartmentTransfer(ctx context.Context, patient *models.Patient, departmentID, description string) error {
	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return err
	}
	if department == nil {
		return exceptions.ErrDepartmentNotFound(nil)
	}
	if !department.IsActive {
		return exceptions.ErrDepartmentInactive(nil)
	}

	now := time.Now()
	patient.DepartmentID = departmentID
	patient.Status = constvars.PatientStatusWaiting
	patient.ClearTheatre()
	patient.Transfer = &models.Transfer{
		Type:        constvars.TransferTypeDepartment,
		TargetID:    departmentID,
		Status:      constvars.TransferStatusCompleted,
		Description: description,
		RequestedAt: now,
		CompletedAt: &now,
	}
	return nil
}

// applyTheatreTransfer schedules the patient into a theatre right away,
// no pending sub-record is kept for the OT path.
func (uc *flowUsecase) applyTheatreTransfer(patient *models.Patient, otID, description string) {
	now := time.Now()
	patient.CurrentOT = otID
	patient.OTStatus = constvars.OTStatusWaiting
	patient.ScheduledTime = &now
	patient.SurgeryType = description
	if patient.SurgeryType == "" {
		patient.SurgeryType = constvars.DefaultSurgeryType
	}
}

func (uc *flowUsecase) applyWardTransferRequest(patient *models.Patient, wardID, description string) error {
	if patient.HasPendingWardTransfer() {
		return exceptions.ErrTransferAlreadyPending(nil)
	}
	if _, err := uc.BedPool.Ward(wardID); err != nil {
		return err
	}
	// requesting a bed releases the theatre slot right away, the patient
	// must not linger on the OT queue while the transfer is pending
	patient.ClearTheatre()
	patient.Transfer = &models.Transfer{
		Type:        constvars.TransferTypeWard,
		TargetID:    wardID,
		Status:      constvars.TransferStatusPending,
		Description: description,
		RequestedAt: time.Now(),
	}
	return nil
}

func (uc *flowUsecase) AdvanceSurgeryStage(ctx context.Context, patientID string, request *requests.AdvanceStageRequest) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	if !patient.InTheatre() {
		return nil, exceptions.ErrPatientNotInTheatre(nil)
	}
	if patient.OTStatus == constvars.OTStatusCompleted {
		return nil, exceptions.ErrSurgeryAlreadyComplete(nil)
	}

	patient.SurgeryStage = request.Stage
	patient.AppendStageNote(request.Stage, request.Notes, time.Now())
	// the first stage change is what starts the surgery
	if patient.OTStatus == constvars.OTStatusWaiting {
		patient.OTStatus = constvars.OTStatusInProgress
	}

	patient.SetUpdatedAt()
	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		return nil, err
	}

	uc.Publisher.Publish(constvars.EventPatientUpdated, patient)
	uc.publishTheatreState(ctx)
	return patient, nil
}

func (uc *flowUsecase) CompleteSurgery(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	if !patient.InTheatre() && patient.OTStatus != constvars.OTStatusCompleted {
		return nil, exceptions.ErrPatientNotInTheatre(nil)
	}
	if patient.OTStatus == constvars.OTStatusCompleted {
		return nil, exceptions.ErrSurgeryAlreadyComplete(nil)
	}

	patient.OTStatus = constvars.OTStatusCompleted
	patient.SurgeryStage = constvars.SurgeryStageRecovery
	patient.AppendStageNote(constvars.SurgeryStageRecovery, "Surgery completed", time.Now())
	patient.CurrentOT = ""

	patient.SetUpdatedAt()
	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		return nil, err
	}

	uc.Publisher.Publish(constvars.EventPatientUpdated, patient)
	uc.publishTheatreState(ctx)
	return patient, nil
}

// TransferToWard is the OT-origin immediate path. The patient leaves the
// theatre no matter what, so a full ward never blocks the transfer, the
// bed allocation is best effort.
func (uc *flowUsecase) TransferToWard(ctx context.Context, patientID string, request *requests.TheatreWardTransferRequest) (*responses.AdmissionResult, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	if !patient.InTheatre() {
		return nil, exceptions.ErrPatientNotInTheatre(nil)
	}
	if _, err := uc.BedPool.Ward(request.WardID); err != nil {
		return nil, err
	}

	var bed *models.Bed
	acquired, lockValue, lockErr := uc.Locker.TryLock(ctx, wardLockKey(request.WardID), uc.WardLockTTL)
	if lockErr != nil || !acquired {
		uc.Log.Warn("skipping bed allocation, ward lock unavailable",
			zap.String(constvars.LoggingWardIDKey, request.WardID),
			zap.Error(lockErr),
		)
	} else {
		bed, err = uc.BedPool.AllocateBed(request.WardID, uc.bedOccupant(patient))
		if err != nil {
			uc.Log.Warn("bed allocation failed, admitting without bed",
				zap.String(constvars.LoggingWardIDKey, request.WardID),
				zap.Error(err),
			)
			bed = nil
		}
		if unlockErr := uc.Locker.Unlock(ctx, wardLockKey(request.WardID), lockValue); unlockErr != nil {
			uc.Log.Warn("failed to release ward lock",
				zap.String(constvars.LoggingWardIDKey, request.WardID),
				zap.Error(unlockErr),
			)
		}
	}

	now := time.Now()
	patient.CurrentWard = request.WardID
	if bed != nil {
		patient.CurrentBed = bed.ID
	}
	patient.Status = constvars.PatientStatusAdmitted
	patient.OTStatus = constvars.OTStatusCompleted
	patient.CurrentOT = ""
	patient.Transfer = &models.Transfer{
		Type:        constvars.TransferTypeWard,
		TargetID:    request.WardID,
		Status:      constvars.TransferStatusCompleted,
		RequestedAt: now,
		CompletedAt: &now,
	}

	patient.SetUpdatedAt()
	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		uc.releaseBedQuietly(bed)
		return nil, err
	}

	uc.Publisher.Publish(constvars.EventPatientUpdated, patient)
	if bed != nil {
		uc.Publisher.Publish(constvars.EventBedUpdated, bed)
	}
	uc.publishTheatreState(ctx)
	return &responses.AdmissionResult{Patient: patient, Bed: bed}, nil
}

// FulfillWardTransfer consumes the pending ward sub-record and actually
// moves the patient, failing with 503 when the ward has no free bed.
func (uc *flowUsecase) FulfillWardTransfer(ctx context.Context, patientID string, request *requests.FulfillWardTransferRequest) (*responses.AdmissionResult, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	if !patient.HasPendingWardTransfer() {
		return nil, exceptions.ErrNoPendingWardTransfer(nil)
	}
	if _, err := uc.BedPool.Ward(request.WardID); err != nil {
		return nil, err
	}

	acquired, lockValue, err := uc.Locker.TryLock(ctx, wardLockKey(request.WardID), uc.WardLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrWardLockNotAcquired(nil)
	}
	defer func() {
		if unlockErr := uc.Locker.Unlock(ctx, wardLockKey(request.WardID), lockValue); unlockErr != nil {
			uc.Log.Warn("failed to release ward lock",
				zap.String(constvars.LoggingWardIDKey, request.WardID),
				zap.Error(unlockErr),
			)
		}
	}()

	var bed *models.Bed
	if request.BedID != "" {
		existing, err := uc.BedPool.Bed(request.BedID)
		if err != nil {
			return nil, err
		}
		if existing.Ward != request.WardID {
			return nil, exceptions.ErrBedNotFound(nil)
		}
		bed, err = uc.BedPool.Occupy(request.BedID, uc.bedOccupant(patient))
		if err != nil {
			return nil, err
		}
	} else {
		bed, err = uc.BedPool.AllocateBed(request.WardID, uc.bedOccupant(patient))
		if err != nil {
			return nil, err
		}
		if bed == nil {
			return nil, exceptions.ErrNoAvailableBeds(nil)
		}
	}

	now := time.Now()
	patient.CurrentWard = request.WardID
	patient.CurrentBed = bed.ID
	patient.Status = constvars.PatientStatusAdmitted
	patient.Transfer.Status = constvars.TransferStatusCompleted
	patient.Transfer.CompletedAt = &now
	if patient.InTheatre() {
		patient.ClearTheatre()
	}

	patient.SetUpdatedAt()
	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		uc.releaseBedQuietly(bed)
		return nil, err
	}

	uc.Publisher.Publish(constvars.EventPatientUpdated, patient)
	uc.Publisher.Publish(constvars.EventBedUpdated, bed)
	return &responses.AdmissionResult{Patient: patient, Bed: bed}, nil
}

func (uc *flowUsecase) AdmitToBed(ctx context.Context, bedID, patientID string) (*models.Bed, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	existing, err := uc.BedPool.Bed(bedID)
	if err != nil {
		return nil, err
	}

	acquired, lockValue, err := uc.Locker.TryLock(ctx, wardLockKey(existing.Ward), uc.WardLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrWardLockNotAcquired(nil)
	}
	defer func() {
		if unlockErr := uc.Locker.Unlock(ctx, wardLockKey(existing.Ward), lockValue); unlockErr != nil {
			uc.Log.Warn("failed to release ward lock",
				zap.String(constvars.LoggingWardIDKey, existing.Ward),
				zap.Error(unlockErr),
			)
		}
	}()

	bed, err := uc.BedPool.Occupy(bedID, uc.bedOccupant(patient))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	patient.CurrentWard = bed.Ward
	patient.CurrentBed = bed.ID
	patient.Status = constvars.PatientStatusAdmitted
	if patient.HasPendingWardTransfer() {
		patient.Transfer.Status = constvars.TransferStatusCompleted
		patient.Transfer.CompletedAt = &now
	}

	patient.SetUpdatedAt()
	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		uc.releaseBedQuietly(bed)
		return nil, err
	}

	uc.Publisher.Publish(constvars.EventPatientUpdated, patient)
	uc.Publisher.Publish(constvars.EventBedUpdated, bed)
	return bed, nil
}

func (uc *flowUsecase) DischargeBed(ctx context.Context, bedID string) (*models.Bed, error) {
	existing, err := uc.BedPool.Bed(bedID)
	if err != nil {
		return nil, err
	}
	if !existing.IsOccupied || existing.Patient == nil {
		return nil, exceptions.ErrBedNotOccupied(nil)
	}
	occupant := *existing.Patient

	bed, err := uc.BedPool.Vacate(bedID)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, occupant.PatientID)
	if err != nil || patient == nil {
		// the bed is free either way, the patient record catches up later
		if err != nil {
			uc.Log.Warn("discharged bed but could not load patient",
				zap.String(constvars.LoggingBedIDKey, bedID),
				zap.Error(err),
			)
		}
		uc.Publisher.Publish(constvars.EventBedUpdated, bed)
		return bed, nil
	}

	patient.CurrentWard = ""
	patient.CurrentBed = ""
	patient.Status = constvars.PatientStatusDischarged
	patient.SetUpdatedAt()
	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		uc.Log.Warn("discharged bed but could not update patient",
			zap.String(constvars.LoggingPatientIDKey, patient.ID),
			zap.Error(err),
		)
	} else {
		uc.Publisher.Publish(constvars.EventPatientUpdated, patient)
	}

	uc.Publisher.Publish(constvars.EventBedUpdated, bed)
	return bed, nil
}

func (uc *flowUsecase) bedOccupant(patient *models.Patient) models.BedOccupant {
	return models.BedOccupant{
		PatientID:     patient.ID,
		Name:          patient.Name,
		Age:           patient.Age,
		Gender:        patient.Gender,
		AdmissionDate: time.Now(),
		DepartmentID:  patient.DepartmentID,
		Doctor:        constvars.DefaultAttendingDoctor,
	}
}

func (uc *flowUsecase) releaseBedQuietly(bed *models.Bed) {
	if bed == nil {
		return
	}
	if _, err := uc.BedPool.Vacate(bed.ID); err != nil {
		uc.Log.Warn("failed to roll back bed allocation",
			zap.String(constvars.LoggingBedIDKey, bed.ID),
			zap.Error(err),
		)
	}
}

// publishTheatreState pushes the refreshed boards and stats to the
// dashboards. Best effort, a read failure only costs an update.
func (uc *flowUsecase) publishTheatreState(ctx context.Context) {
	if uc.TheatreBoard == nil {
		return
	}
	overview, err := uc.TheatreBoard.GetAllTheatres(ctx)
	if err != nil {
		uc.Log.Warn("failed to build theatre overview for broadcast", zap.Error(err))
		return
	}
	// one envelope per theatre, the board payload names its otId
	for _, board := range overview.Theatres {
		uc.Publisher.Publish(constvars.EventOTDataUpdate, board)
	}
	uc.Publisher.Publish(constvars.EventOTStatsUpdate, overview.Stats)
}

func wardLockKey(wardID string) string {
	return wardLockKeyPrefix + wardID
}
