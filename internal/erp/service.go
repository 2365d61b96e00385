package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/concretemix/smartmix/internal/concurrency"
	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/logger"
	"github.com/concretemix/smartmix/internal/metrics"
	"github.com/concretemix/smartmix/internal/repository"
)

// DefaultSourceSystem tags rows coming from the SAP materials management feed.
const DefaultSourceSystem = "SAP-MM"

const pricePerKgScale = 4

// MaterialSyncInput is one material row pushed by the ERP.
type MaterialSyncInput struct {
	MaterialCode string `json:"material_code" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Spec         string `json:"spec"`
	BaseUnit     string `json:"base_unit" validate:"required"`
	PlantCode    string `json:"plant_code"`
}

// PriceSyncInput is one material price row pushed by the ERP.
type PriceSyncInput struct {
	MaterialCode  string          `json:"material_code" validate:"required"`
	PlantCode     string          `json:"plant_code"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	PriceUnit     string          `json:"price_unit"`
	Currency      string          `json:"currency"`
	EffectiveFrom string          `json:"effective_from" validate:"required"`
	SourceSystem  string          `json:"source_system"`
}

// TaskSyncInput is one production task row pushed by the ERP.
type TaskSyncInput struct {
	TaskNo               string          `json:"task_no" validate:"required"`
	ProjectName          string          `json:"project_name" validate:"required"`
	StrengthGrade        string          `json:"strength_grade" validate:"required"`
	SlumpRequirement     string          `json:"slump_requirement"`
	Volume               decimal.Decimal `json:"volume" validate:"required"`
	SpecialRequirements  string          `json:"special_requirements"`
	SapSalesOrderNo      string          `json:"sap_sales_order_no"`
	SapProductionOrderNo string          `json:"sap_production_order_no"`
}

// PriceInvalidator drops cached prices after ingestion. Satisfied by the
// material service.
type PriceInvalidator interface {
	InvalidatePrice(materialID int64)
}

// Service defines the interface for ERP webhook ingestion. Each Sync method
// processes its batch with per-row fault isolation: a bad row is counted and
// logged, the rest of the batch proceeds. Every call writes one SyncLog row.
type Service interface {
	SyncMaterials(ctx context.Context, rows []MaterialSyncInput, sourceIP string) (*domain.SyncResult, error)
	SyncPrices(ctx context.Context, rows []PriceSyncInput, sourceIP string) (*domain.SyncResult, error)
	SyncTasks(ctx context.Context, rows []TaskSyncInput, sourceIP string) (*domain.SyncResult, error)
	ListSyncLogs(ctx context.Context, limit int) ([]domain.SyncLog, error)
}

type service struct {
	materialRepo repository.Material
	taskRepo     repository.Task
	syncLogRepo  repository.SyncLog
	invalidator  PriceInvalidator
	priceLocks   *concurrency.KeyedLock
	now          func() time.Time
}

// NewService creates a new ERP ingestion service
func NewService(materialRepo repository.Material, taskRepo repository.Task, syncLogRepo repository.SyncLog, invalidator PriceInvalidator) Service {
	return &service{
		materialRepo: materialRepo,
		taskRepo:     taskRepo,
		syncLogRepo:  syncLogRepo,
		invalidator:  invalidator,
		priceLocks:   concurrency.NewKeyedLock(),
		now:          time.Now,
	}
}

func (s *service) SyncMaterials(ctx context.Context, rows []MaterialSyncInput, sourceIP string) (*domain.SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &domain.SyncResult{}

	for _, row := range rows {
		plantCode := row.PlantCode
		if plantCode == "" {
			plantCode = domain.DefaultPlantCode
		}

		m := domain.Material{
			MaterialCode: row.MaterialCode,
			Description:  row.Description,
			Spec:         row.Spec,
			BaseUnit:     row.BaseUnit,
			PlantCode:    plantCode,
			SourceSystem: DefaultSourceSystem,
		}

		if _, err := s.materialRepo.Upsert(ctx, m); err != nil {
			log.Error("Failed to sync material", "material_code", row.MaterialCode, "error", err)
			result.FailureCount++
			metrics.ErpRowsSynced.WithLabelValues(string(domain.SyncDataMaterial), metrics.OutcomeFailure).Inc()
			continue
		}
		result.SuccessCount++
		metrics.ErpRowsSynced.WithLabelValues(string(domain.SyncDataMaterial), metrics.OutcomeSuccess).Inc()
	}

	s.writeSyncLog(ctx, domain.SyncDataMaterial, rows, sourceIP, result)
	return result, nil
}

func (s *service) SyncPrices(ctx context.Context, rows []PriceSyncInput, sourceIP string) (*domain.SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &domain.SyncResult{}

	for _, row := range rows {
		if err := s.ingestPrice(ctx, row); err != nil {
			log.Error("Failed to sync material price", "material_code", row.MaterialCode, "error", err)
			result.FailureCount++
			metrics.ErpRowsSynced.WithLabelValues(string(domain.SyncDataMaterialPrice), metrics.OutcomeFailure).Inc()
			continue
		}
		result.SuccessCount++
		metrics.ErpRowsSynced.WithLabelValues(string(domain.SyncDataMaterialPrice), metrics.OutcomeSuccess).Inc()
	}

	s.writeSyncLog(ctx, domain.SyncDataMaterialPrice, rows, sourceIP, result)
	return result, nil
}

func (s *service) ingestPrice(ctx context.Context, row PriceSyncInput) error {
	plantCode := row.PlantCode
	if plantCode == "" {
		plantCode = domain.DefaultPlantCode
	}

	material, err := s.materialRepo.GetByCodeAndPlant(ctx, row.MaterialCode, plantCode)
	if err != nil {
		return fmt.Errorf("failed to get material: %w", err)
	}
	if material == nil {
		return fmt.Errorf("%w: %s (plant %s)", domain.ErrMaterialNotFound, row.MaterialCode, plantCode)
	}

	priceUnit := row.PriceUnit
	if priceUnit == "" {
		priceUnit = domain.PriceUnitYuanPerTon
	}
	currency := row.Currency
	if currency == "" {
		currency = "CNY"
	}
	sourceSystem := row.SourceSystem
	if sourceSystem == "" {
		sourceSystem = DefaultSourceSystem
	}

	perKg := normalizePricePerKg(row.Price, priceUnit)

	// Two webhook calls may carry prices for the same material. Serialize
	// the replace-then-invalidate pair so the cache never outlives a stale
	// current row.
	s.priceLocks.Lock(material.ID)
	defer s.priceLocks.Unlock(material.ID)

	price := domain.MaterialPrice{
		MaterialID:    material.ID,
		Price:         row.Price,
		PriceUnit:     priceUnit,
		Currency:      currency,
		EffectiveFrom: s.parseEffectiveFrom(row.EffectiveFrom),
		IsCurrent:     true,
		PricePerKg:    &perKg,
		SourceSystem:  sourceSystem,
	}

	if _, err := s.materialRepo.ReplaceCurrentPrice(ctx, price); err != nil {
		return fmt.Errorf("failed to replace current price: %w", err)
	}

	s.invalidator.InvalidatePrice(material.ID)
	metrics.PriceReplacements.Inc()
	return nil
}

func (s *service) SyncTasks(ctx context.Context, rows []TaskSyncInput, sourceIP string) (*domain.SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &domain.SyncResult{}

	for _, row := range rows {
		if err := s.ingestTask(ctx, row); err != nil {
			log.Error("Failed to sync production task", "task_no", row.TaskNo, "error", err)
			result.FailureCount++
			metrics.ErpRowsSynced.WithLabelValues(string(domain.SyncDataProductionTask), metrics.OutcomeFailure).Inc()
			continue
		}
		result.SuccessCount++
		metrics.ErpRowsSynced.WithLabelValues(string(domain.SyncDataProductionTask), metrics.OutcomeSuccess).Inc()
	}

	s.writeSyncLog(ctx, domain.SyncDataProductionTask, rows, sourceIP, result)
	return result, nil
}

func (s *service) ingestTask(ctx context.Context, row TaskSyncInput) error {
	if row.Volume.Sign() <= 0 {
		return fmt.Errorf("%w: task %s", domain.ErrInvalidVolume, row.TaskNo)
	}

	existing, err := s.taskRepo.GetByTaskNo(ctx, row.TaskNo)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	t := domain.ProductionTask{
		TaskNo:               row.TaskNo,
		ProjectName:          row.ProjectName,
		StrengthGrade:        row.StrengthGrade,
		SlumpRequirement:     row.SlumpRequirement,
		Volume:               row.Volume,
		SpecialRequirements:  row.SpecialRequirements,
		SourceSystem:         domain.TaskSourceSAP,
		SapSalesOrderNo:      row.SapSalesOrderNo,
		SapProductionOrderNo: row.SapProductionOrderNo,
		Status:               domain.TaskStatusNew,
	}

	if existing == nil {
		_, err = s.taskRepo.Create(ctx, t)
	} else {
		// Re-pushed tasks keep their local progress.
		t.ID = existing.ID
		t.Status = existing.Status
		t.SelectedMixRecipeID = existing.SelectedMixRecipeID
		t.TheoreticalUnitCost = existing.TheoreticalUnitCost
		t.TheoreticalTotalCost = existing.TheoreticalTotalCost
		_, err = s.taskRepo.Update(ctx, t)
	}
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

func (s *service) ListSyncLogs(ctx context.Context, limit int) ([]domain.SyncLog, error) {
	logs, err := s.syncLogRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync logs: %w", err)
	}
	return logs, nil
}

// writeSyncLog records the call outcome and raw payload. Audit failures are
// logged but never fail the ingestion that already happened.
func (s *service) writeSyncLog(ctx context.Context, dataType domain.SyncDataType, payload any, sourceIP string, result *domain.SyncResult) {
	status := domain.SyncStatusSuccess
	errMsg := ""
	if result.FailureCount > 0 && result.SuccessCount == 0 {
		status = domain.SyncStatusFailed
		errMsg = fmt.Sprintf("all %d rows failed", result.FailureCount)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		raw = []byte(fmt.Sprintf("%+v", payload))
	}

	entry := domain.SyncLog{
		Direction:    domain.SyncDirectionInbound,
		DataType:     dataType,
		Payload:      string(raw),
		Status:       status,
		ErrorMessage: errMsg,
		SourceIP:     sourceIP,
	}

	if _, err := s.syncLogRepo.Create(ctx, entry); err != nil {
		logger.FromContext(ctx).Error("Failed to write sync log",
			"data_type", dataType, "error", err)
	}
}

// normalizePricePerKg converts the ERP price to yuan per kilogram. Ton prices
// divide by 1000 at 4 decimals half-up; anything else is already per kg.
func normalizePricePerKg(price decimal.Decimal, priceUnit string) decimal.Decimal {
	if strings.EqualFold(priceUnit, domain.PriceUnitYuanPerTon) {
		return price.DivRound(decimal.NewFromInt(1000), pricePerKgScale)
	}
	return price
}

func (s *service) parseEffectiveFrom(v string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return s.now()
}
