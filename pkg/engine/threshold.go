package engine

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gridwell.xyz/asset-health-service/pkg/common"
	"gridwell.xyz/asset-health-service/pkg/models"
)

// snapshotMetric reads a metric off a snapshot by its configured name.
// Absent fields report ok=false and the threshold is skipped.
func snapshotMetric(snapshot *models.HealthSnapshot, metricName string) (float64, bool) {
	switch metricName {
	case "overall_health_score":
		return snapshot.OverallHealthScore, true
	case "remaining_useful_life":
		return float64(snapshot.RemainingUsefulLife), true
	case "failure_probability":
		return snapshot.FailureProbability, true
	case "cycle_count":
		if snapshot.CycleCount != nil {
			return float64(*snapshot.CycleCount), true
		}
	case "capacity_fading":
		if snapshot.CapacityFading != nil {
			return *snapshot.CapacityFading, true
		}
	case "internal_resistance":
		if snapshot.InternalResistance != nil {
			return *snapshot.InternalResistance, true
		}
	case "operating_temperature":
		if snapshot.OperatingTemperature != nil {
			return *snapshot.OperatingTemperature, true
		}
	case "efficiency_ratio":
		if snapshot.EfficiencyRatio != nil {
			return *snapshot.EfficiencyRatio, true
		}
	case "degradation_rate":
		if snapshot.DegradationRate != nil {
			return *snapshot.DegradationRate, true
		}
	case "soiling_loss_rate":
		if snapshot.SoilingLossRate != nil {
			return *snapshot.SoilingLossRate, true
		}
	case "hotspot_count":
		if snapshot.HotspotCount != nil {
			return float64(*snapshot.HotspotCount), true
		}
	case "connection_integrity_score":
		if snapshot.ConnectionIntegrityScore != nil {
			return *snapshot.ConnectionIntegrityScore, true
		}
	}
	return 0, false
}

func thresholdSatisfied(t *models.MaintenanceThreshold, value float64) bool {
	switch t.Direction {
	case models.ThresholdDirectionAbove:
		return value > t.WarningThreshold
	case models.ThresholdDirectionBelow:
		return value < t.WarningThreshold
	case models.ThresholdDirectionEqual:
		return value == t.WarningThreshold
	case models.ThresholdDirectionBetween:
		if t.SecondaryThreshold == nil {
			// malformed range, fall back to a plain above comparison
			return value > t.WarningThreshold
		}
		return value >= t.WarningThreshold && value <= *t.SecondaryThreshold
	default:
		return false
	}
}

func (e *Engine) evaluateThresholds(deviceID uint) ([]models.ThresholdBreach, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryThreshold),
	)

	latest, err := e.getLatestSnapshot(deviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var thresholds []models.MaintenanceThreshold
	err = e.Db.Conn.
		Where("device_id = ? AND enabled = ?", deviceID, true).
		Find(&thresholds).Error
	if err != nil {
		return nil, err
	}

	var breaches []models.ThresholdBreach
	for _, t := range thresholds {
		value, ok := snapshotMetric(latest, t.MetricName)
		if !ok {
			continue
		}
		if thresholdSatisfied(&t, value) {
			logger.Info("Threshold breached",
				zap.Uint("device_id", deviceID),
				zap.String("metric", t.MetricName),
				zap.Float64("value", value),
				zap.Float64("warning_threshold", t.WarningThreshold))
			breaches = append(breaches, models.ThresholdBreach{Threshold: t, Value: value})
		}
	}

	return breaches, nil
}

func (e *Engine) upsertThreshold(deviceID uint, input *models.MaintenanceThreshold) (*models.MaintenanceThreshold, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryThreshold),
	)

	threshold := models.MaintenanceThreshold{
		ID:                 input.ID,
		DeviceID:           deviceID,
		MetricName:         input.MetricName,
		Direction:          input.Direction,
		WarningThreshold:   input.WarningThreshold,
		SecondaryThreshold: input.SecondaryThreshold,
		Severity:           input.Severity,
		AlertMessage:       input.AlertMessage,
		Enabled:            input.Enabled,
	}

	logger.Info("Received threshold config for device", zap.Reflect("threshold", threshold))

	err := e.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&threshold).Error
	if err != nil {
		return nil, err
	}

	logger.Info("Upserted threshold config for device", zap.Reflect("threshold", threshold))
	return &threshold, nil
}

func (e *Engine) getDeviceThresholds(deviceID uint) ([]models.MaintenanceThreshold, error) {
	var thresholds []models.MaintenanceThreshold
	err := e.Db.Conn.
		Where("device_id = ?", deviceID).
		Find(&thresholds).Error
	return thresholds, err
}

type IThresholdImpl struct {
	engine *Engine
}

func (it *IThresholdImpl) EvaluateThresholds(deviceID uint) ([]models.ThresholdBreach, error) {
	return it.engine.evaluateThresholds(deviceID)
}

func (it *IThresholdImpl) UpsertThreshold(deviceID uint, input *models.MaintenanceThreshold) (*models.MaintenanceThreshold, error) {
	return it.engine.upsertThreshold(deviceID, input)
}

func (it *IThresholdImpl) GetDeviceThresholds(deviceID uint) ([]models.MaintenanceThreshold, error) {
	return it.engine.getDeviceThresholds(deviceID)
}

func (e *Engine) GetIThreshold() IThreshold {
	return &IThresholdImpl{engine: e}
}
