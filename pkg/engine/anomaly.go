package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gridwell.xyz/asset-health-service/pkg/common"
	"gridwell.xyz/asset-health-service/pkg/models"
)

const anomalyBaselineWindow = 10

// anomalyRule is one named deviation check. Rules for a device type are
// declared in order; on equal confidence the earlier rule wins, a
// strictly greater confidence replaces the current leader.
type anomalyRule struct {
	name       string
	confidence float64
	check      func(latest *models.HealthSnapshot, history []models.HealthSnapshot) (bool, string)
}

// historicalMean averages only the values present in history.
func historicalMean(history []models.HealthSnapshot, field func(*models.HealthSnapshot) *float64) float64 {
	sum := 0.0
	count := 0
	for i := range history {
		if v := field(&history[i]); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

var batteryAnomalyRules = []anomalyRule{
	{
		name:       "capacity_degradation",
		confidence: 85,
		check: func(latest *models.HealthSnapshot, history []models.HealthSnapshot) (bool, string) {
			if latest.CapacityFading == nil {
				return false, ""
			}
			avg := historicalMean(history, func(s *models.HealthSnapshot) *float64 { return s.CapacityFading })
			if *latest.CapacityFading > 1 && *latest.CapacityFading > avg*1.5 {
				return true, fmt.Sprintf("Capacity fading %.2f%% significantly above historical average %.2f%%",
					*latest.CapacityFading, avg)
			}
			return false, ""
		},
	},
	{
		name:       "internal_resistance",
		confidence: 75,
		check: func(latest *models.HealthSnapshot, history []models.HealthSnapshot) (bool, string) {
			if latest.InternalResistance == nil {
				return false, ""
			}
			avg := historicalMean(history, func(s *models.HealthSnapshot) *float64 { return s.InternalResistance })
			if *latest.InternalResistance > avg*1.3 {
				return true, fmt.Sprintf("Internal resistance %.3f above 1.3x historical average %.3f",
					*latest.InternalResistance, avg)
			}
			return false, ""
		},
	},
	{
		name:       "high_temperature",
		confidence: 95,
		check: func(latest *models.HealthSnapshot, history []models.HealthSnapshot) (bool, string) {
			if latest.OperatingTemperature != nil && *latest.OperatingTemperature > 40 {
				return true, fmt.Sprintf("Operating temperature %.1f°C exceeds safe limit of 40°C",
					*latest.OperatingTemperature)
			}
			return false, ""
		},
	},
	{
		name:       "low_temperature",
		confidence: 90,
		check: func(latest *models.HealthSnapshot, history []models.HealthSnapshot) (bool, string) {
			if latest.OperatingTemperature != nil && *latest.OperatingTemperature < 5 {
				return true, fmt.Sprintf("Operating temperature %.1f°C below safe limit of 5°C",
					*latest.OperatingTemperature)
			}
			return false, ""
		},
	},
}

var solarAnomalyRules = []anomalyRule{
	{
		name:       "efficiency_drop",
		confidence: 80,
		check: func(latest *models.HealthSnapshot, history []models.HealthSnapshot) (bool, string) {
			if latest.EfficiencyRatio == nil {
				return false, ""
			}
			avg := historicalMean(history, func(s *models.HealthSnapshot) *float64 { return s.EfficiencyRatio })
			if avg > 0 && *latest.EfficiencyRatio < avg*0.8 {
				return true, fmt.Sprintf("Efficiency ratio %.2f dropped below 80%% of historical average %.2f",
					*latest.EfficiencyRatio, avg)
			}
			return false, ""
		},
	},
	{
		name:       "high_soiling",
		confidence: 70,
		check: func(latest *models.HealthSnapshot, history []models.HealthSnapshot) (bool, string) {
			if latest.SoilingLossRate != nil && *latest.SoilingLossRate > 5 {
				return true, fmt.Sprintf("Soiling loss rate %.1f%% exceeds 5%%, panel cleaning recommended",
					*latest.SoilingLossRate)
			}
			return false, ""
		},
	},
	{
		name:       "hotspots",
		confidence: 90,
		check: func(latest *models.HealthSnapshot, history []models.HealthSnapshot) (bool, string) {
			if latest.HotspotCount != nil && *latest.HotspotCount > 0 {
				return true, fmt.Sprintf("%d hotspot(s) detected on panel surface", *latest.HotspotCount)
			}
			return false, ""
		},
	},
	{
		name:       "connection_integrity",
		confidence: 85,
		check: func(latest *models.HealthSnapshot, history []models.HealthSnapshot) (bool, string) {
			if latest.ConnectionIntegrityScore != nil && *latest.ConnectionIntegrityScore < 70 {
				return true, fmt.Sprintf("Connection integrity score %.1f below acceptable level of 70",
					*latest.ConnectionIntegrityScore)
			}
			return false, ""
		},
	},
}

func anomalyRulesFor(deviceType models.DeviceType) []anomalyRule {
	switch deviceType {
	case models.DeviceTypeBatteryStorage:
		return batteryAnomalyRules
	case models.DeviceTypeSolarPV:
		return solarAnomalyRules
	default:
		return nil
	}
}

func (e *Engine) detectAnomalies(deviceID uint) (*models.AnomalyResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAnomaly),
	)

	device, err := e.getDevice(deviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.AnomalyResult{HasAnomaly: false}, nil
		}
		return nil, err
	}

	latest, err := e.getLatestSnapshot(deviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.AnomalyResult{HasAnomaly: false}, nil
		}
		return nil, err
	}

	var history []models.HealthSnapshot
	err = e.Db.Conn.
		Where("device_id = ? AND id <> ?", deviceID, latest.ID).
		Order("timestamp desc").
		Limit(anomalyBaselineWindow).
		Find(&history).Error
	if err != nil {
		return nil, err
	}

	result := &models.AnomalyResult{HasAnomaly: false}
	for _, rule := range anomalyRulesFor(device.Type) {
		matched, message := rule.check(latest, history)
		if matched && rule.confidence > result.Confidence {
			result.HasAnomaly = true
			result.AnomalyType = rule.name
			result.Confidence = rule.confidence
			result.Message = message
		}
	}

	if result.HasAnomaly {
		logger.Info("Anomaly detected", zap.Uint("device_id", deviceID), zap.Reflect("result", result))
	}

	return result, nil
}

type IAnomalyImpl struct {
	engine *Engine
}

func (ia *IAnomalyImpl) DetectAnomalies(deviceID uint) (*models.AnomalyResult, error) {
	return ia.engine.detectAnomalies(deviceID)
}

func (e *Engine) GetIAnomaly() IAnomaly {
	return &IAnomalyImpl{engine: e}
}
