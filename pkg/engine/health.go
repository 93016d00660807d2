package engine

import (
	"math"
	"time"

	"go.uber.org/zap"
	"gridwell.xyz/asset-health-service/pkg/common"
	"gridwell.xyz/asset-health-service/pkg/models"
)

const (
	maxCycleLimit = 4000

	// defaults returned instead of an error when scoring cannot proceed
	scoreDefaultNoReadings  = 85.0
	scoreDefaultUnmodeled   = 85.0
	scoreDefaultBatteryFail = 75.0
	scoreDefaultSolarFail   = 80.0

	recentReadingsWindow = 100
)

// healthModel computes a HealthSnapshot for one device type. Evaluate is
// pure; persistence and failure defaults are handled by the engine.
type healthModel interface {
	Evaluate(device *models.Device, latest *models.Reading, recent []models.Reading, now time.Time) *models.HealthSnapshot
	FailureScore() float64
}

func healthModelFor(deviceType models.DeviceType) healthModel {
	switch deviceType {
	case models.DeviceTypeBatteryStorage:
		return batteryHealthModel{}
	case models.DeviceTypeSolarPV:
		return solarHealthModel{}
	default:
		// unmodeled type, caller falls back to the fixed default score
		return nil
	}
}

func healthStatusForScore(score float64) models.HealthStatus {
	switch {
	case score >= 90:
		return models.HealthStatusGood
	case score >= 70:
		return models.HealthStatusFair
	case score >= 50:
		return models.HealthStatusPoor
	default:
		return models.HealthStatusCritical
	}
}

// remainingUsefulLife treats one cycle as one day-equivalent.
func remainingUsefulLife(score float64, observedCycles int) int {
	days := math.Round(score / 100.0 * float64(maxCycleLimit-observedCycles))
	return int(math.Max(0, days))
}

func failureProbability(score float64) float64 {
	return common.Clamp(100-score, 0, 100)
}

type batteryHealthModel struct{}

func (batteryHealthModel) FailureScore() float64 { return scoreDefaultBatteryFail }

func (batteryHealthModel) Evaluate(device *models.Device, latest *models.Reading, recent []models.Reading, now time.Time) *models.HealthSnapshot {
	// ~0.8 cycles per day of hourly data
	cycleCount := int(math.Floor(float64(len(recent)) / 24.0 * 0.8))

	// a 1000-cycle battery is assumed to lose 20% capacity
	capacityFading := float64(cycleCount) / 1000.0 * 20.0

	temperature := latest.Temperature
	tempImpact := batteryTemperatureImpact(temperature)

	score := 100.0 - capacityFading
	if latest.StateOfCharge < 10 || latest.StateOfCharge > 90 {
		score -= 5
	}
	score -= tempImpact
	score = common.Clamp(score, 0, 100)

	return &models.HealthSnapshot{
		DeviceID:             device.ID,
		Timestamp:            now,
		CycleCount:           &cycleCount,
		CapacityFading:       &capacityFading,
		OperatingTemperature: &temperature,
		OverallHealthScore:   score,
		RemainingUsefulLife:  remainingUsefulLife(score, cycleCount),
		FailureProbability:   failureProbability(score),
		HealthStatus:         healthStatusForScore(score),
	}
}

// batteryTemperatureImpact is zero inside [15,30]°C. Overheating is
// penalized more steeply (1.5/°C) than cold (0.8/°C).
func batteryTemperatureImpact(temperature float64) float64 {
	if temperature > 30 {
		return (temperature - 30) * 1.5
	}
	if temperature < 15 {
		return (15 - temperature) * 0.8
	}
	return 0
}

type solarHealthModel struct{}

func (solarHealthModel) FailureScore() float64 { return scoreDefaultSolarFail }

func (solarHealthModel) Evaluate(device *models.Device, latest *models.Reading, recent []models.Reading, now time.Time) *models.HealthSnapshot {
	systemAgeYears := 2
	if device.Settings.InstallationYear > 0 {
		systemAgeYears = now.Year() - device.Settings.InstallationYear
		if systemAgeYears < 0 {
			systemAgeYears = 0
		}
	}

	expectedPower := expectedSolarPower(device.CapacityKW, latest.Timestamp)
	performanceRatio := 0.8
	if expectedPower > 0 {
		performanceRatio = latest.PowerKW / expectedPower
	}

	degradation := float64(systemAgeYears) * 0.7 // 0.7%/year
	soilingLoss := 2.5

	score := 100.0 - degradation - soilingLoss
	if performanceRatio < 0.7 {
		score -= (0.7 - performanceRatio) * 100
	}
	score = common.Clamp(score, 0, 100)

	return &models.HealthSnapshot{
		DeviceID:            device.ID,
		Timestamp:           now,
		EfficiencyRatio:     &performanceRatio,
		DegradationRate:     &degradation,
		SoilingLossRate:     &soilingLoss,
		OverallHealthScore:  score,
		RemainingUsefulLife: remainingUsefulLife(score, 0),
		FailureProbability:  failureProbability(score),
		HealthStatus:        healthStatusForScore(score),
	}
}

// expectedSolarPower models irradiance as a half-sine over the 06:00-18:00
// daylight window, peaking at noon, scaled by rated capacity.
func expectedSolarPower(capacityKW float64, at time.Time) float64 {
	hourOfDay := float64(at.Hour()) + float64(at.Minute())/60.0
	if hourOfDay < 6 || hourOfDay > 18 {
		return 0
	}
	return capacityKW * math.Sin(math.Pi*(hourOfDay-6)/12)
}

func (e *Engine) computeHealthScore(deviceID uint) (float64, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryHealth),
	)

	device, err := e.getDevice(deviceID)
	if err != nil {
		logger.Warn("Device not found for health scoring, using default score",
			zap.Uint("device_id", deviceID), zap.Error(err))
		return scoreDefaultNoReadings, nil
	}

	now := time.Now().UTC()

	// a snapshot computed today already carries the score
	if latest, err := e.getLatestSnapshot(deviceID); err == nil {
		y1, m1, d1 := latest.Timestamp.UTC().Date()
		y2, m2, d2 := now.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			return latest.OverallHealthScore, nil
		}
	}

	model := healthModelFor(device.Type)
	if model == nil {
		logger.Info("No health model for device type, using default score",
			zap.Uint("device_id", deviceID), zap.String("device_type", string(device.Type)))
		return scoreDefaultUnmodeled, nil
	}

	latestReading, err := e.getLatestReading(deviceID)
	if err != nil {
		logger.Warn("No readings for device, using default score",
			zap.Uint("device_id", deviceID), zap.Error(err))
		return scoreDefaultNoReadings, nil
	}

	recent, err := e.getRecentReadings(deviceID, recentReadingsWindow)
	if err != nil {
		logger.Warn("Failed to load recent readings, using model failure score",
			zap.Uint("device_id", deviceID), zap.Error(err))
		return model.FailureScore(), nil
	}

	snapshot := model.Evaluate(device, latestReading, recent, now)

	logger.Info("Computed health snapshot", zap.Reflect("snapshot", snapshot))

	if err := e.Db.Conn.Create(snapshot).Error; err != nil {
		logger.Warn("Failed to persist health snapshot, using model failure score",
			zap.Uint("device_id", deviceID), zap.Error(err))
		return model.FailureScore(), nil
	}

	logger.Info("Stored health snapshot", zap.Reflect("snapshot", snapshot))
	return snapshot.OverallHealthScore, nil
}

func (e *Engine) getLatestSnapshot(deviceID uint) (*models.HealthSnapshot, error) {
	var snapshot models.HealthSnapshot
	err := e.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("timestamp desc").
		First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (e *Engine) getRecentSnapshots(deviceID uint, limit int) ([]models.HealthSnapshot, error) {
	var snapshots []models.HealthSnapshot
	err := e.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("timestamp desc").
		Limit(limit).
		Find(&snapshots).Error
	return snapshots, err
}

type IHealthImpl struct {
	engine *Engine
}

func (ih *IHealthImpl) ComputeHealthScore(deviceID uint) (float64, error) {
	return ih.engine.computeHealthScore(deviceID)
}

func (ih *IHealthImpl) GetLatestSnapshot(deviceID uint) (*models.HealthSnapshot, error) {
	return ih.engine.getLatestSnapshot(deviceID)
}

func (ih *IHealthImpl) GetRecentSnapshots(deviceID uint, limit int) ([]models.HealthSnapshot, error) {
	return ih.engine.getRecentSnapshots(deviceID, limit)
}

func (e *Engine) GetIHealth() IHealth {
	return &IHealthImpl{engine: e}
}
