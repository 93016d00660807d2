package engine

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"gridwell.xyz/asset-health-service/pkg/common"
	"gridwell.xyz/asset-health-service/pkg/models"
	_ "gridwell.xyz/asset-health-service/pkg/testing"
)

func TestComputeHealthScoreBattery(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})
	SeedHourlyReadings(t, engineObj, device.ID, 100, time.Now().UTC(), 50, 25, 10)

	score, err := engineObj.Health.ComputeHealthScore(device.ID)
	assert.NoError(t, err)

	// 100 hourly readings -> 3 cycles -> 0.06% capacity fading; no
	// temperature or state-of-charge penalty
	assert.InDelta(t, 99.94, score, 1e-9)

	snapshot, err := engineObj.Health.GetLatestSnapshot(device.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.HealthStatusGood, snapshot.HealthStatus)
	assert.NotNil(t, snapshot.CycleCount)
	assert.Equal(t, 3, *snapshot.CycleCount)
	assert.InDelta(t, 0.06, *snapshot.CapacityFading, 1e-9)
	assert.InDelta(t, 0.06, snapshot.FailureProbability, 1e-9)
	assert.Equal(t, int(math.Round(99.94/100.0*float64(4000-3))), snapshot.RemainingUsefulLife)
}

func TestComputeHealthScoreBatteryOverheating(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})
	SeedHourlyReadings(t, engineObj, device.ID, 48, time.Now().UTC(), 50, 45, 10)

	score, err := engineObj.Health.ComputeHealthScore(device.ID)
	assert.NoError(t, err)

	// 48 readings -> 1 cycle -> 0.02% fading; 45°C costs (45-30)*1.5 = 22.5
	assert.InDelta(t, 77.48, score, 1e-9)

	snapshot, err := engineObj.Health.GetLatestSnapshot(device.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.HealthStatusFair, snapshot.HealthStatus)
}

func TestComputeHealthScoreBatteryExtremeStateOfCharge(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})
	SeedHourlyReadings(t, engineObj, device.ID, 12, time.Now().UTC(), 5, 25, 10)

	score, err := engineObj.Health.ComputeHealthScore(device.ID)
	assert.NoError(t, err)

	// 12 readings -> 0 cycles, no fading; SoC 5% costs a flat 5 points
	assert.InDelta(t, 95, score, 1e-9)
}

func TestComputeHealthScoreSolar(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	now := time.Now().UTC()
	device := SeedDevice(t, engineObj, 1, models.DeviceTypeSolarPV, 10, models.DeviceSettings{
		InstallationYear: now.Year() - 2,
	})

	// one reading at solar noon: expected power equals rated capacity, so
	// 5 kW out of 10 kW is a performance ratio of exactly 0.5
	noon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, time.UTC)
	SeedHourlyReadings(t, engineObj, device.ID, 1, noon, 0, 25, 5)

	score, err := engineObj.Health.ComputeHealthScore(device.ID)
	assert.NoError(t, err)

	// 100 - 1.4 (2y degradation) - 2.5 (soiling) - 20 (ratio penalty)
	assert.InDelta(t, 76.1, score, 1e-9)

	snapshot, err := engineObj.Health.GetLatestSnapshot(device.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.HealthStatusFair, snapshot.HealthStatus)
	assert.NotNil(t, snapshot.EfficiencyRatio)
	assert.InDelta(t, 0.5, *snapshot.EfficiencyRatio, 1e-9)
	assert.InDelta(t, 1.4, *snapshot.DegradationRate, 1e-9)
	assert.InDelta(t, 2.5, *snapshot.SoilingLossRate, 1e-9)
}

func TestComputeHealthScoreSameDayReturnsStoredScore(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})
	SeedHourlyReadings(t, engineObj, device.ID, 24, time.Now().UTC(), 50, 25, 10)

	first, err := engineObj.Health.ComputeHealthScore(device.ID)
	assert.NoError(t, err)

	second, err := engineObj.Health.ComputeHealthScore(device.ID)
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	// the second call must not have written another snapshot
	snapshots, err := engineObj.Health.GetRecentSnapshots(device.ID, 10)
	assert.NoError(t, err)
	assert.Len(t, snapshots, 1)
}

func TestComputeHealthScoreUnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	score, err := engineObj.Health.ComputeHealthScore(9999999)
	assert.NoError(t, err)
	assert.Equal(t, 85.0, score)
}

func TestComputeHealthScoreNoReadings(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})

	score, err := engineObj.Health.ComputeHealthScore(device.ID)
	assert.NoError(t, err)
	assert.Equal(t, 85.0, score)

	_, err = engineObj.Health.GetLatestSnapshot(device.ID)
	assert.Error(t, err)
}

func TestComputeHealthScoreUnmodeledDeviceType(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeEVCharger, 22, models.DeviceSettings{})
	SeedHourlyReadings(t, engineObj, device.ID, 24, time.Now().UTC(), 50, 25, 10)

	score, err := engineObj.Health.ComputeHealthScore(device.ID)
	assert.NoError(t, err)
	assert.Equal(t, 85.0, score)

	// scoring an unmodeled type never persists a snapshot
	_, err = engineObj.Health.GetLatestSnapshot(device.ID)
	assert.Error(t, err)
}

func TestComputeHealthScore_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})
	SeedHourlyReadings(t, engineObj, device.ID, 24, time.Now().UTC(), 50, 25, 10)

	_, err := engineObj.Health.ComputeHealthScore(device.ID)
	assert.NoError(t, err)

	logs := ParseLogs(strings.NewReader(buf.String()))
	stored := false
	for _, entry := range logs {
		if m, ok := entry.(map[string]any); ok && m["msg"] == "Stored health snapshot" {
			stored = true
		}
	}
	assert.True(t, stored, "expected a 'Stored health snapshot' log entry")
}

func TestBatteryTemperatureImpact(t *testing.T) {
	assert.Equal(t, 0.0, batteryTemperatureImpact(15))
	assert.Equal(t, 0.0, batteryTemperatureImpact(25))
	assert.Equal(t, 0.0, batteryTemperatureImpact(30))
	assert.InDelta(t, 22.5, batteryTemperatureImpact(45), 1e-9)
	assert.InDelta(t, 4.0, batteryTemperatureImpact(10), 1e-9)
	assert.InDelta(t, 12.0, batteryTemperatureImpact(0), 1e-9)
}

func TestExpectedSolarPower(t *testing.T) {
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, expectedSolarPower(10, day.Add(5*time.Hour)))
	assert.Equal(t, 0.0, expectedSolarPower(10, day.Add(19*time.Hour)))
	assert.InDelta(t, 10.0, expectedSolarPower(10, day.Add(12*time.Hour)), 1e-9)
	assert.InDelta(t, 10.0*math.Sin(math.Pi/4), expectedSolarPower(10, day.Add(9*time.Hour)), 1e-9)
}

func TestHealthStatusForScore(t *testing.T) {
	assert.Equal(t, models.HealthStatusGood, healthStatusForScore(90))
	assert.Equal(t, models.HealthStatusFair, healthStatusForScore(89.9))
	assert.Equal(t, models.HealthStatusFair, healthStatusForScore(70))
	assert.Equal(t, models.HealthStatusPoor, healthStatusForScore(69.9))
	assert.Equal(t, models.HealthStatusPoor, healthStatusForScore(50))
	assert.Equal(t, models.HealthStatusCritical, healthStatusForScore(49.9))
}

func TestRemainingUsefulLife(t *testing.T) {
	assert.Equal(t, 4000, remainingUsefulLife(100, 0))
	assert.Equal(t, 0, remainingUsefulLife(0, 0))
	assert.Equal(t, 2000, remainingUsefulLife(50, 0))
	// observed cycles past the design limit never go negative
	assert.Equal(t, 0, remainingUsefulLife(50, 4500))
}
