package engine

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gridwell.xyz/asset-health-service/pkg/db"
	"gridwell.xyz/asset-health-service/pkg/engine/mocks"
	"gridwell.xyz/asset-health-service/pkg/models"
)

func GetMockEngineWithMemorySqliteDialector(t *testing.T, useMockIHealth, useMockIAnomaly, useMockIThreshold bool) (
	*gomock.Controller,
	*Engine,
	*mocks.MockIHealth,
	*mocks.MockIAnomaly,
	*mocks.MockIThreshold,
) {
	ctrl := gomock.NewController(t)

	mockIHealth := mocks.NewMockIHealth(ctrl)
	mockIAnomaly := mocks.NewMockIAnomaly(ctrl)
	mockIThreshold := mocks.NewMockIThreshold(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	engineInstance := (&Engine{Db: *dbInstance}).WithAllServices()

	healthService := engineInstance.GetIHealth()
	if useMockIHealth {
		healthService = mockIHealth
	}

	anomalyService := engineInstance.GetIAnomaly()
	if useMockIAnomaly {
		anomalyService = mockIAnomaly
	}

	thresholdService := engineInstance.GetIThreshold()
	if useMockIThreshold {
		thresholdService = mockIThreshold
	}

	engineInstance.WithServices(ServiceOpts{
		Health:    healthService,
		Anomaly:   anomalyService,
		Threshold: thresholdService,
	})

	return ctrl, engineInstance, mockIHealth, mockIAnomaly, mockIThreshold
}

func SeedDevice(t *testing.T, engineObj *Engine, siteID uint, deviceType models.DeviceType, capacityKW float64, settings models.DeviceSettings) *models.Device {
	device, err := engineObj.Registry.CreateDevice(&models.Device{
		SiteID:     siteID,
		Name:       "test-device",
		Type:       deviceType,
		CapacityKW: capacityKW,
		Settings:   settings,
	})
	assert.NoError(t, err)
	return device
}

// SeedHourlyReadings inserts count readings spaced one hour apart, the
// newest one at the given end time.
func SeedHourlyReadings(t *testing.T, engineObj *Engine, deviceID uint, count int, end time.Time, soc, temperature, powerKW float64) {
	for i := count - 1; i >= 0; i-- {
		err := engineObj.Reading.IngestReading(deviceID, &models.Reading{
			Timestamp:     end.Add(-time.Duration(i) * time.Hour),
			StateOfCharge: soc,
			Temperature:   temperature,
			PowerKW:       powerKW,
		})
		assert.NoError(t, err)
	}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
