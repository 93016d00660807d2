package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gridwell.xyz/asset-health-service/pkg/common"
	"gridwell.xyz/asset-health-service/pkg/models"
	_ "gridwell.xyz/asset-health-service/pkg/testing"
)

func TestAddFrequency(t *testing.T) {
	from := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, from.AddDate(0, 0, 1), addFrequency(from, models.FrequencyDaily))
	assert.Equal(t, from.AddDate(0, 0, 7), addFrequency(from, models.FrequencyWeekly))
	assert.Equal(t, from.AddDate(0, 1, 0), addFrequency(from, models.FrequencyMonthly))
	assert.Equal(t, from.AddDate(0, 3, 0), addFrequency(from, models.FrequencyQuarterly))
	assert.Equal(t, from.AddDate(0, 6, 0), addFrequency(from, models.FrequencyBiAnnual))
	assert.Equal(t, from.AddDate(1, 0, 0), addFrequency(from, models.FrequencyAnnual))

	// anything unrecognized falls back to monthly
	assert.Equal(t, from.AddDate(0, 1, 0), addFrequency(from, models.FrequencyCustom))
	assert.Equal(t, from.AddDate(0, 1, 0), addFrequency(from, models.Frequency("bogus")))
}

func TestCreateMaintenanceScheduleBattery(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	schedule, err := engineObj.Schedule.CreateMaintenanceSchedule(device.ID, models.ScheduleInput{
		Title:     "Quarterly battery service",
		Frequency: models.FrequencyQuarterly,
		StartDate: start,
		CreatedBy: "planner-1",
	})
	assert.NoError(t, err)

	assert.True(t, schedule.NextDueDate.Equal(start.AddDate(0, 3, 0)))
	assert.Equal(t, models.SeverityMedium, schedule.PriorityLevel)
	assert.True(t, schedule.IsActive)
	assert.Equal(t, 7, schedule.NotificationDays)
	assert.Equal(t, "planner-1", schedule.CreatedBy)

	// battery template has five tasks, all pending
	assert.Len(t, schedule.ChecklistItems, 5)
	for _, item := range schedule.ChecklistItems {
		assert.False(t, item.Completed)
		assert.NotEmpty(t, item.Task)
	}
}

func TestCreateMaintenanceScheduleGenericChecklist(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeSmartMeter, 0, models.DeviceSettings{})

	schedule, err := engineObj.Schedule.CreateMaintenanceSchedule(device.ID, models.ScheduleInput{
		Title:     "Meter check",
		Frequency: models.FrequencyAnnual,
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Len(t, schedule.ChecklistItems, 4)
}

func TestCreateMaintenanceScheduleUnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := engineObj.Schedule.CreateMaintenanceSchedule(9999999, models.ScheduleInput{
		Title:     "orphan",
		Frequency: models.FrequencyMonthly,
		StartDate: time.Now().UTC(),
	})
	assert.Error(t, err)
}

func TestAdvanceSchedule(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeSolarPV, 10, models.DeviceSettings{})

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	schedule, err := engineObj.Schedule.CreateMaintenanceSchedule(device.ID, models.ScheduleInput{
		Title:     "Monthly panel cleaning",
		Frequency: models.FrequencyMonthly,
		StartDate: start,
	})
	assert.NoError(t, err)

	// simulate a completed visit
	schedule.ChecklistItems[0].Completed = true
	schedule.ChecklistItems[1].Completed = true
	assert.NoError(t, engineObj.Db.Conn.Save(schedule).Error)

	advanced, err := engineObj.Schedule.AdvanceSchedule(schedule.ID)
	assert.NoError(t, err)

	assert.True(t, advanced.NextDueDate.Equal(start.AddDate(0, 2, 0)))
	for _, item := range advanced.ChecklistItems {
		assert.False(t, item.Completed)
	}
}

func TestAdvanceScheduleNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := engineObj.Schedule.AdvanceSchedule(9999999)
	assert.Error(t, err)
}
