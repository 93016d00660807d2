package engine

import (
	"time"

	"go.uber.org/zap"
	"gridwell.xyz/asset-health-service/pkg/common"
	"gridwell.xyz/asset-health-service/pkg/models"
)

const defaultNotificationDays = 7

// addFrequency advances from a fixed offset per frequency. Unrecognized
// frequencies fall back to monthly.
func addFrequency(from time.Time, frequency models.Frequency) time.Time {
	switch frequency {
	case models.FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	case models.FrequencyQuarterly:
		return from.AddDate(0, 3, 0)
	case models.FrequencyBiAnnual:
		return from.AddDate(0, 6, 0)
	case models.FrequencyAnnual:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

var batteryChecklistTemplate = []string{
	"Inspect battery enclosure for damage or corrosion",
	"Verify cell voltage balance across all modules",
	"Check cooling system operation and airflow",
	"Inspect cable connections and torque to specification",
	"Review BMS event log for faults",
}

var solarChecklistTemplate = []string{
	"Clean panel surfaces and check for soiling",
	"Inspect panels for cracks, discoloration and hotspots",
	"Verify inverter output against expected production",
	"Check mounting hardware and grounding connections",
	"Inspect junction boxes and wiring for wear",
}

var genericChecklistTemplate = []string{
	"Perform visual inspection of the device",
	"Verify device is reporting telemetry",
	"Check electrical connections",
	"Record operating parameters",
}

func checklistFor(deviceType models.DeviceType) []models.ChecklistItem {
	var tasks []string
	switch deviceType {
	case models.DeviceTypeBatteryStorage:
		tasks = batteryChecklistTemplate
	case models.DeviceTypeSolarPV:
		tasks = solarChecklistTemplate
	default:
		tasks = genericChecklistTemplate
	}

	return common.Mapper(tasks, func(task string) models.ChecklistItem {
		return models.ChecklistItem{Task: task, Completed: false}
	})
}

func (e *Engine) createMaintenanceSchedule(deviceID uint, input models.ScheduleInput) (*models.MaintenanceSchedule, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySchedule),
	)

	device, err := e.getDevice(deviceID)
	if err != nil {
		return nil, err
	}

	schedule := models.MaintenanceSchedule{
		DeviceID:         deviceID,
		Title:            input.Title,
		Description:      input.Description,
		Frequency:        input.Frequency,
		StartDate:        input.StartDate,
		NextDueDate:      addFrequency(input.StartDate, input.Frequency),
		ChecklistItems:   checklistFor(device.Type),
		PriorityLevel:    models.SeverityMedium,
		IsActive:         true,
		NotificationDays: defaultNotificationDays,
		CreatedBy:        input.CreatedBy,
	}

	logger.Info("Received schedule for device", zap.Reflect("schedule", schedule))

	if err := e.Db.Conn.Create(&schedule).Error; err != nil {
		return nil, err
	}

	logger.Info("Created schedule for device", zap.Reflect("schedule", schedule))
	return &schedule, nil
}

// advanceSchedule rolls nextDueDate forward by one frequency step and
// resets checklist completion. The advancement trigger is external.
func (e *Engine) advanceSchedule(scheduleID uint) (*models.MaintenanceSchedule, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySchedule),
	)

	var schedule models.MaintenanceSchedule
	if err := e.Db.Conn.First(&schedule, scheduleID).Error; err != nil {
		return nil, err
	}

	schedule.NextDueDate = addFrequency(schedule.NextDueDate, schedule.Frequency)
	for i := range schedule.ChecklistItems {
		schedule.ChecklistItems[i].Completed = false
	}

	if err := e.Db.Conn.Save(&schedule).Error; err != nil {
		return nil, err
	}

	logger.Info("Advanced schedule", zap.Reflect("schedule", schedule))
	return &schedule, nil
}

type IScheduleImpl struct {
	engine *Engine
}

func (is *IScheduleImpl) CreateMaintenanceSchedule(deviceID uint, input models.ScheduleInput) (*models.MaintenanceSchedule, error) {
	return is.engine.createMaintenanceSchedule(deviceID, input)
}

func (is *IScheduleImpl) AdvanceSchedule(scheduleID uint) (*models.MaintenanceSchedule, error) {
	return is.engine.advanceSchedule(scheduleID)
}

func (e *Engine) GetISchedule() ISchedule {
	return &IScheduleImpl{engine: e}
}
