package engine

import (
	"time"

	"go.uber.org/zap"
	"gridwell.xyz/asset-health-service/pkg/common"
	"gridwell.xyz/asset-health-service/pkg/models"
)

// siteHealthLabel bands the site-wide average. The cutoffs are
// deliberately coarser than the per-device snapshot banding.
func siteHealthLabel(avgScore float64) string {
	switch {
	case avgScore >= 90:
		return "Excellent"
	case avgScore >= 80:
		return "Good"
	case avgScore >= 70:
		return "Fair"
	case avgScore >= 50:
		return "Poor"
	default:
		return "Critical"
	}
}

// generateMaintenanceReport rolls per-device health, issue and alert state
// up to a site-level view. Devices with no snapshot contribute a zero
// score; a missing snapshot never aborts the report.
func (e *Engine) generateMaintenanceReport(siteID uint) (*models.SiteReport, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReport),
	)

	var devices []models.Device
	if err := e.Db.Conn.Where("site_id = ?", siteID).Find(&devices).Error; err != nil {
		return nil, err
	}

	report := models.SiteReport{
		SiteID:      siteID,
		GeneratedAt: time.Now().UTC(),
		DeviceCount: len(devices),
		Devices:     make([]models.DeviceReport, 0, len(devices)),
	}

	for _, device := range devices {
		entry := models.DeviceReport{
			DeviceID: device.ID,
			Name:     device.Name,
			Type:     device.Type,
		}

		if snapshot, err := e.getLatestSnapshot(device.ID); err == nil {
			score := snapshot.OverallHealthScore
			entry.HealthScore = &score
			entry.HealthStatus = snapshot.HealthStatus
		}

		var activeIssues, resolvedIssues, activeAlerts int64
		e.Db.Conn.Model(&models.MaintenanceIssue{}).
			Where("device_id = ? AND status <> ?", device.ID, models.IssueStatusCompleted).
			Count(&activeIssues)
		e.Db.Conn.Model(&models.MaintenanceIssue{}).
			Where("device_id = ? AND status = ?", device.ID, models.IssueStatusCompleted).
			Count(&resolvedIssues)
		e.Db.Conn.Model(&models.MaintenanceAlert{}).
			Where("device_id = ? AND acknowledged_at IS NULL", device.ID).
			Count(&activeAlerts)

		entry.ActiveIssues = int(activeIssues)
		entry.ResolvedIssues = int(resolvedIssues)
		entry.ActiveAlerts = int(activeAlerts)

		report.Devices = append(report.Devices, entry)
	}

	if len(devices) > 0 {
		total := common.Reducer(report.Devices, func(acc float64, d models.DeviceReport) float64 {
			if d.HealthScore != nil {
				return acc + *d.HealthScore
			}
			return acc
		}, 0.0)
		report.AvgHealthScore = total / float64(len(devices))
	}
	report.HealthStatus = siteHealthLabel(report.AvgHealthScore)

	logger.Info("Generated site report",
		zap.Uint("site_id", siteID),
		zap.Int("device_count", report.DeviceCount),
		zap.Float64("avg_health_score", report.AvgHealthScore))

	return &report, nil
}

type IReportImpl struct {
	engine *Engine
}

func (ir *IReportImpl) GenerateMaintenanceReport(siteID uint) (*models.SiteReport, error) {
	return ir.engine.generateMaintenanceReport(siteID)
}

func (e *Engine) GetIReport() IReport {
	return &IReportImpl{engine: e}
}
