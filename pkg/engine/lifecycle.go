package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gridwell.xyz/asset-health-service/pkg/common"
	"gridwell.xyz/asset-health-service/pkg/models"
)

var ErrIssueAlreadyResolved = errors.New("issue already resolved")

func severityForConfidence(confidence float64) models.Severity {
	switch {
	case confidence >= 90:
		return models.SeverityCritical
	case confidence >= 75:
		return models.SeverityHigh
	case confidence >= 50:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// generatePredictiveMaintenanceAlerts runs anomaly detection and threshold
// evaluation for one device and persists the resulting issues and alerts.
// Issues are a side effect; only the created alerts are returned.
func (e *Engine) generatePredictiveMaintenanceAlerts(deviceID uint) ([]models.MaintenanceAlert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryLifecycle),
	)

	now := time.Now().UTC()
	created := []models.MaintenanceAlert{}

	anomaly, err := e.Anomaly.DetectAnomalies(deviceID)
	if err != nil {
		return nil, err
	}

	if anomaly.HasAnomaly {
		severity := severityForConfidence(anomaly.Confidence)

		issue := models.MaintenanceIssue{
			ExternalID:      uuid.NewString(),
			DeviceID:        deviceID,
			Title:           fmt.Sprintf("Anomaly detected: %s", anomaly.AnomalyType),
			Description:     anomaly.Message,
			Type:            models.IssueTypePredictive,
			Severity:        severity,
			ConfidenceScore: anomaly.Confidence,
			AnomalyScore:    anomaly.Confidence,
			Status:          models.IssueStatusOpen,
			DetectedAt:      now,
		}

		logger.Info("Issue found", zap.Reflect("issue", issue))

		if err := e.Db.Conn.Create(&issue).Error; err != nil {
			return nil, err
		}

		logger.Info("Issue saved", zap.Reflect("issue", issue))

		alert := models.MaintenanceAlert{
			ExternalID:     uuid.NewString(),
			DeviceID:       deviceID,
			AlertType:      models.AlertTypeAnomalyDetected,
			Message:        anomaly.Message,
			Severity:       severity,
			RelatedIssueID: &issue.ID,
			MetricName:     anomaly.AnomalyType,
			TriggerValue:   anomaly.Confidence,
			TriggeredAt:    now,
		}

		logger.Info("Alert found", zap.Reflect("alert", alert))

		if err := e.Db.Conn.Create(&alert).Error; err != nil {
			return nil, err
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))
		created = append(created, alert)
	}

	breaches, err := e.Threshold.EvaluateThresholds(deviceID)
	if err != nil {
		return nil, err
	}

	for _, breach := range breaches {
		t := breach.Threshold

		message := t.AlertMessage
		if message == "" {
			message = fmt.Sprintf("Metric %s value %.2f breached configured threshold %.2f",
				t.MetricName, breach.Value, t.WarningThreshold)
		}

		thresholdID := t.ID
		warning := t.WarningThreshold
		alert := models.MaintenanceAlert{
			ExternalID:     uuid.NewString(),
			DeviceID:       deviceID,
			AlertType:      models.AlertTypeThresholdExceeded,
			Message:        message,
			Severity:       t.Severity,
			ThresholdID:    &thresholdID,
			MetricName:     t.MetricName,
			TriggerValue:   breach.Value,
			ThresholdValue: &warning,
			TriggeredAt:    now,
		}

		logger.Info("Alert found", zap.Reflect("alert", alert))

		if err := e.Db.Conn.Create(&alert).Error; err != nil {
			return nil, err
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))
		created = append(created, alert)
	}

	return created, nil
}

// resolveIssue is the only way an issue leaves its detected state. A
// completed issue stays completed; a second resolve is rejected.
func (e *Engine) resolveIssue(issueID uint, userID string, input models.ResolveIssueInput) (*models.MaintenanceIssue, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryLifecycle),
	)

	var issue models.MaintenanceIssue
	if err := e.Db.Conn.First(&issue, issueID).Error; err != nil {
		return nil, err
	}

	if issue.Status == models.IssueStatusCompleted {
		return nil, ErrIssueAlreadyResolved
	}

	now := time.Now().UTC()
	issue.Status = models.IssueStatusCompleted
	issue.Resolution = input.Resolution
	issue.ResolutionNotes = input.ResolutionNotes
	issue.MaintenanceCost = input.MaintenanceCost
	issue.ResolvedBy = userID
	issue.ResolvedAt = &now

	if err := e.Db.Conn.Save(&issue).Error; err != nil {
		return nil, err
	}

	logger.Info("Issue resolved", zap.Reflect("issue", issue))
	return &issue, nil
}

// acknowledgeAlert stamps acknowledgedAt exactly once. Re-acknowledging
// returns the alert unchanged with the original timestamp.
func (e *Engine) acknowledgeAlert(alertID uint, userID string) (*models.MaintenanceAlert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryLifecycle),
	)

	var alert models.MaintenanceAlert
	if err := e.Db.Conn.First(&alert, alertID).Error; err != nil {
		return nil, err
	}

	if alert.AcknowledgedAt != nil {
		return &alert, nil
	}

	now := time.Now().UTC()
	alert.AcknowledgedAt = &now
	alert.AcknowledgedBy = userID

	if err := e.Db.Conn.Save(&alert).Error; err != nil {
		return nil, err
	}

	logger.Info("Alert acknowledged", zap.Reflect("alert", alert))
	return &alert, nil
}

func (e *Engine) getDeviceIssues(deviceID uint) ([]models.MaintenanceIssue, error) {
	var issues []models.MaintenanceIssue
	err := e.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("detected_at desc").
		Find(&issues).Error
	return issues, err
}

func (e *Engine) getDeviceAlerts(deviceID uint) ([]models.MaintenanceAlert, error) {
	var alerts []models.MaintenanceAlert
	err := e.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("triggered_at desc").
		Find(&alerts).Error
	return alerts, err
}

type ILifecycleImpl struct {
	engine *Engine
}

func (il *ILifecycleImpl) GeneratePredictiveMaintenanceAlerts(deviceID uint) ([]models.MaintenanceAlert, error) {
	return il.engine.generatePredictiveMaintenanceAlerts(deviceID)
}

func (il *ILifecycleImpl) ResolveIssue(issueID uint, userID string, input models.ResolveIssueInput) (*models.MaintenanceIssue, error) {
	return il.engine.resolveIssue(issueID, userID, input)
}

func (il *ILifecycleImpl) AcknowledgeAlert(alertID uint, userID string) (*models.MaintenanceAlert, error) {
	return il.engine.acknowledgeAlert(alertID, userID)
}

func (il *ILifecycleImpl) GetDeviceIssues(deviceID uint) ([]models.MaintenanceIssue, error) {
	return il.engine.getDeviceIssues(deviceID)
}

func (il *ILifecycleImpl) GetDeviceAlerts(deviceID uint) ([]models.MaintenanceAlert, error) {
	return il.engine.getDeviceAlerts(deviceID)
}

func (e *Engine) GetILifecycle() ILifecycle {
	return &ILifecycleImpl{engine: e}
}
