package engine

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"gridwell.xyz/asset-health-service/pkg/common"
	"gridwell.xyz/asset-health-service/pkg/models"
)

// advisorResponse is the structured payload expected back from the
// narrative-analysis capability. Every field is optional.
type advisorResponse struct {
	Analysis              string   `json:"analysis"`
	Recommendations       []string `json:"recommendations"`
	PotentialIssues       []string `json:"potentialIssues"`
	RemainingLifeEstimate bool     `json:"remainingLifeEstimate"`
	RemainingLifeDays     *int     `json:"remainingLifeDays"`
	FailureProbability    *float64 `json:"failureProbability"`
	ConfidenceScore       *float64 `json:"confidenceScore"`
	ImpactAssessment      string   `json:"impactAssessment"`
	BusinessImpactScore   *float64 `json:"businessImpactScore"`
}

type advisorPayload struct {
	Device struct {
		ID         uint              `json:"id"`
		Name       string            `json:"name"`
		Type       models.DeviceType `json:"type"`
		CapacityKW float64           `json:"capacityKw"`
	} `json:"device"`
	LatestSnapshot *models.HealthSnapshot    `json:"latestSnapshot,omitempty"`
	Readings       []models.Reading          `json:"recentReadings"`
	Alerts         []models.MaintenanceAlert `json:"recentAlerts"`
}

const (
	advisorReadingsWindow = 20
	advisorAlertsWindow   = 5

	defaultRemainingLifeDays   = 365
	defaultPredictionConf      = 70.0
	defaultBusinessImpactScore = 50.0

	fallbackAnalysisText = "Automated diagnostic analysis is currently unavailable. " +
		"Review the latest health snapshot and alerts manually."
)

func fallbackAnalysis(reason string) *models.AnalysisResult {
	return &models.AnalysisResult{
		Status:          models.AnalysisStatusUnavailable,
		Reason:          reason,
		Analysis:        fallbackAnalysisText,
		Recommendations: []string{"Schedule a manual inspection"},
		PotentialIssues: []string{"unknown"},
	}
}

func advisorSystemInstruction(deviceType models.DeviceType) string {
	var role string
	switch deviceType {
	case models.DeviceTypeBatteryStorage:
		role = "You are a battery energy storage diagnostics specialist. " +
			"Focus on capacity fade, cycle aging, thermal behavior and cell balance."
	case models.DeviceTypeSolarPV:
		role = "You are a solar photovoltaic diagnostics specialist. " +
			"Focus on performance ratio, soiling, degradation, hotspots and wiring integrity."
	default:
		role = "You are an energy equipment diagnostics specialist."
	}
	return role + " Respond with a single JSON object with the optional fields: " +
		`"analysis" (string), "recommendations" (string array), "potentialIssues" (string array), ` +
		`"remainingLifeEstimate" (bool), "remainingLifeDays" (int), "failureProbability" (number), ` +
		`"confidenceScore" (number), "impactAssessment" (string), "businessImpactScore" (number). ` +
		"Do not include any text outside the JSON object."
}

func affectedComponentsFor(deviceType models.DeviceType) []string {
	switch deviceType {
	case models.DeviceTypeBatteryStorage:
		return []string{"cells", "battery_management_system"}
	case models.DeviceTypeSolarPV:
		return []string{"panels", "inverter"}
	default:
		return []string{"general"}
	}
}

// stripCodeFence removes a surrounding markdown code fence if the model
// wrapped its JSON in one.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// getHealthAnalysis consults the external narrative-analysis capability.
// Any failure of the call or its parsing degrades to a fixed fallback;
// it never propagates as an error to the caller.
func (e *Engine) getHealthAnalysis(ctx context.Context, deviceID uint) (*models.AnalysisResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAdvisor),
	)

	if e.LLM == nil {
		return fallbackAnalysis("advisor not configured"), nil
	}

	if e.AdvisorLimiter != nil && !e.AdvisorLimiter.Allow() {
		return fallbackAnalysis("advisor rate limited"), nil
	}

	device, err := e.getDevice(deviceID)
	if err != nil {
		logger.Warn("Device not found for analysis", zap.Uint("device_id", deviceID), zap.Error(err))
		return fallbackAnalysis("device not found"), nil
	}

	var payload advisorPayload
	payload.Device.ID = device.ID
	payload.Device.Name = device.Name
	payload.Device.Type = device.Type
	payload.Device.CapacityKW = device.CapacityKW

	if snapshot, err := e.getLatestSnapshot(deviceID); err == nil {
		payload.LatestSnapshot = snapshot
	}
	payload.Readings, _ = e.getRecentReadings(deviceID, advisorReadingsWindow)
	payload.Alerts, _ = e.getDeviceAlerts(deviceID)
	if len(payload.Alerts) > advisorAlertsWindow {
		payload.Alerts = payload.Alerts[:advisorAlertsWindow]
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fallbackAnalysis("payload encoding failed"), nil
	}

	content, err := e.LLM.Complete(ctx, advisorSystemInstruction(device.Type), string(payloadJSON))
	if err != nil {
		logger.Warn("Advisor call failed", zap.Uint("device_id", deviceID), zap.Error(err))
		return fallbackAnalysis("advisor call failed"), nil
	}

	var parsed advisorResponse
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &parsed); err != nil {
		logger.Warn("Advisor response not parseable", zap.Uint("device_id", deviceID), zap.Error(err))
		return fallbackAnalysis("advisor response not parseable"), nil
	}

	result := &models.AnalysisResult{
		Status:          models.AnalysisStatusAnalyzed,
		Analysis:        parsed.Analysis,
		Recommendations: parsed.Recommendations,
		PotentialIssues: parsed.PotentialIssues,
	}
	if result.Analysis == "" {
		result.Analysis = "No detailed analysis provided."
	}
	if result.Recommendations == nil {
		result.Recommendations = []string{}
	}
	if result.PotentialIssues == nil {
		result.PotentialIssues = []string{}
	}

	if parsed.RemainingLifeEstimate || parsed.RemainingLifeDays != nil {
		result.Prediction = e.storePrediction(device, &parsed, payload.LatestSnapshot)
	}

	logger.Info("Advisor analysis completed", zap.Uint("device_id", deviceID),
		zap.Bool("has_prediction", result.Prediction != nil))

	return result, nil
}

func (e *Engine) storePrediction(device *models.Device, parsed *advisorResponse, snapshot *models.HealthSnapshot) *models.MaintenancePrediction {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAdvisor),
	)

	remainingDays := defaultRemainingLifeDays
	if parsed.RemainingLifeDays != nil {
		remainingDays = *parsed.RemainingLifeDays
	}

	confidence := defaultPredictionConf
	if parsed.ConfidenceScore != nil {
		confidence = *parsed.ConfidenceScore
	}

	businessImpact := defaultBusinessImpactScore
	if parsed.BusinessImpactScore != nil {
		businessImpact = *parsed.BusinessImpactScore
	}

	probability := 50.0
	if parsed.FailureProbability != nil {
		probability = *parsed.FailureProbability
	} else if snapshot != nil {
		probability = snapshot.FailureProbability
	}

	prediction := models.MaintenancePrediction{
		DeviceID:               device.ID,
		MetricName:             "remaining_useful_life",
		PredictionType:         "remaining_life",
		PredictionForTimestamp: time.Now().UTC().AddDate(0, 0, remainingDays),
		ProbabilityPercentage:  probability,
		ConfidenceScore:        confidence,
		PredictedValue:         float64(remainingDays),
		AlgorithmUsed:          "narrative_advisor",
		ModelVersion:           "v1",
		AffectedComponents:     affectedComponentsFor(device.Type),
		RecommendedActions:     parsed.Recommendations,
		PotentialImpact:        parsed.ImpactAssessment,
		BusinessImpactScore:    businessImpact,
	}

	if err := e.Db.Conn.Create(&prediction).Error; err != nil {
		logger.Warn("Failed to persist prediction", zap.Uint("device_id", device.ID), zap.Error(err))
		return nil
	}

	logger.Info("Stored prediction", zap.Reflect("prediction", prediction))
	return &prediction
}

type IAdvisorImpl struct {
	engine *Engine
}

func (ia *IAdvisorImpl) GetHealthAnalysis(ctx context.Context, deviceID uint) (*models.AnalysisResult, error) {
	return ia.engine.getHealthAnalysis(ctx, deviceID)
}

func (e *Engine) GetIAdvisor() IAdvisor {
	return &IAdvisorImpl{engine: e}
}
