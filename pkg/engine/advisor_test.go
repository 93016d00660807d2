package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gridwell.xyz/asset-health-service/pkg/common"
	"gridwell.xyz/asset-health-service/pkg/models"
	_ "gridwell.xyz/asset-health-service/pkg/testing"
)

type stubAdvisorClient struct {
	response    string
	err         error
	lastSystem  string
	lastPayload string
}

func (c *stubAdvisorClient) Complete(ctx context.Context, systemInstruction, userPayload string) (string, error) {
	c.lastSystem = systemInstruction
	c.lastPayload = userPayload
	return c.response, c.err
}

func devicePredictions(t *testing.T, engineObj *Engine, deviceID uint) []models.MaintenancePrediction {
	var predictions []models.MaintenancePrediction
	err := engineObj.Db.Conn.Where("device_id = ?", deviceID).Find(&predictions).Error
	assert.NoError(t, err)
	return predictions
}

func TestGetHealthAnalysis(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})
	SeedHourlyReadings(t, engineObj, device.ID, 5, time.Now().UTC(), 50, 25, 10)

	stub := &stubAdvisorClient{response: `{
		"analysis": "Battery is aging normally.",
		"recommendations": ["Monitor cell balance"],
		"potentialIssues": ["capacity fade"],
		"remainingLifeEstimate": true,
		"remainingLifeDays": 400,
		"failureProbability": 12.5,
		"confidenceScore": 88,
		"impactAssessment": "low",
		"businessImpactScore": 65
	}`}
	engineObj.LLM = stub

	result, err := engineObj.Advisor.GetHealthAnalysis(context.Background(), device.ID)
	assert.NoError(t, err)

	assert.Equal(t, models.AnalysisStatusAnalyzed, result.Status)
	assert.Equal(t, "Battery is aging normally.", result.Analysis)
	assert.Equal(t, []string{"Monitor cell balance"}, result.Recommendations)
	assert.Equal(t, []string{"capacity fade"}, result.PotentialIssues)

	assert.NotNil(t, result.Prediction)
	assert.Equal(t, 400.0, result.Prediction.PredictedValue)
	assert.Equal(t, 12.5, result.Prediction.ProbabilityPercentage)
	assert.Equal(t, 88.0, result.Prediction.ConfidenceScore)
	assert.Equal(t, 65.0, result.Prediction.BusinessImpactScore)
	assert.Equal(t, []string{"cells", "battery_management_system"}, result.Prediction.AffectedComponents)
	assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, 400), result.Prediction.PredictionForTimestamp, time.Minute)

	assert.Len(t, devicePredictions(t, engineObj, device.ID), 1)

	// system instruction is specialized per device type, payload carries
	// the device context
	assert.True(t, strings.Contains(stub.lastSystem, "battery"))
	assert.True(t, strings.Contains(stub.lastPayload, device.Name))
}

func TestGetHealthAnalysisCodeFencedResponse(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeSolarPV, 10, models.DeviceSettings{})

	engineObj.LLM = &stubAdvisorClient{response: "```json\n{\"analysis\": \"Panels look fine.\"}\n```"}

	result, err := engineObj.Advisor.GetHealthAnalysis(context.Background(), device.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AnalysisStatusAnalyzed, result.Status)
	assert.Equal(t, "Panels look fine.", result.Analysis)
	assert.Nil(t, result.Prediction)
}

func TestGetHealthAnalysisNoRemainingLife(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})

	engineObj.LLM = &stubAdvisorClient{response: `{"analysis": "ok", "recommendations": []}`}

	result, err := engineObj.Advisor.GetHealthAnalysis(context.Background(), device.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AnalysisStatusAnalyzed, result.Status)
	assert.Nil(t, result.Prediction)
	assert.Len(t, devicePredictions(t, engineObj, device.ID), 0)
}

func TestGetHealthAnalysisClientError(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})

	engineObj.LLM = &stubAdvisorClient{err: errors.New("connection refused")}

	result, err := engineObj.Advisor.GetHealthAnalysis(context.Background(), device.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AnalysisStatusUnavailable, result.Status)
	assert.Equal(t, "advisor call failed", result.Reason)
	assert.Equal(t, []string{"Schedule a manual inspection"}, result.Recommendations)
	assert.Len(t, devicePredictions(t, engineObj, device.ID), 0)
}

func TestGetHealthAnalysisUnparseableResponse(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})

	engineObj.LLM = &stubAdvisorClient{response: "I think the battery is fine."}

	result, err := engineObj.Advisor.GetHealthAnalysis(context.Background(), device.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AnalysisStatusUnavailable, result.Status)
	assert.Equal(t, "advisor response not parseable", result.Reason)
}

func TestGetHealthAnalysisNotConfigured(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})

	result, err := engineObj.Advisor.GetHealthAnalysis(context.Background(), device.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AnalysisStatusUnavailable, result.Status)
	assert.Equal(t, "advisor not configured", result.Reason)
}

func TestGetHealthAnalysisRateLimited(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := SeedDevice(t, engineObj, 1, models.DeviceTypeBatteryStorage, 50, models.DeviceSettings{})

	engineObj.LLM = &stubAdvisorClient{response: `{"analysis": "ok"}`}
	engineObj.SetAdvisorLimiter(0, 0)

	result, err := engineObj.Advisor.GetHealthAnalysis(context.Background(), device.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AnalysisStatusUnavailable, result.Status)
	assert.Equal(t, "advisor rate limited", result.Reason)
}

func TestGetHealthAnalysisUnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engineObj, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	engineObj.LLM = &stubAdvisorClient{response: `{"analysis": "ok"}`}

	result, err := engineObj.Advisor.GetHealthAnalysis(context.Background(), 9999999)
	assert.NoError(t, err)
	assert.Equal(t, models.AnalysisStatusUnavailable, result.Status)
	assert.Equal(t, "device not found", result.Reason)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
