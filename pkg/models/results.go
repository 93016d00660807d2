package models

import "time"

// AnomalyResult is the outcome of one anomaly-detection pass. When several
// rules match, the fields describe the match with the highest confidence.
type AnomalyResult struct {
	HasAnomaly  bool    `json:"hasAnomaly"`
	AnomalyType string  `json:"anomalyType,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
	Message     string  `json:"message,omitempty"`
}

// ThresholdBreach is one configured threshold satisfied by the latest
// snapshot. Every evaluation that still satisfies the condition produces
// a fresh breach; there is no deduplication window.
type ThresholdBreach struct {
	Threshold MaintenanceThreshold `json:"threshold"`
	Value     float64              `json:"value"`
}

type ResolveIssueInput struct {
	Resolution      string
	ResolutionNotes string
	MaintenanceCost *float64
}

type ScheduleInput struct {
	Title       string
	Description string
	Frequency   Frequency
	StartDate   time.Time
	CreatedBy   string
}

type AnalysisStatus string

const (
	AnalysisStatusAnalyzed    AnalysisStatus = "analyzed"
	AnalysisStatusUnavailable AnalysisStatus = "unavailable"
)

// AnalysisResult distinguishes a real advisory analysis from an
// unavailable one so callers do not have to infer it from placeholder
// text.
type AnalysisResult struct {
	Status          AnalysisStatus         `json:"status"`
	Reason          string                 `json:"reason,omitempty"`
	Analysis        string                 `json:"analysis"`
	Recommendations []string               `json:"recommendations"`
	PotentialIssues []string               `json:"potentialIssues"`
	Prediction      *MaintenancePrediction `json:"prediction,omitempty"`
}

type DeviceReport struct {
	DeviceID       uint         `json:"deviceId"`
	Name           string       `json:"name"`
	Type           DeviceType   `json:"type"`
	HealthScore    *float64     `json:"healthScore,omitempty"`
	HealthStatus   HealthStatus `json:"healthStatus,omitempty"`
	ActiveIssues   int          `json:"activeIssues"`
	ResolvedIssues int          `json:"resolvedIssues"`
	ActiveAlerts   int          `json:"activeAlerts"`
}

type SiteReport struct {
	SiteID         uint           `json:"siteId"`
	GeneratedAt    time.Time      `json:"generatedAt"`
	DeviceCount    int            `json:"deviceCount"`
	AvgHealthScore float64        `json:"avgHealthScore"`
	HealthStatus   string         `json:"healthStatus"`
	Devices        []DeviceReport `json:"devices"`
}
