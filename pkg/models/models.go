package models

import "time"

type DeviceType string

const (
	DeviceTypeBatteryStorage DeviceType = "battery_storage"
	DeviceTypeSolarPV        DeviceType = "solar_pv"
	DeviceTypeEVCharger      DeviceType = "ev_charger"
	DeviceTypeSmartMeter     DeviceType = "smart_meter"
	DeviceTypeHeatPump       DeviceType = "heat_pump"
)

type HealthStatus string

const (
	HealthStatusGood     HealthStatus = "good"
	HealthStatusFair     HealthStatus = "fair"
	HealthStatusPoor     HealthStatus = "poor"
	HealthStatusCritical HealthStatus = "critical"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type IssueType string

const (
	IssueTypePredictive IssueType = "predictive"
	IssueTypeReactive   IssueType = "reactive"
	IssueTypeScheduled  IssueType = "scheduled"
)

type IssueStatus string

const (
	IssueStatusOpen       IssueStatus = "open"
	IssueStatusInProgress IssueStatus = "in_progress"
	IssueStatusCompleted  IssueStatus = "completed"
)

type AlertType string

const (
	AlertTypeAnomalyDetected   AlertType = "anomaly_detected"
	AlertTypeThresholdExceeded AlertType = "threshold_exceeded"
)

type ThresholdDirection string

const (
	ThresholdDirectionAbove   ThresholdDirection = "above"
	ThresholdDirectionBelow   ThresholdDirection = "below"
	ThresholdDirectionEqual   ThresholdDirection = "equal"
	ThresholdDirectionBetween ThresholdDirection = "between"
)

type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyBiAnnual  Frequency = "bi_annual"
	FrequencyAnnual    Frequency = "annual"
	FrequencyCustom    Frequency = "custom"
)

// DeviceSettings is the typed per-device configuration, parsed once at the
// registry boundary. InstallationYear of 0 means not recorded.
type DeviceSettings struct {
	InstallationYear int
}

type Device struct {
	ID         uint   `gorm:"primaryKey"`
	SiteID     uint   `gorm:"index"`
	Name       string
	Type       DeviceType `gorm:"type:varchar(20);check:type IN ('battery_storage','solar_pv','ev_charger','smart_meter','heat_pump')"`
	CapacityKW float64
	Settings   DeviceSettings `gorm:"embedded;embeddedPrefix:settings_"`
	CreatedAt  time.Time
}

// Reading is one decoded telemetry sample. Append-only, queried newest-first.
type Reading struct {
	ID            uint `gorm:"primaryKey"`
	DeviceID      uint `gorm:"index"`
	Timestamp     time.Time
	StateOfCharge float64
	Temperature   float64
	PowerKW       float64
	Voltage       float64
	Current       float64
}

// HealthSnapshot is one computed health evaluation for a device. Fields are
// a superset across device types; pointer fields are absent for types that
// do not produce them. Never mutated after insert.
type HealthSnapshot struct {
	ID        uint `gorm:"primaryKey"`
	DeviceID  uint `gorm:"index"`
	Timestamp time.Time

	// battery
	CycleCount           *int
	CapacityFading       *float64
	InternalResistance   *float64
	OperatingTemperature *float64

	// solar
	EfficiencyRatio          *float64
	DegradationRate          *float64
	SoilingLossRate          *float64
	HotspotCount             *int
	ConnectionIntegrityScore *float64

	// universal
	OverallHealthScore  float64
	RemainingUsefulLife int
	FailureProbability  float64
	HealthStatus        HealthStatus `gorm:"type:varchar(10);check:health_status IN ('good','fair','poor','critical')"`
}

type MaintenanceIssue struct {
	ID         uint   `gorm:"primaryKey"`
	ExternalID string `gorm:"index"`
	DeviceID   uint   `gorm:"index"`

	Title       string
	Description string
	Type        IssueType `gorm:"type:varchar(20)"`
	Severity    Severity  `gorm:"type:varchar(10)"`

	ConfidenceScore float64
	AnomalyScore    float64

	Status             IssueStatus `gorm:"type:varchar(20);default:open"`
	DetectedAt         time.Time
	PredictedFailureAt *time.Time

	Resolution      string
	ResolutionNotes string
	MaintenanceCost *float64
	ResolvedBy      string
	ResolvedAt      *time.Time
}

type MaintenanceAlert struct {
	ID         uint   `gorm:"primaryKey"`
	ExternalID string `gorm:"index"`
	DeviceID   uint   `gorm:"index"`

	AlertType AlertType `gorm:"type:varchar(20);check:alert_type IN ('anomaly_detected','threshold_exceeded')"`
	Message   string
	Severity  Severity `gorm:"type:varchar(10)"`

	RelatedIssueID *uint
	ThresholdID    *uint

	MetricName     string
	TriggerValue   float64
	ThresholdValue *float64

	TriggeredAt    time.Time
	AcknowledgedAt *time.Time
	AcknowledgedBy string
}

type MaintenanceThreshold struct {
	ID       uint `gorm:"primaryKey"`
	DeviceID uint `gorm:"index"`

	MetricName         string
	Direction          ThresholdDirection `gorm:"type:varchar(10);check:direction IN ('above','below','equal','between')"`
	WarningThreshold   float64
	SecondaryThreshold *float64
	Severity           Severity `gorm:"type:varchar(10)"`
	AlertMessage       string
	Enabled            bool `gorm:"default:true"`
}

type ChecklistItem struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

type MaintenanceSchedule struct {
	ID       uint `gorm:"primaryKey"`
	DeviceID uint `gorm:"index"`

	Title       string
	Description string
	Frequency   Frequency `gorm:"type:varchar(10)"`
	StartDate   time.Time
	NextDueDate time.Time

	ChecklistItems []ChecklistItem `gorm:"serializer:json"`

	PriorityLevel    Severity `gorm:"type:varchar(10)"`
	IsActive         bool     `gorm:"default:true"`
	NotificationDays int
	CreatedBy        string
	CreatedAt        time.Time
}

type MaintenancePrediction struct {
	ID       uint `gorm:"primaryKey"`
	DeviceID uint `gorm:"index"`

	MetricName             string
	PredictionType         string
	PredictionForTimestamp time.Time
	ProbabilityPercentage  float64
	ConfidenceScore        float64
	PredictedValue         float64

	AlgorithmUsed string
	ModelVersion  string

	AffectedComponents  []string `gorm:"serializer:json"`
	RecommendedActions  []string `gorm:"serializer:json"`
	PotentialImpact     string
	BusinessImpactScore float64

	CreatedAt time.Time
}
