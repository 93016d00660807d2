package engine

import (
	"context"

	"golang.org/x/time/rate"
	"gridwell.xyz/asset-health-service/pkg/advisor"
	"gridwell.xyz/asset-health-service/pkg/db"
	"gridwell.xyz/asset-health-service/pkg/models"
)

type IRegistry interface {
	CreateDevice(input *models.Device) (*models.Device, error)
	GetDevice(deviceID uint) (*models.Device, error)
}

type IReading interface {
	IngestReading(deviceID uint, input *models.Reading) error
	GetLatestReading(deviceID uint) (*models.Reading, error)
	GetRecentReadings(deviceID uint, limit int) ([]models.Reading, error)
}

type IHealth interface {
	ComputeHealthScore(deviceID uint) (float64, error)
	GetLatestSnapshot(deviceID uint) (*models.HealthSnapshot, error)
	GetRecentSnapshots(deviceID uint, limit int) ([]models.HealthSnapshot, error)
}

type IAnomaly interface {
	DetectAnomalies(deviceID uint) (*models.AnomalyResult, error)
}

type IThreshold interface {
	EvaluateThresholds(deviceID uint) ([]models.ThresholdBreach, error)
	UpsertThreshold(deviceID uint, input *models.MaintenanceThreshold) (*models.MaintenanceThreshold, error)
	GetDeviceThresholds(deviceID uint) ([]models.MaintenanceThreshold, error)
}

type ILifecycle interface {
	GeneratePredictiveMaintenanceAlerts(deviceID uint) ([]models.MaintenanceAlert, error)
	ResolveIssue(issueID uint, userID string, input models.ResolveIssueInput) (*models.MaintenanceIssue, error)
	AcknowledgeAlert(alertID uint, userID string) (*models.MaintenanceAlert, error)
	GetDeviceIssues(deviceID uint) ([]models.MaintenanceIssue, error)
	GetDeviceAlerts(deviceID uint) ([]models.MaintenanceAlert, error)
}

type ISchedule interface {
	CreateMaintenanceSchedule(deviceID uint, input models.ScheduleInput) (*models.MaintenanceSchedule, error)
	AdvanceSchedule(scheduleID uint) (*models.MaintenanceSchedule, error)
}

type IAdvisor interface {
	GetHealthAnalysis(ctx context.Context, deviceID uint) (*models.AnalysisResult, error)
}

type IReport interface {
	GenerateMaintenanceReport(siteID uint) (*models.SiteReport, error)
}

// Engine is the predictive-maintenance core. All state lives in the
// database; operations against different devices are independent and
// safe to run concurrently.
type Engine struct {
	Db  db.DB
	LLM advisor.Client

	// AdvisorLimiter bounds calls to the external narrative-analysis
	// capability. Nil means unlimited.
	AdvisorLimiter *rate.Limiter

	Registry  IRegistry
	Reading   IReading
	Health    IHealth
	Anomaly   IAnomaly
	Threshold IThreshold
	Lifecycle ILifecycle
	Schedule  ISchedule
	Advisor   IAdvisor
	Report    IReport
}

type ServiceOpts struct {
	Registry  IRegistry
	Reading   IReading
	Health    IHealth
	Anomaly   IAnomaly
	Threshold IThreshold
	Lifecycle ILifecycle
	Schedule  ISchedule
	Advisor   IAdvisor
	Report    IReport
}

func (e *Engine) WithServices(opts ServiceOpts) *Engine {
	if opts.Registry != nil {
		e.Registry = opts.Registry
	}
	if opts.Reading != nil {
		e.Reading = opts.Reading
	}
	if opts.Health != nil {
		e.Health = opts.Health
	}
	if opts.Anomaly != nil {
		e.Anomaly = opts.Anomaly
	}
	if opts.Threshold != nil {
		e.Threshold = opts.Threshold
	}
	if opts.Lifecycle != nil {
		e.Lifecycle = opts.Lifecycle
	}
	if opts.Schedule != nil {
		e.Schedule = opts.Schedule
	}
	if opts.Advisor != nil {
		e.Advisor = opts.Advisor
	}
	if opts.Report != nil {
		e.Report = opts.Report
	}
	return e
}

// WithAllServices wires every concern to its default implementation.
func (e *Engine) WithAllServices() *Engine {
	return e.WithServices(ServiceOpts{
		Registry:  e.GetIRegistry(),
		Reading:   e.GetIReading(),
		Health:    e.GetIHealth(),
		Anomaly:   e.GetIAnomaly(),
		Threshold: e.GetIThreshold(),
		Lifecycle: e.GetILifecycle(),
		Schedule:  e.GetISchedule(),
		Advisor:   e.GetIAdvisor(),
		Report:    e.GetIReport(),
	})
}

func (e *Engine) SetAdvisorLimiter(r rate.Limit, burst int) {
	e.AdvisorLimiter = rate.NewLimiter(r, burst)
}
