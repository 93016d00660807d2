package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gridwell.xyz/asset-health-service/pkg/engine"
	"gridwell.xyz/asset-health-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

type DeviceRequest struct {
	SiteID           int     `json:"site_id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	CapacityKW       float64 `json:"capacity_kw"`
	InstallationYear int     `json:"installation_year"`
}

var deviceRequestSchema = z.Struct(z.Shape{
	"SiteID":           z.Int().Required(),
	"Name":             z.String().Required(),
	"Type":             z.String().Required(),
	"CapacityKW":       z.Float64().Required(),
	"InstallationYear": z.Int(),
})

func (rs *RestfulServer) PostDevice(c *gin.Context) {
	var req DeviceRequest
	if err := deviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device, err := rs.Engine.Registry.CreateDevice(&models.Device{
		SiteID:     uint(req.SiteID),
		Name:       req.Name,
		Type:       models.DeviceType(req.Type),
		CapacityKW: req.CapacityKW,
		Settings:   models.DeviceSettings{InstallationYear: req.InstallationYear},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

type ReadingRequest struct {
	Timestamp     time.Time `json:"timestamp"`
	StateOfCharge float64   `json:"state_of_charge"`
	Temperature   float64   `json:"temperature"`
	PowerKW       float64   `json:"power_kw"`
	Voltage       float64   `json:"voltage"`
	Current       float64   `json:"current"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"Timestamp":     z.Time().Required(),
	"StateOfCharge": z.Float64(),
	"Temperature":   z.Float64(),
	"PowerKW":       z.Float64(),
	"Voltage":       z.Float64(),
	"Current":       z.Float64(),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	deviceID, ok := parseUintParam(c, "device_id")
	if !ok {
		return
	}

	if !rs.CheckDeviceLimiter(c.Param("device_id")) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Engine.Reading.IngestReading(deviceID, &models.Reading{
		Timestamp:     req.Timestamp,
		StateOfCharge: req.StateOfCharge,
		Temperature:   req.Temperature,
		PowerKW:       req.PowerKW,
		Voltage:       req.Voltage,
		Current:       req.Current,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

type ThresholdRequest struct {
	ID                 int      `json:"id"`
	MetricName         string   `json:"metric_name"`
	Direction          string   `json:"direction"`
	WarningThreshold   float64  `json:"warning_threshold"`
	SecondaryThreshold *float64 `json:"secondary_threshold"`
	Severity           string   `json:"severity"`
	AlertMessage       string   `json:"alert_message"`
	Enabled            bool     `json:"enabled"`
}

var thresholdRequestSchema = z.Struct(z.Shape{
	"ID":                 z.Int(),
	"MetricName":         z.String().Required(),
	"Direction":          z.String().OneOf([]string{"above", "below", "equal", "between"}).Required(),
	"WarningThreshold":   z.Float64().Required(),
	"SecondaryThreshold": z.Ptr(z.Float64()),
	"Severity":           z.String().OneOf([]string{"low", "medium", "high", "critical"}).Required(),
	"AlertMessage":       z.String(),
	"Enabled":            z.Bool().Required(),
})

func (rs *RestfulServer) PutThreshold(c *gin.Context) {
	deviceID, ok := parseUintParam(c, "device_id")
	if !ok {
		return
	}

	if !rs.CheckDeviceLimiter(c.Param("device_id")) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ThresholdRequest
	if err := thresholdRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	threshold, err := rs.Engine.Threshold.UpsertThreshold(deviceID, &models.MaintenanceThreshold{
		ID:                 uint(req.ID),
		MetricName:         req.MetricName,
		Direction:          models.ThresholdDirection(req.Direction),
		WarningThreshold:   req.WarningThreshold,
		SecondaryThreshold: req.SecondaryThreshold,
		Severity:           models.Severity(req.Severity),
		AlertMessage:       req.AlertMessage,
		Enabled:            req.Enabled,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, threshold)
}

func (rs *RestfulServer) GetThresholds(c *gin.Context) {
	deviceID, ok := parseUintParam(c, "device_id")
	if !ok {
		return
	}

	thresholds, err := rs.Engine.Threshold.GetDeviceThresholds(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, thresholds)
}

func (rs *RestfulServer) PostHealthScore(c *gin.Context) {
	deviceID, ok := parseUintParam(c, "device_id")
	if !ok {
		return
	}

	if !rs.CheckDeviceLimiter(c.Param("device_id")) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	score, err := rs.Engine.Health.ComputeHealthScore(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"device_id": deviceID, "health_score": score})
}

func (rs *RestfulServer) GetAnomalies(c *gin.Context) {
	deviceID, ok := parseUintParam(c, "device_id")
	if !ok {
		return
	}

	result, err := rs.Engine.Anomaly.DetectAnomalies(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (rs *RestfulServer) PostGenerateAlerts(c *gin.Context) {
	deviceID, ok := parseUintParam(c, "device_id")
	if !ok {
		return
	}

	if !rs.CheckDeviceLimiter(c.Param("device_id")) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	alerts, err := rs.Engine.Lifecycle.GeneratePredictiveMaintenanceAlerts(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	deviceID, ok := parseUintParam(c, "device_id")
	if !ok {
		return
	}

	alerts, err := rs.Engine.Lifecycle.GetDeviceAlerts(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) GetIssues(c *gin.Context) {
	deviceID, ok := parseUintParam(c, "device_id")
	if !ok {
		return
	}

	issues, err := rs.Engine.Lifecycle.GetDeviceIssues(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, issues)
}

type AcknowledgeRequest struct {
	UserID string `json:"user_id"`
}

var acknowledgeRequestSchema = z.Struct(z.Shape{
	"UserID": z.String().Required(),
})

func (rs *RestfulServer) PostAcknowledgeAlert(c *gin.Context) {
	alertID, ok := parseUintParam(c, "alert_id")
	if !ok {
		return
	}

	var req AcknowledgeRequest
	if err := acknowledgeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	alert, err := rs.Engine.Lifecycle.AcknowledgeAlert(alertID, req.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}

	c.JSON(http.StatusOK, alert)
}

type ResolveRequest struct {
	UserID          string   `json:"user_id"`
	Resolution      string   `json:"resolution"`
	ResolutionNotes string   `json:"resolution_notes"`
	MaintenanceCost *float64 `json:"maintenance_cost"`
}

var resolveRequestSchema = z.Struct(z.Shape{
	"UserID":          z.String().Required(),
	"Resolution":      z.String().Required(),
	"ResolutionNotes": z.String(),
	"MaintenanceCost": z.Ptr(z.Float64()),
})

func (rs *RestfulServer) PostResolveIssue(c *gin.Context) {
	issueID, ok := parseUintParam(c, "issue_id")
	if !ok {
		return
	}

	var req ResolveRequest
	if err := resolveRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	issue, err := rs.Engine.Lifecycle.ResolveIssue(issueID, req.UserID, models.ResolveIssueInput{
		Resolution:      req.Resolution,
		ResolutionNotes: req.ResolutionNotes,
		MaintenanceCost: req.MaintenanceCost,
	})
	if err != nil {
		if errors.Is(err, engine.ErrIssueAlreadyResolved) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "issue not found"})
		return
	}

	c.JSON(http.StatusOK, issue)
}

type ScheduleRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Frequency   string    `json:"frequency"`
	StartDate   time.Time `json:"start_date"`
	CreatedBy   string    `json:"created_by"`
}

var scheduleRequestSchema = z.Struct(z.Shape{
	"Title":       z.String().Required(),
	"Description": z.String(),
	"Frequency":   z.String().Required(),
	"StartDate":   z.Time().Required(),
	"CreatedBy":   z.String(),
})

func (rs *RestfulServer) PostSchedule(c *gin.Context) {
	deviceID, ok := parseUintParam(c, "device_id")
	if !ok {
		return
	}

	var req ScheduleRequest
	if err := scheduleRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	schedule, err := rs.Engine.Schedule.CreateMaintenanceSchedule(deviceID, models.ScheduleInput{
		Title:       req.Title,
		Description: req.Description,
		Frequency:   models.Frequency(req.Frequency),
		StartDate:   req.StartDate,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

func (rs *RestfulServer) PostAdvanceSchedule(c *gin.Context) {
	scheduleID, ok := parseUintParam(c, "schedule_id")
	if !ok {
		return
	}

	schedule, err := rs.Engine.Schedule.AdvanceSchedule(scheduleID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

func (rs *RestfulServer) PostAnalysis(c *gin.Context) {
	deviceID, ok := parseUintParam(c, "device_id")
	if !ok {
		return
	}

	if !rs.CheckDeviceLimiter(c.Param("device_id")) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	result, err := rs.Engine.Advisor.GetHealthAnalysis(c.Request.Context(), deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (rs *RestfulServer) GetSiteReport(c *gin.Context) {
	siteID, ok := parseUintParam(c, "site_id")
	if !ok {
		return
	}

	report, err := rs.Engine.Report.GenerateMaintenanceReport(siteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
