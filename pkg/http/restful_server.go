package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gridwell.xyz/asset-health-service/pkg/engine"
)

type RestfulServer struct {
	Server           *gin.Engine
	Engine           *engine.Engine
	RateLimiterStore *engine.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.POST("/devices", rs.PostDevice)

	devices := rs.Server.Group("/devices/:device_id")
	{
		devices.POST("/readings", rs.PostReading)
		devices.PUT("/thresholds", rs.PutThreshold)
		devices.GET("/thresholds", rs.GetThresholds)
		devices.POST("/health", rs.PostHealthScore)
		devices.GET("/anomalies", rs.GetAnomalies)
		devices.POST("/alerts/generate", rs.PostGenerateAlerts)
		devices.GET("/alerts", rs.GetAlerts)
		devices.GET("/issues", rs.GetIssues)
		devices.POST("/schedules", rs.PostSchedule)
		devices.POST("/analysis", rs.PostAnalysis)
		devices.POST("/limiter", rs.PostLimiter)
	}

	rs.Server.POST("/alerts/:alert_id/acknowledge", rs.PostAcknowledgeAlert)
	rs.Server.POST("/issues/:issue_id/resolve", rs.PostResolveIssue)
	rs.Server.POST("/schedules/:schedule_id/advance", rs.PostAdvanceSchedule)

	rs.Server.GET("/sites/:site_id/report", rs.GetSiteReport)
}
