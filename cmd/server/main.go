package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gridwell.xyz/asset-health-service/pkg/advisor"
	"gridwell.xyz/asset-health-service/pkg/common"
	"gridwell.xyz/asset-health-service/pkg/db"
	"gridwell.xyz/asset-health-service/pkg/engine"
	ahsHttp "gridwell.xyz/asset-health-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	ahsDbType := os.Getenv(common.EnvKeyAHSDBType)
	switch ahsDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown AHS_DB_TYPE: " + ahsDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyAHSHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyAHSDefaultRate), 64); err != nil {
		log.Fatal("Invalid AHS_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyAHSDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid AHS_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	engineCore := engine.Engine{
		Db:  *dbInstance,
		LLM: advisor.NewHTTPClientFromEnv(),
	}
	engineCore.WithAllServices()
	engineCore.SetAdvisorLimiter(rate.Limit(defaultRate), int(defaultBurst))

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &ahsHttp.RestfulServer{
		Server:           gin.Default(),
		Engine:           &engineCore,
		RateLimiterStore: engine.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
