package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyAHSDBType string = "AHS_DB_TYPE"
	EnvKeyAHSDbPath string = "AHS_DB_PATH"

	EnvKeyAHSHttpHostPort string = "AHS_HTTP_HOST_PORT"

	EnvKeyAHSDefaultRate  string = "AHS_DEFAULT_RATE"
	EnvKeyAHSDefaultBurst string = "AHS_DEFAULT_BURST"

	EnvKeyAdvisorBaseURL string = "AHS_ADVISOR_BASE_URL"
	EnvKeyAdvisorModel   string = "AHS_ADVISOR_MODEL"
	EnvKeyAdvisorAPIKey  string = "AHS_ADVISOR_API_KEY"
	EnvKeyAdvisorTimeout string = "AHS_ADVISOR_TIMEOUT_SECONDS"

	LoggerNameEngineCore    string = "engine_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameAdvisorClient string = "advisor_client"

	LoggerFieldCategory     string = "category"
	LoggerCategoryReading   string = "reading"
	LoggerCategoryRegistry  string = "registry"
	LoggerCategoryHealth    string = "health"
	LoggerCategoryAnomaly   string = "anomaly"
	LoggerCategoryThreshold string = "threshold"
	LoggerCategoryLifecycle string = "lifecycle"
	LoggerCategorySchedule  string = "schedule"
	LoggerCategoryAdvisor   string = "advisor"
	LoggerCategoryReport    string = "report"
)
