package config

const (
	KeyBackendBaseURL = "backend_base_url"
	KeyBackendTimeout = "backend_timeout"
	KeyHost           = "host"
	KeyPort           = "port"
	KeyLogLevel       = "log_level"
	KeyOTLPEndpoint   = "otlp_endpoint"
)
