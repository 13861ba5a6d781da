package config

const (
	KeyClientID        = "uitdb_client_id"
	KeyBaseURL         = "uitdb_base_url"
	KeyTimeout         = "uitdb_timeout"
	KeyRateLimit       = "uitdb_rate_limit"
	KeyLogLevel        = "log_level"
	KeyHost            = "host"
	KeyPort            = "port"
	KeyMCPEndpointPath = "mcp_endpoint_path"
)
