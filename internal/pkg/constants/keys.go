package constants

const (
	ViperHTTPAddr             = "http.addr"
	ViperCORSAllowOrigins     = "cors.allow_origins"
	ViperDataDir              = "data.dir"
	ViperDataSeedDemo         = "data.seed_demo"
	ViperDataFallbackEncoding = "data.fallback_encoding"
	ViperNormsFile            = "norms.file"
	ViperLogLevel             = "log.level"
	ViperLogDevelopment       = "log.development"
	ViperSessionSecret        = "session.secret"
	ViperWatchEnabled         = "watch.enabled"
	ViperWatchDebounce        = "watch.debounce"
	ViperExportDriver         = "export.driver"
	ViperExportDir            = "export.dir"
	ViperExportS3Bucket       = "export.s3.bucket"
	ViperExportS3Region       = "export.s3.region"
	ViperExportS3Endpoint     = "export.s3.endpoint"
	ViperExportS3PathStyle    = "export.s3.path_style"
)

const (
	EnvPrefix = "MILKDIGIT"

	SessionName = "milkdigit_session"

	CtxKeyRequestID  = "request_id"
	CtxKeyNavigation = "navigation"

	HeaderRequestID = "X-Request-ID"
)
