package tracer

// Config defines the configuration for the tracer client.
type Config struct {
	// ServiceName is reported as the service.name resource attribute
	// on every exported span
	ServiceName string

	// AppEnv is the deployment environment (e.g. "development", "production")
	AppEnv string

	// EnableExport enables the OTLP HTTP exporter. The exporter endpoint is
	// taken from the standard OTEL_EXPORTER_OTLP_* environment variables.
	// When false, spans are created but never exported.
	// Default: false
	EnableExport bool
}
