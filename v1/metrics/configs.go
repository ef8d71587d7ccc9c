package metrics

// Config defines the configuration for the metrics server.
type Config struct {
	// Address is the listen address of the /metrics HTTP server
	// Example: ":9090"
	Address string

	// ServiceName is added as a constant `service` label to all metrics
	ServiceName string

	// EnableDefaultCollectors registers the Go, process and build-info
	// collectors alongside the application metrics
	// Default: false
	EnableDefaultCollectors bool
}
