// Package telemetry seeds process-wide OpenTelemetry environment
// defaults for downstream collectors. The core validate/dispatch/render
// logic reads none of these variables.
package telemetry

import "os"

const (
	// ServiceName is the default OTEL service name
	ServiceName = "newscrew"

	// DefaultEndpoint is the default local OTLP collector endpoint
	DefaultEndpoint = "http://localhost:4318"

	envEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envSampler    = "OTEL_TRACES_SAMPLER"
	envSamplerArg = "OTEL_TRACES_SAMPLER_ARG"
	envService    = "OTEL_SERVICE_NAME"
	envDisabled   = "NEWSCREW_TELEMETRY_DISABLED"
)

// Init seeds OTEL_* defaults without clobbering values already present
// in the environment, and reports whether telemetry is enabled. It
// never fails: a broken telemetry setup must not block research.
func Init() bool {
	if os.Getenv(envDisabled) != "" {
		return false
	}

	setDefault(envEndpoint, DefaultEndpoint)
	setDefault(envSampler, "traceidratio")
	setDefault(envSamplerArg, "1.0")
	setDefault(envService, ServiceName)

	return true
}

func setDefault(key, value string) {
	if os.Getenv(key) == "" {
		_ = os.Setenv(key, value)
	}
}
