package telemetry

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envEndpoint, envSampler, envSamplerArg, envService, envDisabled} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestInit_Defaults(t *testing.T) {
	clearEnv(t)

	if !Init() {
		t.Fatal("Init() = false, want true")
	}

	if got := os.Getenv(envEndpoint); got != DefaultEndpoint {
		t.Errorf("%s = %q, want %q", envEndpoint, got, DefaultEndpoint)
	}
	if got := os.Getenv(envSampler); got != "traceidratio" {
		t.Errorf("%s = %q, want traceidratio", envSampler, got)
	}
	if got := os.Getenv(envSamplerArg); got != "1.0" {
		t.Errorf("%s = %q, want 1.0", envSamplerArg, got)
	}
	if got := os.Getenv(envService); got != ServiceName {
		t.Errorf("%s = %q, want %q", envService, got, ServiceName)
	}
}

func TestInit_PreservesCustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(envEndpoint, "http://custom-endpoint:4318")
	t.Setenv(envService, "custom-service")

	if !Init() {
		t.Fatal("Init() = false, want true")
	}

	if got := os.Getenv(envEndpoint); got != "http://custom-endpoint:4318" {
		t.Errorf("%s = %q, custom value was clobbered", envEndpoint, got)
	}
	if got := os.Getenv(envService); got != "custom-service" {
		t.Errorf("%s = %q, custom value was clobbered", envService, got)
	}
}

func TestInit_Disabled(t *testing.T) {
	clearEnv(t)
	t.Setenv(envDisabled, "1")

	if Init() {
		t.Error("Init() = true with telemetry disabled")
	}
}
