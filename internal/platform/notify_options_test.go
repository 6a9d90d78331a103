package platform

import (
	"testing"
	"time"
)

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if got := opts.appName(); got != DefaultAppName {
		t.Fatalf("appName = %q, want %q", got, DefaultAppName)
	}
	if got := opts.timeoutMillis(); got != 5000 {
		t.Fatalf("timeoutMillis = %d, want 5000", got)
	}
	opts = Options{AppName: "CI", Timeout: 1500 * time.Millisecond}
	if got := opts.appName(); got != "CI" {
		t.Fatalf("appName = %q", got)
	}
	if got := opts.timeoutMillis(); got != 1500 {
		t.Fatalf("timeoutMillis = %d", got)
	}
}
