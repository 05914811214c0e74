package config

import (
	"strconv"
	"time"
)

// WatchdogConfig holds heartbeat watchdog configuration
type WatchdogConfig struct {
	// Staleness is how long an UP element may go without a heartbeat
	// before it is demoted to DETACHED.
	Staleness time.Duration
	// Interval is the pause between watchdog sweeps.
	Interval time.Duration
}

// GetWatchdogConfig returns watchdog configuration from environment variables
func GetWatchdogConfig() *WatchdogConfig {
	return &WatchdogConfig{
		Staleness: getEnvSeconds("WATCHDOG_STALENESS_SECONDS", 180),
		Interval:  getEnvSeconds("WATCHDOG_INTERVAL_SECONDS", 60),
	}
}

// GetImageNameFormat returns the format string used to derive a stub image
// name from role, chipset, type and version.
func GetImageNameFormat() string {
	return getEnv("IMAGE_NAME_FORMAT", "%s_%s_%s_%s")
}

// getEnvSeconds reads an integer env var as a duration in seconds
func getEnvSeconds(key string, fallback int) time.Duration {
	raw := getEnv(key, "")
	if raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return time.Duration(v) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
