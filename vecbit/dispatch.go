package vecbit

import (
	"os"
	"strconv"
)

// hasFastPopcount gates the unrolled population count loop. On targets with
// a hardware popcount instruction the unrolled form pipelines well; without
// one the plain loop is as good and smaller.
// Set by init() in dispatch_*.go files.
var hasFastPopcount bool

// accelName is the human-readable name of the detected acceleration.
// Set by init() in dispatch_*.go files.
var accelName = "scalar"

// Acceleration returns the name of the population count acceleration in
// use: "popcnt", "neon", or "scalar".
func Acceleration() string {
	return accelName
}

// NoAccelEnv checks if the VECBIT_NO_ACCEL environment variable is set.
// When set, the scalar paths are used regardless of CPU capabilities. This
// is useful for testing and debugging.
func NoAccelEnv() bool {
	val := os.Getenv("VECBIT_NO_ACCEL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
