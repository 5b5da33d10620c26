//go:build !amd64 && !arm64

package vecbit

func init() {
	// Other architectures use the scalar paths. Future candidates:
	// - riscv64: Zbb gives a CPOP instruction
	// - wasm: i64.popcnt is always available
	hasFastPopcount = false
	accelName = "scalar"
}
