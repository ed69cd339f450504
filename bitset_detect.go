package glass

import "golang.org/x/sys/cpu"

// detectHardwareBitOps reports whether the running CPU exposes the
// instructions the hw* bit-set primitives need (BMI1 for TZCNT/bit-scan,
// POPCNT for popcount). Evaluated exactly once, from New, matching §9's
// "detect once at construction; never branch on features inside inner
// loops." On architectures x/sys/cpu does not probe for x86 features
// (arm64, etc.) cpu.X86's fields read as their zero value and we fall
// back to the portable implementation, which is correct everywhere even
// where it isn't maximally accelerated.
func detectHardwareBitOps() bool {
	return cpu.X86.HasBMI1 && cpu.X86.HasPOPCNT
}
