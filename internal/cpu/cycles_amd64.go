//go:build amd64

package cpu

// readCycleCounter executes RDTSCP and returns EDX<<32 | EAX.
// Implemented in cycles_amd64.s
//
//go:noescape
func readCycleCounter() uint64

// cpuid executes the CPUID instruction with the given EAX and ECX inputs.
// Returns EAX, EBX, ECX, EDX outputs.
// Implemented in cycles_amd64.s
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)

var rdtscp = detectRDTSCP()

// detectRDTSCP checks CPUID.80000001H:EDX[27].
func detectRDTSCP() bool {
	maxExt, _, _, _ := cpuid(0x80000000, 0)
	if maxExt < 0x80000001 {
		return false
	}

	_, _, _, edx := cpuid(0x80000001, 0)

	return edx&(1<<27) != 0
}

func hasCycleCounter() bool {
	return rdtscp
}
