//go:build amd64

package cpu

import "testing"

func TestCPUIDVendor(t *testing.T) {
	t.Parallel()

	maxStd, ebx, ecx, edx := cpuid(0, 0)
	if maxStd == 0 {
		t.Fatal("CPUID leaf 0 reports no standard leaves")
	}

	vendor := make([]byte, 0, 12)
	for _, r := range []uint32{ebx, edx, ecx} {
		vendor = append(vendor, byte(r), byte(r>>8), byte(r>>16), byte(r>>24))
	}

	t.Logf("vendor %q, max standard leaf %#x, RDTSCP %v", vendor, maxStd, detectRDTSCP())
}

func TestCPUIDExtendedLeaves(t *testing.T) {
	t.Parallel()

	maxExt, _, _, _ := cpuid(0x80000000, 0)
	if maxExt < 0x80000001 {
		if detectRDTSCP() {
			t.Fatalf("RDTSCP reported without extended leaf 0x80000001 (max %#x)", maxExt)
		}

		t.Skipf("max extended leaf %#x, no 0x80000001", maxExt)
	}

	_, _, _, edx := cpuid(0x80000001, 0)
	if got, want := detectRDTSCP(), edx&(1<<27) != 0; got != want {
		t.Errorf("detectRDTSCP() = %v, want %v (edx %#x)", got, want, edx)
	}

	t.Logf("max extended leaf %#x, 80000001H:EDX %#x", maxExt, edx)
}
