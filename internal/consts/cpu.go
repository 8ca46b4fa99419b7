package consts

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Note: nothing dispatches on these yet. They are reported so that benchmark
// numbers can be read against what the host could offer.
var (
	HasAVX2  = cpu.X86.HasAVX2
	HasSSE41 = cpu.X86.HasSSE41

	HasARMSHA2   = cpu.ARM64.HasSHA2
	HasARMSHA512 = cpu.ARM64.HasSHA512
)

// Features returns the names of the relevant cpu features present on the
// host, in a stable order.
func Features() []string {
	var out []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if HasSSE41 {
			out = append(out, "sse4.1")
		}
		if HasAVX2 {
			out = append(out, "avx2")
		}
	case "arm64":
		if HasARMSHA2 {
			out = append(out, "sha2")
		}
		if HasARMSHA512 {
			out = append(out, "sha512")
		}
	}
	return out
}
