// Package platform classifies the running platform and selects the OS-native
// login provider and the principal representation it produces.
//
// Classification is a pure function of the OS family, the CPU word width and
// the Go runtime vendor. The facts of the running process are computed once.
package platform

import (
	"runtime"
	"strings"
)

// OSFamily is the operating system family relevant to native login.
type OSFamily uint8

const (
	// OSUnix covers Linux, the BSDs, Darwin and any other non-Windows,
	// non-AIX system.
	OSUnix OSFamily = iota
	OSWindows
	OSAIX
)

func (f OSFamily) String() string {
	switch f {
	case OSWindows:
		return "windows"
	case OSAIX:
		return "aix"
	default:
		return "unix"
	}
}

// Runtime identifies the vendor of the Go runtime the process was built with.
type Runtime uint8

const (
	// RuntimeStandard is the gc toolchain.
	RuntimeStandard Runtime = iota

	// RuntimeVendor is the gccgo toolchain, which ships its own platform
	// login support.
	RuntimeVendor
)

func (r Runtime) String() string {
	if r == RuntimeVendor {
		return "vendor"
	}
	return "standard"
}

// Facts are the platform properties that drive native login selection.
type Facts struct {
	OS      OSFamily `json:"os" yaml:"os"`
	Is64Bit bool     `json:"is_64_bit" yaml:"is_64_bit"`
	Runtime Runtime  `json:"runtime" yaml:"runtime"`
}

// Detect classifies a platform from its GOOS, GOARCH and compiler names.
func Detect(goos, goarch, compiler string) Facts {
	f := Facts{OS: OSUnix, Runtime: RuntimeStandard}

	switch goos {
	case "windows":
		f.OS = OSWindows
	case "aix":
		f.OS = OSAIX
	}

	f.Is64Bit = strings.Contains(goarch, "64") || goarch == "s390x" || goarch == "wasm"

	if compiler == "gccgo" {
		f.Runtime = RuntimeVendor
	}

	return f
}

// current holds the facts of the running process.
var current = Detect(runtime.GOOS, runtime.GOARCH, runtime.Compiler)

// Current returns the facts of the running process.
func Current() Facts {
	return current
}

// String returns a compact description such as "unix/64-bit/standard".
func (f Facts) String() string {
	width := "32-bit"
	if f.Is64Bit {
		width = "64-bit"
	}
	return f.OS.String() + "/" + width + "/" + f.Runtime.String()
}
