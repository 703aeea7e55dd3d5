package platform

// Module identifies an OS-native login provider.
type Module uint8

const (
	ModuleUnix Module = iota
	ModuleNT
	ModuleVendorLinux
	ModuleVendorAIX
	ModuleVendorAIX64
	ModuleVendorNT
	ModuleVendorWin64
)

var moduleNames = [...]string{
	ModuleUnix:        "unix",
	ModuleNT:          "nt",
	ModuleVendorLinux: "vendor-linux",
	ModuleVendorAIX:   "vendor-aix",
	ModuleVendorAIX64: "vendor-aix64",
	ModuleVendorNT:    "vendor-nt",
	ModuleVendorWin64: "vendor-win64",
}

func (m Module) String() string {
	if int(m) < len(moduleNames) {
		return moduleNames[m]
	}
	return "unknown"
}

// PrincipalKind identifies the principal representation a native module
// produces.
type PrincipalKind uint8

const (
	PrincipalUnix PrincipalKind = iota
	PrincipalNTUser
	PrincipalVendorUsername
	PrincipalVendorNTUser
	PrincipalVendorAIX
	PrincipalVendorLinux
)

var principalKindNames = [...]string{
	PrincipalUnix:           "unix",
	PrincipalNTUser:         "nt-user",
	PrincipalVendorUsername: "vendor-username",
	PrincipalVendorNTUser:   "vendor-nt-user",
	PrincipalVendorAIX:      "vendor-aix",
	PrincipalVendorLinux:    "vendor-linux",
}

func (k PrincipalKind) String() string {
	if int(k) < len(principalKindNames) {
		return principalKindNames[k]
	}
	return "unknown"
}

// Select returns the native login module and principal kind for the facts.
//
// The standard runtime only distinguishes Windows from everything else; AIX
// is treated as a Unix there. The vendor runtime fans out over OS family and
// word width.
func (f Facts) Select() (Module, PrincipalKind) {
	return f.module(), f.principalKind()
}

// Module returns the native login module for the facts.
func (f Facts) Module() Module {
	return f.module()
}

// PrincipalKind returns the principal kind produced by the native module.
func (f Facts) PrincipalKind() PrincipalKind {
	return f.principalKind()
}

func (f Facts) module() Module {
	if f.Runtime == RuntimeVendor {
		switch f.OS {
		case OSWindows:
			if f.Is64Bit {
				return ModuleVendorWin64
			}
			return ModuleVendorNT
		case OSAIX:
			if f.Is64Bit {
				return ModuleVendorAIX64
			}
			return ModuleVendorAIX
		default:
			return ModuleVendorLinux
		}
	}

	if f.OS == OSWindows {
		return ModuleNT
	}
	return ModuleUnix
}

func (f Facts) principalKind() PrincipalKind {
	if f.Runtime == RuntimeVendor {
		if f.Is64Bit {
			return PrincipalVendorUsername
		}
		switch f.OS {
		case OSWindows:
			return PrincipalVendorNTUser
		case OSAIX:
			return PrincipalVendorAIX
		default:
			return PrincipalVendorLinux
		}
	}

	if f.OS == OSWindows {
		return PrincipalNTUser
	}
	return PrincipalUnix
}
