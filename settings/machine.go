package settings

import "os"

// DetectMachineID returns the identity of the current host, used as the
// preset lookup key. It checks COMPUTERNAME (Windows) and HOSTNAME before
// falling back to the kernel hostname. Returns "" when none is available;
// Resolve treats that like any other unmatched identity.
//
// Detection is kept separate from Resolve so the identity is an explicit
// input to resolution rather than an ambient read.
func DetectMachineID() string {
	if v := os.Getenv("COMPUTERNAME"); v != "" {
		return v
	}
	if v := os.Getenv("HOSTNAME"); v != "" {
		return v
	}
	host, err := os.Hostname()
	if err != nil {
		return ""
	}
	return host
}
