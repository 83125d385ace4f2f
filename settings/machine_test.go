package settings

import "testing"

func TestDetectMachineID_EnvPriority(t *testing.T) {
	t.Setenv("COMPUTERNAME", "LAB-PC-1")
	t.Setenv("HOSTNAME", "ignored")

	if got := DetectMachineID(); got != "LAB-PC-1" {
		t.Errorf("DetectMachineID() = %q, want %q", got, "LAB-PC-1")
	}
}

func TestDetectMachineID_HostnameEnv(t *testing.T) {
	t.Setenv("COMPUTERNAME", "")
	t.Setenv("HOSTNAME", "lab-pc-2")

	if got := DetectMachineID(); got != "lab-pc-2" {
		t.Errorf("DetectMachineID() = %q, want %q", got, "lab-pc-2")
	}
}

func TestDetectMachineID_Fallback(t *testing.T) {
	t.Setenv("COMPUTERNAME", "")
	t.Setenv("HOSTNAME", "")

	// Falls back to the kernel hostname; just assert it doesn't panic and
	// agrees with a second call.
	first := DetectMachineID()
	second := DetectMachineID()
	if first != second {
		t.Errorf("DetectMachineID() not stable: %q then %q", first, second)
	}
}
