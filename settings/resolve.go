package settings

// Effective is the resolved parameter set for a single run: the baseline
// settings with the device preset for the current machine overlaid. It is
// computed once at startup and read-only for the remainder of execution.
type Effective struct {
	Settings

	// MachineID is the machine identity the settings were resolved for.
	MachineID string

	sources map[string]Source
}

// Source reports where the named field's value came from. Fields never
// touched by a preset report SourceDefault.
func (e *Effective) Source(field string) Source {
	if s, ok := e.sources[field]; ok {
		return s
	}
	return SourceDefault
}

// Resolve produces the effective settings for machineID: defaults with every
// field set by the matching preset replaced, all other fields unchanged. An
// unmatched machine identity is a normal outcome, not an error: the
// defaults are returned as-is.
//
// Resolve is a pure function of its inputs: identical inputs always yield an
// identical result, and neither defaults nor reg is modified.
func Resolve(machineID string, defaults Settings, reg Registry) *Effective {
	eff := &Effective{
		Settings:  defaults,
		MachineID: machineID,
		sources:   make(map[string]Source),
	}
	if preset, ok := reg[machineID]; ok {
		preset.apply(&eff.Settings, eff.sources)
	}
	return eff
}
