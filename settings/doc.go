// Package settings defines the parameter records for a multiple-object-tracking
// experiment and resolves them against per-device presets.
//
// Resolution is layered with clear precedence:
//  1. Device preset for the current machine (highest priority)
//  2. Authored parameters file (YAML)
//  3. Built-in defaults (lowest priority)
//
// # Basic Usage
//
// Load defaults, overlay the presets file, and resolve for this machine:
//
//	base, _ := settings.Load("parameters.yaml")
//	reg, _ := settings.LoadRegistry("presets.yaml")
//	eff := settings.Resolve(settings.DetectMachineID(), base, settings.Builtin().Merge(reg))
//
//	fmt.Println(eff.Window.Framerate)
//	fmt.Println(eff.Source("framerate")) // "preset" on a machine with an override
//
// # Device Presets
//
// A preset is a partial record: only the fields it sets take effect, every
// other field keeps its default. A machine with no preset gets the defaults
// unchanged. Resolution is a pure function of its inputs; the machine identity
// is always passed in explicitly rather than read from the environment inside
// the resolver. Use DetectMachineID to obtain it at startup.
//
// # Field Sources
//
// Each display-level field of the resolved settings tracks where its value
// came from:
//   - "default": built-in default or authored parameters file
//   - "preset": device preset matched by machine identity
package settings
