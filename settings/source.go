package settings

// Source indicates where a resolved field value came from.
type Source string

// Field source constants.
const (
	// SourceDefault indicates the value is the baseline one, whether
	// built-in or set by the authored parameters file.
	SourceDefault Source = "default"

	// SourcePreset indicates the value came from the device preset
	// matched by the current machine identity.
	SourcePreset Source = "preset"
)
