package settings

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Condition identifies a trial condition.
type Condition int

// Trial condition constants.
const (
	// Control trials have no cross or change event.
	Control Condition = iota
	// Crossed trials contain a stimulus crossing event.
	Crossed
	// Changed trials contain a stimulus change event.
	Changed
)

var conditionNames = [...]string{"CONTROL", "CROSSED", "CHANGED"}

// String returns the condition's data-file name (e.g. "CROSSED").
func (c Condition) String() string {
	if c < 0 || int(c) >= len(conditionNames) {
		return fmt.Sprintf("CONDITION(%d)", int(c))
	}
	return conditionNames[c]
}

// Label returns the condition's display name (e.g. "Crossed").
func (c Condition) Label() string {
	return cases.Title(language.English).String(strings.ToLower(c.String()))
}

// ParseCondition maps a data-file name back to its Condition.
func ParseCondition(s string) (Condition, error) {
	for i, name := range conditionNames {
		if strings.EqualFold(s, name) {
			return Condition(i), nil
		}
	}
	return 0, fmt.Errorf("unknown condition: %q", s)
}
