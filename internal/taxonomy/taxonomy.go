package taxonomy

import (
	"strconv"

	"github.com/zclconf/go-cty/cty"
)

// HeaderLet is one document-level scalar assignment emitted before any phase
// node, such as the reference temperature or a generator flag.
type HeaderLet struct {
	Name string
	Unit string

	// Value is the raw configuration value. Strings, numbers, and booleans
	// are accepted; rendering is fixed by Text.
	Value cty.Value
}

// Text renders the let's value using the generator's presentation
// conventions: strings pass through verbatim, booleans render as "True" or
// "False", and numbers render with one decimal place.
func (l HeaderLet) Text() string {
	switch l.Value.Type() {
	case cty.String:
		return l.Value.AsString()
	case cty.Bool:
		if l.Value.True() {
			return "True"
		}
		return "False"
	case cty.Number:
		f, _ := l.Value.AsBigFloat().Float64()
		return strconv.FormatFloat(f, 'f', 1, 64)
	default:
		return ""
	}
}

// Solution describes one solid-solution phase group. Its endmembers are never
// listed here; they are read from the phase interaction file of the same
// code.
type Solution struct {
	// Code is the phase file id, e.g. "ol".
	Code string

	// Name is the human-readable display name, e.g. "Olivine".
	Name string

	// Model is the structural model type tag of the evaluation engine.
	Model string

	// AllowsNegative marks solutions whose component fractions may go
	// negative.
	AllowsNegative bool

	// OutputID, when set, replaces Code as the emitted id. Used where the
	// code would collide with the id of one of the solution's own
	// endmembers.
	OutputID string
}

// EmitID returns the id the solution is emitted under.
func (s Solution) EmitID() string {
	if s.OutputID != "" {
		return s.OutputID
	}
	return s.Code
}

// Taxonomy is the full static configuration of one conversion run. The order
// of Solutions and Standalone is the emission order of the output document.
type Taxonomy struct {
	Lets       []HeaderLet
	Solutions  []Solution
	Standalone []string
}
