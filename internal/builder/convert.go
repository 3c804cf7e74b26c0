package builder

import (
	"strconv"

	"github.com/geodyn/hefestoxml/internal/hefesto"
)

// scalarSpec fixes how one stored quantity is emitted: output name, unit,
// decimal places, and the power-of-ten suffix that implements the unit
// conversion (the stored values use kJ, cm^3, and GPa; the engine expects
// J, m^3, and Pa).
type scalarSpec struct {
	Quantity hefesto.Quantity
	Name     string
	Unit     string
	Decimals int
	Suffix   string
}

// scalarSpecs is the emission order and presentation contract for base-model
// scalar assignments. These are fixed conventions of the generated dataset,
// not derived from the input. G0_T is emitted under the derived name η0.
var scalarSpecs = []scalarSpec{
	{hefesto.QtyF0, "F0", "J/mol", 3, "e3"},
	{hefesto.QtyV0, "V0", "m^3/mol", 4, "e-6"},
	{hefesto.QtyK0, "K0", "Pa", 5, "e9"},
	{hefesto.QtyK0Prime, "K0_p", "1", 5, ""},
	{hefesto.QtyTheta0, "θ0", "K", 4, ""},
	{hefesto.QtyGamma0, "γ0", "1", 5, ""},
	{hefesto.QtyQ0, "q0", "1", 5, ""},
	{hefesto.QtyG0, "G0", "Pa", 1, "e9"},
	{hefesto.QtyG0Prime, "G0_p", "1", 5, ""},
	{hefesto.QtyG0T, "η0", "1", 5, ""},
}

// formatScalar renders v with a fixed number of decimals followed by the
// conversion suffix: formatScalar(130, 5, "e9") == "130.00000e9".
func formatScalar(v float64, decimals int, suffix string) string {
	return strconv.FormatFloat(v, 'f', decimals, 64) + suffix
}
