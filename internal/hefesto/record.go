package hefesto

import (
	"strconv"
	"strings"
)

// Quantity names one of the 43 physical quantities a parameter file encodes
// positionally, one per line.
type Quantity string

// Quantities consumed downstream by the document builder. The remaining
// entries of the positional schema are parsed and stored but currently have
// no output representation.
const (
	QtyF0      Quantity = "F0"
	QtyV0      Quantity = "V0"
	QtyK0      Quantity = "K0"
	QtyK0Prime Quantity = "K0_p"
	QtyTheta0  Quantity = "theta0"
	QtyGamma0  Quantity = "gamma0"
	QtyQ0      Quantity = "q0"
	QtyG0      Quantity = "G0"
	QtyG0Prime Quantity = "G0_p"
	QtyG0T     Quantity = "G0_T"
	QtyTCrit   Quantity = "T_crit"
	QtySCrit   Quantity = "S_crit"
	QtyVCrit   Quantity = "V_crit"
)

// lineQuantities is the positional schema of a parameter file: data line i
// (1-based, line 0 is the header) holds the value of lineQuantities[i]. The
// table is fixed domain knowledge of the HeFESTo file layout; keeping it as
// one ordered literal keeps the schema auditable.
var lineQuantities = [...]Quantity{
	1:  "n_atoms",
	2:  "Z",
	3:  "mass",
	4:  "T0",
	5:  QtyF0,
	6:  QtyV0,
	7:  QtyK0,
	8:  QtyK0Prime,
	9:  "K0K0_pp",
	10: QtyTheta0,
	11: "debye_acoustic_2",
	12: "debye_acoustic_3",
	13: "sin_acoustic_1",
	14: "sin_acoustic_2",
	15: "sin_acoustic_3",
	16: "einstein_1",
	17: "weight_einstein_1",
	18: "einstein_2",
	19: "weight_einstein_2",
	20: "einstein_3",
	21: "weight_einstein_3",
	22: "einstein_4",
	23: "weight_einstein_4",
	24: "optic_upper",
	25: "optic_lower",
	26: QtyGamma0,
	27: QtyQ0,
	28: "beta",
	29: "gammael0",
	30: "q2A2",
	31: "high_temp_approx",
	32: "BM_or_Vinet",
	33: "Einstein_or_Debye",
	34: "zero_point_pressure",
	35: QtyG0,
	36: QtyG0Prime,
	37: QtyG0T,
	38: QtyTCrit,
	39: QtySCrit,
	40: QtyVCrit,
	41: "van_laar",
	42: "C12_p",
	43: "C44_p",
}

// ParameterRecord holds the parsed contents of one mineral parameter file.
// It is created once at parse time and never mutated afterwards.
type ParameterRecord struct {
	// ID is the mineral's identifier, derived from the source file name. It
	// is both the lookup key and the id the mineral is emitted under.
	ID string

	// FormulaRaw is the site-notation chemical formula from the header line.
	FormulaRaw string

	// DisplayName is the free-text mineral name from the header line.
	DisplayName string

	// Values maps quantity names to parsed values. A quantity whose line was
	// missing or malformed is simply absent; absence is not zero.
	Values map[Quantity]float64
}

// ParseRecord parses the lines of one parameter file. Line 0 is the header
// ("formula name..."); each following line binds positionally to one quantity
// and only its first whitespace-delimited token is read. ParseRecord never
// fails: malformed lines leave their quantity absent, and empty input yields
// an empty record.
func ParseRecord(id string, lines []string) *ParameterRecord {
	rec := &ParameterRecord{ID: id, Values: make(map[Quantity]float64)}

	if len(lines) > 0 {
		fields := strings.Fields(lines[0])
		if len(fields) > 0 {
			rec.FormulaRaw = fields[0]
			rec.DisplayName = strings.Join(fields[1:], " ")
		}
	}

	for i := 1; i < len(lines) && i < len(lineQuantities); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			// Malformed leading token: this quantity stays absent.
			continue
		}
		rec.Values[lineQuantities[i]] = v
	}

	return rec
}

// Title returns the record's display name, or the capitalized id when the
// header carried no name.
func (r *ParameterRecord) Title() string {
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return capitalize(r.ID)
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
