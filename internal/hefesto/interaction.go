package hefesto

import (
	"strconv"
	"strings"
)

// volumeMarker separates the energy interaction matrix from the trailing
// volume-only interaction block, which is not parsed.
const volumeMarker = "Volume"

// Interaction is one pairwise mixing term between two endmembers of a solid
// solution. MemberA always precedes MemberB in the phase's endmember order.
type Interaction struct {
	MemberA string
	MemberB string

	// W is the interaction coefficient as stored in the file (kJ/mol by
	// dataset convention; nothing in the file declares the unit).
	W float64
}

// InteractionTable holds the parsed contents of one phase interaction file.
type InteractionTable struct {
	// ID is the phase group's identifier, derived from the source file name.
	ID string

	// Endmembers lists mineral ids in file order. The order is semantically
	// significant: it indexes the W matrix and fixes the output order.
	Endmembers []string

	// Interactions holds the nonzero upper-triangular entries of the W
	// matrix, at most one per unordered endmember pair.
	Interactions []Interaction
}

// ParseInteractions parses the lines of one phase interaction file. Line 0
// is the endmember list; line i holds the matrix row for endmember i-1. Only
// entries strictly right of the diagonal are read, so each symmetric pair is
// recorded once. A zero entry means "no interaction" and is omitted. Rows at
// or after a line containing the Volume marker are ignored. ParseInteractions
// never fails; unparsable tokens are skipped.
func ParseInteractions(id string, lines []string) *InteractionTable {
	table := &InteractionTable{ID: id}
	if len(lines) == 0 {
		return table
	}
	table.Endmembers = strings.Fields(lines[0])

	cutoff := len(lines)
	for idx, line := range lines {
		if strings.Contains(line, volumeMarker) {
			cutoff = idx
			break
		}
	}

	n := len(table.Endmembers)
	for i := 1; i <= n && i < cutoff && i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		row := i - 1
		for j := row + 1; j < n && j < len(fields); j++ {
			w, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				continue
			}
			if w == 0 {
				continue
			}
			table.Interactions = append(table.Interactions, Interaction{
				MemberA: table.Endmembers[row],
				MemberB: table.Endmembers[j],
				W:       w,
			})
		}
	}

	return table
}
