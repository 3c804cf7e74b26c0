package builder

import (
	"strings"

	"github.com/beevik/etree"
)

// Serialize pretty-prints the document with two-space indentation and strips
// all-whitespace lines, matching the layout of the published SLB databases.
// It is the single serialization point of a run.
func Serialize(doc *etree.Document) (string, error) {
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return "", err
	}

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n") + "\n", nil
}
