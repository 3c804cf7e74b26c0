// Package formula converts HeFESTo site-notation chemical formulas into
// standard bracketed formulas.
//
// Site notation writes each crystallographic site as Element_count, with
// parentheses grouping elements that share one site in fixed proportion:
//
//	Mg_2Si_1O_4                -> (Mg)2(Si)(O)4
//	(Na_2Mg_1)Si_1Si_1Si_3O_12 -> (Na2Mg)(Si)(Si)(Si)3(O)12
//
// The parser is deliberately lenient: characters that do not fit the grammar
// are skipped so that an unknown formula variant degrades to partial output
// instead of aborting a whole conversion run. Callers that need strict
// correctness must validate the result independently.
package formula

import "strings"

// Normalize rewrites raw site notation into bracketed form. Every site is
// wrapped in parentheses in the output; counts of exactly 1 are never
// rendered. Normalize never fails and is not idempotent (its output is not
// valid site notation).
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	var out strings.Builder
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '(':
			i = writeMixedSite(&out, s, i+1)
		case isUpper(s[i]):
			i = writeSimpleSite(&out, s, i)
		default:
			// Not part of the grammar, skip it.
			i++
		}
	}
	return out.String()
}

// writeSimpleSite consumes one Element_count site starting at i and writes
// its bracketed form. Returns the index after the site.
func writeSimpleSite(out *strings.Builder, s string, i int) int {
	elem, i := readElement(s, i)
	if i < len(s) && s[i] == '_' {
		i++
	}
	count, i := readCount(s, i)

	out.WriteByte('(')
	out.WriteString(elem)
	out.WriteByte(')')
	if count != "" && count != "1" {
		out.WriteString(count)
	}
	return i
}

// writeMixedSite consumes a parenthesized mixed site whose opening '(' has
// already been consumed, plus an optional trailing site count. Inner elements
// keep their counts concatenated directly after the symbol, with no inner
// brackets.
func writeMixedSite(out *strings.Builder, s string, i int) int {
	out.WriteByte('(')
	for i < len(s) && s[i] != ')' {
		if !isUpper(s[i]) {
			i++
			continue
		}
		var elem, count string
		elem, i = readElement(s, i)
		if i < len(s) && s[i] == '_' {
			i++
		}
		count, i = readCount(s, i)
		out.WriteString(elem)
		if count != "" && count != "1" {
			out.WriteString(count)
		}
	}
	if i < len(s) {
		i++ // closing ')'
	}
	out.WriteByte(')')

	// A count may follow the closing paren, optionally underscore-prefixed.
	j := i
	if j < len(s) && s[j] == '_' {
		j++
	}
	count, j := readCount(s, j)
	if count != "" {
		if count != "1" {
			out.WriteString(count)
		}
		return j
	}
	return i
}

// readElement reads an uppercase letter optionally followed by one lowercase
// letter.
func readElement(s string, i int) (string, int) {
	start := i
	i++
	if i < len(s) && isLower(s[i]) {
		i++
	}
	return s[start:i], i
}

// readCount reads a decimal count (digits with an optional fractional part).
// Returns "" when s[i] does not start with a digit.
func readCount(s string, i int) (string, int) {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return "", start
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return s[start:i], i
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
