// Package hefesto parses the flat-text file formats of a HeFESTo parameter
// distribution: per-mineral parameter files (one positionally encoded value
// per line) and per-phase interaction files (an endmember list followed by a
// symmetric W matrix).
//
// All parsers here are lenient by design. A token that fails to parse as a
// number drops only that single value; an unreadable file drops only that
// record. The batch loaders log warnings for everything they drop and never
// abort the run, because the input directories are externally maintained and
// a partial dataset is still useful.
package hefesto
