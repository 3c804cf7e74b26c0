// Package taxonomy defines the static configuration of a conversion run: the
// document header assignments and the fixed table mapping phase-group codes
// to display metadata and structural model selection.
//
// The taxonomy is domain knowledge, not derived from the input files. It is
// expressed in HCL; a default reproducing the published HeFESTo phase table
// is compiled into the binary, and a run may substitute its own table via an
// override file. The loaded Taxonomy is immutable and is passed explicitly to
// the document builder, which keeps the builder testable with injected
// taxonomies.
package taxonomy
