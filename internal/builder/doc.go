/*
Package builder assembles the output XML document. It is the bridge between
the parsed input artifacts (parameter records and interaction tables from the
'hefesto' package) and the serialized database consumed by the equation-of-
state engine.

Construction walks the injected taxonomy in order:

 1. Header: the module root with its namespace and dataset id, the reference
    blurb, and the taxonomy's document-level let assignments.

 2. Solution groups: for every taxonomy solution that has an interaction
    table, one phase node containing a mineral phase per endmember (in
    endmember order, skipping endmembers without a parameter record) followed
    by one interaction node per nonzero W coefficient.

 3. Standalone minerals: one top-level mineral phase per configured id that
    has a parameter record.

A mineral whose T_crit is positive is wrapped in a Landau transition node
carrying the critical temperature, entropy, and volume, with the base model
nested inside under a "/nolandau" id suffix.

Missing data never fails a build: a taxonomy entry with no table, or an id
with no record, is silently omitted from the output. The document is
serialized exactly once, by Serialize.
*/
package builder
