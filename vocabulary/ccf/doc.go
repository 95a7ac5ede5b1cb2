// Package ccf defines the vocabulary for Allen Mouse Brain Common
// Coordinate Framework atlas documents.
//
// An atlas document is a flat list of graph nodes. Every node carries an
// "@id" and one or more "@type" tags from the closed enumeration in this
// package. Identifiers are deterministic: fixed symbolic IDs for the
// document header and base URLs, and per-structure/per-resolution IDs built
// from the Allen ontology structure ID.
//
// The identifier scheme is load-bearing. Downstream viewers resolve
// cross-references by exact string match, so the builders here must not
// change shape between releases:
//
//	#mesh_ds_997
//	#mask_ds_25_997
//	#structure_997
//	#average_template_ds_10
//
// Default endpoints point at the Allen Institute informatics archive for
// the 2017 CCF release. They are defaults only; the atlas builder takes its
// endpoints from configuration.
package ccf
