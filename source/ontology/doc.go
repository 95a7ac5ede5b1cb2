// Package ontology loads the Allen structure ontology from its CSV feed
// and links the parent/child hierarchy.
//
// The feed is a flat table with one row per anatomical structure. Load
// decodes the columns this package knows about into typed fields and keeps
// everything else verbatim in a side table, so new upstream columns pass
// through without changing decode behavior. Link overlays the tree on the
// flat mapping by appending each entry's ID to its parent's child list.
package ontology
