// Package query navigates decoded documents with view paths.
//
// SearchPath resolves a single path deterministically. The Find family walks
// the whole document and reports the path of every scalar accepted by a
// predicate. Absence is reported as (nil, false) or a nil slice, never as an
// error.
package query
