// Package table defines the declarative contract between an admin view and
// a generic table/form renderer.
//
// A view (see package views) implements Hook and produces:
//
//   - column descriptors (Column), with row buttons wired to explicit
//     RowActions callbacks,
//   - search-bar descriptors and form descriptors (FormField),
//   - a dispatcher from the closed Event set to API calls (Handlers).
//
// The package also carries the renderer-side helpers every front end needs:
// cell extraction and formatting, search-to-query translation and the
// required-field presence check.
package table
