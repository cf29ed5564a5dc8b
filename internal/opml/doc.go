// Package opml reads and writes the OPML 2.0 subscription lists this tool
// exchanges.
//
// Build renders communities as a document, optionally nesting them under
// one category outline per home instance. Parse walks a document back into
// communities, descending through category outlines and skipping leaves
// that identify no community.
package opml
