// Package radscrape extracts structured medical-knowledge records from
// Radiopaedia's rendered HTML. It normalizes the site's inconsistent page
// markup into two fixed schemas: clinical Cases and reference Articles,
// suitable for downstream storage or indexing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package radscrape

// Source is the source system name stamped on every record.
const Source = "radiopaedia"

// TypeArticle is the record type discriminator for Article records.
const TypeArticle = "article"
