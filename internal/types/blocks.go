// Package types provides type definitions for structured data used throughout the resume-drafter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// BlockKind is the structural role of a single input line
type BlockKind string

const (
	// BlockHeading marks a short section-title line
	BlockHeading BlockKind = "heading"
	// BlockBullet marks a line starting with a bullet glyph or an action verb
	BlockBullet BlockKind = "bullet"
	// BlockText marks any other line
	BlockText BlockKind = "text"
)

// RawBlock represents one non-empty input line tagged with its structural role.
// Position in the containing slice is its provenance.
type RawBlock struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	Kind BlockKind `json:"kind"`
}

// Section is a contiguous run of lines grouped under one heading
type Section struct {
	Heading string   `json:"heading"`
	Lines   []string `json:"lines"`
}
