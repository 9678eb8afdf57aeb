// Package schemas embeds the JSON Schemas of the documents exchanged with a generation service.
package schemas

import "embed"

// GeneratedDraftFile is the schema of a generated draft payload
const GeneratedDraftFile = "generated_draft.schema.json"

//go:embed *.schema.json
var files embed.FS

// Read returns the contents of an embedded schema file
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}
