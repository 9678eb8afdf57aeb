package schemas

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-drafter/internal/parsing"
	"github.com/jonathan/resume-drafter/internal/types"
	schemafiles "github.com/jonathan/resume-drafter/schemas"
)

// DecodeDraft decodes a generated draft payload. Markdown code fences around the
// JSON are removed. It returns a *parsing.ParseError when the payload is not
// JSON and a *ValidationError when the JSON does not match the draft schema.
func DecodeDraft(payload []byte) (*types.GeneratedDraft, error) {
	body := []byte(CleanJSONBlock(string(payload)))
	if !json.Valid(body) {
		return nil, &parsing.ParseError{Message: "draft payload is not valid JSON"}
	}

	schema, err := schemafiles.Read(schemafiles.GeneratedDraftFile)
	if err != nil {
		return nil, &SchemaLoadError{Name: schemafiles.GeneratedDraftFile, Message: "embedded schema missing", Cause: err}
	}
	if err := Validate(schemafiles.GeneratedDraftFile, schema, body); err != nil {
		return nil, err
	}

	var draft types.GeneratedDraft
	if err := json.Unmarshal(body, &draft); err != nil {
		return nil, &parsing.ParseError{Message: "failed to decode draft", Cause: err}
	}
	draft.EnsureSlices()
	return &draft, nil
}

// CleanJSONBlock removes a surrounding markdown code fence, with or without a
// language tag, from text
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		tag := text[:idx]
		if len(tag) < 20 && !strings.ContainsAny(tag, " {[") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
