package schemas

import (
	"errors"
	"testing"

	"github.com/jonathan/resume-drafter/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", input: "\n  ```json\n{\"a\":1}\n```  \n", want: `{"a":1}`},
		{name: "fence on one line", input: "```{\"a\":1}```", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestDecodeDraft(t *testing.T) {
	payload := "```json\n" + `{
  "sections": {
    "summary": "Backend engineer.",
    "skills": ["Go"],
    "experience": [{"role": "Engineer", "company": "Acme", "startDate": "2020", "achievements": ["Shipped APIs."]}]
  },
  "atsScore": 80
}` + "\n```"

	draft, err := DecodeDraft([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer.", draft.Sections.Summary)
	assert.Equal(t, []string{"Go"}, draft.Sections.Skills)
	require.Len(t, draft.Sections.Experience, 1)
	assert.Equal(t, "Acme", draft.Sections.Experience[0].Company)
	require.NotNil(t, draft.ATSScore)
	assert.Equal(t, 80, *draft.ATSScore)
	assert.NotNil(t, draft.Sections.Projects)
	assert.NotNil(t, draft.Sections.Education)
	assert.NotNil(t, draft.MatchedKeywords)
}

func TestDecodeDraft_Errors(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantParse  bool
		wantSchema bool
	}{
		{name: "not json", payload: "Here is your resume!", wantParse: true},
		{name: "truncated", payload: `{"sections": {`, wantParse: true},
		{name: "missing sections", payload: `{"atsScore": 50}`, wantSchema: true},
		{name: "skills not strings", payload: `{"sections": {"skills": [1, 2]}}`, wantSchema: true},
		{name: "score out of range", payload: `{"sections": {}, "atsScore": 140}`, wantSchema: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := DecodeDraft([]byte(tt.payload))
			require.Error(t, err)
			assert.Nil(t, draft)

			var parseErr *parsing.ParseError
			var validationErr *ValidationError
			assert.Equal(t, tt.wantParse, errors.As(err, &parseErr))
			assert.Equal(t, tt.wantSchema, errors.As(err, &validationErr))
		})
	}
}
