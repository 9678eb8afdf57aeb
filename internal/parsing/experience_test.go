package parsing

import (
	"testing"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExperience_AtShapeWithOngoingRange(t *testing.T) {
	lines := []string{
		"Senior Developer at Acme Corp Jan 2020 - Present",
		"Built a scheduler handling 10k req/s with Go and Kafka",
		"Reduced cloud spend by 30%",
	}

	records := ParseExperience(lines, keywords.Default())

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "Senior Developer", rec.Role)
	assert.Equal(t, "Acme Corp", rec.Company)
	assert.Equal(t, "Jan 2020", rec.StartDate)
	assert.Empty(t, rec.EndDate)
	require.NotNil(t, rec.Current)
	assert.True(t, *rec.Current)
	assert.Len(t, rec.Achievements, 2)
	assert.Equal(t, []string{"Go", "Kafka"}, rec.Technologies)
}

func TestParseExperience_Shapes(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		wantRole    string
		wantCompany string
		wantStart   string
		wantEnd     string
		wantBullets int
	}{
		{
			name:        "pipe with company first",
			lines:       []string{"Initech LLC | Backend Engineer | 2018 - 2020", "• Migrated billing to PostgreSQL"},
			wantRole:    "Backend Engineer",
			wantCompany: "Initech LLC",
			wantStart:   "2018",
			wantEnd:     "2020",
			wantBullets: 1,
		},
		{
			name:        "dash separated role first",
			lines:       []string{"Platform Engineer – Globex (03/2016 – 05/2018)", "- Automated deploys"},
			wantRole:    "Platform Engineer",
			wantCompany: "Globex",
			wantStart:   "03/2016",
			wantEnd:     "05/2018",
			wantBullets: 1,
		},
		{
			name:        "stacked company, role and dates",
			lines:       []string{"Hooli Inc", "Staff Engineer", "Feb 2015 - Dec 2017", "• Led the search team"},
			wantRole:    "Staff Engineer",
			wantCompany: "Hooli Inc",
			wantStart:   "Feb 2015",
			wantEnd:     "Dec 2017",
			wantBullets: 1,
		},
		{
			name:        "wrapped bullet joins previous achievement",
			lines:       []string{"Engineer at Umbrella Labs", "• Designed the ingestion service that", "processes events from every region."},
			wantRole:    "Engineer",
			wantCompany: "Umbrella Labs",
			wantBullets: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := ParseExperience(tt.lines, keywords.Default())
			require.Len(t, records, 1)
			assert.Equal(t, tt.wantRole, records[0].Role)
			assert.Equal(t, tt.wantCompany, records[0].Company)
			assert.Equal(t, tt.wantStart, records[0].StartDate)
			assert.Equal(t, tt.wantEnd, records[0].EndDate)
			assert.Len(t, records[0].Achievements, tt.wantBullets)
		})
	}
}

func TestParseExperience_MultipleRecords(t *testing.T) {
	lines := []string{
		"Senior Developer at Acme Corp 2020 - Present",
		"• Built the payments API",
		"Developer at Initech LLC 2017 - 2020",
		"• Maintained legacy reports",
		"• Maintained   legacy reports",
	}

	records := ParseExperience(lines, keywords.Default())

	require.Len(t, records, 2)
	assert.Equal(t, "Acme Corp", records[0].Company)
	assert.Equal(t, "Initech LLC", records[1].Company)
	assert.Len(t, records[1].Achievements, 1, "duplicate bullets collapse")
}

func TestParseExperience_HeadlessRecord(t *testing.T) {
	records := ParseExperience([]string{"Built a CLI used by 200 engineers"}, keywords.Default())

	require.Len(t, records, 1)
	assert.Empty(t, records[0].Role)
	assert.Empty(t, records[0].Company)
	assert.Equal(t, []string{"Built a CLI used by 200 engineers"}, records[0].Achievements)
}

func TestParseExperience_SkipsNoise(t *testing.T) {
	lines := []string{
		"jane@example.com | +1 555 010 0200",
		"BSc Computer Science, University of Leeds",
		"Jane Doe",
	}

	assert.Empty(t, ParseExperience(lines, keywords.Default()))
}

func TestFindDateRange(t *testing.T) {
	tests := []struct {
		line        string
		wantOK      bool
		wantStart   string
		wantEnd     string
		wantCurrent bool
		wantRest    string
	}{
		{"Acme Corp Jan 2020 - Present", true, "Jan 2020", "", true, "Acme Corp"},
		{"2012 – 2016", true, "2012", "2016", false, ""},
		{"Sept. 2019 to March 2021, Remote", true, "Sept. 2019", "March 2021", false, "Remote"},
		{"2019-03 - 2021-11", true, "2019-03", "2021-11", false, ""},
		{"Grew revenue by 20% in 2020", false, "", "", false, "Grew revenue by 20% in 2020"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			dr, ok := FindDateRange(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStart, dr.Start)
			assert.Equal(t, tt.wantEnd, dr.End)
			assert.Equal(t, tt.wantCurrent, dr.Current)
			assert.Equal(t, tt.wantRest, dr.Rest)
		})
	}
}
