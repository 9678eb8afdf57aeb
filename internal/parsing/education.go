package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-drafter/internal/keywords"
	"github.com/jonathan/resume-drafter/internal/segment"
	"github.com/jonathan/resume-drafter/internal/types"
)

var (
	gradeRe       = regexp.MustCompile(`(?i)\b(?:gpa|cgpa|grade|first[- ]class|upper second|honou?rs|2:1|2:2|distinction|merit|cum laude|magna cum laude|summa cum laude)\b`)
	eduSplitRe    = regexp.MustCompile(`\s*(?:,|\||;|·|\s[-–—]\s)\s*`)
	degreeFieldRe = regexp.MustCompile(`(?i)^(.+?)\s+in\s+(.+)$`)
)

// ParseEducation converts the lines of an education section into records.
// Degree and school lines are split on delimiters and each fragment is matched
// against degree, school and grade keywords. Later lines only fill fields that
// are still empty; an explicit school or degree that conflicts starts a new record.
func ParseEducation(lines []string, tables *keywords.Tables) []types.EducationRecord {
	records, _ := parseEducation(lines, tables)
	return records
}

// parseEducation also returns the indexes of the lines that went into a record
func parseEducation(lines []string, tables *keywords.Tables) ([]types.EducationRecord, []int) {
	records := []types.EducationRecord{}
	var cur *types.EducationRecord
	var pending, used []int

	flush := func() {
		if cur != nil && (cur.School != "" || cur.Degree != "") {
			records = append(records, *cur)
			used = append(used, pending...)
		}
		cur = nil
		pending = nil
	}

	for i, line := range lines {
		text := strings.TrimSpace(line)
		if segment.HasBulletGlyph(text, tables) {
			text = tables.StripBullet(text)
		}
		if text == "" {
			continue
		}

		var start, end string
		if dr, ok := FindDateRange(text); ok {
			start, end, text = dr.Start, dr.End, dr.Rest
			if dr.Current {
				end = "Present"
			}
		} else if date, rest, ok := FindDate(text); ok {
			end, text = date, rest
		}

		fields := decomposeEducation(text, tables)

		if fields.School != "" || fields.Degree != "" {
			conflict := cur != nil &&
				((fields.School != "" && cur.School != "" && !strings.EqualFold(fields.School, cur.School)) ||
					(fields.Degree != "" && cur.Degree != "" && !strings.EqualFold(fields.Degree, cur.Degree)))
			if cur == nil || conflict {
				flush()
				cur = &types.EducationRecord{}
			}
		}
		if cur == nil {
			continue
		}

		fields.StartDate, fields.EndDate = start, end
		fillEducation(cur, fields)
		pending = append(pending, i)
	}
	flush()

	return records, used
}

// decomposeEducation matches each delimited fragment of text to an education field
func decomposeEducation(text string, tables *keywords.Tables) types.EducationRecord {
	var rec types.EducationRecord
	if text == "" {
		return rec
	}

	var leftovers []string
	for _, frag := range eduSplitRe.Split(text, -1) {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		switch {
		case gradeRe.MatchString(frag) && rec.Grade == "":
			rec.Grade = frag
		case tables.HasSchoolKeyword(frag) && rec.School == "":
			rec.School = frag
		case tables.HasDegreeKeyword(frag) && rec.Degree == "":
			rec.Degree, rec.Field = splitDegree(frag, tables)
		default:
			leftovers = append(leftovers, frag)
		}
	}

	for _, frag := range leftovers {
		switch {
		case rec.Field == "" && rec.Degree != "":
			rec.Field = frag
		case rec.Location == "" && len(strings.Fields(frag)) <= 4:
			rec.Location = frag
		case rec.Field == "":
			rec.Field = frag
		}
	}
	return rec
}

// splitDegree separates "BSc Computer Science" or "Master of Science in Physics"
// into a degree and a field of study
func splitDegree(frag string, tables *keywords.Tables) (string, string) {
	if m := degreeFieldRe.FindStringSubmatch(frag); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	words := strings.Fields(frag)
	if len(words) >= 2 && tables.HasDegreeKeyword(words[0]) && !strings.EqualFold(words[1], "of") {
		return words[0], strings.Join(words[1:], " ")
	}
	return frag, ""
}

// fillEducation copies every non-empty field of src into an empty field of dst
func fillEducation(dst *types.EducationRecord, src types.EducationRecord) {
	fill := func(d *string, s string) {
		if *d == "" {
			*d = s
		}
	}
	fill(&dst.School, src.School)
	fill(&dst.Degree, src.Degree)
	fill(&dst.Field, src.Field)
	fill(&dst.StartDate, src.StartDate)
	fill(&dst.EndDate, src.EndDate)
	fill(&dst.Location, src.Location)
	fill(&dst.Grade, src.Grade)
}
