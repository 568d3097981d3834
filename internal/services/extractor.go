package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"resumatch/resume-matcher/internal/models"
)

// ExtractorService derives structured candidate data from raw resume text.
type ExtractorService interface {
	Extract(text string) (*models.Resume, error)
}

type extractorService struct {
	dict     *SkillDictionary
	patterns []skillPattern
}

type skillPattern struct {
	skill string
	re    *regexp.Regexp
}

func NewExtractorService(dict *SkillDictionary) ExtractorService {
	e := &extractorService{dict: dict}

	for _, skill := range dict.CommonSkills {
		e.patterns = append(e.patterns, compileSkillPattern(skill))
	}
	for _, skill := range dict.PotentialSkills {
		e.patterns = append(e.patterns, compileSkillPattern(skill))
	}

	return e
}

func compileSkillPattern(skill string) skillPattern {
	return skillPattern{
		skill: skill,
		re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`),
	}
}

const monthAlt = `Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?`

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(?:\+\d{1,2}\s?)?(?:\(\d{3}\)|\d{3})[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?:linkedin\.com/in/|linkedin\.com/profile/view\?id=|linkedin\.com/pub/)[a-zA-Z0-9_-]+`)

	skillsSectionRe     = regexp.MustCompile(`(?i)(?:skills|technical skills|technologies|competencies|expertise)(?::|\.|\n)([\s\S]*?)(?:\n\n|\n\w+:|\z)`)
	educationSectionRe  = regexp.MustCompile(`(?i)(?:education|academic background|academic qualification)(?::|\.|\n)([\s\S]*?)(?:\n\n|\n\w+:|\z)`)
	experienceSectionRe = regexp.MustCompile(`(?i)(?:work experience|professional experience|employment history|work history|experience)(?::|\.|\n)([\s\S]*?)(?:\n\n|\n\w+:|\z)`)

	degreeRe = regexp.MustCompile(`(?i)(?:Bachelor's|Master's|Doctorate|Doctoral|Associate's|Associate|Bachelor|BS|BA|B\.S\.|B\.A\.|Master|MS|MA|M\.S\.|M\.A\.|PhD|Ph\.D\.|MD|M\.D\.|MBA|M\.B\.A\.)[^\n,]*`)

	dateRangeRe  = regexp.MustCompile(`(?i)\b((?:` + monthAlt + `)\s+\d{4}|\d{4})\s*(?:-|–|to)\s*((?:` + monthAlt + `)\s+\d{4}|\d{4}|present|current|now)\b`)
	singleYearRe = regexp.MustCompile(`\b\d{4}\b`)
	entryStartRe = regexp.MustCompile(`(?i)^(?:\d{4}\b|(?:` + monthAlt + `)\b)`)

	jobTitleRe = regexp.MustCompile(`^([A-Za-z ,]+?)(?:\bat\b|,|\n)`)
	companyRe  = regexp.MustCompile(`(?:\bat\b|@)\s+([A-Za-z0-9 &.]+)`)

	institutionRe = regexp.MustCompile(`(?i)^.*\b(?:university|college|institute|school|academy|polytechnic)\b.*$`)
)

// Words that disqualify a line or entity from being a candidate name.
var nameFalsePositives = []string{"gmail", "email", "phone", "address", "resume", "cv", "curriculum vitae"}

func (e *extractorService) Extract(text string) (*models.Resume, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty resume text")
	}

	resume := &models.Resume{
		RawText: CleanText(text),
		Name:    extractName(text),
		Skills:  e.extractSkills(text),
	}

	resume.Email, resume.Phone, resume.LinkedIn = extractContactInfo(text)
	resume.Education = extractEducation(text)
	resume.Experience = extractExperience(text)
	resume.TotalExperienceYears = totalExperienceYears(resume.Experience)

	return resume, nil
}

// extractName assumes the candidate's name sits near the top of the resume
// as a short title-case line without digits or an email address.
func extractName(text string) string {
	lines := strings.Split(text, "\n")

	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if strings.Contains(line, "@") || strings.ContainsAny(line, "0123456789") {
			continue
		}
		words := strings.Fields(line)
		if len(words) >= 1 && len(words) <= 3 && allTitleCase(words) {
			if containsAnyFold(line, nameFalsePositives) {
				continue
			}
			return strings.TrimSpace(line)
		}
	}

	// Fall back to the first short title-case line further down.
	limit = 10
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		if len(line) > 0 && len(words) <= 5 && allTitleCase(words) {
			if !containsAnyFold(line, nameFalsePositives) {
				return line
			}
		}
	}

	return "Unknown Name"
}

func allTitleCase(words []string) bool {
	for _, word := range words {
		r := []rune(word)
		if len(r) == 0 {
			continue
		}
		if r[0] < 'A' || r[0] > 'Z' {
			return false
		}
	}
	return len(words) > 0
}

func containsAnyFold(s string, needles []string) bool {
	lower := strings.ToLower(s)
	for _, needle := range needles {
		if strings.Contains(lower, needle) {
			return true
		}
	}
	return false
}

func extractContactInfo(text string) (email, phone, linkedin string) {
	if m := emailRe.FindString(text); m != "" {
		email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		phone = m
	}
	if m := linkedinRe.FindString(strings.ToLower(text)); m != "" {
		linkedin = m
	}
	return email, phone, linkedin
}

// extractSkills scans the whole text for dictionary keywords with word
// boundaries, then sweeps any explicit skills section for free-form
// entries.
func (e *extractorService) extractSkills(text string) []string {
	textLower := strings.ToLower(text)

	var skills []string
	seen := make(map[string]bool)

	add := func(skill string) {
		if !seen[skill] {
			seen[skill] = true
			skills = append(skills, skill)
		}
	}

	for _, p := range e.patterns {
		if p.re.MatchString(textLower) {
			add(p.skill)
		}
	}

	for _, section := range skillsSectionRe.FindAllStringSubmatch(textLower, -1) {
		for _, item := range splitSkillItems(section[1]) {
			item = strings.TrimSpace(item)
			if isValidSkill(item) {
				add(item)
			}
		}
	}

	return skills
}

func splitSkillItems(section string) []string {
	return strings.FieldsFunc(section, func(r rune) bool {
		return r == ',' || r == '•' || r == '\n'
	})
}

// isValidSkill filters out sentences and job-duty phrasing that leak into
// skills sections.
func isValidSkill(text string) bool {
	if len(text) < 2 || len(text) > 30 {
		return false
	}

	stopPhrases := []string{
		"responsible for", "worked with", "managed", "collaborated", "helped", "assisted",
		"developed", "created", "designed", "implemented", "maintained", "contributed",
		"participated in", "involved in", "experience in", "experience with", "knowledge of",
		"proficient in", "familiar with", "expertise in",
	}
	if containsAnyFold(text, stopPhrases) {
		return false
	}

	return len(strings.Fields(text)) <= 4
}

func extractEducation(text string) []models.Education {
	var educationList []models.Education

	m := educationSectionRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return educationList
	}
	section := m[1]

	degrees := degreeRe.FindAllString(section, -1)
	ranges := findDateRanges(section)

	var institutions []string
	for _, line := range strings.Split(section, "\n") {
		if institutionRe.MatchString(line) {
			institutions = append(institutions, strings.TrimSpace(line))
		}
	}

	for i, degree := range degrees {
		edu := models.Education{Degree: strings.TrimSpace(degree)}

		if i < len(institutions) {
			edu.Institution = institutions[i]
		} else if len(institutions) > 0 {
			edu.Institution = institutions[0]
		}

		if i < len(ranges) {
			edu.StartDate = ranges[i].start
			edu.EndDate = ranges[i].end
		}

		educationList = append(educationList, edu)
	}

	return educationList
}

func extractExperience(text string) []models.Experience {
	var experienceList []models.Experience

	m := experienceSectionRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return experienceList
	}
	section := m[1]

	for _, entry := range splitJobEntries(section) {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		exp := models.Experience{Description: entry}

		if tm := jobTitleRe.FindStringSubmatch(entry); tm != nil {
			exp.Title = strings.TrimSpace(tm[1])
		}
		if cm := companyRe.FindStringSubmatch(entry); cm != nil {
			exp.Company = strings.TrimSpace(cm[1])
		}

		ranges := findDateRanges(entry)
		if len(ranges) > 0 {
			exp.StartDate = ranges[0].start
			exp.EndDate = ranges[0].end
		} else if ym := singleYearRe.FindString(entry); ym != "" {
			if d, err := parseResumeDate(ym); err == nil {
				exp.StartDate = d
			}
		}

		exp.DurationYears = durationYears(exp.StartDate, exp.EndDate)
		experienceList = append(experienceList, exp)
	}

	return experienceList
}

// splitJobEntries starts a new entry at every line that opens with a year
// or a month name.
func splitJobEntries(section string) []string {
	var entries []string
	var current strings.Builder

	for _, line := range strings.Split(section, "\n") {
		if entryStartRe.MatchString(strings.TrimSpace(line)) && current.Len() > 0 {
			entries = append(entries, current.String())
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if current.Len() > 0 {
		entries = append(entries, current.String())
	}

	return entries
}

type dateRange struct {
	start *time.Time
	end   *time.Time
}

func findDateRanges(text string) []dateRange {
	var ranges []dateRange
	for _, m := range dateRangeRe.FindAllStringSubmatch(text, -1) {
		r := dateRange{}
		if d, err := parseResumeDate(m[1]); err == nil {
			r.start = d
		}
		if d, err := parseResumeDate(m[2]); err == nil {
			r.end = d
		}
		if r.start != nil || r.end != nil {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

var resumeDateLayouts = []string{"Jan 2006", "January 2006", "2006"}

// parseResumeDate handles "Jan 2006", "January 2006", bare years and the
// present/current/now markers.
func parseResumeDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "present", "current", "now":
		now := time.Now()
		return &now, nil
	}

	normalized := normalizeMonthCase(s)
	for _, layout := range resumeDateLayouts {
		if d, err := time.Parse(layout, normalized); err == nil {
			return &d, nil
		}
	}

	return nil, fmt.Errorf("unrecognized date: %q", s)
}

// normalizeMonthCase upper-cases the first letter of each token so that
// lowercased section text still parses against time layouts.
func normalizeMonthCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		r := []rune(strings.ToLower(word))
		if len(r) > 0 && r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 'a' + 'A'
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func durationYears(start, end *time.Time) float64 {
	if start == nil {
		return 0
	}

	stop := time.Now()
	if end != nil {
		stop = *end
	}

	months := (stop.Year()-start.Year())*12 + int(stop.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}

	return float64(months) / 12.0
}

func totalExperienceYears(experience []models.Experience) float64 {
	var total float64
	for _, exp := range experience {
		total += exp.DurationYears
	}
	return total
}
