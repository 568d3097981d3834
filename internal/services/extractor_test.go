package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
john.smith@example.com
(555) 123-4567
linkedin.com/in/johnsmith

Skills:
Python, Go, Docker, Teamwork

Experience:
Jan 2020 - Jan 2023
Software Engineer at Acme Corp
Built and ran backend services.
2015 - 2018
Data Analyst at Initech
Shipped reporting pipelines in Python.

Education:
Bachelor of Science in Computer Science
University of Somewhere
2011 - 2015
`

func newTestExtractor(t *testing.T) ExtractorService {
	t.Helper()
	dict, err := LoadSkillDictionary("")
	require.NoError(t, err)
	return NewExtractorService(dict)
}

func TestExtract_FullResume(t *testing.T) {
	extractor := newTestExtractor(t)

	resume, err := extractor.Extract(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", resume.Name)
	assert.Equal(t, "john.smith@example.com", resume.Email)
	assert.Equal(t, "(555) 123-4567", resume.Phone)
	assert.Equal(t, "linkedin.com/in/johnsmith", resume.LinkedIn)

	assert.Subset(t, resume.Skills, []string{"python", "go", "docker", "teamwork"})

	require.Len(t, resume.Experience, 2)
	assert.Equal(t, "acme corp", resume.Experience[0].Company)
	assert.InDelta(t, 3.0, resume.Experience[0].DurationYears, 0.01)
	assert.InDelta(t, 3.0, resume.Experience[1].DurationYears, 0.01)
	assert.InDelta(t, 6.0, resume.TotalExperienceYears, 0.01)

	require.Len(t, resume.Education, 1)
	assert.Contains(t, resume.Education[0].Degree, "bachelor")
	assert.Contains(t, resume.Education[0].Institution, "university of somewhere")
}

func TestExtract_EmptyText(t *testing.T) {
	extractor := newTestExtractor(t)

	_, err := extractor.Extract("   \n ")
	assert.Error(t, err)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "title case first line",
			text: "Jane Doe\njane@doe.dev\n",
			want: "Jane Doe",
		},
		{
			name: "skips contact lines",
			text: "jane@doe.dev\n+1 555 123 4567\nJane Doe\n",
			want: "Jane Doe",
		},
		{
			name: "skips header words",
			text: "Curriculum Vitae\nJane Doe\n",
			want: "Jane Doe",
		},
		{
			name: "nothing plausible",
			text: "objective: seeking a role\nreferences available\n",
			want: "Unknown Name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractName(tt.text))
		})
	}
}

func TestExtractContactInfo(t *testing.T) {
	text := "Reach me at jane.doe+work@mail.example.org or 555-987-6543.\nLinkedIn.com/in/jane-doe-42"

	email, phone, linkedin := extractContactInfo(text)

	assert.Equal(t, "jane.doe+work@mail.example.org", email)
	assert.Equal(t, "555-987-6543", phone)
	assert.Equal(t, "linkedin.com/in/jane-doe-42", linkedin)
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	extractor := newTestExtractor(t).(*extractorService)

	skills := extractor.extractSkills("Experienced in Java and JavaScript, some Golang.")

	assert.Contains(t, skills, "java")
	assert.Contains(t, skills, "javascript")
	// "Golang" must not match the bare "go" keyword.
	assert.NotContains(t, skills, "go")
}

func TestIsValidSkill(t *testing.T) {
	assert.True(t, isValidSkill("python"))
	assert.True(t, isValidSkill("rest api"))
	assert.False(t, isValidSkill("x"))
	assert.False(t, isValidSkill("responsible for managing a team of five"))
	assert.False(t, isValidSkill("this phrase has far too many words here"))
	assert.False(t, isValidSkill(strings.Repeat("a", 31)))
}

func TestParseResumeDate(t *testing.T) {
	tests := []struct {
		input     string
		wantYear  int
		wantMonth time.Month
		wantErr   bool
	}{
		{input: "Jan 2020", wantYear: 2020, wantMonth: time.January},
		{input: "january 2020", wantYear: 2020, wantMonth: time.January},
		{input: "2015", wantYear: 2015, wantMonth: time.January},
		{input: "september 2021", wantYear: 2021, wantMonth: time.September},
		{input: "not a date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseResumeDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, got.Year())
			assert.Equal(t, tt.wantMonth, got.Month())
		})
	}
}

func TestParseResumeDate_PresentMarkers(t *testing.T) {
	for _, marker := range []string{"present", "Present", "current", "now"} {
		got, err := parseResumeDate(marker)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), *got, time.Minute)
	}
}

func TestDurationYears(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, time.July, 1, 0, 0, 0, 0, time.UTC)

	assert.InDelta(t, 2.5, durationYears(&start, &end), 0.01)
	assert.Zero(t, durationYears(nil, &end))
	assert.Zero(t, durationYears(&end, &start), "inverted range yields no duration")
}

func TestExtractExperience_OpenEndedRange(t *testing.T) {
	text := "Experience:\nMar 2019 - present\nPlatform Engineer at Example Inc\nKept the lights on.\n"

	experience := extractExperience(text)

	require.Len(t, experience, 1)
	assert.Greater(t, experience[0].DurationYears, 5.0)
}
