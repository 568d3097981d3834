package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumatch/resume-matcher/internal/models"
)

func newTestMatcher() *matcherService {
	return &matcherService{similarityThreshold: 0.8, experienceBonusYears: 5}
}

func testResume(name, email string, years float64, skills ...string) models.Resume {
	return models.Resume{
		ID:                   uuid.New(),
		Name:                 name,
		Email:                email,
		Skills:               skills,
		TotalExperienceYears: years,
	}
}

func TestSimilarityScore(t *testing.T) {
	assert.Equal(t, 1.0, SimilarityScore("Python", "python"))
	assert.Equal(t, 1.0, SimilarityScore("", ""))
	assert.Less(t, SimilarityScore("go", "rust"), 0.5)
	assert.GreaterOrEqual(t, SimilarityScore("kubernets", "kubernetes"), 0.8)
}

func TestMatchSkills(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		name        string
		candidate   []string
		required    []string
		wantMatched []string
		wantMissing []string
	}{
		{
			name:        "exact match",
			candidate:   []string{"python", "sql"},
			required:    []string{"python"},
			wantMatched: []string{"python"},
		},
		{
			name:        "required contained in candidate skill",
			candidate:   []string{"python programming"},
			required:    []string{"python"},
			wantMatched: []string{"python"},
		},
		{
			name:        "candidate contained in required skill",
			candidate:   []string{"postgres"},
			required:    []string{"postgresql"},
			wantMatched: []string{"postgresql"},
		},
		{
			name:        "fuzzy match above threshold",
			candidate:   []string{"kubernets"},
			required:    []string{"kubernetes"},
			wantMatched: []string{"kubernetes"},
		},
		{
			name:        "no match",
			candidate:   []string{"php"},
			required:    []string{"rust"},
			wantMissing: []string{"rust"},
		},
		{
			name:        "partial coverage",
			candidate:   []string{"go", "docker"},
			required:    []string{"go", "terraform"},
			wantMatched: []string{"go"},
			wantMissing: []string{"terraform"},
		},
		{
			name:        "one candidate skill consumes one requirement",
			candidate:   []string{"java"},
			required:    []string{"java", "javascript"},
			wantMatched: []string{"java"},
			wantMissing: []string{"javascript"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, missing := m.MatchSkills(tt.candidate, tt.required)
			assert.ElementsMatch(t, tt.wantMatched, matched)
			assert.ElementsMatch(t, tt.wantMissing, missing)
		})
	}
}

func TestMatchCandidates_FiltersAndScores(t *testing.T) {
	m := newTestMatcher()

	resumes := []models.Resume{
		testResume("Ada Lovelace", "ada@example.com", 6, "python", "sql"),
		testResume("Grace Hopper", "grace@example.com", 1, "python"),
		testResume("Alan Turing", "alan@example.com", 8, "cobol"),
	}

	matches := m.MatchCandidates(resumes, []string{"python"}, 2)

	// Grace lacks experience, Alan lacks the skill.
	require.Len(t, matches, 1)
	got := matches[0]
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, []string{"python"}, got.MatchedSkills)
	assert.Empty(t, got.MissingSkills)

	// skillScore 1.0, expScore (6-2)/5 = 0.8 -> 0.7 + 0.24
	assert.InDelta(t, 0.94, got.MatchScore, 1e-9)
}

func TestMatchCandidates_NoMinExperienceUsesNeutralBonus(t *testing.T) {
	m := newTestMatcher()

	resumes := []models.Resume{
		testResume("Ada Lovelace", "ada@example.com", 3, "go", "docker"),
	}

	matches := m.MatchCandidates(resumes, []string{"go", "kubernetes"}, 0)

	require.Len(t, matches, 1)
	// skillScore 0.5, expScore 0.5 -> 0.35 + 0.15
	assert.InDelta(t, 0.5, matches[0].MatchScore, 1e-9)
	assert.Equal(t, []string{"kubernetes"}, matches[0].MissingSkills)
}

func TestMatchCandidates_ExperienceBonusCapped(t *testing.T) {
	m := newTestMatcher()

	resumes := []models.Resume{
		testResume("Ada Lovelace", "ada@example.com", 30, "python"),
	}

	matches := m.MatchCandidates(resumes, []string{"python"}, 1)

	require.Len(t, matches, 1)
	assert.InDelta(t, 1.0, matches[0].MatchScore, 1e-9)
}

func TestMatchCandidates_DeduplicatesByEmail(t *testing.T) {
	m := newTestMatcher()

	resumes := []models.Resume{
		testResume("Ada Lovelace", "ada@example.com", 5, "python"),
		testResume("Ada L.", "ADA@example.com", 5, "python"),
	}

	matches := m.MatchCandidates(resumes, []string{"python"}, 0)
	assert.Len(t, matches, 1)
}

func TestMatchCandidates_DeduplicatesByNameWhenNoEmail(t *testing.T) {
	m := newTestMatcher()

	resumes := []models.Resume{
		testResume("Ada Lovelace", "", 5, "python"),
		testResume("ada lovelace", "", 3, "sql"),
	}

	matches := m.MatchCandidates(resumes, nil, 0)
	assert.Len(t, matches, 1)
}

func TestMatchCandidates_EmptyRequirementsKeepEveryone(t *testing.T) {
	m := newTestMatcher()

	resumes := []models.Resume{
		testResume("Ada Lovelace", "ada@example.com", 5, "python"),
		testResume("Alan Turing", "alan@example.com", 2, "cobol"),
	}

	matches := m.MatchCandidates(resumes, nil, 0)

	require.Len(t, matches, 2)
	for _, match := range matches {
		// Full skill score with the neutral experience bonus.
		assert.InDelta(t, 0.85, match.MatchScore, 1e-9)
	}
}

func TestRankCandidates(t *testing.T) {
	m := newTestMatcher()

	candidates := []models.CandidateMatch{
		{Name: "low", MatchScore: 0.2},
		{Name: "high", MatchScore: 0.9},
		{Name: "mid-a", MatchScore: 0.5},
		{Name: "mid-b", MatchScore: 0.5},
	}

	ranked := m.RankCandidates(candidates)

	require.Len(t, ranked, 4)
	assert.Equal(t, "high", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "mid-a", ranked[1].Name, "equal scores keep input order")
	assert.Equal(t, "mid-b", ranked[2].Name)
	assert.Equal(t, "low", ranked[3].Name)
	assert.Equal(t, 4, ranked[3].Rank)

	// Input slice stays untouched.
	assert.Equal(t, "low", candidates[0].Name)
	assert.Zero(t, candidates[0].Rank)
}
