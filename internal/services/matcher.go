package services

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"resumatch/resume-matcher/internal/models"
)

// MatcherService filters and ranks stored resumes against a set of job
// requirements.
type MatcherService interface {
	MatchCandidates(resumes []models.Resume, requiredSkills []string, minExperience float64) []models.CandidateMatch
	RankCandidates(candidates []models.CandidateMatch) []models.CandidateMatch
}

type matcherService struct {
	similarityThreshold  float64
	experienceBonusYears float64
}

func NewMatcherService(similarityThreshold, experienceBonusYears float64) MatcherService {
	return &matcherService{
		similarityThreshold:  similarityThreshold,
		experienceBonusYears: experienceBonusYears,
	}
}

const (
	skillScoreWeight      = 0.7
	experienceScoreWeight = 0.3
)

// SimilarityScore is a normalized edit-distance similarity in [0,1],
// case-insensitive.
func SimilarityScore(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// MatchSkills pairs candidate skills against required skills. A required
// skill counts as matched when a candidate skill contains it, is contained
// by it, or sits above the similarity threshold. Each candidate skill
// consumes at most one required skill.
func (m *matcherService) MatchSkills(candidateSkills, requiredSkills []string) (matched, missing []string) {
	missing = append([]string{}, requiredSkills...)

	for _, candidateSkill := range candidateSkills {
		for _, reqSkill := range requiredSkills {
			candLower := strings.ToLower(candidateSkill)
			reqLower := strings.ToLower(reqSkill)

			if strings.Contains(candLower, reqLower) ||
				strings.Contains(reqLower, candLower) ||
				SimilarityScore(candidateSkill, reqSkill) >= m.similarityThreshold {
				if idx := indexOf(missing, reqSkill); idx >= 0 {
					missing = append(missing[:idx], missing[idx+1:]...)
					matched = append(matched, reqSkill)
				}
				break
			}
		}
	}

	return matched, missing
}

// MatchCandidates implements MatcherService. Duplicate candidates are
// collapsed by lowercase email, falling back to lowercase name.
func (m *matcherService) MatchCandidates(resumes []models.Resume, requiredSkills []string, minExperience float64) []models.CandidateMatch {
	var matches []models.CandidateMatch
	seen := make(map[string]bool)

	for _, resume := range resumes {
		key := strings.ToLower(resume.Email)
		if key == "" {
			key = strings.ToLower(resume.Name)
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		if resume.TotalExperienceYears < minExperience {
			continue
		}

		matched, missing := m.MatchSkills(resume.Skills, requiredSkills)

		skillScore := 1.0
		if len(requiredSkills) > 0 {
			skillScore = float64(len(matched)) / float64(len(requiredSkills))
		}

		if len(matched) == 0 && len(requiredSkills) > 0 {
			continue
		}

		experienceScore := 0.5
		if minExperience > 0 {
			experienceScore = (resume.TotalExperienceYears - minExperience) / m.experienceBonusYears
			if experienceScore > 1.0 {
				experienceScore = 1.0
			}
		}

		matches = append(matches, models.CandidateMatch{
			ResumeID:        resume.ID.String(),
			Name:            resume.Name,
			Skills:          resume.Skills,
			TotalExperience: resume.TotalExperienceYears,
			MatchedSkills:   matched,
			MissingSkills:   missing,
			MatchScore:      skillScore*skillScoreWeight + experienceScore*experienceScoreWeight,
		})
	}

	return matches
}

// RankCandidates implements MatcherService. Sort is stable so equal scores
// keep upload order.
func (m *matcherService) RankCandidates(candidates []models.CandidateMatch) []models.CandidateMatch {
	ranked := append([]models.CandidateMatch{}, candidates...)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}
