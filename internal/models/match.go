package models

// CandidateMatch is one ranked candidate in a search result. MatchScore is
// in [0,1].
type CandidateMatch struct {
	ResumeID        string   `json:"resume_id"`
	Name            string   `json:"name"`
	Rank            int      `json:"rank"`
	MatchScore      float64  `json:"match_score"`
	Skills          []string `json:"skills"`
	TotalExperience float64  `json:"total_experience"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
}

type SearchRequest struct {
	RequiredSkills string `json:"required_skills"`
	MinExperience  string `json:"min_experience"`
}

// SearchResponse carries the full results rendering context.
type SearchResponse struct {
	RequiredSkills  []string         `json:"required_skills"`
	MinExperience   float64          `json:"min_experience"`
	MatchingCount   int              `json:"matching_count"`
	TotalCandidates int64            `json:"total_candidates"`
	Candidates      []CandidateMatch `json:"candidates"`
}
