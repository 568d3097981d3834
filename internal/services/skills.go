package services

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed skills.yaml
var defaultSkillDictionary []byte

// SkillDictionary is the keyword list the extractor scans resumes against.
// CommonSkills are matched with high confidence; PotentialSkills are
// weaker indicators and go through the same word-boundary match.
type SkillDictionary struct {
	CommonSkills    []string `yaml:"common_skills"`
	PotentialSkills []string `yaml:"potential_skills"`
}

// LoadSkillDictionary reads the dictionary from path, or the embedded
// default when path is empty.
func LoadSkillDictionary(path string) (*SkillDictionary, error) {
	data := defaultSkillDictionary
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read skill dictionary: %w", err)
		}
		data = fileData
	}

	var dict SkillDictionary
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to parse skill dictionary: %w", err)
	}

	if len(dict.CommonSkills) == 0 {
		return nil, fmt.Errorf("skill dictionary has no common_skills")
	}

	return &dict, nil
}
