package services

import (
	"fmt"
	"strings"
)

// NormalizeRequiredSkills turns the raw comma-separated skills field into
// trimmed lowercase tokens. An empty-after-trim field is a validation
// error: a search must name at least one skill.
func NormalizeRequiredSkills(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("required skills must not be empty")
	}

	var skills []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token != "" {
			skills = append(skills, token)
		}
	}

	if len(skills) == 0 {
		return nil, fmt.Errorf("required skills must not be empty")
	}

	return skills, nil
}

// AppendSkillSeparator is the Enter-key assist on the skills field: when
// the trailing comma-separated token is non-empty, a ", " separator is
// appended so the next skill can be typed; otherwise the value is
// returned unchanged.
func AppendSkillSeparator(value string) string {
	tokens := strings.Split(value, ",")
	last := strings.TrimSpace(tokens[len(tokens)-1])
	if last == "" {
		return value
	}

	return value + ", "
}
