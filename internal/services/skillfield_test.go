package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRequiredSkills(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{name: "single skill", raw: "Go", want: []string{"go"}},
		{name: "multiple skills", raw: "Python, SQL, Docker", want: []string{"python", "sql", "docker"}},
		{name: "trailing comma", raw: "java, ", want: []string{"java"}},
		{name: "extra whitespace", raw: "  react ,  node.js ", want: []string{"react", "node.js"}},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   \t ", wantErr: true},
		{name: "commas only", raw: ", ,,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRequiredSkills(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppendSkillSeparator(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "trailing token present", value: "Java", want: "Java, "},
		{name: "trailing token after list", value: "Python, SQL", want: "Python, SQL, "},
		{name: "already separated", value: "Java, ", want: "Java, "},
		{name: "trailing comma no space", value: "Java,", want: "Java,"},
		{name: "empty value", value: "", want: ""},
		{name: "whitespace tail", value: "Go,   ", want: "Go,   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppendSkillSeparator(tt.value))
		})
	}
}
