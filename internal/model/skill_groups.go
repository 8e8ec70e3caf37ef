package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SkillGroup is one named category of skills.
type SkillGroup struct {
	Name   string
	Skills []string
}

// SkillGroups is an ordered mapping from category name to skills.
// It decodes from and encodes to a JSON object, keeping the key order
// the service sent.
type SkillGroups []SkillGroup

// Get returns the skills for a category and whether it exists.
func (g SkillGroups) Get(name string) ([]string, bool) {
	for _, group := range g {
		if group.Name == name {
			return group.Skills, true
		}
	}
	return nil, false
}

// NonEmpty returns only the groups holding at least one skill.
func (g SkillGroups) NonEmpty() SkillGroups {
	var out SkillGroups
	for _, group := range g {
		if len(group.Skills) > 0 {
			out = append(out, group)
		}
	}
	return out
}

// UnmarshalJSON decodes a JSON object into groups in document order.
func (g *SkillGroups) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*g = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read skill groups: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("skill groups must be a JSON object, got %v", tok)
	}

	groups := SkillGroups{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read category name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected category key %v", keyTok)
		}

		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return fmt.Errorf("failed to decode skills for category %q: %w", name, err)
		}
		if skills == nil {
			skills = []string{}
		}

		// A repeated key replaces the earlier value in place, as a JSON object would.
		replaced := false
		for i := range groups {
			if groups[i].Name == name {
				groups[i].Skills = skills
				replaced = true
				break
			}
		}
		if !replaced {
			groups = append(groups, SkillGroup{Name: name, Skills: skills})
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to close skill groups: %w", err)
	}

	*g = groups
	return nil
}

// MarshalJSON encodes the groups as a JSON object in slice order.
func (g SkillGroups) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Name)
		if err != nil {
			return nil, err
		}
		skills := group.Skills
		if skills == nil {
			skills = []string{}
		}
		value, err := json.Marshal(skills)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
