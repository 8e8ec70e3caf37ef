// Package model defines the core domain models used throughout the application.
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// StatusSuccess is the envelope status reported for a completed analysis.
const StatusSuccess = "success"

// AnalysisResponse is the envelope returned by the analysis service.
type AnalysisResponse struct {
	Analysis  *AnalysisResult `json:"analysis,omitempty"`
	Status    string          `json:"status"`
	Error     string          `json:"error,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// Succeeded reports whether the service marked the analysis as successful.
func (r AnalysisResponse) Succeeded() bool {
	return r.Status == StatusSuccess
}

// AnalysisResult describes how well a resume matches a job description.
// It is produced by the analysis service and treated as read-only.
//
// A decoded result remembers the object the service sent and encodes back
// to it, so fields the struct does not model survive an export.
type AnalysisResult struct {
	CategorizedSkills *CategorizedSkills `json:"categorized_skills,omitempty"`
	raw               json.RawMessage
	Recommendation    string             `json:"recommendation"`
	MatchingSkills    []string           `json:"matching_skills" validate:"required"`
	MissingSkills     []string           `json:"missing_skills" validate:"required"`
	OverallMatch      float64            `json:"overall_match"`
	SkillMatch        float64            `json:"skill_match"`
}

// analysisFields has the fields of AnalysisResult without its JSON methods.
type analysisFields AnalysisResult

// UnmarshalJSON decodes the modeled fields and keeps a compact copy of data.
func (r *AnalysisResult) UnmarshalJSON(data []byte) error {
	var fields analysisFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return fmt.Errorf("failed to compact analysis: %w", err)
	}

	*r = AnalysisResult(fields)
	r.raw = compact.Bytes()
	return nil
}

// MarshalJSON returns the object the service sent, or the modeled fields
// for a result built in code.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	fields := analysisFields(r)
	return json.Marshal(fields)
}

// CategorizedSkills groups the skills detected on each side of the comparison.
type CategorizedSkills struct {
	Resume SkillGroups `json:"resume"`
}

// ResumeGroups returns the resume's skill groups, or nil when the service
// did not categorize them.
func (r *AnalysisResult) ResumeGroups() SkillGroups {
	if r == nil || r.CategorizedSkills == nil {
		return nil
	}
	return r.CategorizedSkills.Resume
}

// Validate checks that the service sent every field the report relies on.
// Empty skill lists are valid; absent ones are not.
func (r *AnalysisResult) Validate() error {
	if r == nil {
		return errors.New("analysis is missing")
	}
	validate := validator.New()
	return validate.Struct(r)
}
