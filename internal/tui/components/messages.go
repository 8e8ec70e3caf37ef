package components

import "github.com/Veraticus/careersync/internal/model"

// AnalysisCompleteMsg carries the outcome of a submission request.
type AnalysisCompleteMsg struct {
	Result *model.AnalysisResult
	Err    error
}

// ResultsReadyMsg publishes a successful analysis to the parent model.
type ResultsReadyMsg struct {
	Result *model.AnalysisResult
}

// BackToFormMsg requests to return from the results to the upload form.
type BackToFormMsg struct{}

// ExportedMsg reports the outcome of saving an analysis to disk.
type ExportedMsg struct {
	Err  error
	Path string
}
