package model

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Resume references the file a user selected for analysis.
// The content is opened lazily so large files are not held in memory
// while the user is still editing the form.
type Resume struct {
	open func() (io.ReadCloser, error)
	Name string
	Path string
	Size int64
}

// ResumeFromPath references a file on disk.
func ResumeFromPath(path string) (*Resume, error) {
	clean := filepath.Clean(path)
	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to stat resume: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("resume path %s is a directory", clean)
	}

	return &Resume{
		Name: info.Name(),
		Path: clean,
		Size: info.Size(),
		open: func() (io.ReadCloser, error) {
			return os.Open(clean) // #nosec G304 -- path chosen by the user
		},
	}, nil
}

// ResumeFromBytes references an in-memory file, such as a browser upload.
func ResumeFromBytes(name string, data []byte) *Resume {
	return &Resume{
		Name: name,
		Size: int64(len(data)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// Open returns a fresh reader over the resume content.
func (r *Resume) Open() (io.ReadCloser, error) {
	if r == nil || r.open == nil {
		return nil, fmt.Errorf("resume has no content")
	}
	return r.open()
}

// Submission is the snapshot of form input sent to the analysis service.
type Submission struct {
	Resume         *Resume
	JobDescription string
}
