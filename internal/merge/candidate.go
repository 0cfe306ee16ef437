// file: internal/merge/candidate.go

package merge

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Candidate holds the two possible locations of one logical fragment.
type Candidate struct {
	Build  string `json:"build" yaml:"build"`
	Source string `json:"source" yaml:"source"`
}

// NewCandidate roots name under buildDir and srcDir. Empty directories mean
// the current directory.
func NewCandidate(name, srcDir, buildDir string) Candidate {
	if srcDir == "" {
		srcDir = "."
	}
	if buildDir == "" {
		buildDir = "."
	}
	return Candidate{
		Build:  filepath.Join(buildDir, name),
		Source: filepath.Join(srcDir, name),
	}
}

// Candidates builds one Candidate per logical name, preserving order.
func Candidates(names []string, srcDir, buildDir string) []Candidate {
	out := make([]Candidate, 0, len(names))
	for _, name := range names {
		out = append(out, NewCandidate(name, srcDir, buildDir))
	}
	return out
}

// Resolve returns the build path if anything exists there, otherwise the
// source path without checking it. fromBuild reports which one was picked.
func (c Candidate) Resolve(fs afero.Fs) (path string, fromBuild bool) {
	if _, err := fs.Stat(c.Build); err == nil {
		return c.Build, true
	}
	return c.Source, false
}
