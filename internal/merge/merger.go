// file: internal/merge/merger.go

package merge

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"
	"rules-merge/internal/logger"
	"rules-merge/internal/metrics"
)

// Merger groups fragments by header and writes them out section by section.
type Merger struct {
	fs      afero.Fs
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// NewMerger creates a merger reading fragments from fs. metrics may be nil.
func NewMerger(fs afero.Fs, log *logger.Logger, m *metrics.Metrics) *Merger {
	return &Merger{
		fs:      fs,
		logger:  log,
		metrics: m,
	}
}

// Plan sorts candidates by the base name of their build path, resolves each
// one and groups the resolved paths by header. The input slice is not
// modified.
func (m *Merger) Plan(candidates []Candidate) (*Sections, error) {
	if len(candidates) == 0 {
		return nil, ErrNoInputs
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return filepath.Base(sorted[i].Build) < filepath.Base(sorted[j].Build)
	})

	sections := NewSections()
	for _, c := range sorted {
		path, fromBuild := c.Resolve(m.fs)

		header, err := ReadHeader(m.fs, path)
		if err != nil {
			return nil, err
		}

		m.logger.Debug("fragment resolved",
			"path", path,
			"fromBuild", fromBuild,
			"header", header)

		sections.Append(header, Entry{Path: path, FromBuild: fromBuild})
	}

	return sections, nil
}

// Merge plans candidates and writes the grouped content to w. The banner is
// not part of the merge; see WriteBanner.
func (m *Merger) Merge(w io.Writer, candidates []Candidate) error {
	start := time.Now()

	sections, err := m.Plan(candidates)
	if err != nil {
		return err
	}

	written, err := m.Write(w, sections)
	if err != nil {
		return err
	}

	m.logger.Info("merge complete",
		"files", sections.Files(),
		"sections", sections.Headed(),
		"bytes", written,
		"duration", time.Since(start))

	if m.metrics != nil {
		for _, sec := range sections.All() {
			for _, e := range sec.Entries {
				if e.FromBuild {
					m.metrics.IncFiles(metrics.RootBuild)
				} else {
					m.metrics.IncFiles(metrics.RootSource)
				}
			}
		}
		m.metrics.SetSections(sections.Headed())
		m.metrics.AddBytes(written)
		m.metrics.ObserveDuration(time.Since(start))
	}

	return nil
}

// Write emits sections in order. Headed sections are introduced by a blank
// line and their header, and each of their fragments loses its first line.
// It returns the number of bytes written.
func (m *Merger) Write(w io.Writer, sections *Sections) (int64, error) {
	cw := &countingWriter{w: w}

	for _, sec := range sections.All() {
		if sec.Header != "" {
			if _, err := io.WriteString(cw, "\n"+sec.Header); err != nil {
				return cw.n, fmt.Errorf("failed to write section header: %w", err)
			}
		}
		for _, e := range sec.Entries {
			if err := m.copyFragment(cw, e.Path, sec.Header != ""); err != nil {
				return cw.n, err
			}
		}
	}

	return cw.n, nil
}

// copyFragment copies the fragment at path to w, dropping its first line
// when skipHeader is set.
func (m *Merger) copyFragment(w io.Writer, path string, skipHeader bool) error {
	f, err := m.fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open fragment: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if skipHeader {
		if _, err := readLine(r); err != nil {
			return fmt.Errorf("failed to skip header of %s: %w", path, err)
		}
	}

	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("failed to copy %s: %w", path, err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
