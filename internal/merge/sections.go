// file: internal/merge/sections.go

package merge

// Entry is one resolved fragment inside a section.
type Entry struct {
	Path      string `json:"path" yaml:"path"`
	FromBuild bool   `json:"fromBuild" yaml:"fromBuild"`
}

// Section groups the fragments sharing one header. The empty header holds
// header-less fragments.
type Section struct {
	Header  string  `json:"header" yaml:"header"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Paths returns the resolved fragment paths in append order.
func (s *Section) Paths() []string {
	paths := make([]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		paths = append(paths, e.Path)
	}
	return paths
}

// Sections is an insertion-ordered map from header to Section. The empty
// header is always present at position 0.
type Sections struct {
	order []*Section
	index map[string]*Section
}

func NewSections() *Sections {
	empty := &Section{Header: "", Entries: []Entry{}}
	return &Sections{
		order: []*Section{empty},
		index: map[string]*Section{"": empty},
	}
}

// Append adds e to the section named header, creating it at the end of the
// order when the header has not been seen yet. Headers compare byte for byte.
func (s *Sections) Append(header string, e Entry) {
	sec, ok := s.index[header]
	if !ok {
		sec = &Section{Header: header}
		s.index[header] = sec
		s.order = append(s.order, sec)
	}
	sec.Entries = append(sec.Entries, e)
}

func (s *Sections) Get(header string) (*Section, bool) {
	sec, ok := s.index[header]
	return sec, ok
}

// All returns the sections in emission order.
func (s *Sections) All() []*Section {
	return s.order
}

// Len counts sections, including the empty-header one.
func (s *Sections) Len() int {
	return len(s.order)
}

// Headed counts sections with a non-empty header.
func (s *Sections) Headed() int {
	return len(s.order) - 1
}

// Files counts fragments across all sections.
func (s *Sections) Files() int {
	n := 0
	for _, sec := range s.order {
		n += len(sec.Entries)
	}
	return n
}
