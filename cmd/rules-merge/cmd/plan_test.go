// file: cmd/rules-merge/cmd/plan_test.go
package cmd

import (
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"rules-merge/internal/merge"
)

type planResult struct {
	Files    int             `json:"files" yaml:"files"`
	Sections []merge.Section `json:"sections" yaml:"sections"`
}

func TestPlan_JSON(t *testing.T) {
	src := t.TempDir()
	build := t.TempDir()
	writeFragments(t, src, map[string]string{
		"a.part": "! X\nx\n",
		"b.part": "plain\n",
	})
	writeFragments(t, build, map[string]string{
		"c.part": "! X\ngenerated\n",
	})

	out, err := execute(t, "plan", "--srcdir", src, "--builddir", build, "c.part", "b.part", "a.part")
	require.NoError(t, err)

	var res planResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Files)
	require.Len(t, res.Sections, 2)

	assert.Equal(t, "", res.Sections[0].Header)
	assert.Equal(t, []string{filepath.Join(src, "b.part")}, res.Sections[0].Paths())

	assert.Equal(t, "! X\n", res.Sections[1].Header)
	require.Len(t, res.Sections[1].Entries, 2)
	assert.Equal(t, filepath.Join(src, "a.part"), res.Sections[1].Entries[0].Path)
	assert.False(t, res.Sections[1].Entries[0].FromBuild)
	assert.Equal(t, filepath.Join(build, "c.part"), res.Sections[1].Entries[1].Path)
	assert.True(t, res.Sections[1].Entries[1].FromBuild)
}

func TestPlan_YAML(t *testing.T) {
	src := t.TempDir()
	writeFragments(t, src, map[string]string{"a.part": "! X\nx\n"})

	out, err := execute(t, "plan", "--format", "yaml", "--srcdir", src, "a.part")
	require.NoError(t, err)

	var res planResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	require.Len(t, res.Sections, 2)
	assert.Equal(t, "! X\n", res.Sections[1].Header)
}

func TestPlan_MissingFragment(t *testing.T) {
	_, err := execute(t, "plan", "--srcdir", t.TempDir(), "--builddir", t.TempDir(), "ghost.part")
	assert.Error(t, err)
}
