// file: internal/merge/banner_test.go

package merge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanner(t *testing.T) {
	want := "// DO NOT EDIT THIS FILE - IT WAS AUTOGENERATED BY rules-merge FROM rules/*.part\n//\n"
	assert.Equal(t, want, Banner("/usr/libexec/rules-merge"))
	assert.Equal(t, want, Banner("rules-merge"))

	var buf bytes.Buffer
	require.NoError(t, WriteBanner(&buf, "./rules-merge"))
	assert.Equal(t, want, buf.String())
}
