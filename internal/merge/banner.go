// file: internal/merge/banner.go

package merge

import (
	"fmt"
	"io"
	"path/filepath"
)

const bannerFormat = "// DO NOT EDIT THIS FILE - IT WAS AUTOGENERATED BY %s FROM rules/*.part\n//\n"

// Banner returns the autogenerated-file comment naming program, reduced to
// its base name.
func Banner(program string) string {
	return fmt.Sprintf(bannerFormat, filepath.Base(program))
}

// WriteBanner writes Banner(program) to w.
func WriteBanner(w io.Writer, program string) error {
	if _, err := io.WriteString(w, Banner(program)); err != nil {
		return fmt.Errorf("failed to write banner: %w", err)
	}
	return nil
}
