// file: internal/merge/header.go

package merge

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// HeaderPrefix marks a fragment's first line as a section header.
const HeaderPrefix = "! "

// ReadHeader returns the section header of the fragment at path: its first
// line, trailing newline included, when that line starts with HeaderPrefix.
// Fragments without a header, including empty files, yield "".
func ReadHeader(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open fragment: %w", err)
	}
	defer f.Close()

	line, err := readLine(bufio.NewReader(f))
	if err != nil {
		return "", fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	if strings.HasPrefix(line, HeaderPrefix) {
		return line, nil
	}
	return "", nil
}

// readLine reads up to and including the next newline. A final line without
// a newline is returned as is; EOF on an empty reader yields "".
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}
