// Package resultfile allocates non-colliding result file names:
// the first unused <prefix><N><suffix> in a directory, N counting from 0.
package resultfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// maxAttempts bounds the counter so a misconfigured directory cannot spin.
const maxAttempts = 1 << 20

// ErrExhausted is returned when every candidate name up to maxAttempts exists.
var ErrExhausted = errors.New("resultfile: no free result name")

// Name returns the candidate path for counter n.
func Name(dir, prefix, suffix string, n int) string {
	return filepath.Join(dir, prefix+strconv.Itoa(n)+suffix)
}

// Create creates and opens the first unused result file for writing.
// Existence check and creation are one atomic O_EXCL open, so two
// concurrent runs never get the same file.
func Create(dir, prefix, suffix string) (*os.File, error) {
	for n := 0; n < maxAttempts; n++ {
		f, err := os.OpenFile(Name(dir, prefix, suffix, n), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("could not create result file: %w", err)
		}
	}

	return nil, fmt.Errorf("%s: %w", Name(dir, prefix, suffix, maxAttempts-1), ErrExhausted)
}
