package cv2pdf

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeTempFile writes content to a temp file with the given extension
// and returns its absolute path plus a cleanup func. The absolute path
// matters for file:// URLs handed to the browser.
func writeTempFile(content, extension string) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "cv2pdf-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	name := f.Name()
	remove := func() { _ = os.Remove(name) }

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		remove()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		remove()
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		remove()
		return "", nil, fmt.Errorf("resolving temp file path: %w", err)
	}

	return abs, remove, nil
}
