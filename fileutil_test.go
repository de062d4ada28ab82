package cv2pdf

// Notes:
// - writeTempFile: tests content round-trip, absolute path, extension,
//   and that cleanup removes the file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := writeTempFile("<html>test</html>", "html")
	if err != nil {
		t.Fatalf("writeTempFile() error = %v", err)
	}
	defer cleanup()

	if !filepath.IsAbs(path) {
		t.Errorf("path %q is not absolute", path)
	}
	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q missing extension", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != "<html>test</html>" {
		t.Errorf("content = %q", data)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("cleanup did not remove the file")
	}
}
