package vector

import (
	"fmt"
	"os"
	"time"
)

// WriteFile writes the set to path as one text line per vector. The file
// appears atomically: content goes to a temp file first and is renamed
// into place, so a failed run never leaves a partial vectors file behind.
// It returns the number of vectors written.
func (s Set) WriteFile(path string) (int, error) {
	if len(s) == 0 {
		return 0, ErrCount
	}

	tempPath := fmt.Sprintf("%s.tmp.%d", path, time.Now().UnixNano())
	if err := os.WriteFile(tempPath, []byte(s.ToTXT()), 0644); err != nil {
		return 0, fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return 0, fmt.Errorf("rename temp file: %w", err)
	}

	return len(s), nil
}
