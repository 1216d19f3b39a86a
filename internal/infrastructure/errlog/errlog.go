// Package errlog appends fatal error reports to the game's error log file.
package errlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the error log file created under the root path.
const FileName = "ErrorLog.txt"

// Path returns the error log location under root.
func Path(root string) string {
	if root == "" {
		root = "."
	}
	return filepath.Join(root, FileName)
}

// Write appends a report for err to the file at path. stack may be nil.
func Write(path string, err error, stack []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return fmt.Errorf("failed to create log dir: %w", mkErr)
		}
	}

	file, openErr := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if openErr != nil {
		return fmt.Errorf("failed to open error log: %w", openErr)
	}
	defer func() { _ = file.Close() }()

	report := fmt.Sprintf("[%s] %v\n", time.Now().Format(time.RFC3339), err)
	if len(stack) > 0 {
		report += string(stack)
		if stack[len(stack)-1] != '\n' {
			report += "\n"
		}
	}
	if _, writeErr := file.WriteString(report); writeErr != nil {
		return fmt.Errorf("failed to write error log: %w", writeErr)
	}
	return nil
}
