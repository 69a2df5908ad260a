package gnupg

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// defaultExtension is used when input arrives as a handle or byte buffer
// with no associated file name.
const defaultExtension = "gpg"

// fileExtension infers the output extension from the input path, falling
// back to the default when there is no path or no extension.
func fileExtension(path string) string {
	if path == "" {
		return defaultExtension
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return defaultExtension
	}
	return ext
}

// outputTimestamp formats t as YYYYMMDD-HH:MM:SS:<9-digit fraction>.
func outputTimestamp(t time.Time) string {
	return fmt.Sprintf("%s:%09d", t.Format("20060102-15:04:05"), t.Nanosecond())
}

// defaultOutputPath builds the generated output file name:
// <outdir>/<prefix>_file_<timestamp>.<ext>, where prefix is
// "pass_encrypted", "keys_encrypted", "pass_keys_encrypted" or
// "decrypted" depending on the operation.
func defaultOutputPath(outputDir, prefix, inputPath string, now time.Time) string {
	name := fmt.Sprintf("%s_file_%s.%s", prefix, outputTimestamp(now), fileExtension(inputPath))
	return filepath.Join(outputDir, name)
}

// setOutput appends the explicit output destination, suppressing the
// overwrite confirmation prompt.
func setOutput(args []string, output string) []string {
	return append(args, "--yes", "--output", output)
}
