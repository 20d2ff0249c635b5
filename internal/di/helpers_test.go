package di_test

import (
	"os"
	"strings"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
