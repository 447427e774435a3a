package requirements

import (
	"os"
	"strings"
)

// ReadRequirements parses a pip requirements file into one entry per
// requirement. Comments are stripped, backslash line continuations are
// joined, blank lines are dropped. The entries themselves are left exactly
// as pip would see them; no version resolution happens here.
func ReadRequirements(path string) ([]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseRequirements(string(contents)), nil
}

func parseRequirements(contents string) []string {
	// Join continuation lines before splitting into requirements
	contents = strings.ReplaceAll(contents, "\\\r\n", "")
	contents = strings.ReplaceAll(contents, "\\\n", "")

	requirements := []string{}
	for _, line := range strings.Split(contents, "\n") {
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		requirements = append(requirements, line)
	}
	return requirements
}
