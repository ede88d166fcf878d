package firefox

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	prefNamespace  = "security.ssl3."
	deprecatedMark = "deprecated"
	strippedPrefix = "security."
)

// StaticPrefList uses @TOKEN@ placeholders that the build system substitutes;
// the YAML parser chokes on a bare '@', so they are rewritten to plain quoted
// strings before parsing.
var templatePlaceholder = regexp.MustCompile(`@([^@]*)@`)

type prefEntry struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// ParseStaticPrefs parses StaticPrefList.yaml and returns the value of every
// non-deprecated security.ssl3.* preference, keyed by the normalized name
// ("security." stripped, dots replaced with underscores) so the keys line up
// with the StaticPrefs fields scraped by ParseCipherPrefs.
func ParseStaticPrefs(src string) (map[string]any, error) {
	normalized := templatePlaceholder.ReplaceAllString(src, `"$1"`)

	var entries []prefEntry
	if err := yaml.Unmarshal([]byte(normalized), &entries); err != nil {
		return nil, fmt.Errorf("parse StaticPrefList: %w", err)
	}

	values := make(map[string]any)
	for _, e := range entries {
		if !strings.HasPrefix(e.Name, prefNamespace) || strings.Contains(e.Name, deprecatedMark) {
			continue
		}
		name := strings.TrimPrefix(e.Name, strippedPrefix)
		values[strings.ReplaceAll(name, ".", "_")] = e.Value
	}
	return values, nil
}

// Enabled reports whether a preference value turns its cipher suite on. Only
// an explicit boolean false disables. Some preferences carry string values
// (build-conditional placeholders); those count as enabled, intentionally,
// empty string included.
func Enabled(v any) bool {
	b, ok := v.(bool)
	return !ok || b
}
