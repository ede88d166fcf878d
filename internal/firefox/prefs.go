package firefox

import (
	"regexp"
	"strings"
)

// CipherPrefs holds the two indices scraped from the sCipherPrefs array in
// nsNSSComponent.cpp: which suite each preference controls, and the
// StaticPrefs field used to read that preference's value.
type CipherPrefs struct {
	SuiteByPref map[string]string // normalized pref name -> suite macro
	KeyBySuite  map[string]string // suite macro -> StaticPrefs key
}

const (
	prefTableStart = "static const CipherPref sCipherPrefs[]"
	prefTableEnd   = "};"
)

// One table record: {"security.<pref>", <SUITE_MACRO>, StaticPrefs::security_<key>}.
// Records may span lines, so matching happens on the joined region text.
var prefRecord = regexp.MustCompile(
	`"security\.([^"]+)",\s*([^\s,]+)\s*,\s*StaticPrefs::security_(\S+)`)

// ParseCipherPrefs scrapes the sCipherPrefs array literal out of src. The
// region between the array declaration and its closing brace is joined into a
// single string and split at each '}' to recover records. A record that is
// just the trailing ',' separator is ignored; anything else that fails the
// record pattern is returned verbatim as a warning and skipped.
func ParseCipherPrefs(src string) (CipherPrefs, []string) {
	prefs := CipherPrefs{
		SuiteByPref: make(map[string]string),
		KeyBySuite:  make(map[string]string),
	}

	var warnings []string
	rest := prefTableRegion(src)
	for rest != "" {
		var record string
		if i := strings.Index(rest, "}"); i >= 0 {
			record, rest = rest[:i], rest[i+1:]
		} else {
			record, rest = rest, ""
		}

		m := prefRecord.FindStringSubmatch(record)
		if m == nil {
			if t := strings.TrimSpace(record); t != "" && t != "," {
				warnings = append(warnings, record)
			}
			continue
		}

		pref := strings.ReplaceAll(m[1], ".", "_")
		prefs.SuiteByPref[pref] = m[2]
		prefs.KeyBySuite[m[2]] = m[3]
	}
	return prefs, warnings
}

// prefTableRegion joins the lines between the table markers with single
// spaces, so records split across lines become contiguous.
func prefTableRegion(src string) string {
	var inTable bool
	var lines []string
	for _, line := range strings.Split(src, "\n") {
		if !inTable {
			inTable = strings.HasPrefix(line, prefTableStart)
			continue
		}
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefTableEnd) {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, " ")
}
