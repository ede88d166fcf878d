package firefox

import (
	"regexp"
	"strings"
)

const (
	suiteOrderStart = "ssl3CipherSuiteCfg cipherSuites["
	suiteOrderEnd   = "};"
)

// A contributing line opens a struct literal whose first field is the suite
// macro, e.g. "    { TLS_AES_128_GCM_SHA256, SSL_ALLOWED, ... },".
var suiteOrderLine = regexp.MustCompile(`^\s*\{\s*([A-Z_0-9]+),`)

// ParseSuiteOrder extracts the suite ordering from the cipherSuites array in
// ssl3con.c. The order of the returned slice is NSS's handshake preference
// order; downstream stages must never re-sort it. Lines inside the region
// that do not open a suite entry (comments, preprocessor lines) are skipped.
func ParseSuiteOrder(src string) []string {
	var inTable bool
	var order []string
	for _, line := range strings.Split(src, "\n") {
		if !inTable {
			inTable = strings.Contains(line, suiteOrderStart)
			continue
		}
		if strings.HasPrefix(line, suiteOrderEnd) {
			break
		}
		if m := suiteOrderLine.FindStringSubmatch(line); m != nil {
			order = append(order, m[1])
		}
	}
	return order
}
