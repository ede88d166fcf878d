package openssl

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// CandidateHeaders lists the include/openssl headers that may define cipher
// macros. The include layout varies by OpenSSL version, so headers that do
// not exist are skipped without error.
var CandidateHeaders = []string{"ssl3.h", "ssl.h", "ssl2.h", "ssl23.h", "tls1.h"}

// Macros indexes the cipher macros scraped from an OpenSSL tree.
type Macros struct {
	ByHex   map[string]string // normalized hex code -> *_CK_* macro name
	Catalog map[string]string // every macro name seen -> raw value text
}

// OpenSSL headers indent some defines ("# define NAME VALUE").
var macroDefineLine = regexp.MustCompile(`^#\s*define\s+(\S+)\s+(\S+)`)

// TLS key macros carry the SSLv3 record-layer prefix on their wire value
// (0x0300C02F); stripping it leaves the two-byte code Firefox uses.
const legacyHexPrefix = "0x0300"

// ParseHeaders reads every existing candidate header under
// root/include/openssl and builds both indices. Only macros containing
// "_CK_" with a 0x value enter ByHex, under their normalized (prefix-
// collapsed, lowercased) hex code; a later definition of the same code
// overwrites an earlier one.
func ParseHeaders(root string) (Macros, error) {
	m := Macros{
		ByHex:   make(map[string]string),
		Catalog: make(map[string]string),
	}
	for _, name := range CandidateHeaders {
		data, err := os.ReadFile(filepath.Join(root, "include", "openssl", name))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Macros{}, err
		}
		m.scan(string(data))
	}
	return m, nil
}

func (m *Macros) scan(src string) {
	for _, line := range strings.Split(src, "\n") {
		g := macroDefineLine.FindStringSubmatch(line)
		if g == nil {
			continue
		}
		macro, value := g[1], g[2]
		if strings.HasPrefix(value, "0x") && strings.Contains(macro, "_CK_") {
			hex := strings.ToLower(strings.Replace(value, legacyHexPrefix, "0x", 1))
			m.ByHex[hex] = macro
		}
		m.Catalog[macro] = value
	}
}
