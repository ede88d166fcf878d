package resolve

import (
	"errors"
	"fmt"
	"strings"

	"mozciphers/internal/firefox"
	"mozciphers/internal/openssl"
)

// ErrMissingCode reports a suite that appears in the NSS suite order with no
// numeric definition in sslproto.h. The generated list cannot be trusted
// without it, so the whole run aborts.
var ErrMissingCode = errors.New("cipher suite has no numeric definition in sslproto.h")

// Record is one cipher suite that survived preference filtering, in NSS
// order, with its OpenSSL equivalent when one exists.
type Record struct {
	Suite    string // Firefox suite macro, e.g. TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256
	Hex      string // lowercased wire value, e.g. 0xc02f
	Macro    string // OpenSSL *_TXT_* macro, or Suite when unresolved
	Resolved bool   // false: no OpenSSL equivalent, Macro is the fallback
}

// Inputs carries the scraped tables into the resolution pass. Resolve treats
// all of them as read-only.
type Inputs struct {
	Order  []string          // NSS suite order, authoritative
	Prefs  firefox.CipherPrefs
	Values map[string]any    // normalized pref name -> StaticPrefList value
	Codes  map[string]string // suite macro -> numeric text, from sslproto.h
	Macros openssl.Macros
}

// OpenSSL names the key and textual variants of a suite macro with different
// infixes; the hex index finds the key variant, the output wants the textual
// one.
const (
	keyInfix  = "_CK_"
	nameInfix = "_TXT_"
)

// Resolve produces one Record per enabled suite, preserving Order. A suite
// with no entry in the preference table has no client-visible pref and is
// skipped, as is one whose preference is absent or falsy. An enabled suite
// missing from Codes is fatal: the returned error names the suite and no
// records are returned.
func Resolve(in Inputs) ([]Record, error) {
	var out []Record
	for _, suite := range in.Order {
		key, ok := in.Prefs.KeyBySuite[suite]
		if !ok {
			continue
		}
		value, ok := in.Values[key]
		if !ok || !firefox.Enabled(value) {
			continue
		}
		raw, ok := in.Codes[suite]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingCode, suite)
		}
		out = append(out, resolveOne(suite, strings.ToLower(raw), in.Macros))
	}
	return out, nil
}

func resolveOne(suite, hex string, m openssl.Macros) Record {
	key, ok := m.ByHex[hex]
	if !ok {
		return Record{Suite: suite, Hex: hex, Macro: suite}
	}
	name := strings.Replace(key, keyInfix, nameInfix, 1)
	if _, ok := m.Catalog[name]; !ok {
		return Record{Suite: suite, Hex: hex, Macro: suite}
	}
	return Record{Suite: suite, Hex: hex, Macro: name, Resolved: true}
}
