package firefox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mozciphers/internal/firefox"
)

const prefTableSrc = `// NSS cipher suite preference table.
static const CipherPref sCipherPrefs[] = {
    {"security.ssl3.ecdhe_rsa_aes_128_gcm_sha256",
     TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
     StaticPrefs::security_ssl3_ecdhe_rsa_aes_128_gcm_sha256},
    {"security.ssl3.rsa_aes_128_sha", TLS_RSA_WITH_AES_128_CBC_SHA,
     StaticPrefs::security_ssl3_rsa_aes_128_sha},
};

static const CipherPref sNotScanned[] = {
    {"security.ssl3.outside_table", TLS_FAKE_SUITE,
     StaticPrefs::security_ssl3_outside_table},
};
`

func TestParseCipherPrefs(t *testing.T) {
	prefs, warnings := firefox.ParseCipherPrefs(prefTableSrc)
	require.Empty(t, warnings)

	assert.Equal(t, map[string]string{
		"ssl3_ecdhe_rsa_aes_128_gcm_sha256": "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256",
		"ssl3_rsa_aes_128_sha":              "TLS_RSA_WITH_AES_128_CBC_SHA",
	}, prefs.SuiteByPref)

	assert.Equal(t, map[string]string{
		"TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256": "ssl3_ecdhe_rsa_aes_128_gcm_sha256",
		"TLS_RSA_WITH_AES_128_CBC_SHA":          "ssl3_rsa_aes_128_sha",
	}, prefs.KeyBySuite)
}

func TestParseCipherPrefsMalformedRecord(t *testing.T) {
	const src = `static const CipherPref sCipherPrefs[] = {
    {"security.ssl3.ecdhe_ecdsa_aes_256_gcm_sha384",
     TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
     StaticPrefs::security_ssl3_ecdhe_ecdsa_aes_256_gcm_sha384},
    {MOZ_CIPHER_PREF("security.ssl3.dhe_rsa_aes_256_sha")},
};
`
	prefs, warnings := firefox.ParseCipherPrefs(src)

	// The malformed record is reported once and skipped; the good one parses.
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "MOZ_CIPHER_PREF")
	assert.Len(t, prefs.KeyBySuite, 1)
	assert.Equal(t, "ssl3_ecdhe_ecdsa_aes_256_gcm_sha384",
		prefs.KeyBySuite["TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384"])
}

func TestParseCipherPrefsNoTable(t *testing.T) {
	prefs, warnings := firefox.ParseCipherPrefs("int main() { return 0; }\n")
	assert.Empty(t, warnings)
	assert.Empty(t, prefs.SuiteByPref)
	assert.Empty(t, prefs.KeyBySuite)
}
