package emit_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mozciphers/internal/emit"
	"mozciphers/internal/resolve"
)

const wantHeader = `/* This is an include file used to define the list of ciphers clients should
 * advertise.  Before including it, you should define the CIPHER and XCIPHER
 * macros.
 *
 * This file was automatically generated by mozciphers.
 */
`

func TestRender(t *testing.T) {
	records := []resolve.Record{
		{Suite: "SUITE_B", Hex: "0x002f", Macro: "TLS_TXT_RSA_AES_128", Resolved: true},
		{Suite: "SUITE_C", Hex: "0x003c", Macro: "SUITE_C"},
	}

	var buf bytes.Buffer
	require.NoError(t, emit.Render(&buf, records))

	want := wantHeader + `#ifdef TLS_TXT_RSA_AES_128
    CIPHER(0x002f, TLS_TXT_RSA_AES_128)
#else
   XCIPHER(0x002f, SUITE_B)
#endif
/* No openssl macro found for 0x003c */
#ifdef SUITE_C
    CIPHER(0x003c, SUITE_C)
#else
   XCIPHER(0x003c, SUITE_C)
#endif
`
	assert.Equal(t, want, buf.String())
}

func TestRenderEmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, emit.Render(&buf, nil))
	assert.Equal(t, wantHeader, buf.String())
}
