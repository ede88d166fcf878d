package emit

import (
	"fmt"
	"io"

	"mozciphers/internal/resolve"
)

const header = `/* This is an include file used to define the list of ciphers clients should
 * advertise.  Before including it, you should define the CIPHER and XCIPHER
 * macros.
 *
 * This file was automatically generated by mozciphers.
 */
`

// Render writes the header comment once, then a guarded block for every
// record in order. A record without an OpenSSL equivalent is preceded by an
// annotation naming the hex code that failed to resolve; its #ifdef guard
// then tests the Firefox identifier, which normally is not defined, so the
// XCIPHER branch wins at compile time.
func Render(w io.Writer, records []resolve.Record) error {
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	for _, r := range records {
		if !r.Resolved {
			if _, err := fmt.Fprintf(w, "/* No openssl macro found for %s */\n", r.Hex); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "#ifdef %s\n    CIPHER(%s, %s)\n#else\n   XCIPHER(%s, %s)\n#endif\n",
			r.Macro, r.Hex, r.Macro, r.Hex, r.Suite)
		if err != nil {
			return err
		}
	}
	return nil
}
