package generate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mozciphers/internal/emit"
	"mozciphers/internal/firefox"
	"mozciphers/internal/openssl"
	"mozciphers/internal/resolve"
)

// Firefox-side inputs, relative to the source tree root. These paths are
// stable across Firefox releases; a miss here is fatal.
const (
	prefTableFile  = "security/manager/ssl/nsNSSComponent.cpp"
	suiteOrderFile = "security/nss/lib/ssl/ssl3con.c"
	staticPrefFile = "modules/libpref/init/StaticPrefList.yaml"
	protoFile      = "security/nss/lib/ssl/sslproto.h"
)

// Config names the two source trees and the streams a run writes to.
type Config struct {
	FirefoxRoot string
	OpenSSLRoot string
	Out         io.Writer // the generated include fragment
	Diag        io.Writer // one line per unparsable preference record
}

// Run executes the pipeline once. Identical inputs produce identical output.
// On error nothing has been written to cfg.Out.
func Run(cfg Config) error {
	prefSrc, err := readInput(cfg.FirefoxRoot, prefTableFile)
	if err != nil {
		return err
	}
	prefs, warnings := firefox.ParseCipherPrefs(prefSrc)
	for _, w := range warnings {
		fmt.Fprintf(cfg.Diag, "mozciphers: cannot parse cipher pref record: %s\n", w)
	}

	orderSrc, err := readInput(cfg.FirefoxRoot, suiteOrderFile)
	if err != nil {
		return err
	}
	order := firefox.ParseSuiteOrder(orderSrc)

	staticSrc, err := readInput(cfg.FirefoxRoot, staticPrefFile)
	if err != nil {
		return err
	}
	values, err := firefox.ParseStaticPrefs(staticSrc)
	if err != nil {
		return err
	}

	protoSrc, err := readInput(cfg.FirefoxRoot, protoFile)
	if err != nil {
		return err
	}
	codes := firefox.ParseDefines(protoSrc)

	macros, err := openssl.ParseHeaders(cfg.OpenSSLRoot)
	if err != nil {
		return err
	}

	records, err := resolve.Resolve(resolve.Inputs{
		Order:  order,
		Prefs:  prefs,
		Values: values,
		Codes:  codes,
		Macros: macros,
	})
	if err != nil {
		return err
	}
	return emit.Render(cfg.Out, records)
}

func readInput(root, rel string) (string, error) {
	b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rel, err)
	}
	return string(b), nil
}
