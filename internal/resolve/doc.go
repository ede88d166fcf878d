// Package resolve correlates the scraped Firefox and OpenSSL tables into the
// final ordered cipher list.
//
// It walks NSS's suite order, keeps the suites with a truthy preference, and
// maps each surviving suite's numeric code to an OpenSSL *_TXT_* macro where
// one exists, falling back to the Firefox identifier where it does not.
package resolve
