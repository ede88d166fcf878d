// Package firefox scrapes the Firefox-side cipher suite data: the
// sCipherPrefs table from nsNSSComponent.cpp, the NSS handshake ordering from
// ssl3con.c, the preference values from StaticPrefList.yaml, and the numeric
// suite codes from sslproto.h.
//
// Each scraper is a pure function from file text to an immutable map or
// slice. None of them touches the filesystem; callers read the files and
// decide how to classify missing keys.
package firefox
