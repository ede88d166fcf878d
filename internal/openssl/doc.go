// Package openssl scrapes cipher suite macros from an OpenSSL source tree.
//
// It builds two indices from the include/openssl headers: a hex-code index
// over the *_CK_* key macros, used to find the OpenSSL equivalent of a
// Firefox suite, and an unfiltered catalog of every macro seen, used to
// verify that a derived *_TXT_* name actually exists.
package openssl
