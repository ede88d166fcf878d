// Package commands defines the mozciphers CLI.
//
// mozciphers takes the root of a Firefox source tree and the root of an
// OpenSSL source tree and writes to stdout an include fragment listing the
// cipher suites a TLS client should advertise: Firefox's suite order,
// filtered to the suites its preferences enable, named by the equivalent
// OpenSSL macro where one exists.
package commands
