// Package generate wires the scrapers, the resolver and the emitter into a
// single run over a Firefox tree and an OpenSSL tree.
//
// It owns the knowledge of where each input lives inside the two trees and
// the error classification: a missing Firefox input aborts before anything is
// resolved, unparsable preference records are reported to the diagnostic
// stream and skipped, and nothing is written to the output stream unless the
// whole list resolves.
package generate
