// Package emit renders the resolved cipher list as a conditionally compiled
// include fragment: a fixed header comment, then one guarded CIPHER/XCIPHER
// pair per suite.
package emit
