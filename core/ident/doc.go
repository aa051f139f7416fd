// Package ident validates object identifiers before they reach the ledgers.
//
// An identifier is a fixed-length string of hexadecimal characters, compared
// case-insensitively downstream. The length is configurable (24 by default) but
// is the same for every identifier accepted by a Validator.
package ident
