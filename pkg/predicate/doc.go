// Package predicate holds the pure, stateless checks that back every rule
// kind of the validator package.
//
// Each function takes a string (plus optional, kind specific options) and
// reports whether it satisfies the check. Nothing here allocates global state
// after package initialisation, so every function is safe for concurrent use.
//
// # Families
//
//   - text.go       – alphabet, ASCII, case, character width, multibyte
//   - format.go     – e-mail, URL, FQDN and IP addresses
//   - identifier.go – UUID, MongoDB ObjectID, ISBN, ISIN, base64, hex values
//   - numeric.go    – integers, floats, decimals, divisibility
//   - financial.go  – card numbers (Luhn) and currency amounts
//   - date.go       – ISO 8601 strings and lenient date parsing
//   - phone.go      – mobile phone numbers per locale
//
// Option structs are designed so that their zero value selects the common
// defaults; this lets schema files omit them entirely.
//
// # Usage
//
//	if !predicate.IsEmail(input, predicate.EmailOptions{}) {
//	    // reject
//	}
//
//	if predicate.IsUUID(id, 4) {
//	    // version 4 UUID
//	}
package predicate
