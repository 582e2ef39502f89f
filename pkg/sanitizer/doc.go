// Package sanitizer provides the string rewrites behind the validator's
// sanitizer kinds: trimming, case folding, white space and e-mail
// normalisation, HTML escaping and control character removal.
//
// Every function is pure and safe for concurrent use. Case folding uses
// golang.org/x/text/cases so that non-ASCII letters are handled the way
// Unicode defines, for example "straße" upper-cases to "STRASSE".
//
//	clean := sanitizer.NormalizeWhitespace(sanitizer.Trim(input, ""))
package sanitizer
