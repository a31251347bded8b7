// Package dictionary loads, encodes, and queries the word list a swipe
// gesture is matched against: a flat sequence of (word, frequency, flags)
// entries behind a small bit-exact binary format, plus the linear-scan
// queries the recognition pipeline's candidate filter needs.
//
// The wire format (see Decode/Encode) is fixed by an external binding
// contract, not by convenience: every multi-byte integer is little-endian,
// the header is exactly 32 bytes, and words are length-prefixed rather than
// delimited. Nothing in this package treats that layout as negotiable.
package dictionary
