// Package sharelink converts invoice documents to and from compact
// URL-embeddable tokens.
//
// The link itself is the database: a token carries the entire document
// (header fields, every item, identifiers included), which is what makes
// sharing work with no backend at all. The cost is that URL length grows
// with item count, bounding the tool to invoices of tens of items.
//
// A document is serialized to JSON and compressed with lz-string's
// URI-component variant, producing characters that can sit in a query
// parameter without percent-encoding. Decoding is strictly best-effort:
// any malformed, truncated or foreign input yields an error, never a
// panic, and callers fall back to their current document.
//
// Encode is not required to be byte-stable across calls; the contract is
// that Decode(Encode(d)) is structurally equal to d for every reachable
// document.
package sharelink
