package sharelink

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	lzstring "github.com/daku10/go-lz-string"

	"billfold/internal/invoice"
)

// Param is the query parameter that carries an encoded document.
const Param = "data"

// Encode serializes the document to canonical JSON and compresses it into
// a token safe for direct inclusion in a URL query parameter. No further
// percent-encoding is needed.
func Encode(doc invoice.Document) (string, error) {
	if doc.Items == nil {
		doc.Items = []invoice.Item{}
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	token, err := lzstring.CompressToEncodedURIComponent(string(payload))
	if err != nil {
		return "", fmt.Errorf("compress document: %w", err)
	}
	return token, nil
}

// Decode inverts Encode. It fails on an empty token, a token the
// compression cannot invert, or recovered text that is not a valid
// document encoding. It never panics outward, whatever the input; callers
// keep their current state on error.
func Decode(token string) (doc invoice.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = invoice.Document{}
			err = fmt.Errorf("decode token: %v", r)
		}
	}()

	token = strings.TrimSpace(token)
	if token == "" {
		return invoice.Document{}, fmt.Errorf("empty token")
	}
	// Query parsing turns '+' into ' '; lz-string tokens may contain '+'.
	token = strings.ReplaceAll(token, " ", "+")

	payload, err := lzstring.DecompressFromEncodedURIComponent(token)
	if err != nil {
		return invoice.Document{}, fmt.Errorf("decompress token: %w", err)
	}
	if strings.TrimSpace(payload) == "" {
		return invoice.Document{}, fmt.Errorf("decompress token: empty result")
	}
	var out invoice.Document
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return invoice.Document{}, fmt.Errorf("parse document: %w", err)
	}
	return out, nil
}

// BuildURL composes base (stripped of any pre-existing query or fragment)
// with a single data parameter carrying the encoded document.
func BuildURL(base string, doc invoice.Document) (string, error) {
	token, err := Encode(doc)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	// The token is already URI-safe; appending it raw avoids re-encoding
	// characters from the lz-string alphabet.
	return u.String() + "?" + Param + "=" + token, nil
}

// ExtractToken pulls the data parameter out of a share link. A non-empty
// argument that does not look like a URL is treated as a bare token, so
// users can paste either form.
func ExtractToken(location string) (string, bool) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return "", false
	}
	if u, err := url.Parse(trimmed); err == nil {
		if tok := u.Query().Get(Param); tok != "" {
			return tok, true
		}
		if u.Scheme != "" || strings.ContainsAny(trimmed, "/?&=") {
			return "", false
		}
	}
	return trimmed, true
}

// StripToken removes the data parameter from a share link, leaving the
// rest of the location untouched. Used when leaving view mode so the
// remembered location no longer re-enters it.
func StripToken(location string) string {
	u, err := url.Parse(location)
	if err != nil {
		return location
	}
	q := u.Query()
	if _, ok := q[Param]; !ok {
		return location
	}
	q.Del(Param)
	u.RawQuery = q.Encode()
	return u.String()
}
