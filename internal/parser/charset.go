package parser

import (
	"io"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader converts body to UTF-8 before it reaches goquery. The site
// serves Hebrew pages in windows-1255 as often as in UTF-8.
//
// The encoding is taken from contentType when it names a charset, then from
// a BOM or <meta> declaration, then from heuristics. UTF-8 input passes through.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	return charset.NewReader(body, contentType)
}
