// Package htmltext derives search-indexable plain text from stored HTML bodies
package htmltext

import (
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ugc is safe for concurrent use once built
var ugc = bluemonday.UGCPolicy()

// ToPlainText decodes entities, strips markup and turns every '\n' into a space
//
// Decoding runs first, so entity-encoded angle brackets that form tags are
// stripped as markup. Text is copied raw after decoding; it is never decoded
// twice. Comments, doctypes and the content of script and style elements are
// dropped. Other whitespace is kept and the result is not trimmed.
// Malformed HTML degrades to best-effort text: tags that name no HTML element
// and tags left open at the end of input are kept verbatim.
func ToPlainText(in string) string {
	decoded := html.UnescapeString(in)

	var b strings.Builder
	b.Grow(len(decoded))

	z := html.NewTokenizer(strings.NewReader(decoded))
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// a tag cut off by the end of input is text, as in "i<n"
			if skip == 0 && z.Err() == io.EOF {
				b.Write(z.Raw())
			}
			return strings.ReplaceAll(b.String(), "\n", " ")
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Raw())
			}
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			// TagName lowercases the buffer in place, so keep the raw bytes first
			raw := append([]byte(nil), z.Raw()...)
			name, _ := z.TagName()
			a := atom.Lookup(name)
			switch {
			case a == 0:
				// not an HTML element: code such as "i<n;i++>" stays text
				if skip == 0 {
					b.Write(raw)
				}
			case a == atom.Script || a == atom.Style:
				if tt == html.StartTagToken {
					skip++
				} else if tt == html.EndTagToken && skip > 0 {
					skip--
				}
			}
		}
	}
}

// Sanitize applies the user-generated-content policy to submitted HTML
// Scripts, event handlers and unsafe URLs are removed; formatting survives
func Sanitize(in string) string {
	return ugc.Sanitize(in)
}
