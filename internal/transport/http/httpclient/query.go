package httpclient

import (
	"net/url"
	"strconv"
	"strings"
)

// Query is an ordered query string. Keys appear in the order they are added
// and values that are empty, zero or false are skipped, so callers can add
// every recognised option unconditionally.
type Query struct {
	pairs []string
}

// Set adds key=value without component encoding. Use it for ids, enums and
// dates. Only characters that cannot appear in a request line are escaped,
// the same set a browser escapes on its own.
func (q *Query) Set(key, value string) {
	if value == "" {
		return
	}
	q.pairs = append(q.pairs, key+"="+unsafeReplacer.Replace(value))
}

// Search adds key=value with value percent-encoded. Use it for free text.
func (q *Query) Search(key, value string) {
	if value == "" {
		return
	}
	q.pairs = append(q.pairs, key+"="+EscapeComponent(value))
}

func (q *Query) Int(key string, value int) {
	if value == 0 {
		return
	}
	q.pairs = append(q.pairs, key+"="+strconv.Itoa(value))
}

func (q *Query) Bool(key string, value bool) {
	if !value {
		return
	}
	q.pairs = append(q.pairs, key+"=true")
}

// Strings adds one key=value pair per non-empty value. Every array filter
// is encoded this way.
func (q *Query) Strings(key string, values []string) {
	for _, v := range values {
		q.Set(key, v)
	}
}

func (q Query) Len() int {
	return len(q.pairs)
}

// String returns "" for an empty query, otherwise "?k=v&k=v".
func (q Query) String() string {
	if len(q.pairs) == 0 {
		return ""
	}
	return "?" + strings.Join(q.pairs, "&")
}

var unsafeReplacer = strings.NewReplacer(
	" ", "%20",
	`"`, "%22",
	"<", "%3C",
	">", "%3E",
	"`", "%60",
	"#", "%23",
)

// EscapeComponent percent-encodes s for use inside a query value, with
// spaces as %20.
func EscapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// PathSegment escapes an id for use as one path segment.
func PathSegment(s string) string {
	return url.PathEscape(s)
}
