// Package request builds the canonical, signed representation of a Landscape
// API call. The remote service verifies an HMAC signature computed over a
// deterministic rendering of the request parameters, so canonicalization here
// must be byte-identical across runs for the same call.
package request

import (
	"sort"
	"strconv"
	"strings"
)

// Pair is a single key/value parameter of an API call.
type Pair struct {
	Key   string
	Value string
}

// Values holds the parameters of an API call. Scalar parameters are set once,
// list parameters are expanded into 1-based positional keys (Key.1, Key.2, …)
// preserving caller order. Ordering of insertion is otherwise irrelevant:
// Pairs and Encode always produce the sorted canonical form.
type Values struct {
	pairs []Pair
}

// NewValues creates an empty parameter set.
func NewValues() *Values {
	return &Values{}
}

// Set stores a scalar parameter, replacing any previous value for the key.
// Empty values are kept: the service distinguishes a present-but-empty
// parameter from an absent one.
func (v *Values) Set(key, value string) {
	for i := range v.pairs {
		if v.pairs[i].Key == key {
			v.pairs[i].Value = value
			return
		}
	}
	v.pairs = append(v.pairs, Pair{Key: key, Value: value})
}

// Add appends a parameter without replacing existing entries for the key.
func (v *Values) Add(key, value string) {
	v.pairs = append(v.pairs, Pair{Key: key, Value: value})
}

// SetList expands a list parameter into positional keys. The 1-based suffix
// follows the caller-provided order, which is how the service interprets the
// list. An empty list contributes no entries at all.
func (v *Values) SetList(key string, values []string) {
	for i, value := range values {
		v.Set(key+"."+strconv.Itoa(i+1), value)
	}
}

// Get returns the first value stored for key.
func (v *Values) Get(key string) (string, bool) {
	for _, p := range v.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Len returns the number of expanded parameter entries.
func (v *Values) Len() int {
	return len(v.pairs)
}

// Clone returns an independent copy of the parameter set.
func (v *Values) Clone() *Values {
	c := &Values{pairs: make([]Pair, len(v.pairs))}
	copy(c.pairs, v.pairs)
	return c
}

// Pairs returns the expanded parameters sorted bytewise by key, ties broken
// by value. The sort is what makes the canonical form independent of
// insertion order.
func (v *Values) Pairs() []Pair {
	sorted := make([]Pair, len(v.pairs))
	copy(sorted, v.pairs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Key != sorted[j].Key {
			return sorted[i].Key < sorted[j].Key
		}
		return sorted[i].Value < sorted[j].Value
	})
	return sorted
}

// Encode renders the canonical query string: sorted key=value pairs joined
// with '&', both sides percent-encoded with the strict RFC 3986 rules the
// signing protocol requires.
func (v *Values) Encode() string {
	pairs := v.Pairs()
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(EncodeComponent(p.Key))
		b.WriteByte('=')
		b.WriteString(EncodeComponent(p.Value))
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes a string leaving only RFC 3986 unreserved
// characters (alphanumerics and -_.~) unescaped. net/url escaping is too
// permissive for the signing protocol: the server encodes '+', '*' and
// friends, so the client must match byte for byte.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}
	return false
}
