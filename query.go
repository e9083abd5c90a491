package gmaps

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// CredentialKey is the query parameter that carries the API key.
const CredentialKey = "key"

// Field is one declared query parameter.
type Field struct {
	Key string
	// Value is the unescaped wire form.
	Value    string
	Present  bool
	Required bool
	// Validate runs only when the field is present.
	Validate func() error
}

// Query collects declared fields and the rules between them, and renders
// them in a canonical order. The zero value is not usable; call NewQuery.
type Query struct {
	fields     map[string]*Field
	exclusive  [][]string
	atLeastOne [][]string
	rules      []func() error
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{fields: make(map[string]*Field)}
}

func (q *Query) field(key string) *Field {
	f, ok := q.fields[key]
	if !ok {
		f = &Field{Key: key}
		q.fields[key] = f
	}
	return f
}

// Add declares f, replacing any earlier declaration of the same key.
func (q *Query) Add(f Field) *Query {
	cp := f
	q.fields[f.Key] = &cp
	return q
}

// Set declares a present field.
func (q *Query) Set(key, value string) *Query {
	f := q.field(key)
	f.Value = value
	f.Present = true
	return q
}

// SetEnum declares key from an enumerated value. A value outside its
// vocabulary is reported when the query is validated.
func (q *Query) SetEnum(key string, v interface{ Token() (string, bool) }) *Query {
	token, ok := v.Token()
	q.Set(key, token)
	if !ok {
		q.Check(key, func() error { return fmt.Errorf("unsupported value %v", v) })
	}
	return q
}

// SetIf declares key with value() when cond holds. value is not called
// otherwise.
func (q *Query) SetIf(cond bool, key string, value func() string) *Query {
	if cond {
		q.Set(key, value())
	}
	return q
}

// Require marks key as mandatory.
func (q *Query) Require(key string) *Query {
	q.field(key).Required = true
	return q
}

// Check attaches a validator to key.
func (q *Query) Check(key string, fn func() error) *Query {
	q.field(key).Validate = fn
	return q
}

// Exclusive declares that at most one of keys may be present.
func (q *Query) Exclusive(keys ...string) *Query {
	q.exclusive = append(q.exclusive, keys)
	return q
}

// AtLeastOne declares that one or more of keys must be present.
func (q *Query) AtLeastOne(keys ...string) *Query {
	q.atLeastOne = append(q.atLeastOne, keys)
	return q
}

// Rule adds a cross-field check. A non-*Error result is reported as a
// validation error.
func (q *Query) Rule(fn func() error) *Query {
	q.rules = append(q.rules, fn)
	return q
}

// Has reports whether key is present.
func (q *Query) Has(key string) bool {
	f, ok := q.fields[key]
	return ok && f.Present
}

// Get returns the unescaped value of a present key.
func (q *Query) Get(key string) (string, bool) {
	f, ok := q.fields[key]
	if !ok || !f.Present {
		return "", false
	}
	return f.Value, true
}

func (q *Query) sortedKeys() []string {
	keys := make([]string, 0, len(q.fields))
	for k := range q.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate applies required, per-field, exclusion and cross-field rules in
// that order and returns the first violation.
func (q *Query) Validate() error {
	keys := q.sortedKeys()

	for _, k := range keys {
		f := q.fields[k]
		if f.Key == CredentialKey {
			return validationError("%q is reserved for the credential", CredentialKey)
		}
		if f.Required && !f.Present {
			return validationError("missing required field %q", k)
		}
	}
	for _, k := range keys {
		f := q.fields[k]
		if !f.Present || f.Validate == nil {
			continue
		}
		if err := f.Validate(); err != nil {
			return validationError("field %q: %s", k, messageOf(err))
		}
	}
	for _, group := range q.exclusive {
		var present []string
		for _, k := range group {
			if q.Has(k) {
				present = append(present, k)
			}
		}
		if len(present) > 1 {
			return validationError("fields %s are mutually exclusive", strings.Join(present, " and "))
		}
	}
	for _, group := range q.atLeastOne {
		found := false
		for _, k := range group {
			if q.Has(k) {
				found = true
				break
			}
		}
		if !found {
			return validationError("one of %s is required", strings.Join(group, ", "))
		}
	}
	for _, rule := range q.rules {
		if err := rule(); err != nil {
			if _, ok := AsError(err); ok {
				return err
			}
			return validationError("%s", err.Error())
		}
	}
	return nil
}

// Encode validates the query and renders it as a URL query string: present
// fields sorted by key, then the credential. Encoding is deterministic:
// equal field sets always produce identical output.
func (q *Query) Encode(credential string) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}
	s := q.canonical()
	if credential != "" {
		if s != "" {
			s += "&"
		}
		s += CredentialKey + "=" + Escape(credential)
	}
	return s, nil
}

// canonical renders present fields without the credential. It doubles as
// the cache and de-duplication key.
func (q *Query) canonical() string {
	var b strings.Builder
	for _, k := range q.sortedKeys() {
		f := q.fields[k]
		if !f.Present {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Escape(k))
		b.WriteByte('=')
		b.WriteString(Escape(f.Value))
	}
	return b.String()
}

// Escape percent-encodes s per RFC 3986: only unreserved characters
// (ALPHA, DIGIT, '-', '.', '_', '~') are left as is, and space becomes %20.
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	const hex = "0123456789ABCDEF"
	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', hex[c>>4], hex[c&15])
	}
	return string(buf)
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

// JoinPipe joins list values with "|", used for locations and flag lists.
func JoinPipe(parts ...string) string {
	return strings.Join(parts, "|")
}

// JoinComma joins simple list values with ",".
func JoinComma(parts ...string) string {
	return strings.Join(parts, ",")
}

// Unix renders t as integer seconds since the epoch.
func Unix(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// Bool renders b as "true" or "false".
func Bool(b bool) string {
	return strconv.FormatBool(b)
}

// SetEnumList declares key as the "|"-joined tokens of values. Nothing is
// declared for an empty list.
func SetEnumList[T interface{ Token() (string, bool) }](q *Query, key string, values []T) *Query {
	if len(values) == 0 {
		return q
	}
	tokens := make([]string, 0, len(values))
	var bad []T
	for _, v := range values {
		token, ok := v.Token()
		if !ok {
			bad = append(bad, v)
			continue
		}
		tokens = append(tokens, token)
	}
	q.Set(key, JoinPipe(tokens...))
	if len(bad) > 0 {
		q.Check(key, func() error { return fmt.Errorf("unsupported value %v", bad[0]) })
	}
	return q
}
