// Package enum provides immutable bidirectional lookup tables between API
// string tokens and typed Go enumerations.
//
// A Table is built once, normally in a package-level var, and is safe for
// concurrent use because it is never mutated after construction.
package enum

import "fmt"

// Pair binds a wire token to its typed variant.
type Pair[T comparable] struct {
	Token   string
	Variant T
}

// P is shorthand for building a Pair.
func P[T comparable](token string, variant T) Pair[T] {
	return Pair[T]{Token: token, Variant: variant}
}

// Decoded is the result of a lenient decode. Raw always holds the token that
// was decoded, so unrecognized input survives for diagnostics.
type Decoded[T comparable] struct {
	Value T
	Raw   string
	Known bool
}

// String returns the raw token that produced the value.
func (d Decoded[T]) String() string {
	return d.Raw
}

// Table maps tokens to variants and back in constant time.
type Table[T comparable] struct {
	name      string
	fallback  T
	byToken   map[string]T
	byVariant map[T]string
	order     []T
}

// New builds a table from pairs. Decoding an unknown token yields fallback.
// New panics on duplicate tokens or variants, or when fallback is also a
// declared variant, since both indicate a broken vocabulary.
func New[T comparable](name string, fallback T, pairs ...Pair[T]) *Table[T] {
	t := &Table[T]{
		name:      name,
		fallback:  fallback,
		byToken:   make(map[string]T, len(pairs)),
		byVariant: make(map[T]string, len(pairs)),
		order:     make([]T, 0, len(pairs)),
	}
	for _, p := range pairs {
		if p.Variant == fallback {
			panic(fmt.Sprintf("enum %s: fallback variant bound to token %q", name, p.Token))
		}
		if _, dup := t.byToken[p.Token]; dup {
			panic(fmt.Sprintf("enum %s: duplicate token %q", name, p.Token))
		}
		if _, dup := t.byVariant[p.Variant]; dup {
			panic(fmt.Sprintf("enum %s: duplicate variant for token %q", name, p.Token))
		}
		t.byToken[p.Token] = p.Variant
		t.byVariant[p.Variant] = p.Token
		t.order = append(t.order, p.Variant)
	}
	return t
}

// Name returns the vocabulary name used in error messages.
func (t *Table[T]) Name() string {
	return t.name
}

// Decode never fails: unknown tokens map to the fallback variant.
func (t *Table[T]) Decode(token string) Decoded[T] {
	if v, ok := t.byToken[token]; ok {
		return Decoded[T]{Value: v, Raw: token, Known: true}
	}
	return Decoded[T]{Value: t.fallback, Raw: token}
}

// Lookup is the strict form of Decode.
func (t *Table[T]) Lookup(token string) (T, bool) {
	v, ok := t.byToken[token]
	return v, ok
}

// Encode returns the token for v. It reports false for the fallback variant
// and for values outside the vocabulary.
func (t *Table[T]) Encode(v T) (string, bool) {
	s, ok := t.byVariant[v]
	return s, ok
}

// Fallback returns the variant used for unknown tokens.
func (t *Table[T]) Fallback() T {
	return t.fallback
}

// Variants returns every declared variant in declaration order.
func (t *Table[T]) Variants() []T {
	out := make([]T, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of declared variants.
func (t *Table[T]) Len() int {
	return len(t.order)
}

// Text encodes v, falling back to the name-prefixed numeric form for values
// outside the vocabulary. It is meant for String methods, so the fallback
// must not format v through its own String method.
func (t *Table[T]) Text(v T) string {
	if s, ok := t.byVariant[v]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", t.name, v)
}
