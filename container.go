package nested

import (
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/cybergodev/nested/internal"
)

// Tuple is an immutable ordered sequence. It can be read by index but any
// write, append or delete through it fails with ErrCodeImmutableContainer.
// Go array values ([N]T) are treated the same way.
type Tuple []any

// OrderedMap is the insertion-ordered mapping kind understood by the engine
type OrderedMap = orderedmap.OrderedMap[string, any]

// NewOrderedMap creates an empty insertion-ordered mapping
func NewOrderedMap() *OrderedMap {
	return orderedmap.New[string, any]()
}

// containerKind is the closed set of node classes
type containerKind uint8

const (
	kindLeaf containerKind = iota
	kindMapping
	kindSequence
	kindImmutable
)

// String returns the string representation of containerKind
func (k containerKind) String() string {
	switch k {
	case kindMapping:
		return "mapping"
	case kindSequence:
		return "sequence"
	case kindImmutable:
		return "immutable sequence"
	default:
		return "leaf"
	}
}

// mapping is implemented by every supported map shape
type mapping interface {
	lookup(tok Token) (any, bool)
	store(tok Token, value any)
	remove(tok Token) (any, bool)
	size() int
	isNil() bool
	// each visits entries in natural order until fn returns false
	each(fn func(key any, value any) bool)
}

// sequence is a mutable []any. ptr is set when the caller passed *[]any,
// which lets the sequence change length in place.
type sequence struct {
	items []any
	ptr   *[]any
}

// immutableSequence is implemented by Tuple and Go arrays
type immutableSequence interface {
	size() int
	at(i int) any
}

// container is a classified node
type container struct {
	kind  containerKind
	value any
	m     mapping
	seq   *sequence
	imm   immutableSequence
}

// classify decides the node class once per visit
func classify(v any) container {
	switch n := v.(type) {
	case nil:
		return container{kind: kindLeaf}
	case map[string]any:
		return container{kind: kindMapping, value: v, m: stringMap(n)}
	case map[any]any:
		return container{kind: kindMapping, value: v, m: anyMap(n)}
	case *OrderedMap:
		if n == nil {
			return container{kind: kindLeaf, value: v}
		}
		return container{kind: kindMapping, value: v, m: orderedMapping{n}}
	case []any:
		return container{kind: kindSequence, value: v, seq: &sequence{items: n}}
	case *[]any:
		if n == nil {
			return container{kind: kindLeaf, value: v}
		}
		return container{kind: kindSequence, value: v, seq: &sequence{items: *n, ptr: n}}
	case Tuple:
		return container{kind: kindImmutable, value: v, imm: tupleView(n)}
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Array {
		return container{kind: kindImmutable, value: v, imm: arrayView{rv}}
	}
	return container{kind: kindLeaf, value: v}
}

// each visits the direct children of a container in natural order
func (c container) each(fn func(tok Token, child any) bool) {
	switch c.kind {
	case kindMapping:
		c.m.each(func(key, value any) bool {
			return fn(Key(key), value)
		})
	case kindSequence:
		for i, item := range c.seq.items {
			if !fn(Index(i), item) {
				return
			}
		}
	case kindImmutable:
		for i := 0; i < c.imm.size(); i++ {
			if !fn(Index(i), c.imm.at(i)) {
				return
			}
		}
	}
}

// size returns the number of direct children
func (c container) size() int {
	switch c.kind {
	case kindMapping:
		return c.m.size()
	case kindSequence:
		return len(c.seq.items)
	case kindImmutable:
		return c.imm.size()
	default:
		return 0
	}
}

// slot writes a replacement for the current node into its parent
type slot func(value any)

// fabricate creates the container the rule containerFor selects
func (p *Processor) fabricate(next Token) any {
	if containerFor(next) == kindSequence {
		return []any{}
	}
	if p.config.OrderedMappings {
		return NewOrderedMap()
	}
	return map[string]any{}
}

// containerFor is the fabrication lookahead: the token that will address the
// new container decides its kind. Index tokens get a sequence, keys a mapping.
func containerFor(next Token) containerKind {
	if next.IsIndex() {
		return kindSequence
	}
	return kindMapping
}

// stringMap is map[string]any, the shape produced by JSON and YAML decoders
type stringMap map[string]any

func (m stringMap) lookup(tok Token) (any, bool) {
	v, ok := m[tok.String()]
	return v, ok
}

func (m stringMap) store(tok Token, value any) { m[tok.String()] = value }

func (m stringMap) remove(tok Token) (any, bool) {
	key := tok.String()
	v, ok := m[key]
	if ok {
		delete(m, key)
	}
	return v, ok
}

func (m stringMap) size() int   { return len(m) }
func (m stringMap) isNil() bool { return m == nil }

func (m stringMap) each(fn func(key any, value any) bool) {
	for _, k := range internal.SortedStringKeys(m) {
		if !fn(k, m[k]) {
			return
		}
	}
}

// anyMap is map[any]any. Index tokens match integer keys first, then their text.
type anyMap map[any]any

func (m anyMap) candidates(tok Token) []any {
	if tok.IsIndex() {
		return []any{tok.Index, tok.String()}
	}
	return []any{tok.Key}
}

func (m anyMap) lookup(tok Token) (any, bool) {
	for _, k := range m.candidates(tok) {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func (m anyMap) store(tok Token, value any) {
	keys := m.candidates(tok)
	for _, k := range keys {
		if _, ok := m[k]; ok {
			m[k] = value
			return
		}
	}
	m[keys[0]] = value
}

func (m anyMap) remove(tok Token) (any, bool) {
	for _, k := range m.candidates(tok) {
		if v, ok := m[k]; ok {
			delete(m, k)
			return v, true
		}
	}
	return nil, false
}

func (m anyMap) size() int   { return len(m) }
func (m anyMap) isNil() bool { return m == nil }

func (m anyMap) each(fn func(key any, value any) bool) {
	for _, k := range internal.SortedAnyKeys(m) {
		if !fn(k, m[k]) {
			return
		}
	}
}

// orderedMapping iterates in insertion order
type orderedMapping struct {
	om *OrderedMap
}

func (m orderedMapping) lookup(tok Token) (any, bool) { return m.om.Get(tok.String()) }

func (m orderedMapping) store(tok Token, value any) { m.om.Set(tok.String(), value) }

func (m orderedMapping) remove(tok Token) (any, bool) { return m.om.Delete(tok.String()) }

func (m orderedMapping) size() int   { return m.om.Len() }
func (m orderedMapping) isNil() bool { return false }

func (m orderedMapping) each(fn func(key any, value any) bool) {
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

type tupleView Tuple

func (t tupleView) size() int    { return len(t) }
func (t tupleView) at(i int) any { return t[i] }

type arrayView struct {
	rv reflect.Value
}

func (a arrayView) size() int    { return a.rv.Len() }
func (a arrayView) at(i int) any { return a.rv.Index(i).Interface() }
