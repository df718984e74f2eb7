package nested

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cybergodev/nested/internal"
)

// TokenKind distinguishes mapping keys from sequence indices
type TokenKind uint8

const (
	KeyToken TokenKind = iota
	IndexToken
)

// String returns the string representation of TokenKind
func (k TokenKind) String() string {
	switch k {
	case KeyToken:
		return "key"
	case IndexToken:
		return "index"
	default:
		return "unknown"
	}
}

// Token is a single path segment: a mapping key or a sequence index.
type Token struct {
	Kind  TokenKind
	Key   any // Used for KeyToken
	Index int // Used for IndexToken

	raw string // Source text of a string-form index, e.g. "007"
}

// Key creates a key token
func Key(key any) Token {
	return Token{Kind: KeyToken, Key: key}
}

// Index creates an index token
func Index(index int) Token {
	return Token{Kind: IndexToken, Index: index}
}

// IsIndex returns true for index tokens
func (t Token) IsIndex() bool { return t.Kind == IndexToken }

// Value returns the key, or the index as an int
func (t Token) Value() any {
	if t.Kind == IndexToken {
		return t.Index
	}
	return t.Key
}

// String returns the token as it appears in a dotted path
func (t Token) String() string {
	if t.Kind == IndexToken {
		if t.raw != "" {
			return t.raw
		}
		return strconv.Itoa(t.Index)
	}
	return internal.KeyString(t.Key)
}

// sequenceIndex returns the position a token addresses in a sequence.
// Key tokens holding an integer-shaped string are accepted as positions.
func (t Token) sequenceIndex() (int, bool) {
	if t.Kind == IndexToken {
		return t.Index, true
	}
	if s, ok := t.Key.(string); ok {
		return internal.ParseArrayIndex(s)
	}
	return 0, false
}

// Path is a normalized, ordered sequence of tokens
type Path []Token

// Len returns the number of tokens
func (p Path) Len() int { return len(p) }

// String joins the tokens with the path delimiter
func (p Path) String() string {
	var sb strings.Builder
	for i, tok := range p {
		if i > 0 {
			sb.WriteString(PathDelimiter)
		}
		sb.WriteString(tok.String())
	}
	return sb.String()
}

// Values returns the tokens as plain keys and int indices
func (p Path) Values() []any {
	values := make([]any, len(p))
	for i, tok := range p {
		values[i] = tok.Value()
	}
	return values
}

// normalizePath converts a string or sequence path into tokens.
// maxDepth bounds the token count and is checked before segments are parsed.
func normalizePath(path any, maxDepth int) (Path, error) {
	switch p := path.(type) {
	case string:
		return parseStringPath(p, maxDepth)
	case Path:
		return normalizeTokens(p, maxDepth)
	case []Token:
		return normalizeTokens(p, maxDepth)
	case []string:
		items := make([]any, len(p))
		for i, s := range p {
			items[i] = s
		}
		return normalizeSequence(items, maxDepth)
	case []int:
		items := make([]any, len(p))
		for i, n := range p {
			items[i] = n
		}
		return normalizeSequence(items, maxDepth)
	case []any:
		return normalizeSequence(p, maxDepth)
	default:
		return nil, newPathError(ErrCodeInvalidPath, "path must be a string or a sequence of keys, got %s", typeName(path))
	}
}

func parseStringPath(path string, maxDepth int) (Path, error) {
	if path == "" {
		return nil, newPathError(ErrCodeEmptyPath, "path cannot be empty")
	}

	if count := strings.Count(path, PathDelimiter) + 1; count > maxDepth {
		return nil, newPathError(ErrCodePathTooDeep, "path depth %d exceeds maximum of %d", count, maxDepth)
	}

	segments := strings.Split(path, PathDelimiter)
	tokens := make(Path, 0, len(segments))
	for i, segment := range segments {
		if segment == "" {
			return nil, newPathError(ErrCodeInvalidPath, "path cannot contain empty segments (segment %d)", i)
		}
		if index, ok := internal.ParseArrayIndex(segment); ok {
			tokens = append(tokens, Token{Kind: IndexToken, Index: index, raw: segment})
			continue
		}
		tokens = append(tokens, Key(segment))
	}
	return tokens, nil
}

func normalizeSequence(items []any, maxDepth int) (Path, error) {
	if err := checkSequenceLength(len(items), maxDepth); err != nil {
		return nil, err
	}

	tokens := make(Path, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			if v == "" {
				return nil, newPathError(ErrCodeInvalidPath, "path cannot contain empty keys (position %d)", i)
			}
			tokens = append(tokens, Key(v))
		case Token:
			if err := validateToken(v, i); err != nil {
				return nil, err
			}
			tokens = append(tokens, v)
		default:
			index, ok := internal.ToInt(item)
			if !ok {
				return nil, newPathError(ErrCodeInvalidPath, "path element %d must be a string or integer, got %s", i, typeName(item))
			}
			tokens = append(tokens, Index(index))
		}
	}
	return tokens, nil
}

func normalizeTokens(tokens []Token, maxDepth int) (Path, error) {
	if err := checkSequenceLength(len(tokens), maxDepth); err != nil {
		return nil, err
	}
	for i, tok := range tokens {
		if err := validateToken(tok, i); err != nil {
			return nil, err
		}
	}
	out := make(Path, len(tokens))
	copy(out, tokens)
	return out, nil
}

func checkSequenceLength(n, maxDepth int) error {
	if n == 0 {
		return newPathError(ErrCodeEmptyPath, "path cannot be empty")
	}
	if n > maxDepth {
		return newPathError(ErrCodePathTooDeep, "path depth %d exceeds maximum of %d", n, maxDepth)
	}
	return nil
}

func validateToken(tok Token, position int) error {
	switch tok.Kind {
	case IndexToken:
		return nil
	case KeyToken:
		if !isScalarKey(tok.Key) {
			return newPathError(ErrCodeInvalidPath, "path key %d must be a scalar, got %s", position, typeName(tok.Key))
		}
		if s, ok := tok.Key.(string); ok && s == "" {
			return newPathError(ErrCodeInvalidPath, "path cannot contain empty keys (position %d)", position)
		}
		return nil
	default:
		return newPathError(ErrCodeInvalidPath, "path token %d has unknown kind %d", position, tok.Kind)
	}
}

func isScalarKey(k any) bool {
	switch k.(type) {
	case string, bool, float32, float64:
		return true
	}
	_, ok := internal.ToInt(k)
	return ok
}

// describePath renders a caller-supplied path for error messages and logs
func describePath(path any) string {
	switch p := path.(type) {
	case string:
		return p
	case Path:
		return p.String()
	case []Token:
		return Path(p).String()
	case []string:
		return strings.Join(p, PathDelimiter)
	case []any, []int:
		return fmt.Sprint(p)
	default:
		return ""
	}
}

// typeName returns a short type description for error messages
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
