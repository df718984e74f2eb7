package nested

import (
	"github.com/cybergodev/nested/internal"
)

// rootOf unwraps the pointer forms a caller may pass as root and returns the
// slot that replaces the root value, or nil when the root cannot be replaced
func rootOf(data any) (any, slot) {
	switch r := data.(type) {
	case *any:
		if r == nil {
			return nil, nil
		}
		return *r, func(v any) { *r = v }
	case *map[string]any:
		if r == nil {
			return nil, nil
		}
		return *r, func(v any) {
			if m, ok := v.(map[string]any); ok {
				*r = m
			}
		}
	default:
		return data, nil
	}
}

// resolveForRead walks every token from root without modifying anything
func (p *Processor) resolveForRead(root any, tokens Path) (any, error) {
	current, _ := rootOf(root)
	for _, tok := range tokens {
		next, err := p.readStep(classify(current), tok)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// readStep resolves one token against a classified node
func (p *Processor) readStep(c container, tok Token) (any, error) {
	switch c.kind {
	case kindMapping:
		value, ok := c.m.lookup(tok)
		if !ok {
			return nil, newMissingKeyError(tok)
		}
		return value, nil
	case kindSequence, kindImmutable:
		index, err := p.readIndex(c, tok)
		if err != nil {
			return nil, err
		}
		return c.at(index), nil
	default:
		return nil, newNonNavigableError(c.value)
	}
}

// readIndex resolves a token to an existing position. Negative indices count
// from the end; nothing outside [0, length) is accepted.
func (p *Processor) readIndex(c container, tok Token) (int, error) {
	index, ok := tok.sequenceIndex()
	if !ok {
		return 0, newPathError(ErrCodeInvalidIndex, "expected numeric index, got '%s'", tok)
	}
	if internal.ExceedsLimit(index, p.config.MaxListSize) {
		return 0, newPathError(ErrCodeInvalidIndex, "index %s exceeds maximum list size %d", tok, p.config.MaxListSize)
	}

	length := c.size()
	resolved := internal.NormalizeIndex(index, length)
	if resolved < 0 || resolved >= length {
		return 0, newPathError(ErrCodeInvalidIndex, "index %s out of bounds for %s of length %d", tok, c.kind, length)
	}
	return resolved, nil
}

// at returns the child at a resolved position of a sequence kind
func (c container) at(i int) any {
	if c.kind == kindSequence {
		return c.seq.items[i]
	}
	return c.imm.at(i)
}
