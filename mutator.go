package nested

import (
	"github.com/cybergodev/nested/internal"
)

// setAt writes value at tokens. With create, missing or scalar intermediates
// are replaced by fabricated containers chosen by containerFor.
func (p *Processor) setAt(root any, tokens Path, value any, create bool) error {
	current, parent := rootOf(root)
	if create && parent != nil && classify(current).kind == kindLeaf {
		current = p.fabricate(tokens[0])
		parent(current)
	}

	last := len(tokens) - 1
	for i, tok := range tokens[:last] {
		next := tokens[i+1]
		c := classify(current)

		var child any
		var childSlot slot

		switch c.kind {
		case kindMapping:
			m, err := writableMapping(c, parent)
			if err != nil {
				return err
			}
			v, ok := m.lookup(tok)
			if !ok {
				if !create {
					return newMissingKeyError(tok)
				}
				v = p.fabricate(next)
				m.store(tok, v)
			}
			key := tok
			child, childSlot = v, func(nv any) { m.store(key, nv) }

		case kindSequence:
			index, appends, err := p.writeIndex(c, tok)
			if err != nil {
				return err
			}
			if appends {
				if !create {
					return newPathError(ErrCodeInvalidIndex, "index %s out of bounds for sequence of length %d", tok, len(c.seq.items))
				}
				if err := c.seq.checkResizable(parent, kindLeaf); err != nil {
					return err
				}
				if err := c.seq.resize(append(c.seq.items, p.fabricate(next)), parent, kindLeaf); err != nil {
					return err
				}
			}
			items := c.seq.items
			child, childSlot = items[index], func(nv any) { items[index] = nv }

		case kindImmutable:
			return newImmutableError(c.value)

		default:
			return newNonNavigableError(c.value)
		}

		if create && classify(child).kind == kindLeaf {
			child = p.fabricate(next)
			childSlot(child)
		}
		current, parent = child, childSlot
	}

	return p.writeFinal(classify(current), parent, tokens[last], value)
}

// writeFinal performs the last step of a set
func (p *Processor) writeFinal(c container, parent slot, tok Token, value any) error {
	switch c.kind {
	case kindMapping:
		m, err := writableMapping(c, parent)
		if err != nil {
			return err
		}
		m.store(tok, value)
		return nil

	case kindSequence:
		index, appends, err := p.writeIndex(c, tok)
		if err != nil {
			return err
		}
		if appends {
			if err := c.seq.checkResizable(parent, kindLeaf); err != nil {
				return err
			}
			return c.seq.resize(append(c.seq.items, value), parent, kindLeaf)
		}
		c.seq.items[index] = value
		return nil

	case kindImmutable:
		return newImmutableError(c.value)

	default:
		return newNonNavigableError(c.value)
	}
}

// writeIndex resolves a token for a write. An index equal to the length
// appends; larger indices would leave a gap and are rejected, as are negative
// indices that do not address an existing element.
func (p *Processor) writeIndex(c container, tok Token) (index int, appends bool, err error) {
	index, ok := tok.sequenceIndex()
	if !ok {
		return 0, false, newPathError(ErrCodeInvalidIndex, "expected numeric index, got '%s'", tok)
	}
	if internal.ExceedsLimit(index, p.config.MaxListSize) {
		return 0, false, newPathError(ErrCodeInvalidIndex, "index %s exceeds maximum list size %d", tok, p.config.MaxListSize)
	}

	length := len(c.seq.items)
	if index < 0 {
		resolved := length + index
		if resolved < 0 {
			return 0, false, newPathError(ErrCodeInvalidIndex, "index %s out of bounds for sequence of length %d", tok, length)
		}
		return resolved, false, nil
	}
	if index > length {
		return 0, false, newPathError(ErrCodeInvalidIndex,
			"index %d out of bounds for sequence of length %d (no sparse lists, index must be <= %d)", index, length, length)
	}
	return index, index == length, nil
}

// deleteAt removes and returns the value at tokens. The parent is resolved
// like a read; nothing is fabricated.
func (p *Processor) deleteAt(root any, tokens Path, allowListMutation bool) (any, error) {
	current, parent := rootOf(root)
	parentKind := kindLeaf

	last := len(tokens) - 1
	for _, tok := range tokens[:last] {
		c := classify(current)
		child, childSlot, err := p.descend(c, tok)
		if err != nil {
			return nil, err
		}
		current, parent, parentKind = child, childSlot, c.kind
	}

	tok := tokens[last]
	c := classify(current)
	switch c.kind {
	case kindMapping:
		removed, ok := c.m.remove(tok)
		if !ok {
			return nil, newMissingKeyError(tok)
		}
		return removed, nil

	case kindSequence:
		if !allowListMutation {
			return nil, newPathError(ErrCodeOperationDisabled, "sequence deletion disabled, set AllowListMutation to enable it")
		}
		index, err := p.readIndex(c, tok)
		if err != nil {
			return nil, err
		}
		if err := c.seq.checkResizable(parent, parentKind); err != nil {
			return nil, err
		}
		items := c.seq.items
		removed := items[index]
		copy(items[index:], items[index+1:])
		items[len(items)-1] = nil
		return removed, c.seq.resize(items[:len(items)-1], parent, parentKind)

	case kindImmutable:
		return nil, newImmutableError(c.value)

	default:
		return nil, newNonNavigableError(c.value)
	}
}

// descend resolves one token for read and returns the slot that writes the
// child back into c
func (p *Processor) descend(c container, tok Token) (any, slot, error) {
	switch c.kind {
	case kindMapping:
		child, err := p.readStep(c, tok)
		if err != nil {
			return nil, nil, err
		}
		return child, func(v any) { c.m.store(tok, v) }, nil
	case kindSequence:
		index, err := p.readIndex(c, tok)
		if err != nil {
			return nil, nil, err
		}
		items := c.seq.items
		return items[index], func(v any) { items[index] = v }, nil
	case kindImmutable:
		index, err := p.readIndex(c, tok)
		if err != nil {
			return nil, nil, err
		}
		return c.at(index), nil, nil
	default:
		return nil, nil, newNonNavigableError(c.value)
	}
}

// writableMapping returns a mapping that accepts stores, replacing a nil map
// in its parent first
func writableMapping(c container, parent slot) (mapping, error) {
	if !c.m.isNil() {
		return c.m, nil
	}
	if parent == nil {
		return nil, newPathError(ErrCodeNonNavigableType, "cannot write into nil %s", typeName(c.value))
	}

	var fresh any
	switch c.value.(type) {
	case map[any]any:
		fresh = map[any]any{}
	default:
		fresh = map[string]any{}
	}
	parent(fresh)
	return classify(fresh).m, nil
}

// checkResizable reports whether the sequence can change length for its owner
func (s *sequence) checkResizable(parent slot, parentKind containerKind) error {
	switch {
	case s.ptr != nil:
		return nil
	case parentKind == kindImmutable:
		return newPathError(ErrCodeImmutableContainer, "cannot resize a sequence held by an immutable container")
	case parent == nil:
		return newPathError(ErrCodeOperationDisabled, "cannot resize a root sequence passed by value, pass *[]any instead")
	default:
		return nil
	}
}

// resize publishes a new slice header to whoever owns the sequence
func (s *sequence) resize(items []any, parent slot, parentKind containerKind) error {
	if err := s.checkResizable(parent, parentKind); err != nil {
		return err
	}
	if s.ptr != nil {
		*s.ptr = items
	} else {
		parent(items)
	}
	s.items = items
	return nil
}
