package nested

// depth returns the maximum nesting depth: 0 for a leaf, 1 for an empty container
func depth(node any) int {
	c := classify(node)
	if c.kind == kindLeaf {
		return 0
	}

	deepest := 0
	c.each(func(_ Token, child any) bool {
		if d := depth(child); d > deepest {
			deepest = d
		}
		return true
	})
	return 1 + deepest
}

// countLeaves counts non-container values; empty containers contribute nothing
func countLeaves(node any) int {
	c := classify(node)
	if c.kind == kindLeaf {
		return 1
	}

	count := 0
	c.each(func(_ Token, child any) bool {
		count += countLeaves(child)
		return true
	})
	return count
}

// allPaths lists the path of every leaf in natural iteration order.
// A leaf root yields one empty path.
func allPaths(node any) []Path {
	var paths []Path
	var walk func(current any, prefix Path)
	walk = func(current any, prefix Path) {
		c := classify(current)
		if c.kind == kindLeaf {
			leafPath := make(Path, len(prefix))
			copy(leafPath, prefix)
			paths = append(paths, leafPath)
			return
		}
		c.each(func(tok Token, child any) bool {
			walk(child, append(prefix, tok))
			return true
		})
	}
	walk(node, Path{})

	if paths == nil {
		return []Path{}
	}
	return paths
}
