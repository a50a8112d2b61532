package folder

// Indexes are the derived lookup tables over a tree: id to node and id to
// the ancestor chain (root to self). They are a pure function of the tree
// and must be rebuilt by the orchestrator after every structural mutation;
// nothing caches them behind the caller's back.
type Indexes struct {
	ByID map[string]*Node
	// Paths maps a folder id to the ids of its ancestors, root first,
	// ending with the folder itself.
	Paths map[string][]string
}

// BuildIndexes walks the tree once and returns fresh lookup tables.
func BuildIndexes(t *Tree) Indexes {
	idx := Indexes{
		ByID:  make(map[string]*Node),
		Paths: make(map[string][]string),
	}
	var walk func(n *Node, trail []string)
	walk = func(n *Node, trail []string) {
		trail = append(trail, n.ID)
		idx.ByID[n.ID] = n
		// Copy: trail's backing array is shared across siblings
		path := make([]string, len(trail))
		copy(path, trail)
		idx.Paths[n.ID] = path
		for _, c := range n.Children {
			walk(c, trail)
		}
	}
	for _, root := range t.Roots {
		walk(root, nil)
	}
	return idx
}

// PathNames resolves a folder id to its ancestor display names, root first.
// Returns nil for unknown ids.
func (idx Indexes) PathNames(id string) []string {
	path, ok := idx.Paths[id]
	if !ok {
		return nil
	}
	names := make([]string, len(path))
	for i, pid := range path {
		names[i] = idx.ByID[pid].Name
	}
	return names
}
