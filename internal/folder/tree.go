// Package folder implements the user-editable folder hierarchy.
//
// Folders are plain tree nodes with ordered children, exclusively owned by
// their parent. Smart folders and the fixed system views are NOT tree nodes;
// their id spaces are disjoint from folder ids (folders are minted with an
// "f-" prefix, smart folders with "smart:", system views use reserved words).
package folder

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when an operation names a folder id that is
	// not present in the tree.
	ErrNotFound = errors.New("folder: not found")
	// ErrEmptyName is returned when a folder would be created or renamed
	// with an empty name.
	ErrEmptyName = errors.New("folder: empty name")
)

// Node is a single folder. Children are ordered and exclusively owned.
type Node struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Children []*Node `json:"children,omitempty"`
}

// Tree holds the ordered top-level folders.
type Tree struct {
	Roots []*Node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// NewTreeFromRoots wraps persisted roots in a Tree. The roots are adopted,
// not copied.
func NewTreeFromRoots(roots []*Node) *Tree {
	return &Tree{Roots: roots}
}

// MintID returns a fresh folder id. The "f-" prefix keeps folder ids out of
// the "smart:" and system-view namespaces.
func MintID() string {
	return "f-" + uuid.NewString()
}

// CreateChild inserts a new folder under parentID, or at the top level when
// parentID is empty. Sibling name collisions are allowed. Returns the new id.
func (t *Tree) CreateChild(parentID, name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	node := &Node{ID: MintID(), Name: name}
	if parentID == "" {
		t.Roots = append(t.Roots, node)
		return node.ID, nil
	}
	parent := t.find(parentID)
	if parent == nil {
		return "", ErrNotFound
	}
	parent.Children = append(parent.Children, node)
	return node.ID, nil
}

// Rename changes the display name of the folder with the given id.
func (t *Tree) Rename(id, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	node := t.find(id)
	if node == nil {
		return ErrNotFound
	}
	node.Name = name
	return nil
}

// Delete removes the folder with the given id together with its whole
// subtree. Callers must defensively re-resolve any selection, cover, or
// placement override that referenced a removed id.
func (t *Tree) Delete(id string) error {
	for i, root := range t.Roots {
		if root.ID == id {
			t.Roots = append(t.Roots[:i], t.Roots[i+1:]...)
			return nil
		}
	}
	if parent, idx := t.findParent(id); parent != nil {
		parent.Children = append(parent.Children[:idx], parent.Children[idx+1:]...)
		return nil
	}
	return ErrNotFound
}

// Contains reports whether id names a live folder.
func (t *Tree) Contains(id string) bool {
	return t.find(id) != nil
}

// find returns the node with the given id, or nil.
func (t *Tree) find(id string) *Node {
	var walk func(n *Node) *Node
	walk = func(n *Node) *Node {
		if n.ID == id {
			return n
		}
		for _, c := range n.Children {
			if hit := walk(c); hit != nil {
				return hit
			}
		}
		return nil
	}
	for _, root := range t.Roots {
		if hit := walk(root); hit != nil {
			return hit
		}
	}
	return nil
}

// findParent returns the parent of id and the child index, or (nil, -1).
func (t *Tree) findParent(id string) (*Node, int) {
	var walk func(n *Node) (*Node, int)
	walk = func(n *Node) (*Node, int) {
		for i, c := range n.Children {
			if c.ID == id {
				return n, i
			}
			if p, idx := walk(c); p != nil {
				return p, idx
			}
		}
		return nil, -1
	}
	for _, root := range t.Roots {
		if p, idx := walk(root); p != nil {
			return p, idx
		}
	}
	return nil, -1
}
