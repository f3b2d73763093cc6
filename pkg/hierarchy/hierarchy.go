// Package hierarchy maintains the denormalized parent/children/ancestors
// records that give each topic its forest shape. Every operation takes a
// snapshot map and returns a new one; the input is never mutated, so a
// rejected operation leaves the caller's state exactly as it was.
package hierarchy

// Node is the tree position record for a single entry. ParentID is empty
// for top-level entries. Ancestors runs from the immediate parent out to
// the root and always equals the chain implied by following ParentID.
type Node struct {
	ParentID  string   `json:"parentId,omitempty"`
	Ancestors []string `json:"ancestors"`
	Children  []string `json:"children"`
	Type      string   `json:"type,omitempty"`
}

// Map is one topic's snapshot, keyed by entry id.
type Map map[string]*Node

// Clone deep-copies the snapshot so operations can rewrite nodes without
// aliasing the caller's copy.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for id, n := range m {
		out[id] = n.clone()
	}
	return out
}

func (n *Node) clone() *Node {
	c := &Node{ParentID: n.ParentID, Type: n.Type}
	c.Ancestors = append([]string{}, n.Ancestors...)
	c.Children = append([]string{}, n.Children...)
	return c
}

// InsertRoot adds a new top-level entry to the snapshot.
func InsertRoot(m Map, id, typ string) (Map, error) {
	if _, ok := m[id]; ok {
		return nil, &DuplicateEntryError{ID: id}
	}
	out := m.Clone()
	out[id] = &Node{Ancestors: []string{}, Children: []string{}, Type: typ}
	return out, nil
}

// InsertChild adds a new entry under parentID, wiring the ancestor chain
// from the parent's cached chain.
func InsertChild(m Map, id, parentID, typ string) (Map, error) {
	if _, ok := m[id]; ok {
		return nil, &DuplicateEntryError{ID: id}
	}
	parent, ok := m[parentID]
	if !ok {
		return nil, &UnknownParentError{ParentID: parentID}
	}
	out := m.Clone()
	out[id] = &Node{
		ParentID:  parentID,
		Ancestors: append([]string{parentID}, parent.Ancestors...),
		Children:  []string{},
		Type:      typ,
	}
	out[parentID].Children = append(out[parentID].Children, id)
	return out, nil
}

// Reparent moves id under newParentID, or to the top level when
// newParentID is empty. The ancestor chains of id and every descendant
// are recomputed. Top-node list maintenance is the caller's job: read
// the old ParentID before calling, and check the new one after.
func Reparent(m Map, id, newParentID string) (Map, error) {
	node, ok := m[id]
	if !ok {
		return nil, ErrNotFound
	}
	if newParentID == id {
		return nil, &CycleError{ID: id, ParentID: newParentID}
	}
	if newParentID != "" {
		if _, ok := m[newParentID]; !ok {
			return nil, &UnknownParentError{ParentID: newParentID}
		}
		// The new parent must not sit below id, or the chain would loop.
		if IsAncestorOf(m, id, newParentID) {
			return nil, &CycleError{ID: id, ParentID: newParentID}
		}
	}

	out := m.Clone()
	if node.ParentID != "" {
		old := out[node.ParentID]
		old.Children = remove(old.Children, id)
	}

	moved := out[id]
	moved.ParentID = newParentID
	if newParentID == "" {
		moved.Ancestors = []string{}
	} else {
		parent := out[newParentID]
		moved.Ancestors = append([]string{newParentID}, parent.Ancestors...)
		parent.Children = append(parent.Children, id)
	}
	reflowAncestors(out, id)
	return out, nil
}

// Reflow is the result of DeleteWithReflow. OrphanedTopLevelIDs lists
// former children promoted to the top level (only when the deleted
// entry was itself top-level); the caller adds them to its topNodes.
// RemovedFromChildrenOf names the former parent whose children list
// dropped the deleted id, empty if the entry was top-level.
type Reflow struct {
	Map                   Map
	OrphanedTopLevelIDs   []string
	RemovedFromChildrenOf string
}

// DeleteWithReflow removes id and relinks its direct children to id's
// former parent, keeping each grandchild subtree intact. Ancestor
// chains of every remaining node are filtered to drop the deleted id;
// under the single-parent invariant that leaves exactly the right
// chain behind.
func DeleteWithReflow(m Map, id string) (Reflow, error) {
	node, ok := m[id]
	if !ok {
		return Reflow{}, ErrNotFound
	}

	out := m.Clone()
	former := node.ParentID
	promoted := append([]string{}, node.Children...)

	for _, child := range promoted {
		out[child].ParentID = former
	}
	for _, n := range out {
		n.Ancestors = remove(n.Ancestors, id)
	}
	if former != "" {
		parent := out[former]
		parent.Children = remove(parent.Children, id)
		parent.Children = append(parent.Children, promoted...)
	}
	delete(out, id)

	res := Reflow{Map: out, RemovedFromChildrenOf: former}
	if former == "" {
		res.OrphanedTopLevelIDs = promoted
	}
	return res, nil
}

// Descendants returns every entry below id, depth-first. Unknown ids
// yield nil.
func Descendants(m Map, id string) []string {
	node, ok := m[id]
	if !ok {
		return nil
	}
	var out []string
	for _, child := range node.Children {
		out = append(out, child)
		out = append(out, Descendants(m, child)...)
	}
	return out
}

// IsAncestorOf reports whether a sits somewhere above b. It reads b's
// cached ancestor chain, which is why the chain is maintained eagerly:
// the valid-parent and valid-child filters call this for every entry in
// a topic.
func IsAncestorOf(m Map, a, b string) bool {
	node, ok := m[b]
	if !ok {
		return false
	}
	for _, anc := range node.Ancestors {
		if anc == a {
			return true
		}
	}
	return false
}

// reflowAncestors rebuilds the cached chains for everything below id,
// after id's own chain has been set.
func reflowAncestors(m Map, id string) {
	node := m[id]
	for _, child := range node.Children {
		m[child].Ancestors = append([]string{id}, node.Ancestors...)
		reflowAncestors(m, child)
	}
}

func remove(list []string, id string) []string {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
