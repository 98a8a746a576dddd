package comments

import "github.com/google/uuid"

// ThreadNode is a comment with its replies attached. Depth is unbounded in
// the data model; display layers may cap indentation without capping nesting.
type ThreadNode struct {
	Comment
	Replies []*ThreadNode `json:"replies"`
}

// BuildThreadTree reconstructs the reply forest from a flat, creation-time
// ordered comment list. Top-level comments keep their original order, and so
// do each node's replies. Comments whose parent is missing from the list are
// dropped, and a comment can never end up as its own ancestor: attachment
// only follows parent links to nodes already placed.
func BuildThreadTree(list []Comment) []*ThreadNode {
	nodes := make(map[uuid.UUID]*ThreadNode, len(list))
	for i := range list {
		nodes[list[i].ID] = &ThreadNode{Comment: list[i], Replies: []*ThreadNode{}}
	}

	var roots []*ThreadNode
	for i := range list {
		node := nodes[list[i].ID]
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*node.ParentID]
		if !ok || parent == node || isAncestor(node, parent) {
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}
	return roots
}

// isAncestor reports whether candidate sits in node's reply subtree, which
// would make attaching node under candidate a cycle.
func isAncestor(node, candidate *ThreadNode) bool {
	for _, r := range node.Replies {
		if r == candidate || isAncestor(r, candidate) {
			return true
		}
	}
	return false
}
