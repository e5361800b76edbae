package tilesolver

// SearchNode is a Board plus search metadata: depth (g), a back
// reference to the generating node, and a cached f = g + h. It is the
// unit of work in the Frontier.
type SearchNode struct {
	board  *Board
	depth  int
	parent *SearchNode
	cost   int
	seq    int // insertion sequence, used only for deterministic tie-break
}

// NewSearchNode wraps board at the given depth with the given parent
// (nil for a root), computing cost = depth + board.Heuristic().
func NewSearchNode(board *Board, depth int, parent *SearchNode) *SearchNode {
	return newSearchNode(board, depth, parent, board.Heuristic())
}

// newSearchNode wraps board with a caller-supplied heuristic value,
// letting the Solver route through its heuristic cache instead of
// always recomputing Board.Heuristic().
func newSearchNode(board *Board, depth int, parent *SearchNode, h int) *SearchNode {
	return &SearchNode{
		board:  board,
		depth:  depth,
		parent: parent,
		cost:   depth + h,
	}
}

// Board returns the node's board.
func (n *SearchNode) Board() *Board { return n.board }

// Depth returns the node's g-value.
func (n *SearchNode) Depth() int { return n.depth }

// Parent returns the generating node, or nil for the root.
func (n *SearchNode) Parent() *SearchNode { return n.parent }

// Cost returns the cached f = g + h value.
func (n *SearchNode) Cost() int { return n.cost }

// IsSolved reports whether the node's board is the solved layout.
func (n *SearchNode) IsSolved() bool {
	return n.board.IsSolved()
}

// Copy clones n: its board is cloned deeply (tiles, blank index, and
// last direction all carry over via Board.Copy), while depth, parent,
// cost, and seq are preserved exactly. The clone is independent of n;
// mutating its board does not affect n's.
func (n *SearchNode) Copy() *SearchNode {
	return &SearchNode{
		board:  n.board.Copy(),
		depth:  n.depth,
		parent: n.parent,
		cost:   n.cost,
		seq:    n.seq,
	}
}

// MoveChildren produces one child SearchNode per legal move from n
// whose resulting board hash is unseen in closed. Each accepted
// child's hash is stamped into closed before it is returned, so two
// nodes racing to the same board never both enqueue.
func (n *SearchNode) MoveChildren(closed *ClosedSet) []*SearchNode {
	return n.moveChildren(closed, nil)
}

// moveChildren is MoveChildren routed through an optional heuristic
// cache (nil means "call Board.Heuristic() directly").
func (n *SearchNode) moveChildren(closed *ClosedSet, cache *heuristicCache) []*SearchNode {
	children := make([]*SearchNode, 0, 4)
	for _, d := range AllDirections {
		if !n.board.CanMove(d) {
			continue
		}
		child := n.Copy()
		child.board.ApplyMove(d)
		hash := child.board.Hash()
		if closed.Contains(hash) {
			continue
		}
		closed.Insert(hash)
		var h int
		if cache != nil {
			h = cache.heuristic(child.board)
		} else {
			h = child.board.Heuristic()
		}
		child.depth = n.depth + 1
		child.parent = n
		child.cost = child.depth + h
		children = append(children, child)
	}
	return children
}
