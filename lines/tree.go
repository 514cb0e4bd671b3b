package lines

import (
	"errors"

	"github.com/garlicgarrison/chess-motif-engine/board"
	"github.com/garlicgarrison/chess-motif-engine/motif"
)

var (
	ErrNoSuchNode = errors.New("no such node")
	ErrBadLine    = errors.New("line contains an illegal move")
)

/*
	Tree is a branching set of hypothetical continuations explored from a
	root position. Nodes live in an arena indexed by id; parent links are
	plain ids used only for read-only inherited-key lookups, never for
	ownership. Evaluation attaches per-node results and never changes the
	tree's structure.
*/
type Tree struct {
	nodes []*Node
}

type Node struct {
	ID       int             `json:"id"`
	Parent   int             `json:"parent"`
	Ply      int             `json:"ply"`
	Move     string          `json:"move,omitempty"`
	FEN      string          `json:"fen"`
	Motifs   []motif.Motif   `json:"motifs"`
	Position *board.Position `json:"-"`

	children  []int
	inherited map[motif.Key]bool
}

func NewTree(root *board.Position) *Tree {
	return &Tree{
		nodes: []*Node{{
			ID:       0,
			Parent:   -1,
			Ply:      0,
			FEN:      root.FEN(),
			Position: root,
		}},
	}
}

func (t *Tree) Root() *Node {
	return t.nodes[0]
}

func (t *Tree) Node(id int) (*Node, error) {
	if id < 0 || id >= len(t.nodes) {
		return nil, ErrNoSuchNode
	}

	return t.nodes[id], nil
}

func (t *Tree) Nodes() []*Node {
	return t.nodes
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// AddChild plays a UCI move from the parent node and appends the resulting
// position as a child.
func (t *Tree) AddChild(parent int, uci string) (int, error) {
	pn, err := t.Node(parent)
	if err != nil {
		return 0, err
	}

	pos, err := pn.Position.Move(uci)
	if err != nil {
		return 0, err
	}

	n := &Node{
		ID:       len(t.nodes),
		Parent:   parent,
		Ply:      pn.Ply + 1,
		Move:     uci,
		FEN:      pos.FEN(),
		Position: pos,
	}
	t.nodes = append(t.nodes, n)
	pn.children = append(pn.children, n.ID)

	return n.ID, nil
}

/*
	AddLine grafts a sequence of UCI moves from the root, reusing existing
	nodes where the line shares a prefix with one already in the tree.
*/
func (t *Tree) AddLine(moves []string) error {
	at := 0
	for _, m := range moves {
		next := -1
		for _, c := range t.nodes[at].children {
			if t.nodes[c].Move == m {
				next = c
				break
			}
		}

		if next < 0 {
			id, err := t.AddChild(at, m)
			if err != nil {
				return ErrBadLine
			}
			next = id
		}

		at = next
	}

	return nil
}
