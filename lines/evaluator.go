package lines

import (
	"github.com/garlicgarrison/chess-motif-engine/motif"
)

/*
	Evaluator walks a continuation tree and decides, per node, which motifs
	are new and still true. A motif surfaces once, at the shallowest node
	where its key first appears, and never again at descendants unless the
	underlying fact changed enough to change the key. Motifs found at
	speculative (non-root) nodes are re-validated against that node's actual
	occupancy before surfacing; stale ones are dropped silently -- expected
	drift in hypothetical lines, not an error.
*/
type Evaluator struct {
	analyzer *motif.Analyzer
}

func NewEvaluator(analyzer *motif.Analyzer) *Evaluator {
	return &Evaluator{analyzer: analyzer}
}

func (e *Evaluator) Evaluate(t *Tree) {
	stack := []int{0}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[id]

		var inherited map[motif.Key]bool
		if n.Parent >= 0 {
			inherited = t.nodes[n.Parent].inherited
		}

		keys := make(map[motif.Key]bool, len(inherited))
		for k := range inherited {
			keys[k] = true
		}

		n.Motifs = nil
		for _, m := range e.analyzer.Analyze(n.Position).Motifs() {
			k := m.Key()
			if keys[k] {
				continue
			}

			if n.Parent >= 0 && !m.Valid(n.Position) {
				continue
			}

			keys[k] = true
			n.Motifs = append(n.Motifs, m)
		}
		n.inherited = keys

		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}
