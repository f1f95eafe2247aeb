// Package engine provides a minimal worklist fixed-point driver for the
// interval domain.  The domain itself treats the engine purely as an
// external collaborator (spec.md §1); this package is the concrete
// stand-in used by the CLI and by end-to-end tests, grounded on the
// teacher's cobra-driven pipeline style (one pass over a graph, logging
// progress via logrus) rather than on any particular analysis engine
// architecture.
package engine

import (
	log "github.com/sirupsen/logrus"

	"github.com/ai-verify/interval-domain/pkg/cfg"
	"github.com/ai-verify/interval-domain/pkg/domain"
	"github.com/ai-verify/interval-domain/pkg/ir"
)

// MaxIterations bounds the worklist loop.  The domain relies on the
// engine for termination (spec.md's Non-goals disclaim a bounded-height
// widening operator), so a real engine would derive this from the
// graph's structure; here a generous constant suffices for the graphs
// the CLI and tests construct.
const MaxIterations = 10000

// Result holds the environment computed for each CFG node after the
// analysis reaches a fixed point (or exhausts MaxIterations).
type Result struct {
	States map[ir.NodeID]*domain.Environment
}

// graphEngine adapts a cfg.Graph to the cfg.Engine interface the domain
// consumes.
type graphEngine struct {
	g *cfg.Graph
}

func (a graphEngine) Successors(id ir.NodeID) []ir.NodeID {
	return a.g.Node(id).Successors
}

// Analyze runs the interval domain to a fixed point over g, starting
// from the unconstrained environment at g.Entry.
func Analyze(g *cfg.Graph, ns *ir.Namespace) *Result {
	states := make(map[ir.NodeID]*domain.Environment, len(g.Nodes))

	for i := range g.Nodes {
		id := g.Nodes[i].ID
		states[id] = &domain.Environment{}
		states[id].MakeBottom()
	}

	states[g.Entry] = &domain.Environment{}
	states[g.Entry].MakeTop()

	eng := graphEngine{g: g}
	worklist := []ir.NodeID{g.Entry}
	queued := map[ir.NodeID]bool{g.Entry: true}

	iterations := 0

	for len(worklist) > 0 {
		iterations++
		if iterations > MaxIterations {
			log.Warn("engine: iteration limit reached, stopping early")
			break
		}

		id := worklist[0]
		worklist = worklist[1:]
		queued[id] = false

		node := g.Node(id)
		pre := states[id]

		for _, succID := range node.Successors {
			post := pre.Clone()
			post.Transform(node.Instr, succID, eng, ns)

			if states[succID].Join(post) {
				if !queued[succID] {
					worklist = append(worklist, succID)
					queued[succID] = true
				}
			}
		}
	}

	log.WithField("iterations", iterations).Debug("engine: fixed point reached")

	return &Result{States: states}
}
