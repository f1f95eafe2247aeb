// Package cfg provides a minimal control-flow graph representation and
// the Engine interface the domain is driven through.  The real
// fixed-point engine (worklist scheduling, iteration limits, widening
// strategy) is an external collaborator per spec.md §1; pkg/engine
// supplies a small concrete implementation sufficient to drive the
// domain end-to-end for the CLI and for tests.
package cfg

import "github.com/ai-verify/interval-domain/pkg/ir"

// Node is one CFG node: a single instruction plus the node's successors
// within the graph.
type Node struct {
	ID        ir.NodeID
	Instr     ir.Instruction
	Successors []ir.NodeID
}

// Graph is an immutable control-flow graph, indexed by node ID.
type Graph struct {
	Nodes []Node
	Entry ir.NodeID
}

// Node returns the node with the given ID.
func (g *Graph) Node(id ir.NodeID) *Node {
	return &g.Nodes[id]
}

// Engine is the interface the domain consumes from the fixed-point
// engine that drives it (§6.2).  transform receives it so that,
// eventually, a transfer function could consult wider CFG context (e.g.
// to conservatively havoc globals reachable from a call); the domain's
// current transfer functions do not need it beyond what the instruction
// itself encodes, but it is threaded through transform for that reason
// and to keep the signature stable as the engine grows.
type Engine interface {
	// Successors returns the outgoing edges of a node.
	Successors(id ir.NodeID) []ir.NodeID
}
