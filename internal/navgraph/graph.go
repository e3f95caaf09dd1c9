// Package navgraph builds the weighted navigation graph for one task: one
// node per distinct path prefix observed across participants, edges between
// consecutive prefixes, and per-node outcome counters. The output is a data
// model for a visualization layer; no layout or rendering happens here.
package navgraph

import "sort"

// NodeStats counts how participant traffic interacted with one node.
type NodeStats struct {
	// RightPath counts pass-throughs where the prefix so far still matched
	// an expected answer; WrongPath counts pass-throughs off every expected
	// branch.
	RightPath int `json:"right_path"`
	WrongPath int `json:"wrong_path"`
	// Back is reserved for backtracking detection. Nothing increments it
	// today; renderers show it in the legend and product has not decided
	// whether to compute it, so the field stays but stays zero.
	Back int `json:"back"`
	// Nominated counts participants whose chosen final answer was this node.
	Nominated int `json:"nominated"`
	Skipped   int `json:"skipped"`
	Total     int `json:"total"`
}

// Node is one distinct path prefix. Its Path doubles as its identity.
type Node struct {
	Name string `json:"name"`
	// Path is the full prefix, e.g. "/Home/Products".
	Path string `json:"path"`
	// ParentID is the prefix one level up, "" for top-level nodes. It is a
	// key back-reference, never an owning pointer, so graphs cannot form
	// reference cycles.
	ParentID string    `json:"parent_id,omitempty"`
	Stats    NodeStats `json:"stats"`
}

// Edge is one observed transition between consecutive prefixes. Repeated
// traversals accumulate onto Value rather than duplicating the edge.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int    `json:"value"`
	// IsCorrectPath is true when the target prefix lies on an expected
	// answer's prefix.
	IsCorrectPath bool `json:"is_correct_path"`
}

type edgeKey struct {
	source string
	target string
}

// Graph is the node/edge arena for one task's traffic.
type Graph struct {
	// RootPath is the key of the root node, e.g. "/Home".
	RootPath string

	nodes map[string]*Node
	edges map[edgeKey]*Edge
}

func newGraph(rootName string) *Graph {
	g := &Graph{
		RootPath: "/" + rootName,
		nodes:    make(map[string]*Node),
		edges:    make(map[edgeKey]*Edge),
	}
	g.nodes[g.RootPath] = &Node{Name: rootName, Path: g.RootPath}
	return g
}

// node returns the node for the given prefix, creating it lazily.
func (g *Graph) node(path, name, parentID string) *Node {
	if n, ok := g.nodes[path]; ok {
		return n
	}
	n := &Node{Name: name, Path: path, ParentID: parentID}
	g.nodes[path] = n
	return n
}

// edge returns the edge for the ordered (source, target) pair, creating it
// lazily.
func (g *Graph) edge(source, target string) *Edge {
	key := edgeKey{source: source, target: target}
	if e, ok := g.edges[key]; ok {
		return e
	}
	e := &Edge{Source: source, Target: target}
	g.edges[key] = e
	return e
}

// NodeByPath returns the node for an exact prefix, or nil.
func (g *Graph) NodeByPath(path string) *Node {
	return g.nodes[path]
}

// Root returns the root node.
func (g *Graph) Root() *Node {
	return g.nodes[g.RootPath]
}

// Nodes returns all nodes ordered by path, so two builds over the same
// dataset compare equal structurally.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Edges returns all edges ordered by (source, target).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}
