// Package gridgraph turns a set of walkable grid cells into a navigation
// graph. It supports:
//
//   - Five direction modes, including the corner-cutting-safe smart modes
//   - Rectangle, Isometric and Hexagon cell topologies
//   - Membership, neighbour and nearest-node queries
//   - Reachability and weakly connected regions
//   - Coordinate-based snapshots for persistence
//
// Nodes live in an arena indexed by NodeID; neighbour lists hold handles.
package gridgraph

import (
	"fmt"
	"math"
)

// Build constructs a Graph from the walkable cells using the given direction
// mode and topology.
//
// Behavior:
//  1. Validate mode and topology (ErrUnknownMode, ErrUnknownTopology).
//  2. Materialize one node per distinct coordinate, in input order; repeated
//     coordinates are ignored.
//  3. Only after every node exists, compute each neighbour list with Neighbours.
//
// An empty cell set is valid and yields an empty Graph.
// Identical inputs always produce identical graphs, including neighbour order.
// Complexity: O(N) time and memory for N cells.
func Build(cells []Coord, mode DirectionMode, topo Topology) (*Graph, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("Build(mode=%s): %w", mode, ErrUnknownMode)
	}
	if !topo.Valid() {
		return nil, fmt.Errorf("Build(topology=%s): %w", topo, ErrUnknownTopology)
	}

	g := newGraph(mode, topo, len(cells))
	for _, c := range cells {
		g.addNode(c)
	}

	has := g.Contains
	for i := range g.nodes {
		coords := Neighbours(g.nodes[i].coord, has, topo, mode)
		links := make([]NodeID, len(coords))
		for j, nc := range coords {
			links[j] = g.index[nc]
		}
		g.nodes[i].neighbours = links
	}

	return g, nil
}

// newGraph allocates an empty Graph with room for n nodes.
func newGraph(mode DirectionMode, topo Topology, n int) *Graph {
	return &Graph{
		mode:     mode,
		topology: topo,
		nodes:    make([]node, 0, n),
		index:    make(map[Coord]NodeID, n),
	}
}

// addNode appends c to the arena unless it is already present and reports
// whether it was added.
func (g *Graph) addNode(c Coord) bool {
	if _, ok := g.index[c]; ok {
		return false
	}
	g.index[c] = NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{coord: c})

	return true
}

// Mode returns the DirectionMode the graph was built with.
func (g *Graph) Mode() DirectionMode { return g.mode }

// Topology returns the cell topology the graph was built with.
func (g *Graph) Topology() Topology { return g.topology }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Contains reports whether c is a node of the graph.
// Complexity: O(1).
func (g *Graph) Contains(c Coord) bool {
	_, ok := g.index[c]
	return ok
}

// Node returns the handle of the node at c.
func (g *Graph) Node(c Coord) (NodeID, bool) {
	id, ok := g.index[c]
	return id, ok
}

// Coord returns the coordinate of node id. id must come from this graph.
func (g *Graph) Coord(id NodeID) Coord { return g.nodes[id].coord }

// Neighbours returns the neighbour handles of node id in build order.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph) Neighbours(id NodeID) []NodeID { return g.nodes[id].neighbours }

// NeighbourCoords returns a copy of the neighbour coordinates of the node at c.
// The second result is false if c is not a node.
func (g *Graph) NeighbourCoords(c Coord) ([]Coord, bool) {
	id, ok := g.index[c]
	if !ok {
		return nil, false
	}
	links := g.nodes[id].neighbours
	out := make([]Coord, len(links))
	for i, n := range links {
		out[i] = g.nodes[n].coord
	}

	return out, true
}

// Coords returns every node coordinate in insertion order.
func (g *Graph) Coords() []Coord {
	out := make([]Coord, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].coord
	}
	return out
}

// NearestNode resolves target to a node: the node at target if present,
// otherwise the node with the smallest Euclidean distance to target. Ties go
// to the node inserted first.
// Returns ErrEmptyGraph if the graph has no nodes.
// Complexity: O(1) on a hit, O(N) otherwise.
func (g *Graph) NearestNode(target Coord) (NodeID, error) {
	if len(g.nodes) == 0 {
		return 0, fmt.Errorf("NearestNode(%s): %w", target, ErrEmptyGraph)
	}
	if id, ok := g.index[target]; ok {
		return id, nil
	}

	best, bestDist := NodeID(0), math.Inf(1)
	for i := range g.nodes {
		if d := g.nodes[i].coord.Distance(target); d < bestDist {
			best, bestDist = NodeID(i), d
		}
	}

	return best, nil
}

// Bounds returns the inclusive bounding box of all node coordinates.
// ok is false for an empty graph.
func (g *Graph) Bounds() (lo, hi Coord, ok bool) {
	if len(g.nodes) == 0 {
		return Coord{}, Coord{}, false
	}
	lo, hi = g.nodes[0].coord, g.nodes[0].coord
	for _, n := range g.nodes[1:] {
		lo.X, lo.Y = min(lo.X, n.coord.X), min(lo.Y, n.coord.Y)
		hi.X, hi.Y = max(hi.X, n.coord.X), max(hi.Y, n.coord.Y)
	}

	return lo, hi, true
}
