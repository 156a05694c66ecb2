package gridgraph

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Snapshot is the persisted form of a Graph: nodes in insertion order, each
// with its neighbour list stored by coordinate rather than by handle.
type Snapshot struct {
	Mode     DirectionMode `yaml:"mode"`
	Topology Topology      `yaml:"topology"`
	Nodes    []NodeRecord  `yaml:"nodes"`
}

// NodeRecord is one persisted node.
type NodeRecord struct {
	Coord      Coord   `yaml:"coord,flow"`
	Neighbours []Coord `yaml:"neighbours,flow"`
}

// Snapshot captures g in coordinate form. The neighbour relation is kept
// exactly as built, including one-way links.
// Complexity: O(V + E).
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		Mode:     g.mode,
		Topology: g.topology,
		Nodes:    make([]NodeRecord, len(g.nodes)),
	}
	for i := range g.nodes {
		links := g.nodes[i].neighbours
		rec := NodeRecord{Coord: g.nodes[i].coord, Neighbours: make([]Coord, len(links))}
		for j, n := range links {
			rec.Neighbours[j] = g.nodes[n].coord
		}
		s.Nodes[i] = rec
	}

	return s
}

// FromSnapshot rebuilds a Graph from s. Node identities are restored first,
// then each neighbour coordinate list is resolved against them.
//
// Errors:
//   - ErrUnknownMode / ErrUnknownTopology for out-of-range settings.
//   - ErrDuplicateNode if a coordinate is listed twice.
//   - ErrDanglingNeighbour if a neighbour coordinate is not a listed node.
//
// Neighbour lists are not recomputed, so the graph is identical to the one
// that was saved even if adjacency rules change later.
func FromSnapshot(s Snapshot) (*Graph, error) {
	if !s.Mode.Valid() {
		return nil, fmt.Errorf("FromSnapshot(mode=%s): %w", s.Mode, ErrUnknownMode)
	}
	if !s.Topology.Valid() {
		return nil, fmt.Errorf("FromSnapshot(topology=%s): %w", s.Topology, ErrUnknownTopology)
	}

	g := newGraph(s.Mode, s.Topology, len(s.Nodes))
	for _, rec := range s.Nodes {
		if !g.addNode(rec.Coord) {
			return nil, fmt.Errorf("FromSnapshot: node %s: %w", rec.Coord, ErrDuplicateNode)
		}
	}
	for i, rec := range s.Nodes {
		links := make([]NodeID, len(rec.Neighbours))
		for j, nc := range rec.Neighbours {
			id, ok := g.index[nc]
			if !ok {
				return nil, fmt.Errorf("FromSnapshot: node %s -> %s: %w", rec.Coord, nc, ErrDanglingNeighbour)
			}
			links[j] = id
		}
		g.nodes[i].neighbours = links
	}

	return g, nil
}

// Save writes g to w as a YAML snapshot.
func (g *Graph) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g.Snapshot()); err != nil {
		return fmt.Errorf("gridgraph: encode snapshot: %w", err)
	}

	return enc.Close()
}

// Load reads a YAML snapshot written by Save and rebuilds the Graph.
func Load(r io.Reader) (*Graph, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("gridgraph: decode snapshot: %w", err)
	}

	return FromSnapshot(s)
}
