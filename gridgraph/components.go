package gridgraph

import "fmt"

// Reachable returns every coordinate reachable from the node at from by
// following neighbour links as built, in BFS order starting with from itself.
// Links are directed: under the smart modes A may reach B while B cannot
// reach A. Returns ErrNodeNotFound if from is not a node.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and output.
func (g *Graph) Reachable(from Coord) ([]Coord, error) {
	start, ok := g.index[from]
	if !ok {
		return nil, fmt.Errorf("Reachable(%s): %w", from, ErrNodeNotFound)
	}

	seen := make([]bool, len(g.nodes))
	queue := []NodeID{start}
	seen[start] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.nodes[queue[qi]].neighbours {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	out := make([]Coord, len(queue))
	for i, id := range queue {
		out[i] = g.nodes[id].coord
	}
	return out, nil
}

// Components partitions the nodes into weakly connected regions: two nodes
// share a region if a chain of links connects them in either direction.
// Regions are ordered by their first node in insertion order; each region
// lists its nodes in BFS order.
//
// Time:   O(V + E).
// Memory: O(V + E) for the reverse links.
func (g *Graph) Components() [][]Coord {
	// Reverse links make the traversal direction-agnostic.
	reverse := make([][]NodeID, len(g.nodes))
	for u := range g.nodes {
		for _, v := range g.nodes[u].neighbours {
			reverse[v] = append(reverse[v], NodeID(u))
		}
	}

	seen := make([]bool, len(g.nodes))
	var comps [][]Coord
	for i := range g.nodes {
		if seen[i] {
			continue
		}
		queue := []NodeID{NodeID(i)}
		seen[i] = true
		var comp []Coord
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, g.nodes[u].coord)
			for _, links := range [2][]NodeID{g.nodes[u].neighbours, reverse[u]} {
				for _, v := range links {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
