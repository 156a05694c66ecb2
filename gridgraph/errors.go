package gridgraph

import "errors"

var (
	// ErrUnknownMode indicates a DirectionMode outside the declared set.
	ErrUnknownMode = errors.New("gridgraph: unknown direction mode")
	// ErrUnknownTopology indicates a Topology outside the declared set.
	ErrUnknownTopology = errors.New("gridgraph: unknown cell topology")
	// ErrEmptyGraph indicates a nearest-node query on a graph with no nodes,
	// usually a graph built from an empty walkable-cell set.
	ErrEmptyGraph = errors.New("gridgraph: graph has no nodes")
	// ErrNodeNotFound indicates a coordinate that is not a node of the graph.
	ErrNodeNotFound = errors.New("gridgraph: node not found")
	// ErrDanglingNeighbour indicates persisted data linking to a coordinate
	// absent from the persisted node set.
	ErrDanglingNeighbour = errors.New("gridgraph: neighbour references unknown node")
	// ErrDuplicateNode indicates persisted data listing the same coordinate twice.
	ErrDuplicateNode = errors.New("gridgraph: duplicate node coordinate")
	// ErrBadCoord indicates a coordinate string not in "x,y" form.
	ErrBadCoord = errors.New("gridgraph: malformed coordinate")
)
