package algorithm

import (
	"log"
	"sort"

	"faultmesh/internal/algorithm/define"
)

// World is the in-memory state a single algorithm run operates on:
// agents, the groups partitioning them, and the graph connecting them.
// It is deep-cloned fresh for every run, mutated only by the
// initializer and the migration engine, and read by the evaluator.
// Group/agent back-references are ids only, resolved through the two
// lookup maps below, so the structure never holds a reference cycle.
type World struct {
	Agents map[int]*define.Agent
	Groups map[int]*define.Group
	Graph  *Graph

	agentOrder []int
	groupOrder []int
}

// NewWorld assembles a world from parsed agents and a graph; tasks are
// attached separately by the initializer.
func NewWorld(agents []*define.Agent, g *Graph) *World {
	w := &World{
		Agents: make(map[int]*define.Agent, len(agents)),
		Groups: make(map[int]*define.Group),
		Graph:  g,
	}

	for _, a := range agents {
		w.Agents[a.ID] = a
		if !g.NodeExists(a.ID) {
			log.Print(&DisconnectedAgentError{AgentID: a.ID})
		}
		g.EnsureNode(a.ID)

		grp, ok := w.Groups[a.GroupID]
		if !ok {
			grp = define.NewGroup(a.GroupID)
			w.Groups[a.GroupID] = grp
		}
		grp.AddMember(a.ID)
	}

	w.reindex()
	return w
}

func (w *World) reindex() {
	w.agentOrder = w.agentOrder[:0]
	for id := range w.Agents {
		w.agentOrder = append(w.agentOrder, id)
	}
	sort.Ints(w.agentOrder)

	w.groupOrder = w.groupOrder[:0]
	for id := range w.Groups {
		w.groupOrder = append(w.groupOrder, id)
	}
	sort.Ints(w.groupOrder)
}

// AgentIDs returns agent ids in ascending order, the iteration order
// every algorithm must use where order affects the observable output.
func (w *World) AgentIDs() []int {
	if len(w.agentOrder) != len(w.Agents) {
		w.reindex()
	}
	return w.agentOrder
}

// GroupIDs returns group ids in ascending order.
func (w *World) GroupIDs() []int {
	if len(w.groupOrder) != len(w.Groups) {
		w.reindex()
	}
	return w.groupOrder
}

// Clone deep-copies agents, groups and the graph so an algorithm can
// run against a private copy of the world.
func (w *World) Clone() *World {
	clone := &World{
		Agents: make(map[int]*define.Agent, len(w.Agents)),
		Groups: make(map[int]*define.Group, len(w.Groups)),
		Graph:  w.Graph.Clone(),
	}
	for id, a := range w.Agents {
		clone.Agents[id] = a.Clone()
	}
	for id, g := range w.Groups {
		clone.Groups[id] = g.Clone()
	}
	clone.reindex()
	return clone
}

// TotalTaskCount returns the number of tasks currently held across all
// agents, used by load-conservation tests.
func (w *World) TotalTaskCount() int {
	n := 0
	for _, a := range w.Agents {
		n += len(a.Tasks)
	}
	return n
}

// TotalLoad returns the sum of all agent loads.
func (w *World) TotalLoad() float64 {
	sum := 0.0
	for _, a := range w.Agents {
		sum += a.Load
	}
	return sum
}
