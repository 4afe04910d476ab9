package algorithm

import (
	"math"

	"faultmesh/internal/algorithm/constant"
	"faultmesh/internal/algorithm/define"
)

// ContextualLoads recomputes every agent's contextual-load scalar
// against the current world state and leader assignment. Values
// outside [-1000, 1000] are clamped to 1.0, matching the source's
// sanity guard against leaders that are momentarily unreachable.
func ContextualLoads(w *World, a, b float64) map[int]float64 {
	out := make(map[int]float64, len(w.Agents))
	for _, id := range w.AgentIDs() {
		agent := w.Agents[id]
		group := w.Groups[agent.GroupID]
		leader := group.Leader
		if leader == define.LeaderNone {
			out[id] = 0
			continue
		}
		v := ContextualLoad(w, id, leader, a, b)
		if v > 1000 || v < -1000 {
			v = 1.0
		}
		out[id] = v
	}
	return out
}

// IntraPotentials computes the per-agent node potential field: an
// attractive term pulling an agent toward the group mean contextual
// load, and a repulsive term from same-group faulted neighbors equal
// to b·IntraRepelGain/s², where s is the sum of the inverse edge
// weights to those neighbors (infinite for a faulted agent itself).
func IntraPotentials(w *World, contextual map[int]float64, a, b float64) map[int]define.Potential {
	out := make(map[int]define.Potential, len(w.Agents))

	sum, n := 0.0, 0
	for _, v := range contextual {
		sum += v
		n++
	}
	mean := 0.0
	if n > 0 {
		mean = sum / float64(n)
	}

	for _, id := range w.AgentIDs() {
		agent := w.Agents[id]
		attract := -a * (contextual[id] - mean)

		repelDenom := 0.0
		for _, nb := range w.Graph.Neighbors(id) {
			neighbor, ok := w.Agents[nb]
			if !ok || neighbor.GroupID != agent.GroupID || !neighbor.Faulted() {
				continue
			}
			if wt, ok := w.Graph.EdgeWeight(id, nb); ok && wt > 0 {
				repelDenom += 1 / wt
			}
		}

		var repel float64
		switch {
		case agent.Faulted():
			repel = math.Inf(1) / 2
		case repelDenom != 0:
			repel = b * (constant.IntraRepelGain / repelDenom) * (1 / repelDenom)
		default:
			repel = 0
		}

		out[id] = define.Potential{Attract: attract, Repel: repel}
	}

	return out
}

// InterPotentials computes the per-group network-layer potential: an
// attractive term proportional to the group's total load, and a
// repulsive term proportional to the ratio of faulted to non-faulted
// members (infinite once every member is faulted).
func InterPotentials(w *World, a, b float64) map[int]define.Potential {
	out := make(map[int]define.Potential, len(w.Groups))

	for _, gid := range w.GroupIDs() {
		g := w.Groups[gid]
		attract := a * constant.InterAttractGain * g.GroupLoad

		faulted, total := 0, 0
		for _, mid := range g.MemberIDs() {
			total++
			if w.Agents[mid].Faulted() {
				faulted++
			}
		}

		var repel float64
		if total > 0 && faulted == total {
			repel = math.Inf(1) / 2
		} else if total-faulted > 0 {
			repel = b * (constant.InterRepelGain * float64(faulted) / float64(total-faulted))
		}

		out[gid] = define.Potential{Attract: attract, Repel: repel}
	}

	return out
}
