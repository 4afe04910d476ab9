package algorithm

import (
	"faultmesh/internal/algorithm/constant"
	"faultmesh/internal/algorithm/define"
	"faultmesh/internal/algorithm/utils"
)

// GS is group survivability: monotone-decreasing in groupLoad per
// member, clamped to [0.6, 1].
func GS(g *define.Group) float64 {
	members := float64(len(g.Members))
	if members == 0 {
		return 0.6
	}
	v := 1 - utils.Sig(g.GroupLoad/(members*200))
	if v < 0.6 {
		return 0.6
	}
	return v
}

// IS is individual survivability: monotone-decreasing in the agent's
// own load, scaled by its group's survivability, clamped to [0.3, 1].
func IS(a *define.Agent, g *define.Group) float64 {
	v := GS(g) * (1 - utils.Sig(a.Load/60))
	if v < 0.3 {
		return 0.3
	}
	return v
}

// ContextualLoad computes the node potential used by HGTM's potential
// fields: the agent's own load-to-capacity gap versus survivability,
// plus a neighborhood term and a cost-to-leader term.
func ContextualLoad(w *World, agentID, leaderID int, a, b float64) float64 {
	agent := w.Agents[agentID]
	group := w.Groups[agent.GroupID]

	f := a*agent.Load/agent.Capacity - b*IS(agent, group)

	neighbors := w.Graph.Neighbors(agentID)
	totalDeg := float64(len(neighbors))

	domainF := 0.0
	for _, n := range neighbors {
		neighbor, ok := w.Agents[n]
		if !ok || neighbor.GroupID != agent.GroupID {
			continue
		}
		domainF += a*neighbor.Load/neighbor.Capacity - b*IS(neighbor, group)
	}

	costSum := 0.0
	for _, n := range neighbors {
		neighbor, ok := w.Agents[n]
		if !ok || neighbor.GroupID != agent.GroupID {
			continue
		}
		if wt, ok := w.Graph.EdgeWeight(agentID, n); ok {
			costSum += wt
		}
	}
	costSum += w.Graph.Weight(leaderID, agentID)

	// size/domain_num denominators use the robot's total graph degree
	// (all edges, not just same-group ones), even though the
	// numerators above stay same-group-filtered — matching
	// calculate_contextual_load's size/domain_num.
	return f + 0.1*(domainF/(totalDeg+2)+costSum/(totalDeg+1))
}

// sigOf is an alias kept local to this package for readability in the
// benefit-function math below, which quotes the spec's sig(x) directly.
func sigOf(x float64) float64 { return utils.Sig(x) }

// benIntraResult is the argmax companion to BenIntra: it returns both
// the best achievable benefit and the neighbor that attains it, since
// callers need the target agent, not just the score.
type benIntraResult struct {
	benefit float64
	target  int
	found   bool
}

// BenIntra scores migrating every task held by bag (a set of faulted
// agent ids) to each eligible same-group neighbor of the bag, and
// returns the best score together with its target. A neighbor is
// eligible if it belongs to the same group as the bag's first member,
// is itself non-faulted, and is not itself in the bag.
func BenIntra(w *World, bag []int) benIntraResult {
	bagSet := make(map[int]bool, len(bag))
	var groupID int
	loadInBag := 0.0
	for i, id := range bag {
		bagSet[id] = true
		a := w.Agents[id]
		loadInBag += a.Load
		if i == 0 {
			groupID = a.GroupID
		}
	}

	candidates := make(map[int]bool)
	for _, id := range bag {
		for _, n := range w.Graph.Neighbors(id) {
			neighbor, ok := w.Agents[n]
			if !ok || bagSet[n] || neighbor.Faulted() || neighbor.GroupID != groupID {
				continue
			}
			candidates[n] = true
		}
	}

	best := benIntraResult{}
	group := w.Groups[groupID]

	for n := range candidates {
		var sameGroupNeighbors []int
		for _, m := range w.Graph.Neighbors(n) {
			ma, ok := w.Agents[m]
			if !ok || ma.GroupID != groupID {
				continue
			}
			sameGroupNeighbors = append(sameGroupNeighbors, m)
		}
		if len(sameGroupNeighbors) == 0 {
			continue
		}

		cd := 0.0
		meanC := 0.0
		for _, m := range sameGroupNeighbors {
			ma := w.Agents[m]
			if wt, ok := w.Graph.EdgeWeight(n, m); ok {
				cd += wt * float64(len(ma.Tasks))
			}
			meanC += ma.Load / ma.Capacity
		}
		meanC /= float64(len(sameGroupNeighbors))
		cd /= float64(len(sameGroupNeighbors))
		cd += loadInBag
		for _, x := range bag {
			if wt, ok := w.Graph.EdgeWeight(x, n); ok {
				cd += wt
			}
		}

		if meanC == 0 {
			continue
		}
		costIncreaseP := cd / meanC

		completeP := 1 - max64(sigOf(loadInBag)*group.InteractionLevel, 0.5)

		ben := constant.B*completeP - constant.A*costIncreaseP

		if !best.found || ben > best.benefit {
			best = benIntraResult{benefit: ben, target: n, found: true}
		} else if ben == best.benefit && n < best.target {
			best.target = n
		}
	}

	return best
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
