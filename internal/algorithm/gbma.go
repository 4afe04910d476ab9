package algorithm

import (
	"log"

	"faultmesh/internal/algorithm/constant"
	"faultmesh/internal/algorithm/define"
)

// GBMA is the greedy shortest-path strategy: every faulted agent hands
// its tasks, one at a time, to whichever same-group non-faulted member
// is closest by graph distance (ties broken by lowest id), refusing
// any candidate that would overflow its capacity. A task with no legal
// destination stays where it is.
func GBMA(w *World, a, b float64) []define.MigrationRecord {
	bridgeLeadersForGreedy(w, constant.GBMALeaderBridgeWeight)

	var records []define.MigrationRecord
	for _, aid := range w.AgentIDs() {
		source := w.Agents[aid]
		if !source.Faulted() {
			continue
		}

		for len(source.Tasks) > 0 {
			task := source.Tasks[0]
			dest := bestByShortestPath(w, source, task)
			if dest == nil {
				log.Print(&NoEligibleDestinationError{AgentID: source.ID})
				break
			}
			records = append(records, migrateTask(w, source, dest, task))
		}
	}
	return records
}

func bestByShortestPath(w *World, source *define.Agent, task *define.Task) *define.Agent {
	var best *define.Agent
	bestDist := 0.0

	for _, mid := range w.Groups[source.GroupID].MemberIDs() {
		if mid == source.ID {
			continue
		}
		candidate := w.Agents[mid]
		if candidate.Faulted() || candidate.Load+task.Size > candidate.Capacity {
			continue
		}
		dist := w.Graph.Weight(source.ID, mid)
		if best == nil || dist < bestDist || (dist == bestDist && mid < best.ID) {
			best, bestDist = candidate, dist
		}
	}
	return best
}

// bridgeLeadersForGreedy gives GBMA the same group-leader bridging
// HGTM relies on, but at its own (heavier) weight.
func bridgeLeadersForGreedy(w *World, weight float64) {
	selectLeadersIfMissing(w)
	bridgeLeaders(w, weight)
}

// selectLeadersIfMissing runs leader selection only for groups that
// don't already have one, so GBMA can bridge group leaders without
// depending on HGTM having run first.
func selectLeadersIfMissing(w *World) {
	needsSelection := false
	for _, gid := range w.GroupIDs() {
		if w.Groups[gid].Leader == define.LeaderNone {
			needsSelection = true
			break
		}
	}
	if needsSelection {
		selectLeaders(w)
	}
}
