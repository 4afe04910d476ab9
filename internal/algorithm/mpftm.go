package algorithm

import (
	"faultmesh/internal/algorithm/constant"
	"faultmesh/internal/algorithm/define"
)

// MPFTM runs the two-level migration described for the potential-field
// strategy: a bulk inter-group pass moves the tasks of a faulted
// group's faulted members to the leader of the network's
// lowest-potential group when the source group's potential exceeds the
// network average, then the intra-group gradient-descent pass sheds
// whatever tasks remain one at a time to whichever candidate minimizes
// Φ(dest) + α·dist(source,dest), as long as the gradient over the
// source's own potential exceeds constant.GradientEpsilon, until no
// faulted agent has tasks left or no candidate clears that threshold.
// It is invoked both as a standalone strategy and as HGTM's
// receiver-preparation pass. MPFTM selects no leaders and adds no
// leader bridges itself: when no group has a leader (as in a
// standalone run), the inter-group pass and the other-group leader
// candidates do not apply and every contextual load is 0.
func MPFTM(w *World, a, b float64) []define.MigrationRecord {
	records := interGroupMigration(w, a, b)

	for _, aid := range w.AgentIDs() {
		agent := w.Agents[aid]
		if !agent.Faulted() {
			continue
		}

		for len(agent.Tasks) > 0 {
			intra := IntraPotentials(w, ContextualLoads(w, a, b), a, b)
			inter := InterPotentials(w, a, b)

			destID, gradient, ok := mpftmBestDestination(w, agent, intra, inter)
			if !ok || gradient <= constant.GradientEpsilon {
				break
			}

			task := agent.Tasks[0]
			rec := migrateTask(w, agent, w.Agents[destID], task)
			records = append(records, rec)
		}
	}

	return records
}

// interGroupMigration is the bulk inter-layer pass from
// task_migration_based_pon.py's inter_task_migration: every faulted
// group whose network-layer potential Φ_∞ exceeds the mean across all
// groups hands its faulted members' entire task backlogs to the
// leader of whichever group currently has the lowest Φ_∞, provided
// that group's potential is itself still below the mean. The
// potential snapshot is taken once up front rather than recomputed
// after every single task, a simplification of the original's
// per-migration refresh.
func interGroupMigration(w *World, a, b float64) []define.MigrationRecord {
	var records []define.MigrationRecord

	faultedGroups := make(map[int]bool)
	for _, aid := range w.AgentIDs() {
		if w.Agents[aid].Faulted() {
			faultedGroups[w.Agents[aid].GroupID] = true
		}
	}
	if len(faultedGroups) == 0 {
		return nil
	}

	inter := InterPotentials(w, a, b)
	gids := w.GroupIDs()
	if len(gids) == 0 {
		return nil
	}

	sum := 0.0
	for _, gid := range gids {
		sum += inter[gid].Value()
	}
	average := sum / float64(len(gids))

	targetGid, ok := minPotentialGroup(gids, inter)
	if !ok || inter[targetGid].Value() >= average {
		return nil
	}
	target := w.Groups[targetGid]
	if !target.HasLeader() || w.Agents[target.Leader].Faulted() {
		return nil
	}
	leader := w.Agents[target.Leader]

	for _, gid := range gids {
		if gid == targetGid || !faultedGroups[gid] || inter[gid].Value() <= average {
			continue
		}

		for _, mid := range w.Groups[gid].MemberIDs() {
			member := w.Agents[mid]
			if !member.Faulted() {
				continue
			}
			tasks := append([]*define.Task(nil), member.Tasks...)
			for _, t := range tasks {
				records = append(records, migrateTask(w, member, leader, t))
			}
		}
	}

	return records
}

// minPotentialGroup returns the group id with the lowest Φ_∞
// (attract+repel), matching find_min_pn.
func minPotentialGroup(gids []int, inter map[int]define.Potential) (int, bool) {
	best, bestVal, found := -1, 0.0, false
	for _, gid := range gids {
		v := inter[gid].Value()
		if !found || v < bestVal {
			best, bestVal, found = gid, v, true
		}
	}
	return best, found
}

// mpftmBestDestination scores same-group non-faulted neighbors (via
// the intra field) and other groups' leaders (via the inter field,
// scaled by the destination group's interaction level) by
// score(dest) = Φ(dest) + α·dist(source,dest), and returns whichever
// minimizes that score together with the resulting gradient
// Φ(source) - score(dest): a positive gradient is a strict improvement
// over leaving the task on source.
func mpftmBestDestination(w *World, agent *define.Agent, intra map[int]define.Potential, inter map[int]define.Potential) (int, float64, bool) {
	sourcePhi := intra[agent.ID].Value()

	best, bestScore, found := -1, 0.0, false

	consider := func(destID int, destPhi float64) {
		dist := w.Graph.Weight(agent.ID, destID)
		score := destPhi + constant.Alpha*dist
		if !found || score < bestScore || (score == bestScore && destID < best) {
			best, bestScore, found = destID, score, true
		}
	}

	for _, nb := range w.Graph.Neighbors(agent.ID) {
		neighbor, ok := w.Agents[nb]
		if !ok || neighbor.GroupID != agent.GroupID || neighbor.Faulted() {
			continue
		}
		consider(nb, intra[nb].Value())
	}

	for _, gid := range w.GroupIDs() {
		if gid == agent.GroupID {
			continue
		}
		g := w.Groups[gid]
		if !g.HasLeader() || w.Agents[g.Leader].Faulted() {
			continue
		}
		consider(g.Leader, inter[gid].Value()*g.InteractionLevel)
	}

	if !found {
		return -1, 0, false
	}
	return best, sourcePhi - bestScore, true
}

// migrateTask moves a single task from source to dest, updating both
// agents' loads and task lists, the groups' loads when the move
// crosses a group boundary, and returns the record to append.
func migrateTask(w *World, source, dest *define.Agent, task *define.Task) define.MigrationRecord {
	if source.GroupID != dest.GroupID {
		w.Groups[source.GroupID].GroupLoad -= task.Size
		w.Groups[dest.GroupID].GroupLoad += task.Size
	}

	source.RemoveTask(task)
	dest.AddTask(task)

	return define.MigrationRecord{From: source.ID, To: dest.ID}
}
