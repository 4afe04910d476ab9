package algorithm

import (
	"log"

	"faultmesh/internal/algorithm/define"
)

// MMLMA is the greedy max-remaining-capacity strategy: every faulted
// agent hands its tasks, one at a time, to whichever same-group
// non-faulted member has the most remaining headroom (capacity minus
// load, ties broken by lowest id), refusing any candidate that would
// overflow. A task with no legal destination stays where it is.
//
// An earlier version of this strategy added small random noise to its
// returned costs; that noise looked like debug scaffolding rather than
// an intentional part of the algorithm and is not reproduced here.
func MMLMA(w *World, a, b float64) []define.MigrationRecord {
	var records []define.MigrationRecord
	for _, aid := range w.AgentIDs() {
		source := w.Agents[aid]
		if !source.Faulted() {
			continue
		}

		for len(source.Tasks) > 0 {
			task := source.Tasks[0]
			dest := bestByRemainingCapacity(w, source, task)
			if dest == nil {
				log.Print(&NoEligibleDestinationError{AgentID: source.ID})
				break
			}
			records = append(records, migrateTask(w, source, dest, task))
		}
	}
	return records
}

func bestByRemainingCapacity(w *World, source *define.Agent, task *define.Task) *define.Agent {
	var best *define.Agent
	bestHeadroom := 0.0

	for _, mid := range w.Groups[source.GroupID].MemberIDs() {
		if mid == source.ID {
			continue
		}
		candidate := w.Agents[mid]
		if candidate.Faulted() || candidate.Load+task.Size > candidate.Capacity {
			continue
		}
		headroom := candidate.Capacity - candidate.Load
		if best == nil || headroom > bestHeadroom || (headroom == bestHeadroom && mid < best.ID) {
			best, bestHeadroom = candidate, headroom
		}
	}
	return best
}
