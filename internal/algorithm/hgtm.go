package algorithm

import (
	"container/heap"
	"log"
	"math"
	"sort"

	"faultmesh/internal/algorithm/constant"
	"faultmesh/internal/algorithm/define"
)

// HGTM runs the master strategy's six sub-phases in order: leader
// selection, ad-leader selection, leader-fault replacement,
// contextual-load computation, potential-field construction, and
// bag-based group formation and migration.
func HGTM(w *World, a, b float64) []define.MigrationRecord {
	selectLeaders(w)
	bridgeLeaders(w, constant.LeaderBridgeWeight)
	selectAdLeaders(w, 2)
	replaceFaultedLeaders(w)

	bags := formBags(w)
	return migrateBags(w, bags, a, b)
}

// selectLeaders picks, per group, the highest-betweenness non-faulted
// member as leader (ties broken by lowest id); if every member is
// faulted, the highest-scoring member is chosen regardless, leaving
// replaceFaultedLeaders to try to promote a backup.
func selectLeaders(w *World) {
	for _, gid := range w.GroupIDs() {
		g := w.Groups[gid]
		members := g.MemberIDs()
		if len(members) == 0 {
			log.Print(&EmptyGroupError{GroupID: gid})
			continue
		}

		scores := BetweennessCentrality(w.Graph, members)

		bestAny, bestNonFaulted := members[0], -1
		bestAnyScore, bestNonFaultedScore := -1.0, -1.0

		for _, id := range members {
			s := scores[id]
			if s > bestAnyScore {
				bestAnyScore, bestAny = s, id
			}
			if !w.Agents[id].Faulted() && s > bestNonFaultedScore {
				bestNonFaultedScore, bestNonFaulted = s, id
			}
		}

		if bestNonFaulted != -1 {
			g.Leader = bestNonFaulted
		} else {
			g.Leader = bestAny
		}
	}
}

// bridgeLeaders adds a direct edge of the given weight between every
// pair of distinct groups' leaders, so inter-group migration always
// has a path to try.
func bridgeLeaders(w *World, weight float64) {
	gids := w.GroupIDs()
	for i := 0; i < len(gids); i++ {
		li := w.Groups[gids[i]].Leader
		if li == define.LeaderNone {
			continue
		}
		for j := i + 1; j < len(gids); j++ {
			lj := w.Groups[gids[j]].Leader
			if lj == define.LeaderNone {
				continue
			}
			w.Graph.AddLeaderBridge(li, lj, weight)
		}
	}
}

// iscore ranks a candidate leader the way finder_ad_leaders.py and
// ad_leaders_replace.py do: (betweenness+1) divided by the agent's
// failure probability 1-(1-faultA)(1-faultO), so a fully reliable
// agent (failure probability 0) ranks as the strongest possible
// candidate rather than dividing by zero.
func iscore(betweenness float64, agent *define.Agent) float64 {
	unreliability := 1 - (1-float64(agent.FaultA))*(1-agent.FaultO)
	if unreliability <= 0 {
		return math.Inf(1)
	}
	return (betweenness + 1) / unreliability
}

// selectAdLeaders picks, per group, up to maxSize backup leaders,
// excluding the leader and any faulted member, ordered by descending
// iscore*dist(leader,candidate) (ties by lowest id) — matching
// finder_ad_leaders.py's ranking, which favors reliable, central nodes
// that are also far enough from the current leader to be a useful
// stand-in.
func selectAdLeaders(w *World, maxSize int) {
	for _, gid := range w.GroupIDs() {
		g := w.Groups[gid]
		if g.Leader == define.LeaderNone {
			continue
		}
		members := g.MemberIDs()
		scores := BetweennessCentrality(w.Graph, members)

		var candidates []int
		rank := make(map[int]float64)
		for _, id := range members {
			if id == g.Leader || w.Agents[id].Faulted() {
				continue
			}
			dist := w.Graph.Weight(g.Leader, id)
			if math.IsInf(dist, 1) {
				dist = constant.UnreachableDistancePenalty
			}
			rank[id] = iscore(scores[id], w.Agents[id]) * dist
			candidates = append(candidates, id)
		}
		sort.Slice(candidates, func(i, j int) bool {
			ri, rj := rank[candidates[i]], rank[candidates[j]]
			if ri != rj {
				return ri > rj
			}
			return candidates[i] < candidates[j]
		})

		if len(candidates) > maxSize {
			candidates = candidates[:maxSize]
		}
		g.AdLeaders = candidates
	}
}

// replaceFaultedLeaders promotes whichever ad-leader has the highest
// iscore (recomputed over the group's current betweenness, with no
// distance term since the failed leader no longer anchors one) when
// the selected leader turns out to be faulted; a group left with no
// eligible backup has no leader and contributes no migrations.
func replaceFaultedLeaders(w *World) {
	for _, gid := range w.GroupIDs() {
		g := w.Groups[gid]
		if g.Leader == define.LeaderNone || !w.Agents[g.Leader].Faulted() {
			continue
		}
		if len(g.AdLeaders) == 0 {
			log.Print(&LeaderlessGroupError{GroupID: gid})
			g.Leader = define.LeaderNone
			continue
		}

		scores := BetweennessCentrality(w.Graph, g.MemberIDs())
		bestIdx, bestScore := 0, math.Inf(-1)
		for i, id := range g.AdLeaders {
			s := iscore(scores[id], w.Agents[id])
			if s > bestScore {
				bestIdx, bestScore = i, s
			}
		}

		g.Leader = g.AdLeaders[bestIdx]
		g.AdLeaders = append(g.AdLeaders[:bestIdx], g.AdLeaders[bestIdx+1:]...)
	}
}

// bagTarget pairs a bag (faulted agent ids slated to migrate together)
// with the neighbor BenIntra chose as its destination.
type bagTarget struct {
	members []int
	target  int
	hasTarget bool
}

// formBags runs intra-layer bag formation: one singleton bag per
// faulted agent, merged greedily by a max-heap on total task count
// whenever BenIntra says the merge strictly improves on the sum of
// the two bags' standalone benefit.
func formBags(w *World) []bagTarget {
	var bags []bag
	for _, id := range w.AgentIDs() {
		if w.Agents[id].Faulted() {
			bags = append(bags, bag{id})
		}
	}

	h := &bagHeap{w: w}
	for _, b := range bags {
		heap.Push(h, b)
	}

	var final []bag
	for h.Len() > 0 {
		m := heap.Pop(h).(bag)

		var remaining []bag
		for h.Len() > 0 {
			remaining = append(remaining, heap.Pop(h).(bag))
		}

		merged := false
		for i, n := range remaining {
			candidate := append(append(bag{}, n...), m...)
			benTemp := benefitOrNegInf(w, candidate)
			benM := benefitOrNegInf(w, m)
			benN := benefitOrNegInf(w, n)

			if benTemp > benM+benN {
				heap.Push(h, candidate)
				for j, r := range remaining {
					if j != i {
						heap.Push(h, r)
					}
				}
				merged = true
				break
			}
		}

		if !merged {
			final = append(final, m)
			for _, r := range remaining {
				heap.Push(h, r)
			}
		}
	}

	targets := make([]bagTarget, len(final))
	for i, b := range final {
		res := BenIntra(w, b)
		targets[i] = bagTarget{members: b, target: res.target, hasTarget: res.found}
	}
	sort.Slice(targets, func(i, j int) bool { return minID(targets[i].members) < minID(targets[j].members) })
	return targets
}

// benefitOrNegInf is BenIntra's benefit with ben_intra.py's "no
// eligible destination" sentinel: -infinity rather than Go's benefit-0
// zero value, so a bag with no reachable destination never blocks a
// merge that would give it one.
func benefitOrNegInf(w *World, b bag) float64 {
	res := BenIntra(w, b)
	if !res.found {
		return math.Inf(-1)
	}
	return res.benefit
}

func minID(ids []int) int {
	m := ids[0]
	for _, id := range ids[1:] {
		if id < m {
			m = id
		}
	}
	return m
}

type bag []int

// bagHeap is a max-heap on total task count held across a bag's
// members (ties broken by lowest member id), matching the source's
// compare_bag priority. It carries a World reference purely to read
// task counts; it never mutates world state.
type bagHeap struct {
	w     *World
	items []bag
}

func (h bagHeap) Len() int { return len(h.items) }
func (h bagHeap) Less(i, j int) bool {
	si, sj := h.bagTaskCount(h.items[i]), h.bagTaskCount(h.items[j])
	if si != sj {
		return si > sj
	}
	return minID(h.items[i]) < minID(h.items[j])
}
func (h bagHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *bagHeap) Push(x interface{}) {
	h.items = append(h.items, x.(bag))
}
func (h *bagHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

func (h bagHeap) bagTaskCount(b bag) int {
	n := 0
	for _, id := range b {
		n += len(h.w.Agents[id].Tasks)
	}
	return n
}

// migrateBags decides which bags have a receiving destination with
// enough headroom, runs MPFTM as a receiver-preparation pass (per the
// temporary faultA/faultO swap described for HGTM), and then executes
// every bag's task migrations against its chosen target.
func migrateBags(w *World, bags []bagTarget, a, b float64) []define.MigrationRecord {
	var records []define.MigrationRecord

	var receiving []int
	for _, bt := range bags {
		if !bt.hasTarget {
			continue
		}
		dest := w.Agents[bt.target]
		qSize := len(dest.Tasks)
		gSize := 0
		for _, m := range bt.members {
			gSize += len(w.Agents[m].Tasks)
		}
		rl := w.Groups[dest.GroupID].InteractionLevel
		if float64(gSize)*(1-rl)*2 > float64(qSize) {
			receiving = append(receiving, bt.target)
		}
	}

	var originalSources []int
	for _, id := range w.AgentIDs() {
		if w.Agents[id].Faulted() {
			originalSources = append(originalSources, id)
		}
	}

	for _, id := range originalSources {
		agent := w.Agents[id]
		agent.FaultA = 0
		agent.FaultO = 1
	}
	for _, id := range receiving {
		w.Agents[id].FaultA = 1
	}

	records = append(records, MPFTM(w, a, b)...)

	for _, id := range receiving {
		w.Agents[id].FaultA = 0
	}

	for _, bt := range bags {
		if !bt.hasTarget {
			continue
		}
		dest := w.Agents[bt.target]
		members := append([]int(nil), bt.members...)
		sort.Ints(members)
		for _, mid := range members {
			member := w.Agents[mid]
			tasks := append([]*define.Task(nil), member.Tasks...)
			for _, t := range tasks {
				records = append(records, migrateTask(w, member, dest, t))
			}
		}
	}

	return records
}
