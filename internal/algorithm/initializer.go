package algorithm

import (
	"container/heap"
	"math/rand"
	"sort"

	"faultmesh/internal/algorithm/define"
)

// Initialize runs the two-phase initializer against a freshly built
// world: initial task matching, then deterministic fault injection.
// rng supplies the only non-deterministic input (interactionLevel);
// callers that need bit-identical runs must pass a rand.Rand seeded
// the same way each time. Returns the tasks left over with a
// non-(-1) arriveTime, untouched by this pass.
func Initialize(w *World, tasks []*define.Task, faultRatio float64, rng *rand.Rand) []*define.Task {
	remaining := matchInitialTasks(w, tasks, rng)
	injectFaults(w, faultRatio)
	return remaining
}

// matchInitialTasks partitions tasks into the present-at-t0 subset and
// assigns them: one task each to agents walked in capacity-descending
// order, then repeatedly the next task to whichever agent currently
// has the smallest load/capacity ratio.
func matchInitialTasks(w *World, tasks []*define.Task, rng *rand.Rand) []*define.Task {
	var preTasks []*define.Task
	var remaining []*define.Task
	for _, t := range tasks {
		if t.ArriveTime == -1 {
			preTasks = append(preTasks, t)
		} else {
			remaining = append(remaining, t)
		}
	}

	sort.SliceStable(preTasks, func(i, j int) bool { return preTasks[i].Size > preTasks[j].Size })

	agentIDs := w.AgentIDs()
	ordered := make([]*define.Agent, len(agentIDs))
	for i, id := range agentIDs {
		ordered[i] = w.Agents[id]
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Capacity > ordered[j].Capacity })

	assign := func(a *define.Agent) {
		if len(preTasks) == 0 {
			return
		}
		t := preTasks[0]
		preTasks = preTasks[1:]
		a.AddTask(t)
		w.Groups[a.GroupID].GroupLoad += t.Size
	}

	pq := &ratioHeap{}
	heap.Init(pq)
	counter := 0
	for _, a := range ordered {
		assign(a)
		heap.Push(pq, ratioItem{ratio: a.Load / a.Capacity, seq: counter, agent: a})
		counter++
	}

	for len(preTasks) > 0 {
		item := heap.Pop(pq).(ratioItem)
		assign(item.agent)
		heap.Push(pq, ratioItem{ratio: item.agent.Load / item.agent.Capacity, seq: counter, agent: item.agent})
		counter++
	}

	for _, gid := range w.GroupIDs() {
		g := w.Groups[gid]
		capSum := 0.0
		for _, aid := range g.MemberIDs() {
			capSum += w.Agents[aid].Capacity
		}
		g.GroupCapacity = capSum
		if rng.Intn(2) == 1 {
			g.InteractionLevel = 0.2
		} else {
			g.InteractionLevel = 0.1
		}
	}

	return remaining
}

// injectFaults marks a deterministic subset of agents as functionally
// faulted (ascending id order, every agent whose id mod step is 1) and
// derives every agent's overload-fault probability from IS.
func injectFaults(w *World, faultRatio float64) {
	ids := w.AgentIDs()
	n := len(ids)
	if n == 0 {
		return
	}

	k := int(faultRatio * float64(n))
	if k < 1 {
		k = 1
	}
	step := n / k
	if step < 1 {
		step = 1
	}

	for _, id := range ids {
		agent := w.Agents[id]
		if id%step == 1 {
			agent.FaultA = 1
			w.Groups[agent.GroupID].GroupCapacity -= agent.Capacity
		}
	}

	for _, id := range ids {
		agent := w.Agents[id]
		group := w.Groups[agent.GroupID]
		agent.FaultO = 1 - IS(agent, group)
	}
}

type ratioItem struct {
	ratio float64
	seq   int
	agent *define.Agent
}

type ratioHeap []ratioItem

func (h ratioHeap) Len() int { return len(h) }
func (h ratioHeap) Less(i, j int) bool {
	if h[i].ratio != h[j].ratio {
		return h[i].ratio < h[j].ratio
	}
	return h[i].seq < h[j].seq
}
func (h ratioHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *ratioHeap) Push(x interface{}) { *h = append(*h, x.(ratioItem)) }
func (h *ratioHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
