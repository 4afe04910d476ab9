package utils

import (
	"container/heap"
	"math"
)

// ShortestPaths is the result of a single-source Dijkstra run: Dist
// maps reachable vertex ids to their distance from the source, and
// Prev maps a vertex to the predecessor on its shortest path (absent
// for the source itself and for unreachable vertices).
type ShortestPaths struct {
	Source int
	Dist   map[int]float64
	Prev   map[int]int
}

// Path reconstructs the shortest path from the source to target,
// inclusive of both endpoints. Returns an empty slice if target is
// unreachable.
func (sp *ShortestPaths) Path(target int) []int {
	if target == sp.Source {
		return []int{sp.Source}
	}
	if _, ok := sp.Dist[target]; !ok {
		return nil
	}
	path := []int{target}
	cur := target
	for cur != sp.Source {
		prev, ok := sp.Prev[cur]
		if !ok {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Weight returns the shortest-path weight to target, or +Inf if
// unreachable.
func (sp *ShortestPaths) Weight(target int) float64 {
	if target == sp.Source {
		return 0
	}
	if d, ok := sp.Dist[target]; ok {
		return d
	}
	return math.Inf(1)
}

type pqItem struct {
	vertex int
	dist   float64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Dijkstra runs single-source Dijkstra over adj (vertex -> neighbor ->
// non-negative weight) from source, covering every vertex listed in
// nodes even if it has no edges (isolated vertices stay unreachable).
func Dijkstra(adj map[int]map[int]float64, nodes []int, source int) *ShortestPaths {
	dist := make(map[int]float64, len(nodes))
	prev := make(map[int]int, len(nodes))
	visited := make(map[int]bool, len(nodes))

	dist[source] = 0
	pq := &priorityQueue{{vertex: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		u := item.vertex
		if visited[u] {
			continue
		}
		visited[u] = true

		for v, w := range adj[u] {
			if visited[v] {
				continue
			}
			nd := dist[u] + w
			if cur, ok := dist[v]; !ok || nd < cur {
				dist[v] = nd
				prev[v] = u
				heap.Push(pq, pqItem{vertex: v, dist: nd})
			}
		}
	}

	delete(dist, source)
	dist[source] = 0

	return &ShortestPaths{Source: source, Dist: dist, Prev: prev}
}
