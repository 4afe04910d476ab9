package algorithm

import "container/heap"

// BetweennessCentrality computes weighted betweenness centrality
// (Brandes' algorithm, Dijkstra-based shortest-path counting)
// restricted to the induced subgraph over nodes: only edges between
// two members of nodes are considered, and path counts only accumulate
// over intermediate vertices that are also members of nodes. Used by
// HGTM to rank a group's own members without letting paths leak
// through other groups.
func BetweennessCentrality(g *Graph, nodes []int) map[int]float64 {
	score := make(map[int]float64, len(nodes))
	for _, v := range nodes {
		score[v] = 0
	}

	member := make(map[int]bool, len(nodes))
	for _, v := range nodes {
		member[v] = true
	}

	subAdj := make(map[int]map[int]float64, len(nodes))
	for _, v := range nodes {
		subAdj[v] = make(map[int]float64)
		for _, n := range g.Neighbors(v) {
			if !member[n] {
				continue
			}
			if w, ok := g.EdgeWeight(v, n); ok {
				subAdj[v][n] = w
			}
		}
	}

	for _, s := range nodes {
		stack, pred, sigma, dist := brandesDijkstra(subAdj, nodes, s)

		delta := make(map[int]float64, len(nodes))
		for _, v := range nodes {
			delta[v] = 0
		}

		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				if sigma[w] == 0 {
					continue
				}
				delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
			}
			if w != s {
				score[w] += delta[w]
			}
		}
		_ = dist
	}

	// Undirected graph: Brandes accumulates each pair twice.
	for v := range score {
		score[v] /= 2
	}

	return score
}

type bnItem struct {
	vertex int
	dist   float64
}

type bnQueue []bnItem

func (q bnQueue) Len() int            { return len(q) }
func (q bnQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q bnQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *bnQueue) Push(x interface{}) { *q = append(*q, x.(bnItem)) }
func (q *bnQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// brandesDijkstra is Brandes' single-source shortest-path accumulation
// phase generalized to weighted edges: it tracks not just distance but
// the number of shortest paths (sigma) and the visitation order
// (stack) needed by the dependency-accumulation phase above.
func brandesDijkstra(adj map[int]map[int]float64, nodes []int, s int) (stack []int, pred map[int][]int, sigma map[int]float64, dist map[int]float64) {
	dist = make(map[int]float64, len(nodes))
	sigma = make(map[int]float64, len(nodes))
	pred = make(map[int][]int, len(nodes))
	visited := make(map[int]bool, len(nodes))

	for _, v := range nodes {
		dist[v] = -1
		sigma[v] = 0
	}
	dist[s] = 0
	sigma[s] = 1

	pq := &bnQueue{{vertex: s, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(bnItem)
		v := item.vertex
		if visited[v] {
			continue
		}
		visited[v] = true
		stack = append(stack, v)

		for w, weight := range adj[v] {
			nd := dist[v] + weight
			if dist[w] < 0 || nd < dist[w] {
				dist[w] = nd
				heap.Push(pq, bnItem{vertex: w, dist: nd})
				sigma[w] = sigma[v]
				pred[w] = []int{v}
			} else if nd == dist[w] {
				sigma[w] += sigma[v]
				pred[w] = append(pred[w], v)
			}
		}
	}

	return stack, pred, sigma, dist
}
