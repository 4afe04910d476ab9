package constant

// Evaluator / potential-field weighting. The defaults make survival
// rate dominate the composite target score.
const (
	A = 0.1
	B = 0.9
)

// Fault injection default ratio when a caller does not override it.
const DefaultFaultRatio = 0.3

// Bridge weight the loader uses to stitch disconnected graph
// components together; kept far above any real edge weight so it
// never wins a shortest path unless it is the only option.
const BridgeWeight = 1e6

// MPFTM's gradient-step termination threshold: the best destination's
// gradient Φ(source) - (Φ(dest) + Alpha*dist(source,dest)) must exceed
// this for a task to move, matching the source's 0.02 cutoff.
const GradientEpsilon = 0.02

// MPFTM inter/intra travel-cost balance in contextual(destination) + Alpha*dist(source,destination).
const Alpha = 1.0

// Potential-field gain constants, matching CalculatePonField's y/yn/x/xn.
const (
	IntraRepelGain = 0.005
	InterRepelGain = 0.3
	InterAttractGain = 0.1
)

// GBMA adds bridging edges between group leaders too, but at weight
// 10 in the original source (vs. HGTM's weight 1) — preserved as-is,
// see DESIGN.md Open Questions.
const GBMALeaderBridgeWeight = 10.0
const LeaderBridgeWeight = 1.0

// UnreachableDistancePenalty stands in for shortest-path distance when
// no path exists, matching finder_ad_leaders.py's fallback of 100000.0
// on a caught shortest_path_length failure.
const UnreachableDistancePenalty = 1e5
