package algorithm

import (
	"math/rand"
	"testing"

	"faultmesh/internal/algorithm/define"
)

func twoAgentInstance() *Instance {
	agents := []*define.Agent{
		{ID: 0, Capacity: 10, GroupID: 0},
		{ID: 1, Capacity: 10, GroupID: 0},
	}
	g := NewGraph([]Edge{{U: 0, V: 1, Weight: 1}})
	tasks := []*define.Task{{ID: 0, Size: 5, ArriveTime: -1}}
	return &Instance{Agents: agents, Tasks: tasks, Graph: g}
}

// S1: a single faulted agent with one task must hand it to its only
// neighbor, under every strategy. The world is built by hand: fault
// injection over two agents would fault agent 1, not agent 0.
func TestS1TrivialMigration(t *testing.T) {
	for _, strategy := range []string{StrategyHGTM, StrategyMPFTM, StrategyGBMA, StrategyMMLMA} {
		agents := []*define.Agent{
			{ID: 0, Capacity: 10, GroupID: 0, FaultA: 1},
			{ID: 1, Capacity: 10, GroupID: 0},
		}
		w := NewWorld(agents, NewGraph([]Edge{{U: 0, V: 1, Weight: 1}}))
		w.Agents[0].AddTask(&define.Task{ID: 0, Size: 5, ArriveTime: -1})
		w.Groups[0].GroupLoad = 5

		var records []define.MigrationRecord
		switch strategy {
		case StrategyHGTM:
			records = HGTM(w, 0.1, 0.9)
		case StrategyMPFTM:
			records = MPFTM(w, 0.1, 0.9)
		case StrategyGBMA:
			records = GBMA(w, 0.1, 0.9)
		case StrategyMMLMA:
			records = MMLMA(w, 0.1, 0.9)
		}
		result := Evaluate(w, records, 0.1, 0.9)
		if len(w.Agents[0].Tasks) != 0 {
			t.Fatalf("%s: task should have left agent 0", strategy)
		}
		if len(records) != 1 {
			t.Fatalf("%s: expected 1 migration record, got %d", strategy, len(records))
		}
		if records[0].From != 0 || records[0].To != 1 {
			t.Fatalf("%s: expected 0->1, got %d->%d", strategy, records[0].From, records[0].To)
		}
		if result.ExecCost != 0.5 {
			t.Fatalf("%s: expected execCost 0.5, got %v", strategy, result.ExecCost)
		}
		if result.MigCost != 1.0 {
			t.Fatalf("%s: expected migCost 1.0, got %v", strategy, result.MigCost)
		}
	}
}

// S2: both agents faulted, no non-faulted destination exists, task
// stays put, no record for the greedy strategies.
func TestS2NoDestination(t *testing.T) {
	agents := []*define.Agent{
		{ID: 0, Capacity: 10, GroupID: 0, FaultA: 1},
		{ID: 1, Capacity: 10, GroupID: 0, FaultA: 1},
	}
	g := NewGraph([]Edge{{U: 0, V: 1, Weight: 1}})
	w := NewWorld(agents, g)
	w.Agents[0].AddTask(&define.Task{ID: 0, Size: 5, ArriveTime: -1})
	w.Groups[0].GroupLoad = 5

	for _, strategy := range []string{StrategyGBMA, StrategyMMLMA} {
		clone := w.Clone()
		var records []define.MigrationRecord
		switch strategy {
		case StrategyGBMA:
			records = GBMA(clone, 0.1, 0.9)
		case StrategyMMLMA:
			records = MMLMA(clone, 0.1, 0.9)
		}
		if len(records) != 0 {
			t.Fatalf("%s: expected no migration records, got %d", strategy, len(records))
		}
		if len(clone.Agents[0].Tasks) != 1 {
			t.Fatalf("%s: task should remain on source", strategy)
		}
	}
}

// S4: two identical candidates, tie-break picks the lowest id.
func TestS4TieBreaking(t *testing.T) {
	agents := []*define.Agent{
		{ID: 0, Capacity: 10, GroupID: 0, FaultA: 1},
		{ID: 1, Capacity: 10, GroupID: 0},
		{ID: 2, Capacity: 10, GroupID: 0},
	}
	edges := []Edge{{U: 0, V: 1, Weight: 1}, {U: 0, V: 2, Weight: 1}, {U: 1, V: 2, Weight: 1}}
	g := NewGraph(edges)
	w := NewWorld(agents, g)
	w.Agents[0].AddTask(&define.Task{ID: 0, Size: 5, ArriveTime: -1})

	for _, strategy := range []string{StrategyGBMA, StrategyMMLMA} {
		clone := w.Clone()
		var records []define.MigrationRecord
		switch strategy {
		case StrategyGBMA:
			records = GBMA(clone, 0.1, 0.9)
		case StrategyMMLMA:
			records = MMLMA(clone, 0.1, 0.9)
		}
		if len(records) != 1 || records[0].To != 1 {
			t.Fatalf("%s: expected migration to agent 1, got %+v", strategy, records)
		}
	}
}

// S5: a disconnected pair forces the loader's bridge edge, so the
// migration still succeeds but the evaluator's distance for it would
// be the (very large) bridge weight rather than +Inf; to exercise the
// genuine UnreachableMigration path we bypass the loader's bridging
// and evaluate a hand-built graph with no path at all.
func TestS5Unreachable(t *testing.T) {
	agents := []*define.Agent{
		{ID: 0, Capacity: 10, GroupID: 0, FaultA: 1},
		{ID: 1, Capacity: 10, GroupID: 0},
	}
	g := NewGraph(nil)
	w := NewWorld(agents, g)
	records := []define.MigrationRecord{{From: 0, To: 1}}

	result := Evaluate(w, records, 0.1, 0.9)
	if result.MigCost != 0 {
		t.Fatalf("expected migCost 0 for unreachable pair, got %v", result.MigCost)
	}
	if result.UnreachableCount != 1 {
		t.Fatalf("expected 1 unreachable diagnostic, got %d", result.UnreachableCount)
	}
}

// S6: load and task-count conservation across all four strategies on
// a larger random instance.
func TestS6LoadConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	const numAgents, numGroups, numTasks = 50, 5, 200
	var agents []*define.Agent
	for i := 0; i < numAgents; i++ {
		agents = append(agents, &define.Agent{
			ID:       i,
			Capacity: 20 + float64(i%10),
			GroupID:  i % numGroups,
		})
	}

	var edges []Edge
	for i := 1; i < numAgents; i++ {
		edges = append(edges, Edge{U: i - 1, V: i, Weight: 1 + float64(i%3)})
	}
	g := NewGraph(edges)

	var tasks []*define.Task
	for i := 0; i < numTasks; i++ {
		tasks = append(tasks, &define.Task{ID: i, Size: float64(1 + i%9), ArriveTime: -1})
	}

	inst := &Instance{Agents: agents, Tasks: tasks, Graph: g}

	for _, strategy := range []string{StrategyHGTM, StrategyMPFTM, StrategyGBMA, StrategyMMLMA} {
		world := NewWorld(cloneAgents(inst.Agents), inst.Graph.Clone())
		Initialize(world, cloneTasks(inst.Tasks), 0.3, rng)

		totalBefore := world.TotalLoad()
		countBefore := world.TotalTaskCount()

		switch strategy {
		case StrategyHGTM:
			HGTM(world, 0.1, 0.9)
		case StrategyMPFTM:
			MPFTM(world, 0.1, 0.9)
		case StrategyGBMA:
			GBMA(world, 0.1, 0.9)
		case StrategyMMLMA:
			MMLMA(world, 0.1, 0.9)
		}

		totalAfter := world.TotalLoad()
		countAfter := world.TotalTaskCount()

		if diff := totalAfter - totalBefore; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("%s: load not conserved, before=%v after=%v", strategy, totalBefore, totalAfter)
		}
		if countAfter != countBefore {
			t.Fatalf("%s: task count not conserved, before=%d after=%d", strategy, countBefore, countAfter)
		}
	}
}

// No destination overflow after GBMA/MMLMA.
func TestNoDestinationOverflow(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	inst := twoAgentInstance()

	for _, strategy := range []string{StrategyGBMA, StrategyMMLMA} {
		world := NewWorld(cloneAgents(inst.Agents), inst.Graph.Clone())
		Initialize(world, cloneTasks(inst.Tasks), 0.5, rng)

		switch strategy {
		case StrategyGBMA:
			GBMA(world, 0.1, 0.9)
		case StrategyMMLMA:
			MMLMA(world, 0.1, 0.9)
		}

		for _, a := range world.Agents {
			if a.Load > a.Capacity+1e-9 {
				t.Fatalf("%s: agent %d overflowed, load=%v capacity=%v", strategy, a.ID, a.Load, a.Capacity)
			}
		}
	}
}

// Evaluator idempotence: running it twice yields identical numbers.
func TestEvaluatorIdempotence(t *testing.T) {
	w := twoAgentInstance()
	world := NewWorld(cloneAgents(w.Agents), w.Graph.Clone())
	Initialize(world, cloneTasks(w.Tasks), 0.5, rand.New(rand.NewSource(1)))
	records := GBMA(world, 0.1, 0.9)

	r1 := Evaluate(world, records, 0.1, 0.9)
	r2 := Evaluate(world, records, 0.1, 0.9)

	if *r1 != *r2 {
		t.Fatalf("evaluator not idempotent: %+v vs %+v", r1, r2)
	}
}

// Clamp correctness for IS/GS/survivalRate across a run.
func TestClampCorrectness(t *testing.T) {
	w := twoAgentInstance()
	world := NewWorld(cloneAgents(w.Agents), w.Graph.Clone())
	Initialize(world, cloneTasks(w.Tasks), 0.5, rand.New(rand.NewSource(2)))

	for _, id := range world.AgentIDs() {
		agent := world.Agents[id]
		group := world.Groups[agent.GroupID]
		gs := GS(group)
		is := IS(agent, group)
		if gs < 0.6 || gs > 1.0 {
			t.Fatalf("GS out of [0.6,1]: %v", gs)
		}
		if is < 0.3 || is > 1.0 {
			t.Fatalf("IS out of [0.3,1]: %v", is)
		}
	}

	records := GBMA(world, 0.1, 0.9)
	result := Evaluate(world, records, 0.1, 0.9)
	if result.SurvivalRate < 0 || result.SurvivalRate > 1 {
		t.Fatalf("survivalRate out of [0,1]: %v", result.SurvivalRate)
	}
}

// Benefit-function monotonicity: increasing loadInBag never increases
// CompleteP, by monotonicity of sig.
func TestBenIntraMonotonicity(t *testing.T) {
	agents := []*define.Agent{
		{ID: 0, Capacity: 10, GroupID: 0, FaultA: 1},
		{ID: 1, Capacity: 10, GroupID: 0},
		{ID: 2, Capacity: 10, GroupID: 0, FaultA: 1},
	}
	edges := []Edge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 1}}
	g := NewGraph(edges)
	w := NewWorld(agents, g)
	w.Groups[0].InteractionLevel = 0.2

	w.Agents[0].AddTask(&define.Task{ID: 0, Size: 5, ArriveTime: -1})
	small := BenIntra(w, []int{0})

	w.Agents[2].AddTask(&define.Task{ID: 1, Size: 50, ArriveTime: -1})
	large := BenIntra(w, []int{0, 2})

	if !small.found || !large.found {
		t.Fatalf("expected both bags to find a target: small=%v large=%v", small, large)
	}
	completeSmall := 1 - max64(sigOf(5)*0.2, 0.5)
	completeLarge := 1 - max64(sigOf(55)*0.2, 0.5)
	if completeLarge > completeSmall {
		t.Fatalf("CompleteP should be non-increasing in loadInBag: small=%v large=%v", completeSmall, completeLarge)
	}
}
