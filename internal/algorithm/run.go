package algorithm

import (
	"fmt"
	"math/rand"
	"time"

	"faultmesh/internal/algorithm/constant"
	"faultmesh/internal/algorithm/define"
)

// Strategy names accepted by Run.
const (
	StrategyHGTM  = "hgtm"
	StrategyMPFTM = "mpftm"
	StrategyGBMA  = "gbma"
	StrategyMMLMA = "mmlma"
)

// Instance is a fully loaded, uninitialized problem: the set of agents
// and the weighted graph connecting them, plus the task list to match
// at t=0. Build one with Load, then pass it to Run once per algorithm
// — Run clones the world internally so concurrent runs never share
// mutable state.
type Instance struct {
	Agents []*define.Agent
	Tasks  []*define.Task
	Graph  *Graph
}

// Load parses the three text sources into an Instance ready for Run.
func Load(taskPath, agentPath, graphPath string) (*Instance, error) {
	tasks, err := LoadTasks(taskPath)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	agents, err := LoadAgents(agentPath)
	if err != nil {
		return nil, fmt.Errorf("loading agents: %w", err)
	}
	g, err := LoadGraph(graphPath)
	if err != nil {
		return nil, fmt.Errorf("loading graph: %w", err)
	}
	return &Instance{Agents: agents, Tasks: tasks, Graph: g}, nil
}

// Run builds a fresh world from the instance, initializes it
// (deterministic given rngSeed), runs the named strategy, and
// evaluates the result. a and b are the evaluator's cost/survival
// weights; pass constant.A/constant.B for the documented defaults.
func Run(inst *Instance, strategy string, faultRatio, a, b float64, rngSeed int64) (*define.ResultRecord, []define.MigrationRecord, error) {
	world := NewWorld(cloneAgents(inst.Agents), inst.Graph.Clone())
	rng := rand.New(rand.NewSource(rngSeed))
	Initialize(world, cloneTasks(inst.Tasks), faultRatio, rng)

	start := time.Now()

	var records []define.MigrationRecord
	switch strategy {
	case StrategyHGTM:
		records = HGTM(world, a, b)
	case StrategyMPFTM:
		records = MPFTM(world, a, b)
	case StrategyGBMA:
		records = GBMA(world, a, b)
	case StrategyMMLMA:
		records = MMLMA(world, a, b)
	default:
		return nil, nil, fmt.Errorf("unknown strategy %q", strategy)
	}

	elapsed := time.Since(start)

	result := Evaluate(world, records, a, b)
	result.Algorithm = strategy
	result.ElapsedMillis = elapsed.Milliseconds()

	return result, records, nil
}

// RunDefault runs with the documented default fault ratio and
// evaluator weights.
func RunDefault(inst *Instance, strategy string, rngSeed int64) (*define.ResultRecord, []define.MigrationRecord, error) {
	return Run(inst, strategy, constant.DefaultFaultRatio, constant.A, constant.B, rngSeed)
}

func cloneAgents(agents []*define.Agent) []*define.Agent {
	out := make([]*define.Agent, len(agents))
	for i, a := range agents {
		out[i] = a.Clone()
	}
	return out
}

func cloneTasks(tasks []*define.Task) []*define.Task {
	out := make([]*define.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
