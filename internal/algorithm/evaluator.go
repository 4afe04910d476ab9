package algorithm

import (
	"log"
	"math"

	"faultmesh/internal/algorithm/constant"
	"faultmesh/internal/algorithm/define"
	"faultmesh/internal/algorithm/utils"
)

// Evaluate computes the composite result for a world's final state and
// the migration records a strategy produced against it. It is a pure
// read of world state: calling it twice without an intervening
// mutation yields identical numbers.
func Evaluate(w *World, records []define.MigrationRecord, a, b float64) *define.ResultRecord {
	execCost := 0.0
	faultASum, faultOSum := 0.0, 0.0
	capacities := make([]float64, 0, len(w.Agents))
	taskSizes := make([]float64, 0, w.TotalTaskCount())

	for _, id := range w.AgentIDs() {
		agent := w.Agents[id]
		execCost += agent.Load / agent.Capacity
		capacities = append(capacities, agent.Capacity)
		for _, t := range agent.Tasks {
			taskSizes = append(taskSizes, t.Size)
		}
		faultASum += float64(agent.FaultA)
		faultOSum += agent.FaultO
	}

	migCost, unreachable := 0.0, 0
	for _, rec := range records {
		d := w.Graph.Weight(rec.From, rec.To)
		if math.IsInf(d, 1) {
			log.Print(&UnreachableMigrationError{From: rec.From, To: rec.To})
			unreachable++
			continue
		}
		migCost += d
	}

	survivalRate := 0.0
	n := len(w.Agents)
	if n > 0 {
		sum := 0.0
		for _, id := range w.AgentIDs() {
			agent := w.Agents[id]
			sum += (1 - float64(agent.FaultA)) * (1 - agent.FaultO)
		}
		survivalRate = sum / float64(n)
	}

	targetOpt := a*(execCost+migCost) - b*survivalRate

	return &define.ResultRecord{
		ExecCost:         execCost,
		MigCost:          migCost,
		TargetOpt:        targetOpt,
		SurvivalRate:     survivalRate,
		CapacityStd:      utils.StdDev(capacities),
		TaskSizeStd:      utils.StdDev(taskSizes),
		MeanCapacity:     utils.Mean(capacities),
		MeanTaskSize:     utils.Mean(taskSizes),
		UnreachableCount: unreachable,
	}
}

// defaultWeights returns the composite target score's default tuning,
// favoring survival rate over raw cost.
func defaultWeights() (float64, float64) {
	return constant.A, constant.B
}
