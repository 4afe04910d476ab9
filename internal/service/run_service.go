package service

import (
	"fmt"

	"faultmesh/internal/algorithm"
	"faultmesh/internal/models"
	"faultmesh/internal/repository"
)

// RunService drives one algorithm.Run invocation against a loaded
// instance and persists the resulting ResultRecord as a models.Run row.
type RunService struct {
	runRepo *repository.RunRepository
}

func NewRunService(runRepo *repository.RunRepository) *RunService {
	return &RunService{runRepo: runRepo}
}

// Submit loads the three input files, runs the named strategy, persists
// the result, and returns the stored row.
func (s *RunService) Submit(instanceName, taskFile, agentFile, graphFile, strategy string, faultRatio, a, b float64, rngSeed int64) (*models.Run, error) {
	inst, err := algorithm.Load(taskFile, agentFile, graphFile)
	if err != nil {
		return nil, fmt.Errorf("loading instance: %w", err)
	}

	result, _, err := algorithm.Run(inst, strategy, faultRatio, a, b, rngSeed)
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", strategy, err)
	}

	row := &models.Run{
		InstanceName:     instanceName,
		Algorithm:        result.Algorithm,
		FaultRatio:       faultRatio,
		ExecCost:         result.ExecCost,
		MigCost:          result.MigCost,
		TargetOpt:        result.TargetOpt,
		SurvivalRate:     result.SurvivalRate,
		ElapsedMillis:    result.ElapsedMillis,
		CapacityStd:      result.CapacityStd,
		TaskSizeStd:      result.TaskSizeStd,
		MeanCapacity:     result.MeanCapacity,
		MeanTaskSize:     result.MeanTaskSize,
		UnreachableCount: result.UnreachableCount,
	}

	if err := s.runRepo.Create(row); err != nil {
		return nil, fmt.Errorf("persisting run: %w", err)
	}

	return row, nil
}

// List returns a page of stored runs, newest first.
func (s *RunService) List(current, size int, filters map[string]interface{}) ([]models.Run, int64, error) {
	offset := (current - 1) * size
	return s.runRepo.ListWithPage(offset, size, filters)
}

func (s *RunService) GetByID(id uint) (*models.Run, error) {
	return s.runRepo.GetByID(id)
}
