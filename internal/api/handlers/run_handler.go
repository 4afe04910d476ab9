package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"faultmesh/internal/algorithm/constant"
	"faultmesh/internal/service"
	"faultmesh/pkg/utils"
)

// SubmitRunRequest names an input triple, a strategy, and optional
// overrides for fault ratio, evaluator weights, and RNG seed.
type SubmitRunRequest struct {
	InstanceName string  `json:"instance_name" binding:"required"`
	TaskFile     string  `json:"task_file" binding:"required"`
	AgentFile    string  `json:"agent_file" binding:"required"`
	GraphFile    string  `json:"graph_file" binding:"required"`
	Algorithm    string  `json:"algorithm" binding:"required"`
	FaultRatio   float64 `json:"fault_ratio"`
	A            float64 `json:"a"`
	B            float64 `json:"b"`
	RNGSeed      int64   `json:"rng_seed"`
}

type RunHandler struct {
	runService *service.RunService
}

func NewRunHandler(runService *service.RunService) *RunHandler {
	return &RunHandler{runService: runService}
}

// SubmitRun loads the named instance, runs the chosen strategy, and
// persists the resulting ResultRecord.
func (h *RunHandler) SubmitRun(c *gin.Context) {
	var req SubmitRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, err.Error())
		return
	}

	faultRatio := req.FaultRatio
	if faultRatio == 0 {
		faultRatio = constant.DefaultFaultRatio
	}
	a, b := req.A, req.B
	if a == 0 && b == 0 {
		a, b = constant.A, constant.B
	}
	seed := req.RNGSeed
	if seed == 0 {
		seed = 1
	}

	run, err := h.runService.Submit(req.InstanceName, req.TaskFile, req.AgentFile, req.GraphFile, req.Algorithm, faultRatio, a, b, seed)
	if err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	utils.SuccessWithMessage(c, run, "run complete")
}

// GetRun fetches one stored run by id.
func (h *RunHandler) GetRun(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, "invalid run id")
		return
	}

	run, err := h.runService.GetByID(uint(id))
	if err != nil {
		utils.Error(c, utils.NOT_FOUND, "run not found")
		return
	}

	utils.Success(c, run)
}

// ListRuns returns a page of stored runs, newest first, optionally
// filtered by algorithm.
func (h *RunHandler) ListRuns(c *gin.Context) {
	current, _ := strconv.Atoi(c.DefaultQuery("current", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	filters := make(map[string]interface{})
	if alg := c.Query("algorithm"); alg != "" {
		filters["algorithm"] = alg
	}

	runs, total, err := h.runService.List(current, size, filters)
	if err != nil {
		utils.Error(c, utils.ERROR, "failed to list runs")
		return
	}

	utils.SuccessWithPage(c, runs, current, size, total)
}
