package define

// ResultRecord is the per-algorithm-run output the batch driver (and
// the optional HTTP control surface) collects; the core never holds
// onto one past the call that produced it.
type ResultRecord struct {
	Algorithm        string  `json:"algorithm"`
	ExecCost         float64 `json:"exec_cost"`
	MigCost          float64 `json:"mig_cost"`
	TargetOpt        float64 `json:"target_opt"`
	SurvivalRate     float64 `json:"survival_rate"`
	ElapsedMillis    int64   `json:"elapsed_millis"`
	CapacityStd      float64 `json:"capacity_std"`
	TaskSizeStd      float64 `json:"task_size_std"`
	MeanCapacity     float64 `json:"mean_capacity"`
	MeanTaskSize     float64 `json:"mean_task_size"`
	UnreachableCount int     `json:"unreachable_count"`
}
