package models

import "time"

// Run persists one algorithm.Run invocation: its inputs, its resulting
// ResultRecord fields flattened for querying, and when it happened.
type Run struct {
	ID               uint      `json:"id" gorm:"primarykey,autoIncrement"`
	CreatedAt        time.Time `json:"created_at"`
	InstanceName     string    `json:"instance_name" gorm:"size:100;index"`
	Algorithm        string    `json:"algorithm" gorm:"size:20;index"`
	FaultRatio       float64   `json:"fault_ratio"`
	ExecCost         float64   `json:"exec_cost"`
	MigCost          float64   `json:"mig_cost"`
	TargetOpt        float64   `json:"target_opt"`
	SurvivalRate     float64   `json:"survival_rate"`
	ElapsedMillis    int64     `json:"elapsed_millis"`
	CapacityStd      float64   `json:"capacity_std"`
	TaskSizeStd      float64   `json:"task_size_std"`
	MeanCapacity     float64   `json:"mean_capacity"`
	MeanTaskSize     float64   `json:"mean_task_size"`
	UnreachableCount int       `json:"unreachable_count"`
}
