package models

import "time"

// SystemMetrics is a host diagnostics snapshot served by the monitor
// endpoint; it is not stored with runs and never enters the
// evaluator's own numbers.
type SystemMetrics struct {
	Timestamp time.Time `json:"timestamp"`

	CPUUsage float64 `json:"cpu_usage"`

	MemTotal     uint64  `json:"mem_total"`
	MemUsed      uint64  `json:"mem_used"`
	MemFree      uint64  `json:"mem_free"`
	MemUsageRate float64 `json:"mem_usage_rate"`

	GoroutineCount int `json:"goroutine_count"`
}
