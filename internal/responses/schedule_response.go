package responses

type SlotResponse struct {
	ProcessId int  `json:"process_id,omitempty"`
	Idle      bool `json:"idle,omitempty"`
	StartTime int  `json:"start_time"`
	EndTime   int  `json:"end_time"`
}

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	PowerHint      int `json:"power_hint"`
	CompletionTime int `json:"completion_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
	Energy         int `json:"energy"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Gantt                 []SlotResponse    `json:"gantt"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	ContextSwitches       int               `json:"context_switches"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	TotalEnergy           int               `json:"total_energy"`
	Details               []ProcessResponse `json:"details"`
}
