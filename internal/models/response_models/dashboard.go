package response_models

// ActivityStatsReport groups the creator's activity counts the way the
// dashboard charts consume them.
type ActivityStatsReport struct {
	EmployeeStats map[string]int64 `json:"employeeStats"`
	BranchStats   map[string]int64 `json:"branchStats"`
	TypeStats     map[string]int64 `json:"typeStats"`
}
