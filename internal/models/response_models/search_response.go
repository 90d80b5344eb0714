package response_models

type EmployeeSearchResponse struct {
	Employees []EmployeeRef `json:"employees"`
	Total     int64         `json:"total"`
	Page      int           `json:"page"`
	Limit     int           `json:"limit"`
	HasMore   bool          `json:"hasMore"`
	NextPage  *int          `json:"nextPage"`
}

type BranchSearchResponse struct {
	Branches []BranchRef `json:"branches"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	Limit    int         `json:"limit"`
	HasMore  bool        `json:"hasMore"`
	NextPage *int        `json:"nextPage"`
}
