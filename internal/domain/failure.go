package domain

// Failure represents a failed assertion parsed from test output
type Failure struct {
	TestName   string `json:"test_name"`
	File       string `json:"file"`
	Line       int    `json:"line"`
	Expression string `json:"expression"`
	Expansion  string `json:"expansion"`
	Message    string `json:"message"`
}
