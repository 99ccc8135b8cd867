package models

// Assignment is a coursework item with a submission lifecycle.
type Assignment struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Points      int    `json:"points"`
	Status      Status `json:"status"`
	SubmittedOn string `json:"submittedOn,omitempty"`
	Grade       *int   `json:"grade,omitempty"`
}

// AcceptedSubmissionExtensions lists the file types the submission dialog accepts.
var AcceptedSubmissionExtensions = []string{".pdf", ".doc", ".docx", ".zip"}
