package models

// Complaint is a facility complaint raised by the student.
type Complaint struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	Date        string `json:"date"`
	UpdatedAt   string `json:"updatedAt"`
	Resolution  string `json:"resolution,omitempty"`
}

// ComplaintCategories are the selectable categories, in dialog order.
var ComplaintCategories = []Option{
	{Value: "hostel", Label: "Hostel"},
	{Value: "mess", Label: "Mess/Food"},
	{Value: "academic", Label: "Academic"},
	{Value: "maintenance", Label: "Maintenance"},
	{Value: "transport", Label: "Transport"},
	{Value: "other", Label: "Other"},
}

// Option is a selectable value in a form.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Hint  string `json:"hint,omitempty"`
}
