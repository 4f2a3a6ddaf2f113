package dto

type CreateTaskRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	AssignedTo     string `json:"assignedTo" binding:"required"`
	AssignedToName string `json:"assignedToName"`
	Priority       string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status         string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	DueDate        string `json:"dueDate"` // YYYY-MM-DD
}

// UpdateTaskRequest carries a partial update; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	AssignedTo     *string `json:"assignedTo"`
	AssignedToName *string `json:"assignedToName"`
	Priority       *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status         *string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
	DueDate        *string `json:"dueDate"` // YYYY-MM-DD, empty string clears it
}
