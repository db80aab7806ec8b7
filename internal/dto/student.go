package dto

// ── student module DTOs ──
//
// Field-level rules (email shape, phone digits, status enum) live in the
// shared validation package; binding tags here only cap lengths to the
// column sizes so oversized input is rejected at the edge.

// CreateStudentRequest is the POST /students body. Status may be omitted
// and defaults to Pending.
type CreateStudentRequest struct {
	Name   string `json:"name"   binding:"omitempty,max=100"`
	Email  string `json:"email"  binding:"omitempty,max=255"`
	Phone  string `json:"phone"  binding:"omitempty,max=20"`
	Course string `json:"course" binding:"omitempty,max=100"`
	Status string `json:"status" binding:"omitempty,max=20"`
}

// UpdateStudentRequest is the PUT /students/:id body. Absent fields keep
// their stored values; the merged record is re-validated in full.
type UpdateStudentRequest struct {
	Name   *string `json:"name"   binding:"omitempty,max=100"`
	Email  *string `json:"email"  binding:"omitempty,max=255"`
	Phone  *string `json:"phone"  binding:"omitempty,max=20"`
	Course *string `json:"course" binding:"omitempty,max=100"`
	Status *string `json:"status" binding:"omitempty,max=20"`
}
