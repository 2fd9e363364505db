package dto

// CreateUserRequest is the payload for POST /users. It carries the same
// fields as registration; the response returns only the user.
type CreateUserRequest struct {
	Username    string  `json:"username" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Role        string  `json:"role" binding:"omitempty,oneof=alumni student admin"`
	Phone       *string `json:"phone"`
	LinkedIn    *string `json:"linkedin"`
	Batch       *string `json:"batch"`
	Department  *string `json:"department"`
	CurrentOrg  *string `json:"current_org"`
	Designation *string `json:"designation"`
}

// UpdateUserRequest is the payload for PUT /users/{id}. Password is never
// updated through this endpoint.
type UpdateUserRequest struct {
	Username    string  `json:"username" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Role        string  `json:"role" binding:"omitempty,oneof=alumni student admin"`
	Phone       *string `json:"phone"`
	LinkedIn    *string `json:"linkedin"`
	Batch       *string `json:"batch"`
	Department  *string `json:"department"`
	CurrentOrg  *string `json:"current_org"`
	Designation *string `json:"designation"`
}
