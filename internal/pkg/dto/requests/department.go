package requests

type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
	Floor       int    `json:"floor" validate:"min=0"`
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=100"`
	Description string `json:"description"`
	Floor       *int   `json:"floor" validate:"omitempty,min=0"`
	IsActive    *bool  `json:"isActive"`
}
