package requests

type RegisterPatientRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Age           *int   `json:"age" validate:"required,min=0,max=150"`
	Gender        string `json:"gender" validate:"required,gender"`
	DepartmentID  string `json:"departmentId" validate:"required"`
	Priority      string `json:"priority" validate:"omitempty,priority"`
	ContactNumber string `json:"contactNumber" validate:"required"`
}

type UpdatePatientRequest struct {
	Name          string `json:"name" validate:"omitempty,min=2,max=100"`
	Age           *int   `json:"age" validate:"omitempty,min=0,max=150"`
	Gender        string `json:"gender" validate:"omitempty,gender"`
	DepartmentID  string `json:"departmentId"`
	Priority      string `json:"priority" validate:"omitempty,priority"`
	ContactNumber string `json:"contactNumber"`
	Status        string `json:"status" validate:"omitempty,oneof=Waiting 'In Progress' Completed Admitted Discharged"`
}
