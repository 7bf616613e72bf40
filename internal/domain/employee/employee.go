package employee

import (
	"errors"
	"time"
)

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department,omitempty"`
	Position   string    `json:"position,omitempty"`
	Address    string    `json:"address,omitempty"`
	DOB        string    `json:"dob,omitempty"`
	Salary     float64   `json:"salary"`
	Status     string    `json:"status"` // active | on-leave | terminated
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

var ErrNotFound = errors.New("employee not found")

type CreateEmployeeRequest struct {
	Name       string  `json:"name" form:"name" binding:"required,min=2,max=120"`
	Email      string  `json:"email" form:"email" binding:"required,email"`
	Department string  `json:"department" form:"department" binding:"omitempty,max=80"`
	Position   string  `json:"position" form:"position" binding:"omitempty,max=80"`
	Address    string  `json:"address" form:"address" binding:"omitempty,max=200"`
	DOB        string  `json:"dob" form:"dob" binding:"omitempty,datetime=2006-01-02"`
	Salary     float64 `json:"salary" form:"salary" binding:"required,min=0"`
}

// a full update payload, might switch to a patch which optionally provides means for partial updates.
type UpdateEmployeeRequest struct {
	Name       string  `json:"name" form:"name" binding:"required,min=2,max=120"`
	Email      string  `json:"email" form:"email" binding:"required,email"`
	Department string  `json:"department" form:"department" binding:"omitempty,max=80"`
	Position   string  `json:"position" form:"position" binding:"omitempty,max=80"`
	Address    string  `json:"address" form:"address" binding:"omitempty,max=200"`
	DOB        string  `json:"dob" form:"dob" binding:"omitempty,datetime=2006-01-02"`
	Salary     float64 `json:"salary" form:"salary" binding:"required,min=0"`
	Status     string  `json:"status" form:"status" binding:"omitempty,oneof=active on-leave terminated"`
}
