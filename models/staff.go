package models

import "time"

const (
	DepartmentManagement   = "MANAGEMENT"
	DepartmentReception    = "RECEPTION"
	DepartmentHousekeeping = "HOUSEKEEPING"
)

var ValidDepartments = []string{
	DepartmentManagement,
	DepartmentReception,
	DepartmentHousekeeping,
}

type Staff struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      *uint     `gorm:"column:user_id;index" json:"userId"`
	Department  string    `gorm:"size:32" json:"department"`
	Salary      *float64  `json:"salary"`
	JoiningDate time.Time `json:"joiningDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Staff) TableName() string { return "staff" }

func IsValidDepartment(d string) bool {
	for _, v := range ValidDepartments {
		if v == d {
			return true
		}
	}
	return false
}
