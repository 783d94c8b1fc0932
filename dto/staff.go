package dto

type StaffCreate struct {
	Department  *string     `json:"department"`
	Salary      NullFloat64 `json:"salary"`
	UserID      NullUint    `json:"userId"`
	JoiningDate *string     `json:"joiningDate"`
}

type StaffUpdate struct {
	Department  *string     `json:"department"`
	Salary      NullFloat64 `json:"salary"`
	UserID      NullUint    `json:"userId"`
	JoiningDate *string     `json:"joiningDate"`
}

type StaffFilter struct {
	Department string
	UserID     *uint
	Limit      int
	Offset     int
}
