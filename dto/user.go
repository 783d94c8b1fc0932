package dto

type UserCreate struct {
	Name     *string    `json:"name"`
	Email    *string    `json:"email"`
	Password *string    `json:"password"`
	Phone    NullString `json:"phone"`
	Role     *string    `json:"role"`
}

type UserUpdate struct {
	Name     *string    `json:"name"`
	Email    *string    `json:"email"`
	Password *string    `json:"password"`
	Phone    NullString `json:"phone"`
	Role     *string    `json:"role"`
}

type UserFilter struct {
	Search string
	Role   string
	Limit  int
	Offset int
}
