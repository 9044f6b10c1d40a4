package dto

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Email    Optional[string] `json:"email"`
	Password Optional[string] `json:"password"`
}
