package user

type CreateUserInput struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"jdupont"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
	Email    string `json:"email" binding:"omitempty,email" example:"user@example.com"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required" example:"jdupont"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AssignRoleInput struct {
	UserID    uint   `json:"userid" binding:"required" example:"7"`
	ProjectID uint   `json:"projectid" binding:"required" example:"3"`
	Role      string `json:"role" binding:"required,oneof=student tutor manager" example:"student"`
}
