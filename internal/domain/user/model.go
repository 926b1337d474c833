package user

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     string    `gorm:"size:255" json:"email"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleManager = "manager"
)

// ProjectRole is a user's role within one activity instance (project).
// Roles translate to workflow capabilities through the authorizer.
type ProjectRole struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"column:userid;uniqueIndex:uq_project_role;not null" json:"userid"`
	ProjectID uint   `gorm:"column:projectid;uniqueIndex:uq_project_role;index;not null" json:"projectid"`
	Role      string `gorm:"size:50;uniqueIndex:uq_project_role;not null" json:"role"`
}

func (ProjectRole) TableName() string { return "project_role" }
