package repository

import (
	"gorm.io/gorm"

	"github.com/projetvet/projetvet-go/internal/domain/user"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	CreateUser(u *user.User) error
	AssignRole(role *user.ProjectRole) error
	ListRoles(userID, projectID uint) ([]string, error)
	ListUsersByRole(projectID uint, role string) ([]user.User, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	return &DBUserRepo{db: tx}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) AssignRole(role *user.ProjectRole) error {
	return r.db.Create(role).Error
}

func (r *DBUserRepo) ListRoles(userID, projectID uint) ([]string, error) {
	var roles []string
	err := r.db.Model(&user.ProjectRole{}).
		Select("role").
		Where("userid = ? AND projectid = ?", userID, projectID).
		Scan(&roles).Error
	return roles, err
}

func (r *DBUserRepo) ListUsersByRole(projectID uint, role string) ([]user.User, error) {
	var users []user.User
	err := r.db.Table("users u").
		Select("u.*").
		Joins("JOIN project_role pr ON pr.userid = u.id").
		Where("pr.projectid = ? AND pr.role = ?", projectID, role).
		Scan(&users).Error
	return users, err
}
