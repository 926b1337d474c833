package application

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/projetvet/projetvet-go/internal/domain/user"
	"github.com/projetvet/projetvet-go/internal/repository"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect username or password")
	ErrUsernameTaken     = errors.New("username already taken")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) (user.User, error) {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, err
	}

	usr := user.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
	}
	if err := s.Repos.User.CreateUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) LoginUser(username, password string) (user.User, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrIncorrectPassword
		}
		return user.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, ErrIncorrectPassword
	}
	return usr, nil
}

func (s *UserService) AssignRole(input user.AssignRoleInput) error {
	if _, err := s.Repos.User.GetUserByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.Repos.User.AssignRole(&user.ProjectRole{
		UserID:    input.UserID,
		ProjectID: input.ProjectID,
		Role:      input.Role,
	})
}
