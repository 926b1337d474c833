package application

import (
	"errors"

	"gorm.io/gorm"

	"github.com/projetvet/projetvet-go/internal/domain/schema"
	"github.com/projetvet/projetvet-go/internal/domain/user"
	"github.com/projetvet/projetvet-go/internal/repository"
)

// Authorizer is the capability oracle: it answers which opaque capability
// tags an actor holds within a project. The workflow only compares tags,
// never interprets them.
type Authorizer interface {
	Capabilities(userID, projectID uint) (CapabilitySet, error)
}

// RoleCapabilities translates project roles into workflow capabilities.
var RoleCapabilities = map[string][]schema.Capability{
	user.RoleStudent: {schema.CapSubmit, schema.CapView, schema.CapViewOwn},
	user.RoleTutor:   {schema.CapApprove, schema.CapView},
	user.RoleManager: {schema.CapApprove, schema.CapUnlock, schema.CapEdit, schema.CapView},
}

var allCapabilities = []schema.Capability{
	schema.CapSubmit, schema.CapApprove, schema.CapUnlock,
	schema.CapEdit, schema.CapView, schema.CapViewOwn,
}

// RoleAuthorizer resolves capabilities from project role memberships.
// Site admins hold everything everywhere.
type RoleAuthorizer struct {
	Repos *repository.Repos
}

func NewRoleAuthorizer(repos *repository.Repos) *RoleAuthorizer {
	return &RoleAuthorizer{Repos: repos}
}

func (a *RoleAuthorizer) Capabilities(userID, projectID uint) (CapabilitySet, error) {
	caps := CapabilitySet{}

	usr, err := a.Repos.User.GetUserByID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && usr.IsAdmin {
		for _, c := range allCapabilities {
			caps[c] = true
		}
		return caps, nil
	}

	roles, err := a.Repos.User.ListRoles(userID, projectID)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		for _, c := range RoleCapabilities[role] {
			caps[c] = true
		}
	}
	return caps, nil
}
