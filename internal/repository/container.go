package repository

import (
	"gorm.io/gorm"

	"github.com/projetvet/projetvet-go/internal/config/db"
)

type Repos struct {
	Schema       SchemaRepo
	Entry        EntryRepo
	User         UserRepo
	Notification NotificationRepo

	db *gorm.DB
}

// New builds the repositories on the global database handle.
func New() *Repos {
	return NewRepositories(db.DB)
}

func NewRepositories(gormDB *gorm.DB) *Repos {
	return &Repos{
		Schema:       NewSchemaRepo(gormDB),
		Entry:        NewEntryRepo(gormDB),
		User:         NewUserRepo(gormDB),
		Notification: NewNotificationRepo(gormDB),
		db:           gormDB,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Schema:       r.Schema.WithTx(tx),
		Entry:        r.Entry.WithTx(tx),
		User:         r.User.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside one transaction. Without a database handle (unit
// tests on mocked repos) fn runs inline.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
