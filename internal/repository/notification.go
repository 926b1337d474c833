package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/projetvet/projetvet-go/internal/domain/notification"
)

type NotificationRepo interface {
	CreateTask(t *notification.Task) error
	ListPending(limit int) ([]notification.Task, error)
	MarkSent(id uint) error
	MarkFailed(id uint) error
	ListByEntry(entryID uint) ([]notification.Task, error)
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{db: db}
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	return &DBNotificationRepo{db: tx}
}

func (r *DBNotificationRepo) CreateTask(t *notification.Task) error {
	return r.db.Create(t).Error
}

func (r *DBNotificationRepo) ListPending(limit int) ([]notification.Task, error) {
	var tasks []notification.Task
	err := r.db.Where("status = ?", notification.StatusPending).
		Order("timecreated, id").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *DBNotificationRepo) MarkSent(id uint) error {
	now := time.Now()
	return r.db.Model(&notification.Task{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": notification.StatusSent, "timesent": &now}).Error
}

func (r *DBNotificationRepo) MarkFailed(id uint) error {
	return r.db.Model(&notification.Task{}).
		Where("id = ?", id).
		Update("status", notification.StatusFailed).Error
}

func (r *DBNotificationRepo) ListByEntry(entryID uint) ([]notification.Task, error) {
	var tasks []notification.Task
	err := r.db.Where("entryid = ?", entryID).Order("timecreated, id").Find(&tasks).Error
	return tasks, err
}
