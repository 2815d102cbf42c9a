package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/profile-catalog/internal/models"
)

type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Logger writes admin mutations to audit_logs. A failed write is logged
// and never fails the request that caused it.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) {
	if l == nil || l.db == nil {
		return
	}

	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		Actor:    ev.Actor,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	if err := l.db.WithContext(ctx).Create(&row).Error; err != nil {
		slog.WarnContext(ctx, "audit write failed", "action", ev.Action, "error", err)
	}
}

func ID(id uint) *uint {
	return &id
}

type Filter struct {
	Action string
	Entity string
	Actor  string
	From   *time.Time
	// To is inclusive of the whole day.
	To *time.Time

	Offset int
	Limit  int
}

// List returns matching entries newest first, with the unpaged total.
func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.Actor != "" {
		q = q.Where("actor = ?", f.Actor)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]models.AuditLog, 0)
	if err := q.
		Order("created_at DESC, id DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
