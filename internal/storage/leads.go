package storage

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/guttosm/sharedesk/internal/domain/models"
)

// LeadsRepository stores contact-form leads and visitor analytics hits.
type LeadsRepository interface {
	InsertLead(ctx context.Context, lead models.Lead) error
	InsertVisit(ctx context.Context, visit models.PageVisit) error
}

type leadsRepository struct {
	db *sql.DB
}

func NewLeadsRepository(db *sql.DB) LeadsRepository {
	return &leadsRepository{db: db}
}

func (r *leadsRepository) InsertLead(ctx context.Context, lead models.Lead) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leads (id, name, email, phone, message, company_interest, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, lead.ID, lead.Name, lead.Email, lead.Phone, lead.Message, lead.CompanyInterest, lead.CreatedAt)
	return errors.Wrap(err, "insert lead")
}

func (r *leadsRepository) InsertVisit(ctx context.Context, visit models.PageVisit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO page_visits (path, referrer, user_agent, client_ip, visited_at)
		VALUES ($1, $2, $3, $4, $5)
	`, visit.Path, visit.Referrer, visit.UserAgent, visit.ClientIP, visit.VisitedAt)
	return errors.Wrap(err, "insert page_visit")
}
