package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v6"

	"github.com/guttosm/sharedesk/internal/apperr"
	"github.com/guttosm/sharedesk/internal/domain/dto"
	"github.com/guttosm/sharedesk/internal/domain/models"
	"github.com/guttosm/sharedesk/internal/storage"
)

// LeadService records contact-form leads and page visits.
type LeadService interface {
	SubmitLead(ctx context.Context, req dto.ContactRequest) (uuid.UUID, error)
	RecordVisit(ctx context.Context, req dto.VisitRequest, userAgent, clientIP string) error
}

type leadService struct {
	repo storage.LeadsRepository
	now  func() time.Time
}

func NewLeadService(repo storage.LeadsRepository) LeadService {
	return &leadService{repo: repo, now: time.Now}
}

func (s *leadService) SubmitLead(ctx context.Context, req dto.ContactRequest) (uuid.UUID, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return uuid.Nil, apperr.Invalid("name and email are required")
	}

	lead := models.Lead{
		ID:              uuid.New(),
		Name:            name,
		Email:           email,
		Phone:           optional(req.Phone),
		Message:         optional(req.Message),
		CompanyInterest: optional(req.CompanyInterest),
		CreatedAt:       s.now().UTC(),
	}
	if err := s.repo.InsertLead(ctx, lead); err != nil {
		return uuid.Nil, apperr.Unavailable("failed to store contact request", err)
	}
	return lead.ID, nil
}

func (s *leadService) RecordVisit(ctx context.Context, req dto.VisitRequest, userAgent, clientIP string) error {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return apperr.Invalid("path is required")
	}
	visit := models.PageVisit{
		Path:      path,
		Referrer:  optional(req.Referrer),
		UserAgent: optional(userAgent),
		ClientIP:  clientIP,
		VisitedAt: s.now().UTC(),
	}
	if err := s.repo.InsertVisit(ctx, visit); err != nil {
		return apperr.Unavailable("failed to record visit", err)
	}
	return nil
}

// optional maps blank strings to NULL.
func optional(s string) null.String {
	s = strings.TrimSpace(s)
	return null.NewString(s, s != "")
}
