package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v6"
)

// Lead is a contact-form submission.
type Lead struct {
	ID              uuid.UUID
	Name            string
	Email           string
	Phone           null.String
	Message         null.String
	CompanyInterest null.String
	CreatedAt       time.Time
}

// PageVisit is one visitor-analytics hit.
type PageVisit struct {
	Path      string
	Referrer  null.String
	UserAgent null.String
	ClientIP  string
	VisitedAt time.Time
}
