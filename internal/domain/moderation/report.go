package moderation

import (
	"context"
	"time"
)

// Report is a user flag on a piece of content awaiting review.
type Report struct {
	ID         string    `json:"id"`
	ContentID  string    `json:"contentId"`
	Reason     string    `json:"reason"`
	ReporterID string    `json:"reporterId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReportRequest is the client payload for flagging content.
type ReportRequest struct {
	ContentID string `json:"contentId"`
	Reason    string `json:"reason"`
}

// ReportRepository is an append-only log of reports.
type ReportRepository interface {
	Save(ctx context.Context, report Report) error
	List(ctx context.Context, limit int) ([]Report, error)
}
