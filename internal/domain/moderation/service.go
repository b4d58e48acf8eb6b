package moderation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/mariemajor/looking-beyond-cosmos/pkg/errors"
	"github.com/mariemajor/looking-beyond-cosmos/pkg/util"
)

// CheckRequest carries text to moderate.
type CheckRequest struct {
	Content string `json:"content"`
}

// CheckResponse returns the verdicts and the sanitized text.
type CheckResponse struct {
	Validation Validation `json:"validation"`
	Moderation Result     `json:"moderation"`
	Sanitized  string     `json:"sanitized"`
}

// AgeRequest carries a birth date to verify.
type AgeRequest struct {
	BirthDate string `json:"birthDate"`
}

// RejectionRecorder observes rejected content.
type RejectionRecorder interface {
	RecordRejection(reason string)
}

// Service exposes moderation to transports and other domains.
type Service interface {
	Check(ctx context.Context, req CheckRequest) (CheckResponse, error)
	Screen(ctx context.Context, content string) error
	VerifyAge(ctx context.Context, req AgeRequest) (AgeCheck, error)
	Report(ctx context.Context, reporterID string, req ReportRequest) (Report, error)
}

type service struct {
	repo     ReportRepository
	recorder RejectionRecorder
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewService wires the moderation domain.
func NewService(repo ReportRepository, recorder RejectionRecorder, logger *slog.Logger) Service {
	return &service{
		repo:     repo,
		recorder: recorder,
		logger:   logger.With("component", "moderation.service"),
		now:      util.NowUTC,
		newID:    uuid.NewString,
	}
}

func (s *service) Check(_ context.Context, req CheckRequest) (CheckResponse, error) {
	resp := CheckResponse{
		Validation: ValidateInput(req.Content),
		Moderation: ModerateText(req.Content),
		Sanitized:  Sanitize(req.Content),
	}
	if !resp.Moderation.Approved {
		s.record(resp.Moderation.Reason)
	}
	return resp, nil
}

// Screen fails when content is invalid or rejected.
func (s *service) Screen(_ context.Context, content string) error {
	if v := ValidateInput(content); !v.Valid {
		return apperrors.Wrap(apperrors.CodeInvalidInput, v.Message, nil)
	}
	if res := ModerateText(content); !res.Approved {
		s.record(res.Reason)
		s.logger.Info("content rejected", "reason", res.Reason, "confidence", res.Confidence)
		return apperrors.Wrap(apperrors.CodeContentRejected, res.Reason, nil)
	}
	return nil
}

func (s *service) VerifyAge(_ context.Context, req AgeRequest) (AgeCheck, error) {
	if strings.TrimSpace(req.BirthDate) == "" {
		return AgeCheck{}, apperrors.Wrap(apperrors.CodeInvalidInput, "birthDate is required", nil)
	}
	birth, err := util.ParseDate(req.BirthDate, s.now())
	if err != nil {
		return AgeCheck{}, apperrors.Wrap(apperrors.CodeInvalidInput, "birthDate must be formatted as YYYY-MM-DD", err)
	}
	return VerifyAge(birth, s.now()), nil
}

func (s *service) Report(ctx context.Context, reporterID string, req ReportRequest) (Report, error) {
	contentID := strings.TrimSpace(req.ContentID)
	reason := strings.TrimSpace(req.Reason)
	if contentID == "" || reason == "" {
		return Report{}, apperrors.Wrap(apperrors.CodeInvalidInput, "contentId and reason are required", nil)
	}
	if contentLength(reason) > MaxContentLength {
		return Report{}, apperrors.Wrap(apperrors.CodeInvalidInput, "reason is too long", nil)
	}
	report := Report{
		ID:         s.newID(),
		ContentID:  contentID,
		Reason:     Sanitize(reason),
		ReporterID: reporterID,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Save(ctx, report); err != nil {
		return Report{}, apperrors.Wrap(apperrors.CodeStorage, "failed to store report", err)
	}
	s.logger.Info("content reported", "report_id", report.ID, "content_id", report.ContentID)
	return report, nil
}

func (s *service) record(reason string) {
	if s.recorder != nil {
		s.recorder.RecordRejection(reason)
	}
}
