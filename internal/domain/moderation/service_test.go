package moderation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/mariemajor/looking-beyond-cosmos/pkg/errors"
)

type stubReportRepo struct {
	saved []Report
	err   error
}

func (s *stubReportRepo) Save(_ context.Context, r Report) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, r)
	return nil
}

func (s *stubReportRepo) List(_ context.Context, _ int) ([]Report, error) {
	return s.saved, nil
}

type stubRecorder struct{ reasons []string }

func (s *stubRecorder) RecordRejection(reason string) { s.reasons = append(s.reasons, reason) }

var fixedNow = time.Date(2025, time.September, 21, 8, 0, 0, 0, time.UTC)

func newTestService(repo ReportRepository, rec RejectionRecorder) *service {
	return &service{
		repo:     repo,
		recorder: rec,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      func() time.Time { return fixedNow },
		newID:    func() string { return "report-1" },
	}
}

func TestServiceScreen(t *testing.T) {
	rec := &stubRecorder{}
	svc := newTestService(&stubReportRepo{}, rec)

	require.NoError(t, svc.Screen(context.Background(), "How can I open my heart?"))

	err := svc.Screen(context.Background(), "")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	err = svc.Screen(context.Background(), "summoning demons tonight")
	require.True(t, apperrors.IsCode(err, apperrors.CodeContentRejected))
	require.Equal(t, ReasonMisaligned, apperrors.MessageOf(err))
	require.Equal(t, []string{ReasonMisaligned}, rec.reasons)
}

func TestServiceCheck(t *testing.T) {
	rec := &stubRecorder{}
	svc := newTestService(&stubReportRepo{}, rec)

	resp, err := svc.Check(context.Background(), CheckRequest{Content: "drugs <script>x</script>"})
	require.NoError(t, err)
	require.False(t, resp.Validation.Valid)
	require.False(t, resp.Moderation.Approved)
	require.Equal(t, "drugs", resp.Sanitized)
	require.Equal(t, []string{ReasonInappropriate}, rec.reasons)
}

func TestServiceReport(t *testing.T) {
	repo := &stubReportRepo{}
	svc := newTestService(repo, nil)

	report, err := svc.Report(context.Background(), "user-1", ReportRequest{ContentID: " msg-9 ", Reason: "off topic"})
	require.NoError(t, err)
	require.Equal(t, Report{ID: "report-1", ContentID: "msg-9", Reason: "off topic", ReporterID: "user-1", CreatedAt: fixedNow}, report)
	require.Len(t, repo.saved, 1)

	_, err = svc.Report(context.Background(), "user-1", ReportRequest{ContentID: "msg-9"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	failing := newTestService(&stubReportRepo{err: errors.New("db down")}, nil)
	_, err = failing.Report(context.Background(), "user-1", ReportRequest{ContentID: "a", Reason: "b"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeStorage))
}

func TestServiceVerifyAge(t *testing.T) {
	svc := newTestService(&stubReportRepo{}, nil)
	got, err := svc.VerifyAge(context.Background(), AgeRequest{BirthDate: "2010-01-01"})
	require.NoError(t, err)
	require.Equal(t, AgeCheck{Valid: true, Age: 15, ParentalConsentRequired: true}, got)

	_, err = svc.VerifyAge(context.Background(), AgeRequest{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}
