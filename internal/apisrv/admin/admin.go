package admin

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/sellora/storefront-manager/internal/analytics"
	"github.com/sellora/storefront-manager/internal/dependency"
	"github.com/sellora/storefront-manager/internal/entity"
	"github.com/sellora/storefront-manager/internal/export"
)

// Server implements handlers for admin.
type Server struct {
	repo dependency.Repository
}

// New creates a new server with admin handlers.
func New(r dependency.Repository) *Server {
	return &Server{
		repo: r,
	}
}

// GetAnalytics loads the store snapshot and computes the analytics report
// for it as of now.
func (s *Server) GetAnalytics(ctx context.Context) (*entity.AnalyticsReport, error) {
	snap, err := s.repo.Analytics().GetSnapshot(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get store snapshot",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't get store snapshot: %w", err)
	}

	return analytics.BuildReport(snap, s.repo.Now()), nil
}

// ExportAnalytics renders the current analytics report as an XLSX workbook.
// It returns the file contents together with a timestamped filename.
func (s *Server) ExportAnalytics(ctx context.Context) ([]byte, string, error) {
	report, err := s.GetAnalytics(ctx)
	if err != nil {
		return nil, "", err
	}

	raw, err := export.BuildReportXLSX(report)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't build analytics workbook",
			slog.String("err", err.Error()),
		)
		return nil, "", fmt.Errorf("can't build analytics workbook: %w", err)
	}

	filename := fmt.Sprintf("analytics-%s.xlsx", s.repo.Now().Format("2006-01-02-150405"))
	return raw, filename, nil
}
