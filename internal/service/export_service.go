package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/pdatalab/tripmatch-backend-go/internal/export"
	"github.com/pdatalab/tripmatch-backend-go/internal/models"
)

// ErrInvalidExport marks an export request with an unknown kind or
// format; handlers map it to a client error.
var ErrInvalidExport = errors.New("invalid export request")

// Export kinds and formats accepted by the export endpoints.
const (
	KindReconciled = "reconciled"
	KindAudit      = "audit"
	KindFusion     = "fusion"

	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ExportService renders reconciliation, audit and fusion results as
// downloadable files.
type ExportService struct {
	reconcile *ReconcileService
	audit     *AuditService
	fusion    *FusionService
}

// NewExportService creates an export service on top of the result
// services.
func NewExportService(reconcile *ReconcileService, audit *AuditService, fusion *FusionService) *ExportService {
	return &ExportService{reconcile: reconcile, audit: audit, fusion: fusion}
}

// Export writes the requested result table for a dataset to w.
func (s *ExportService) Export(id, kind, format string, req models.ReconcileRequest, w io.Writer) error {
	switch kind {
	case KindReconciled:
		part, _, err := s.reconcile.Partition(id, req)
		if err != nil {
			return err
		}
		rows := export.TimelineRows(part)
		if format == FormatXLSX {
			return export.WriteWorkbook(w, []export.Sheet{export.TimelineSheet("timeline", rows)})
		}
		return export.WriteTimelineCSV(w, rows)
	case KindAudit:
		groups, err := s.audit.Groups(id)
		if err != nil {
			return err
		}
		flat := export.AuditGroups(groups)
		if format == FormatXLSX {
			return export.WriteWorkbook(w, []export.Sheet{export.AuditSheet("audit", flat)})
		}
		return export.WriteAuditCSV(w, flat)
	case KindFusion:
		rows, err := s.fusion.Rows(id)
		if err != nil {
			return err
		}
		if format == FormatXLSX {
			return export.WriteWorkbook(w, []export.Sheet{export.FusionSheet("fusion", rows)})
		}
		return export.WriteFusionCSV(w, rows)
	}
	return fmt.Errorf("%w: unknown export kind %q", ErrInvalidExport, kind)
}

// ContentType returns the MIME type for an export format, or an error
// for unknown formats.
func ContentType(format string) (string, error) {
	switch format {
	case FormatCSV:
		return "text/csv", nil
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	}
	return "", fmt.Errorf("%w: unknown export format %q", ErrInvalidExport, format)
}
