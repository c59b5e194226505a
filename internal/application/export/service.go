package export

import (
	"context"
	"fmt"
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/pkg/apperror"
	"go.uber.org/zap"
)

// Result is the outcome of a completed export
type Result struct {
	FilePath string  `json:"file_path"`
	FileName string  `json:"file_name"`
	MIMEType string  `json:"mime_type"`
	Summary  Summary `json:"summary"`
}

// Preview holds the truncated row sample and the full summary
type Preview struct {
	Data    []Row   `json:"data"`
	Summary Summary `json:"summary"`
}

const defaultPreviewRows = 5

// Service runs the sales export pipeline: retrieval, row transformation,
// aggregation and serialization. Each call builds its own rows and summary
// from scratch; the service holds no mutable per-export state.
type Service struct {
	source      DataSource
	sample      *SampleSource
	staff       StaffDirectory
	store       FileStore
	log         *zap.Logger
	previewRows int
	filePrefix  string
	now         func() time.Time
}

// NewService creates the export service. When live is nil or useSample is
// set, the built-in sample dataset serves every request; otherwise live data
// is used with the sample dataset kept as a fallback for retrieval failures.
func NewService(live DataSource, staff StaffDirectory, store FileStore, useSample bool, previewRows int, log *zap.Logger) *Service {
	sample := NewSampleSource()
	source := live
	if source == nil || useSample {
		source = sample
	}
	if previewRows <= 0 {
		previewRows = defaultPreviewRows
	}
	return &Service{
		source:      source,
		sample:      sample,
		staff:       staff,
		store:       store,
		log:         log,
		previewRows: previewRows,
		filePrefix:  "pharmjam-sales",
		now:         time.Now,
	}
}

// fetch retrieves sales for the range. A retrieval failure is logged and
// answered from the sample dataset so previews and exports stay
// deterministic instead of failing.
func (s *Service) fetch(ctx context.Context, from, to time.Time) ([]SaleRecord, StaffDirectory) {
	records, err := s.source.SalesInRange(ctx, from, to)
	if err != nil {
		s.log.Warn("sales retrieval failed, falling back to sample data", zap.Error(err))
		records, _ = s.sample.SalesInRange(ctx, from, to)
		return records, DefaultStaffNames
	}
	if _, isSample := s.source.(*SampleSource); isSample {
		return records, DefaultStaffNames
	}
	return records, s.staff
}

// Export runs the full pipeline and writes the serialized result to the
// file store. The format is validated before any data retrieval or I/O.
func (s *Service) Export(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	records, staff := s.fetch(ctx, opts.From, opts.To)
	rows := Transform(ctx, records, opts, staff)
	summary := Summarize(rows)

	var content []byte
	var err error
	switch opts.Format {
	case FormatCSV:
		content, err = MarshalCSV(rows, opts)
	case FormatJSON:
		content, err = MarshalJSONExport(rows, summary, opts, s.now())
	case FormatXLSX:
		content, err = MarshalXLSX(rows, summary, opts)
	case FormatPDF:
		content, err = MarshalPDF(rows, summary, opts)
	}
	if err != nil {
		s.log.Error("export serialization failed",
			zap.String("format", string(opts.Format)), zap.Error(err))
		return nil, fmt.Errorf("failed to generate %s file: %w", opts.Format, err)
	}

	name := fmt.Sprintf("%s-%s.%s", s.filePrefix, s.now().Format(dateLayout), opts.Format.Ext())
	path, err := s.store.Write(name, content)
	if err != nil {
		s.log.Error("export file write failed",
			zap.String("file", name), zap.Error(err))
		return nil, fmt.Errorf("failed to generate %s file: %w", opts.Format, err)
	}

	s.log.Info("sales export generated",
		zap.String("file", path),
		zap.String("format", string(opts.Format)),
		zap.Int("rows", len(rows)),
		zap.Float64("total_revenue", summary.TotalRevenue))

	return &Result{
		FilePath: path,
		FileName: name,
		MIMEType: MIMEByPath(path),
		Summary:  summary,
	}, nil
}

// GetPreviewData runs the same pipeline without touching the filesystem.
// The options' format field is ignored; rows are truncated to the preview
// limit while the summary always covers the full row set.
func (s *Service) GetPreviewData(ctx context.Context, opts Options) (*Preview, error) {
	if opts.To.Before(opts.From) {
		return nil, apperror.NewBadRequestError("export date range end precedes start")
	}

	records, staff := s.fetch(ctx, opts.From, opts.To)
	rows := Transform(ctx, records, opts, staff)
	summary := Summarize(rows)

	preview := rows
	if len(preview) > s.previewRows {
		preview = preview[:s.previewRows]
	}
	return &Preview{Data: preview, Summary: summary}, nil
}

// ShareFile verifies a generated export file exists and returns its full
// path and MIME type so the transport layer can serve it for download.
// Only bare file names are accepted; the store rejects anything else.
func (s *Service) ShareFile(name string) (string, string, error) {
	path, err := s.store.Path(name)
	if err != nil {
		return "", "", apperror.NewBadRequestError("Invalid export file name")
	}
	if _, err := s.store.Size(name); err != nil {
		return "", "", apperror.NewNotFoundError("export file")
	}
	return path, MIMEByPath(name), nil
}

// DeleteFile removes a previously generated export file by name
func (s *Service) DeleteFile(name string) error {
	if _, err := s.store.Path(name); err != nil {
		return apperror.NewBadRequestError("Invalid export file name")
	}
	if err := s.store.Delete(name); err != nil {
		return apperror.NewNotFoundError("export file")
	}
	return nil
}

// GetFileSize returns the size of a generated export file in bytes
func (s *Service) GetFileSize(name string) (int64, error) {
	size, err := s.store.Size(name)
	if err != nil {
		return 0, apperror.NewNotFoundError("export file")
	}
	return size, nil
}
