package export

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recordingStore struct {
	writes int
	fail   bool
}

func (s *recordingStore) Write(name string, content []byte) (string, error) {
	s.writes++
	if s.fail {
		return "", errors.New("disk full")
	}
	return "/tmp/" + name, nil
}

func (s *recordingStore) Delete(name string) error        { return nil }
func (s *recordingStore) Size(name string) (int64, error) { return 0, nil }

func (s *recordingStore) Path(name string) (string, error) { return "/tmp/" + name, nil }

type failingSource struct{}

func (failingSource) SalesInRange(context.Context, time.Time, time.Time) ([]SaleRecord, error) {
	return nil, errors.New("database unavailable")
}

func newTestService(t *testing.T, store FileStore) *Service {
	t.Helper()
	if store == nil {
		store = &recordingStore{}
	}
	return NewService(nil, nil, store, true, 0, zaptest.NewLogger(t))
}

func julyRange(format Format) Options {
	return Options{
		From:   time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
		Format: format,
	}
}

func TestGetPreviewData_SampleScenario(t *testing.T) {
	svc := newTestService(t, nil)

	preview, err := svc.GetPreviewData(context.Background(), julyRange(""))
	require.NoError(t, err)

	assert.Len(t, preview.Data, 2, "two sales on 2025-07-13, one line item each")
	assert.Equal(t, 3750.0, preview.Summary.TotalRevenue)
	assert.Equal(t, 2, preview.Summary.TotalTransactions)
	assert.Equal(t, 1875.0, preview.Summary.AverageSale)
}

func TestGetPreviewData_TruncatesRowsKeepsFullSummary(t *testing.T) {
	svc := newTestService(t, nil)

	opts := Options{
		From: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
	}
	preview, err := svc.GetPreviewData(context.Background(), opts)
	require.NoError(t, err)

	assert.Len(t, preview.Data, 5, "preview rows truncated to the limit")
	assert.Greater(t, preview.Summary.TotalQuantity, 5, "summary still covers every row")
}

func TestExport_UnsupportedFormatRejectsBeforeIO(t *testing.T) {
	store := &recordingStore{}
	svc := newTestService(t, store)

	result, err := svc.Export(context.Background(), julyRange("xml"))

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
	assert.Zero(t, store.writes, "no file may be written for an unsupported format")
}

func TestExport_WriteFailureSurfaced(t *testing.T) {
	store := &recordingStore{fail: true}
	svc := newTestService(t, store)

	_, err := svc.Export(context.Background(), julyRange(FormatCSV))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate csv file")
}

func TestExport_PDFStubFails(t *testing.T) {
	store := &recordingStore{}
	svc := newTestService(t, store)

	_, err := svc.Export(context.Background(), julyRange(FormatPDF))

	require.Error(t, err)
	assert.Zero(t, store.writes, "the pdf stub must not leave a file behind")
}

func TestExport_FallsBackToSampleOnRetrievalFailure(t *testing.T) {
	store := &recordingStore{}
	svc := NewService(failingSource{}, nil, store, false, 0, zaptest.NewLogger(t))

	result, err := svc.Export(context.Background(), julyRange(FormatCSV))
	require.NoError(t, err, "retrieval failure is recovered, never surfaced")

	assert.Equal(t, 3750.0, result.Summary.TotalRevenue)
	assert.Equal(t, 1, store.writes)
}

func TestExport_FileNameEmbedsDateAndFormat(t *testing.T) {
	svc := newTestService(t, nil)
	svc.now = func() time.Time { return time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC) }

	result, err := svc.Export(context.Background(), julyRange(FormatJSON))
	require.NoError(t, err)

	assert.Equal(t, "pharmjam-sales-2025-08-01.json", result.FileName)
	assert.Equal(t, "application/json", result.MIMEType)
}

func TestExport_JSONRoundTripReproducesSummary(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	svc := newTestService(t, store)
	opts := Options{
		From:            time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		To:              time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		Format:          FormatJSON,
		IncludeCustomer: true,
		CalculateProfit: true,
	}

	result, err := svc.Export(context.Background(), opts)
	require.NoError(t, err)

	raw, err := os.ReadFile(result.FilePath)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	require.NotEmpty(t, env.Data)

	resummarized := Summarize(env.Data)
	assert.Equal(t, env.Summary, resummarized, "re-summarizing the exported rows reproduces the embedded summary")
	assert.Equal(t, result.Summary, env.Summary)
}

func TestExport_CSVCustomerColumnGated(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	svc := newTestService(t, store)

	opts := julyRange(FormatCSV)
	result, err := svc.Export(context.Background(), opts)
	require.NoError(t, err)

	raw, err := os.ReadFile(result.FilePath)
	require.NoError(t, err)
	content := string(raw)

	assert.NotContains(t, content, "Customer Name", "column absent when includeCustomer is off")
	// The 2025-07-13 sample sale has a customer, but the toggle is off
	assert.NotContains(t, content, "Chioma Nwosu")

	opts.IncludeCustomer = true
	result, err = svc.Export(context.Background(), opts)
	require.NoError(t, err)

	raw, err = os.ReadFile(result.FilePath)
	require.NoError(t, err)
	content = string(raw)

	lines := strings.Split(strings.TrimSpace(content), "\n")
	assert.Contains(t, lines[0], "Customer Name")
	assert.Contains(t, content, "Chioma Nwosu")
	assert.Len(t, lines, 3, "header plus one row per line item")
}

func TestExport_XLSXProducesWorkbook(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	svc := newTestService(t, store)

	result, err := svc.Export(context.Background(), julyRange(FormatXLSX))
	require.NoError(t, err)

	size, err := svc.GetFileSize(result.FileName)
	require.NoError(t, err)
	assert.Greater(t, size, int64(0))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.MIMEType)
}

func TestShareAndDeleteFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	svc := newTestService(t, store)

	result, err := svc.Export(context.Background(), julyRange(FormatCSV))
	require.NoError(t, err)

	path, mime, err := svc.ShareFile(result.FileName)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", mime)
	assert.Equal(t, result.FilePath, path)

	require.NoError(t, svc.DeleteFile(result.FileName))

	_, _, err = svc.ShareFile(result.FileName)
	assert.Error(t, err, "sharing a deleted file fails")
}

func TestFileOperationsRejectPaths(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	victimDir := t.TempDir()
	victim := filepath.Join(victimDir, "secrets.txt")
	require.NoError(t, os.WriteFile(victim, []byte("keep out"), 0o644))

	svc := newTestService(t, store)

	rel, err := filepath.Rel(dir, victim)
	require.NoError(t, err)

	for _, name := range []string{rel, victim, "../secrets.txt", "sub/file.csv"} {
		assert.Error(t, svc.DeleteFile(name), "delete must reject %q", name)
		_, _, shareErr := svc.ShareFile(name)
		assert.Error(t, shareErr, "share must reject %q", name)
		_, sizeErr := svc.GetFileSize(name)
		assert.Error(t, sizeErr, "size must reject %q", name)
	}

	_, err = os.Stat(victim)
	require.NoError(t, err, "file outside the export directory must survive")
}
