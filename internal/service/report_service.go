package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"revos/internal/config"
	"revos/internal/domain"
	"revos/internal/port"
)

const reportSheet = "Elements"

// ReportInput is the DTO for element report requests. The filter criteria
// select the rows; detail selects the parameter columns.
type ReportInput struct {
	Criteria domain.FilterCriteria `json:"criteria"`
	Detail   string                `json:"detail,omitempty"`
	Title    string                `json:"title,omitempty"`
}

// ReportOutput points at the generated workbook.
type ReportOutput struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	RowCount  int       `json:"row_count"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ReportService renders filter results into an Excel workbook in object
// storage and hands back a presigned download URL. Generated workbooks stay
// in the bucket until a client deletes them.
type ReportService interface {
	Generate(ctx context.Context, input ReportInput) (*ReportOutput, []domain.Warning, error)
	Delete(ctx context.Context, key string) error
}

type reportService struct {
	elements ElementService
	storage  port.ObjectStorage
	cfg      config.S3Config
}

// NewReportService creates a new ReportService implementation.
func NewReportService(elements ElementService, storage port.ObjectStorage, cfg config.S3Config) ReportService {
	return &reportService{elements: elements, storage: storage, cfg: cfg}
}

func (s *reportService) Generate(ctx context.Context, input ReportInput) (*ReportOutput, []domain.Warning, error) {
	out, warnings, err := s.elements.Filter(ctx, FilterInput{
		Criteria: input.Criteria,
		Detail:   input.Detail,
	})
	if err != nil {
		return nil, nil, err
	}

	buf, err := renderWorkbook(input.Title, out.Elements)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrReportFailed, err)
	}

	key := fmt.Sprintf("%s/%s-%s.xlsx",
		s.cfg.Prefix, time.Now().UTC().Format("20060102-150405"), uuid.New().String()[:8])
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Size:        int64(buf.Len()),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrReportFailed, err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrReportFailed, err)
	}

	return &ReportOutput{
		Key:       key,
		URL:       url,
		RowCount:  out.Count,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.PresignExpiry) * time.Second),
	}, warnings, nil
}

// Delete removes a generated workbook from object storage. Only keys under
// the configured report prefix are accepted, so a client cannot reach other
// objects in the bucket through this endpoint.
func (s *reportService) Delete(ctx context.Context, key string) error {
	if !strings.HasPrefix(key, s.cfg.Prefix+"/") || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q is not a report object", domain.ErrInvalidReportKey, key)
	}
	if err := s.storage.Delete(ctx, s.cfg.Bucket, key); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrReportFailed, err)
	}
	return nil
}

// renderWorkbook writes one sheet: fixed identity columns, then one column
// per parameter name seen across the result set, sorted for stable output.
func renderWorkbook(title string, infos []domain.ElementInfo) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(reportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	params := parameterColumns(infos)
	header := append([]interface{}{"ID", "Name", "Category", "Type"}, params...)
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, info := range infos {
		row := []interface{}{info.ID, info.Name, string(info.Category), info.TypeName}
		for _, p := range params {
			name := p.(string)
			if v, ok := info.Parameters[name]; ok && v.HasValue() {
				row = append(row, v.AsString())
			} else {
				row = append(row, "")
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if title != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: title}); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}

func parameterColumns(infos []domain.ElementInfo) []interface{} {
	seen := make(map[string]bool)
	var names []string
	for _, info := range infos {
		for name := range info.Parameters {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	cols := make([]interface{}, len(names))
	for i, n := range names {
		cols[i] = n
	}
	return cols
}
