package fraudclient

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/frauddash/go-fraudclient/core"
)

// ReportFile is a downloaded report: raw bytes plus the name and content
// type the backend attached.
type ReportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ReportService binds the /reports routes. Every operation here is a
// binary download (PDF, Excel, or CSV); none of them touch the TTL cache.
type ReportService struct {
	client *Client
}

func (s *ReportService) FraudSummary(ctx context.Context, days int) (ReportFile, error) {
	return s.download(ctx, "/reports/fraud-summary", query("days", intParam(days)))
}

func (s *ReportService) TrendAnalysis(ctx context.Context, days int) (ReportFile, error) {
	return s.download(ctx, "/reports/trend-analysis", query("days", intParam(days)))
}

func (s *ReportService) HighRisk(ctx context.Context, days int) (ReportFile, error) {
	return s.download(ctx, "/reports/high-risk", query("days", intParam(days)))
}

func (s *ReportService) ModelPerformance(ctx context.Context) (ReportFile, error) {
	return s.download(ctx, "/reports/model-performance", nil)
}

func (s *ReportService) Batch(ctx context.Context, batchID string) (ReportFile, error) {
	path := fmt.Sprintf("/reports/batch/%s", url.PathEscape(batchID))
	return s.download(ctx, path, nil)
}

func (s *ReportService) ExportExcel(ctx context.Context, days int) (ReportFile, error) {
	return s.download(ctx, "/reports/export/excel", query("days", intParam(days)))
}

func (s *ReportService) ExportExcelFraudOnly(ctx context.Context, days int) (ReportFile, error) {
	return s.download(ctx, "/reports/export/excel/fraud-only", query("days", intParam(days)))
}

func (s *ReportService) ExportExcelHighRisk(ctx context.Context, days int) (ReportFile, error) {
	return s.download(ctx, "/reports/export/excel/high-risk", query("days", intParam(days)))
}

func (s *ReportService) ExportCSV(ctx context.Context, days int) (ReportFile, error) {
	return s.download(ctx, "/reports/export/csv", query("days", intParam(days)))
}

func (s *ReportService) download(ctx context.Context, path string, params map[string]string) (ReportFile, error) {
	res, err := s.client.doRaw(ctx, core.TransportRequest{
		Method: http.MethodGet,
		Path:   path,
		Query:  params,
	})
	if err != nil {
		return ReportFile{}, err
	}
	return ReportFile{
		Name:        dispositionFilename(headerValue(res.Headers, "Content-Disposition")),
		ContentType: headerValue(res.Headers, "Content-Type"),
		Data:        res.Body,
	}, nil
}

func dispositionFilename(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
