package fraudclient

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/frauddash/go-fraudclient/core"
)

const (
	headerBatchID         = "X-Batch-ID"
	headerTotalRows       = "X-Total-Rows"
	headerFraudCount      = "X-Fraud-Count"
	headerLegitimateCount = "X-Legitimate-Count"
)

// PredictionService binds the /predict routes.
type PredictionService struct {
	client *Client
}

func (s *PredictionService) Predict(ctx context.Context, tx Transaction) (Prediction, error) {
	var prediction Prediction
	if err := s.client.postJSON(ctx, "/predict", tx, &prediction); err != nil {
		return Prediction{}, err
	}
	return prediction, nil
}

func (s *PredictionService) PredictBatch(ctx context.Context, txs []Transaction) (BatchPrediction, error) {
	var batch BatchPrediction
	body := map[string]any{"transactions": txs}
	if err := s.client.postJSON(ctx, "/predict/batch", body, &batch); err != nil {
		return BatchPrediction{}, err
	}
	return batch, nil
}

func (s *PredictionService) History(ctx context.Context, limit int, offset int) (map[string]any, error) {
	var history map[string]any
	params := query(
		"limit", intParam(limit),
		"offset", intParam(offset),
	)
	if err := s.client.getJSON(ctx, "/predict/history", params, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *PredictionService) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := s.client.getJSON(ctx, "/predict/stats", nil, &stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// SampleLegitimate returns a known-legitimate example transaction for the
// demo form.
func (s *PredictionService) SampleLegitimate(ctx context.Context) (Transaction, error) {
	var tx Transaction
	if err := s.client.getJSON(ctx, "/predict/sample/legitimate", nil, &tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

func (s *PredictionService) SampleFraud(ctx context.Context) (Transaction, error) {
	var tx Transaction
	if err := s.client.getJSON(ctx, "/predict/sample/fraud", nil, &tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// UploadCSV submits a transactions CSV for batch scoring. The backend
// streams back the annotated CSV and publishes the batch metadata through
// response headers, which are parsed into the returned BatchUpload.
func (s *PredictionService) UploadCSV(ctx context.Context, filename string, csvData []byte) (BatchUpload, error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return BatchUpload{}, core.InternalError("fraudclient: build multipart form", map[string]any{"error": err.Error()})
	}
	if _, err := part.Write(csvData); err != nil {
		return BatchUpload{}, core.InternalError("fraudclient: write multipart form", map[string]any{"error": err.Error()})
	}
	if err := writer.Close(); err != nil {
		return BatchUpload{}, core.InternalError("fraudclient: finish multipart form", map[string]any{"error": err.Error()})
	}

	res, err := s.client.doRaw(ctx, core.TransportRequest{
		Method:      http.MethodPost,
		Path:        "/predict/upload-csv",
		Body:        buffer.Bytes(),
		ContentType: writer.FormDataContentType(),
	})
	if err != nil {
		return BatchUpload{}, err
	}
	return BatchUpload{
		BatchID:         headerValue(res.Headers, headerBatchID),
		TotalRows:       headerInt(res.Headers, headerTotalRows),
		FraudCount:      headerInt(res.Headers, headerFraudCount),
		LegitimateCount: headerInt(res.Headers, headerLegitimateCount),
		CSV:             res.Body,
	}, nil
}

func intParam(value int) string {
	if value <= 0 {
		return ""
	}
	return strconv.Itoa(value)
}

func headerValue(headers map[string]string, key string) string {
	for existing, value := range headers {
		if strings.EqualFold(strings.TrimSpace(existing), key) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func headerInt(headers map[string]string, key string) int {
	parsed, err := strconv.Atoi(headerValue(headers, key))
	if err != nil {
		return 0
	}
	return parsed
}
