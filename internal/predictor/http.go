package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yusufkecer/obesity-advisor/internal/domain"
)

type predictRequest struct {
	Instances []domain.InputRecord `json:"instances"`
}

type predictResponse struct {
	Predictions []string `json:"predictions"`
}

// HTTPPredictor calls a model-serving sidecar that hosts the trained pipeline.
type HTTPPredictor struct {
	baseURL string
	client  *http.Client
}

func NewHTTPPredictor(baseURL string, timeout time.Duration) *HTTPPredictor {
	return &HTTPPredictor{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *HTTPPredictor) Name() string { return "http" }

func (p *HTTPPredictor) Predict(ctx context.Context, in domain.InputRecord) (string, error) {
	body, err := json.Marshal(predictRequest{Instances: []domain.InputRecord{in}})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("model server http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("model server error %d: %s", resp.StatusCode, string(respBody))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode prediction: %w", err)
	}
	if len(out.Predictions) == 0 {
		return "", fmt.Errorf("model server returned no predictions")
	}
	return out.Predictions[0], nil
}
