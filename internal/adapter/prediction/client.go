package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	insightDomain "agrimarket-backend/internal/domain/insight"
)

// Client calls an external model service. One attempt per request.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{url: url, client: &http.Client{Timeout: timeout}}
}

type predictRequest struct {
	ContractID string  `json:"contractId"`
	Crop       string  `json:"crop"`
	BasePrice  float64 `json:"basePrice"`
}

type predictResponse struct {
	PredictedPrice  float64 `json:"predictedPrice"`
	DemandLevel     string  `json:"demandLevel"`
	RiskLevel       string  `json:"riskLevel"`
	ModelVersion    string  `json:"aiModelVersion"`
	ConfidenceScore string  `json:"confidenceScore"`
}

func (c *Client) Predict(ctx context.Context, req insightDomain.PredictionRequest) (insightDomain.Prediction, error) {
	body, err := json.Marshal(predictRequest{ContractID: req.ContractID, Crop: req.CropType, BasePrice: req.BasePrice})
	if err != nil {
		return insightDomain.Prediction{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return insightDomain.Prediction{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return insightDomain.Prediction{}, fmt.Errorf("%w: %v", insightDomain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return insightDomain.Prediction{}, fmt.Errorf("%w: read body: %v", insightDomain.ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return insightDomain.Prediction{}, fmt.Errorf("%w: status %d: %s", insightDomain.ErrUnavailable, resp.StatusCode, string(respBody))
	}

	var out predictResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return insightDomain.Prediction{}, fmt.Errorf("%w: decode response: %v", insightDomain.ErrUnavailable, err)
	}
	return insightDomain.Prediction{
		PredictedPrice:  out.PredictedPrice,
		DemandLevel:     out.DemandLevel,
		RiskLevel:       out.RiskLevel,
		ModelVersion:    out.ModelVersion,
		ConfidenceScore: out.ConfidenceScore,
	}, nil
}
