// Package extract calls the external manifest extraction service.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pipeyard/internal/core/domain/model/kernel"
)

const defaultTimeout = 60 * time.Second

// HTTPExtractor asks the extraction service to read a stored manifest
// and report the pipe quantity it lists. Extraction is slow (the service
// runs OCR and a language model over scanned paperwork), hence the
// generous timeout.
type HTTPExtractor struct {
	client *http.Client
	url    string
}

// NewHTTPExtractor creates an extractor calling the given service URL.
func NewHTTPExtractor(url string) *HTTPExtractor {
	return &HTTPExtractor{
		client: &http.Client{Timeout: defaultTimeout},
		url:    url,
	}
}

type extractionRequest struct {
	Path string `json:"path"`
}

type extractionResponse struct {
	Joints    int     `json:"joints"`
	LengthFt  float64 `json:"length_ft"`
	WeightLbs float64 `json:"weight_lbs"`
}

// Extract submits the document path and returns the parsed quantity.
func (e *HTTPExtractor) Extract(ctx context.Context, path string) (kernel.Quantity, error) {
	body, err := json.Marshal(extractionRequest{Path: path})
	if err != nil {
		return kernel.Quantity{}, fmt.Errorf("marshal extraction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return kernel.Quantity{}, fmt.Errorf("build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return kernel.Quantity{}, fmt.Errorf("extract %q: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.Quantity{}, fmt.Errorf("extract %q: service returned %s", path, resp.Status)
	}

	var parsed extractionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return kernel.Quantity{}, fmt.Errorf("decode extraction response for %q: %w", path, err)
	}

	return kernel.NewQuantity(parsed.Joints, parsed.LengthFt, parsed.WeightLbs)
}
