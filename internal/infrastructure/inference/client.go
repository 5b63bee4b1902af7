// Package inference talks to an external text-classification service
// compatible with the Hugging Face inference API.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"blogmood/internal/config"
	"blogmood/internal/domain"
	"blogmood/internal/ports"
)

// Client posts sentences to the inference endpoint one at a time and
// returns the top-scoring label candidate.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

var _ ports.Classifier = (*Client)(nil)

// NewClient builds a reusable classifier client from configuration.
func NewClient(cfg config.ClassifierConfig) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type candidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify scores one sentence. The response carries label candidates
// with confidences; the highest-confidence candidate wins.
func (c *Client) Classify(ctx context.Context, sentence string) (domain.Prediction, error) {
	if c.endpoint == "" {
		return domain.Prediction{}, fmt.Errorf("classifier endpoint is not configured")
	}

	body, err := json.Marshal(map[string]any{
		"inputs":  sentence,
		"options": map[string]any{"wait_for_model": true},
	})
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("marshal classifier payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("classify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.Prediction{}, fmt.Errorf("classifier error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("read classifier response: %w", err)
	}

	candidates, err := decodeCandidates(raw)
	if err != nil {
		return domain.Prediction{}, err
	}

	best := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.Score > best.Score {
			best = cand
		}
	}

	return domain.Prediction{Label: best.Label, Score: best.Score}, nil
}

// decodeCandidates accepts both response shapes the inference API emits:
// a nested [[{label, score}...]] for single-input requests and a flat
// [{label, score}...].
func decodeCandidates(raw []byte) ([]candidate, error) {
	var nested [][]candidate
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}

	var flat []candidate
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	return nil, fmt.Errorf("classifier returned no candidates: %s", strings.TrimSpace(string(raw)))
}
