package cvparse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dleonov/go_skillgap/internal/engine"
)

// Entity is a named entity returned by an external recognizer.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityRecognizer augments regex extraction with named entity tagging.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// HTTPRecognizer calls an external NER service. Zero value is not usable;
// construct with NewHTTPRecognizer.
type HTTPRecognizer struct {
	baseURL string
	secret  string
	http    *http.Client
}

func NewHTTPRecognizer(baseURL, secret string) *HTTPRecognizer {
	return &HTTPRecognizer{
		baseURL: baseURL,
		secret:  secret,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	engine.IncrNERRequests()

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("marshal ner request: %w", err)
	}

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/entities", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.secret != "" {
			req.Header.Set("Authorization", "Bearer "+c.secret)
		}
		return c.http.Do(req)
	})
	if err != nil {
		engine.IncrNERErrors()
		return nil, fmt.Errorf("ner request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		engine.IncrNERErrors()
		return nil, fmt.Errorf("read ner response: %w", err)
	}

	var out struct {
		Entities []Entity `json:"entities"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		engine.IncrNERErrors()
		return nil, fmt.Errorf("decode ner response: %w", err)
	}
	return out.Entities, nil
}

// applyEntities fills gaps the regex pass left behind. Recognizer failures
// are logged and swallowed; the regex result stands on its own.
func (e *Extractor) applyEntities(ctx context.Context, text string, cv *engine.StructuredCV) {
	entities, err := e.ner.Recognize(ctx, text)
	if err != nil {
		slog.Warn("entity recognition unavailable", slog.Any("error", err))
		return
	}

	for _, ent := range entities {
		switch ent.Label {
		case "PERSON":
			if cv.Personal.Name == "" {
				cv.Personal.Name = ent.Text
			}
		case "ORG":
			for i := range cv.Education {
				if cv.Education[i].Institution == "" {
					cv.Education[i].Institution = ent.Text
					break
				}
			}
		}
	}
}
