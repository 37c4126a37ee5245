// Package notion fetches FAQ content from a Notion database. Only rows with
// the Published checkbox set are returned, sorted by their Order property.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/uf-sase-hacks/registration-api/internal/ports/out/faqsource"
)

const (
	apiBase       = "https://api.notion.com/v1"
	notionVersion = "2022-06-28"
)

type Config struct {
	APIKey     string
	DatabaseID string
}

type Source struct {
	apiKey     string
	databaseID string
	baseURL    string
	httpClient *http.Client
}

func NewSource(cfg Config) *Source {
	return &Source{
		apiKey:     cfg.APIKey,
		databaseID: cfg.DatabaseID,
		baseURL:    apiBase,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type queryRequest struct {
	Filter struct {
		Property string `json:"property"`
		Checkbox struct {
			Equals bool `json:"equals"`
		} `json:"checkbox"`
	} `json:"filter"`
	Sorts []struct {
		Property  string `json:"property"`
		Direction string `json:"direction"`
	} `json:"sorts"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type page struct {
	ID         string              `json:"id"`
	Properties map[string]property `json:"properties"`
}

type property struct {
	Title    []richText `json:"title"`
	RichText []richText `json:"rich_text"`
	Number   *float64   `json:"number"`
	Checkbox bool       `json:"checkbox"`
}

type richText struct {
	PlainText string  `json:"plain_text"`
	Href      *string `json:"href"`
}

func (s *Source) Fetch(ctx context.Context) ([]faqsource.Item, error) {
	items := make([]faqsource.Item, 0)
	cursor := ""
	for {
		resp, err := s.query(ctx, cursor)
		if err != nil {
			return nil, err
		}
		for _, p := range resp.Results {
			items = append(items, itemFromPage(p))
		}
		if !resp.HasMore || resp.NextCursor == nil {
			return items, nil
		}
		cursor = *resp.NextCursor
	}
}

func (s *Source) query(ctx context.Context, cursor string) (*queryResponse, error) {
	var reqBody queryRequest
	reqBody.Filter.Property = "Published"
	reqBody.Filter.Checkbox.Equals = true
	reqBody.Sorts = []struct {
		Property  string `json:"property"`
		Direction string `json:"direction"`
	}{{Property: "Order", Direction: "ascending"}}
	reqBody.StartCursor = cursor

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/databases/%s/query", s.baseURL, s.databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query notion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("notion query returned %d", resp.StatusCode)
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode notion response: %w", err)
	}
	return &out, nil
}

func itemFromPage(p page) faqsource.Item {
	item := faqsource.Item{ID: p.ID}
	if prop, ok := p.Properties["Question"]; ok {
		item.Question = renderRichText(prop.Title)
	}
	if prop, ok := p.Properties["Answer"]; ok {
		item.Answer = renderRichText(prop.RichText)
	}
	if prop, ok := p.Properties["Order"]; ok && prop.Number != nil {
		item.Order = int(*prop.Number)
	}
	return item
}

// renderRichText flattens Notion rich text to plain text, preserving links as
// markdown so the frontend can render them.
func renderRichText(parts []richText) string {
	var b strings.Builder
	for _, part := range parts {
		if part.Href != nil && *part.Href != "" {
			fmt.Fprintf(&b, "[%s](%s)", part.PlainText, *part.Href)
			continue
		}
		b.WriteString(part.PlainText)
	}
	return b.String()
}
