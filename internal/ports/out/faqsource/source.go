package faqsource

import "context"

// Item is one published FAQ entry.
type Item struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    int    `json:"order"`
}

// Source is the external FAQ content provider. Fetch returns published items
// in display order.
type Source interface {
	Fetch(ctx context.Context) ([]Item, error)
}
