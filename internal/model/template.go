package model

import (
	"time"

	"github.com/google/uuid"
)

// QuoteTemplate is a named, reusable quote configuration such as
// "Small gold cube with bow".
type QuoteTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Quote       Quote  `json:"quote"`
}

// NewQuoteTemplate captures a copy of q under the given name.
func NewQuoteTemplate(name, description string, q Quote) QuoteTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return QuoteTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Quote:       q.Copy(),
	}
}

// ToQuote creates a new quote from this template with a fresh ID,
// independent of the template.
func (t QuoteTemplate) ToQuote() Quote {
	q := t.Quote.Copy()
	q.ID = uuid.New().String()[:8]
	return q
}

// TemplateStore holds a collection of quote templates.
type TemplateStore struct {
	Templates []QuoteTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []QuoteTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t QuoteTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *QuoteTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *QuoteTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}
