package components

import (
	"bytes"

	"github.com/goliatone/go-uikit/pkg/variants"
)

// Partial keys a theme can override with its own template.
const (
	PartialCard  = "components.card"
	PartialAlert = "components.alert"
)

// CardProps configures Card.
type CardProps struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Content     Markup `json:"content,omitempty"`
	Footer      Markup `json:"footer,omitempty"`
	Class       string `json:"class,omitempty"`
}

// Card renders through the "components.card" partial.
func (r *Renderer) Card(buf *bytes.Buffer, p CardProps) error {
	return r.renderTemplate(buf, PartialCard, CardTemplate, map[string]any{
		"id":          p.ID,
		"class":       r.Class(CardSpec, nil, p.Class),
		"title":       p.Title,
		"description": p.Description,
		"content":     string(p.Content),
		"footer":      string(p.Footer),
	})
}

// AlertProps configures Alert.
type AlertProps struct {
	ID          string `json:"id,omitempty"`
	Variant     string `json:"variant,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        Icon   `json:"icon,omitempty"`
	Content     Markup `json:"content,omitempty"`
	Class       string `json:"class,omitempty"`
}

// Alert renders through the "components.alert" partial.
func (r *Renderer) Alert(buf *bytes.Buffer, p AlertProps) error {
	variant := p.Variant
	if variant == "" {
		variant = "default"
	}
	return r.renderTemplate(buf, PartialAlert, AlertTemplate, map[string]any{
		"id":          p.ID,
		"variant":     variant,
		"class":       r.Class(AlertSpec, variants.Choices{"variant": p.Variant}, p.Class),
		"title":       p.Title,
		"description": p.Description,
		"icon":        string(SanitizeIcon(p.Icon)),
		"content":     string(p.Content),
	})
}
