package fields

import (
	"errors"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/form"
)

var (
	// ErrNoForm is returned when an adapter has no form store to bind to.
	ErrNoForm = errors.New("fields: no form store")
	// ErrInvalidNumber is returned when numeric input does not parse.
	ErrInvalidNumber = errors.New("fields: not a number")
	// ErrUnavailableOption is returned by Apply when posted choices name
	// unknown or disabled options, or exceed a multi-select's Max.
	ErrUnavailableOption = errors.New("fields: unavailable option")
)

// Props are the inputs shared by every adapter.
type Props struct {
	Name            string            `json:"name" yaml:"name"`
	Label           string            `json:"label,omitempty" yaml:"label,omitempty"`
	Description     string            `json:"description,omitempty" yaml:"description,omitempty"`
	Warning         string            `json:"warning,omitempty" yaml:"warning,omitempty"`
	Placeholder     string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required        bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Disabled        bool              `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	ReadOnly        bool              `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Class           string            `json:"class,omitempty" yaml:"class,omitempty"`
	AriaLabel       string            `json:"ariaLabel,omitempty" yaml:"ariaLabel,omitempty"`
	AriaDescribedBy string            `json:"ariaDescribedBy,omitempty" yaml:"ariaDescribedBy,omitempty"`
	Rules           string            `json:"rules,omitempty" yaml:"rules,omitempty"`
	Messages        map[string]string `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// Slot is what the message slot under a control shows.
type Slot int

const (
	SlotNone Slot = iota
	SlotWarning
	SlotError
)

// Presentation is derived on every render from Props and the binding.
type Presentation struct {
	ID              string
	DescriptionID   string
	MessageID       string
	Label           string
	Required        bool
	Invalid         bool
	Description     string
	ShowDescription bool
	Slot            Slot
	Message         string
	DescribedBy     string
}

// Present computes the presentation of a field. An error always takes the
// message slot; the warning shows only without one, and the description
// only when there is no error.
func Present(p Props, binding form.Binding) Presentation {
	base := components.ControlID(p.Name)
	pres := Presentation{
		ID:            base + "-form-item",
		DescriptionID: base + "-form-item-description",
		MessageID:     base + "-form-item-message",
		Label:         p.Label,
		Required:      p.Required,
		Invalid:       binding.Error != nil,
		Description:   p.Description,
	}

	switch {
	case binding.Error != nil:
		pres.Slot = SlotError
		pres.Message = binding.Error.Message
	case strings.TrimSpace(p.Warning) != "":
		pres.Slot = SlotWarning
		pres.Message = p.Warning
	}
	pres.ShowDescription = p.Description != "" && pres.Slot != SlotError

	var ids []string
	if p.AriaDescribedBy != "" {
		ids = append(ids, p.AriaDescribedBy)
	}
	if pres.ShowDescription {
		ids = append(ids, pres.DescriptionID)
	}
	if pres.Slot != SlotNone {
		ids = append(ids, pres.MessageID)
	}
	pres.DescribedBy = strings.Join(ids, " ")
	return pres
}

// control maps the presentation onto the shared control props.
func (pres Presentation) control(p Props) components.Control {
	return components.Control{
		ID:          pres.ID,
		Name:        p.Name,
		Disabled:    p.Disabled,
		ReadOnly:    p.ReadOnly,
		Required:    p.Required,
		Invalid:     pres.Invalid,
		DescribedBy: pres.DescribedBy,
		AriaLabel:   p.AriaLabel,
	}
}

// FieldOptions returns the store registration options for p: its rules, with
// "required" prepended when Required is set, and its messages.
func (p Props) FieldOptions() []form.FieldOption {
	rules := strings.TrimSpace(p.Rules)
	if p.Required && !hasTag(rules, "required") {
		if rules == "" {
			rules = "required"
		} else {
			rules = "required," + rules
		}
	}
	var opts []form.FieldOption
	if rules != "" {
		opts = append(opts, form.Rules(rules))
	}
	for tag, msg := range p.Messages {
		opts = append(opts, form.Message(tag, msg))
	}
	return opts
}

func hasTag(rules, tag string) bool {
	for _, part := range strings.Split(rules, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(part), "=")
		if name == tag {
			return true
		}
	}
	return false
}
