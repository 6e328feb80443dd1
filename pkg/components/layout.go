package components

import (
	"bytes"

	"github.com/goliatone/go-uikit/pkg/variants"
)

// StackProps configures Stack.
type StackProps struct {
	Direction string `json:"direction,omitempty"`
	Spacing   string `json:"spacing,omitempty"`
	Wrap      bool   `json:"wrap,omitempty"`
	Center    bool   `json:"center,omitempty"`
	Justify   string `json:"justify,omitempty"`
	Align     string `json:"align,omitempty"`
	Children  Markup `json:"children,omitempty"`
	Class     string `json:"class,omitempty"`
}

// Stack lays children out in a flex row or column.
func (r *Renderer) Stack(buf *bytes.Buffer, p StackProps) error {
	class := r.Class(StackSpec, variants.Choices{
		"direction": p.Direction,
		"spacing":   p.Spacing,
		"wrap":      boolChoice(p.Wrap),
		"center":    boolChoice(p.Center),
		"justify":   p.Justify,
		"align":     p.Align,
	}, p.Class)
	buf.WriteString(`<div`)
	attr(buf, "class", class)
	buf.WriteByte('>')
	buf.WriteString(string(p.Children))
	buf.WriteString(`</div>`)
	return nil
}

// ContainerProps configures Container. MaxWidth "none" removes the cap;
// Fluid does the same regardless of MaxWidth.
type ContainerProps struct {
	MaxWidth       string `json:"maxWidth,omitempty"`
	DisablePadding bool   `json:"disablePadding,omitempty"`
	Fluid          bool   `json:"fluid,omitempty"`
	Children       Markup `json:"children,omitempty"`
	Class          string `json:"class,omitempty"`
}

// Container centres content with a responsive max width.
func (r *Renderer) Container(buf *bytes.Buffer, p ContainerProps) error {
	maxWidth := p.MaxWidth
	if p.Fluid {
		maxWidth = "none"
	}
	class := r.Class(ContainerSpec, variants.Choices{
		"maxWidth": maxWidth,
		"padding":  boolChoice(!p.DisablePadding),
	}, p.Class)
	buf.WriteString(`<div`)
	attr(buf, "class", class)
	buf.WriteByte('>')
	buf.WriteString(string(p.Children))
	buf.WriteString(`</div>`)
	return nil
}

// SeparatorProps configures Separator. A decorative separator is hidden from
// assistive technology.
type SeparatorProps struct {
	Orientation string `json:"orientation,omitempty"`
	Decorative  *bool  `json:"decorative,omitempty"`
	Class       string `json:"class,omitempty"`
}

// Separator renders a horizontal or vertical rule. Decorative defaults to
// true.
func (r *Renderer) Separator(buf *bytes.Buffer, p SeparatorProps) error {
	orientation := p.Orientation
	if orientation == "" {
		orientation = "horizontal"
	}
	decorative := p.Decorative == nil || *p.Decorative

	buf.WriteString(`<div`)
	if decorative {
		attr(buf, "role", "none")
	} else {
		attr(buf, "role", "separator")
		if orientation == "vertical" {
			attr(buf, "aria-orientation", "vertical")
		}
	}
	attr(buf, "data-orientation", orientation)
	attr(buf, "class", r.Class(SeparatorSpec, variants.Choices{"orientation": p.Orientation}, p.Class))
	buf.WriteString(`></div>`)
	return nil
}

// SkeletonProps configures Skeleton.
type SkeletonProps struct {
	Class string `json:"class,omitempty"`
}

// Skeleton renders a pulsing placeholder block. Size it through Class.
func (r *Renderer) Skeleton(buf *bytes.Buffer, p SkeletonProps) error {
	buf.WriteString(`<div`)
	attr(buf, "class", r.Class(SkeletonSpec, nil, p.Class))
	buf.WriteString(` aria-hidden="true"></div>`)
	return nil
}
