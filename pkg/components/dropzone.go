package components

import (
	"bytes"

	"github.com/goliatone/go-uikit/pkg/variants"
)

// DndInputProps configures DndInput.
type DndInputProps struct {
	Control
	Rules    FileRules `json:"rules,omitempty"`
	Active   bool      `json:"active,omitempty"`
	Children Markup    `json:"children,omitempty"`
	Class    string    `json:"class,omitempty"`
}

// DndInput renders a drop area wrapping a hidden file input. The drop area
// is focusable and announced as a button; the client forwards drops to the
// input and reports rejections computed with CheckFiles.
func (r *Renderer) DndInput(buf *bytes.Buffer, p DndInputProps) error {
	id := p.id()
	class := r.Class(DropzoneSpec, variants.Choices{
		"active":   boolChoice(p.Active),
		"invalid":  boolChoice(p.Invalid),
		"disabled": boolChoice(p.Disabled),
	}, p.Class)

	label := p.AriaLabel
	if label == "" {
		label = "File upload area"
	}
	buf.WriteString(`<div role="button" data-component="dnd-input"`)
	if id != "" {
		attr(buf, "id", id+"-dropzone")
	}
	if p.Disabled {
		buf.WriteString(` tabindex="-1" aria-disabled="true"`)
	} else {
		buf.WriteString(` tabindex="0"`)
	}
	attr(buf, "aria-label", label)
	attr(buf, "aria-describedby", p.DescribedBy)
	ariaState(buf, "aria-invalid", p.Invalid)
	ariaBool(buf, "aria-required", p.Required)
	if p.Active {
		attr(buf, "data-state", "active")
	}
	attr(buf, "class", class)
	buf.WriteByte('>')

	buf.WriteString(`<input type="file" tabindex="-1" style="display:none"`)
	attr(buf, "id", id)
	attr(buf, "name", p.Name)
	attr(buf, "accept", p.Rules.Accept.String())
	boolAttr(buf, "multiple", p.Rules.Multiple)
	boolAttr(buf, "disabled", p.Disabled)
	boolAttr(buf, "required", p.Required)
	buf.WriteByte('>')

	if p.Children != "" {
		buf.WriteString(string(p.Children))
	} else {
		buf.WriteString(string(glyphUpload))
		buf.WriteString(`<span><span class="underline">Upload</span> or drop a file right here</span>`)
		hint := p.Rules.Accept.String()
		if hint == "" {
			hint = "all file types"
		}
		buf.WriteString(`<span class="ml-auto text-gray-400 text-sm">`)
		text(buf, hint)
		buf.WriteString(`</span>`)
	}
	buf.WriteString(`</div>`)
	return nil
}
