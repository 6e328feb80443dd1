package fields

import (
	"bytes"

	"github.com/goliatone/go-uikit/pkg/components"
)

// DndInputProps configures DndInput.
type DndInputProps struct {
	Props    `yaml:",inline"`
	Rules    components.FileRules `json:"fileRules,omitempty" yaml:"fileRules,omitempty"`
	Children components.Markup    `json:"children,omitempty" yaml:"children,omitempty"`
}

// DndInput renders a labelled drop area bound to the store.
func (a *Adapter) DndInput(buf *bytes.Buffer, p DndInputProps) error {
	binding, err := a.bind(p.Props)
	if err != nil {
		return err
	}
	pres := Present(p.Props, binding)
	return a.item(buf, p.Props, pres, stacked, func(buf *bytes.Buffer) error {
		return a.renderer.DndInput(buf, components.DndInputProps{
			Control:  pres.control(p.Props),
			Rules:    p.Rules,
			Children: p.Children,
			Class:    p.Class,
		})
	})
}

// MustDndInput is DndInput that panics on error.
func (a *Adapter) MustDndInput(buf *bytes.Buffer, p DndInputProps) {
	mustRender(a.DndInput(buf, p))
}

// ChangeFiles checks dropped files against rules, stores the accepted ones
// and returns the rejections for the caller to present. Rejected files
// never reach the store.
func (a *Adapter) ChangeFiles(name string, files []components.FileInfo, rules components.FileRules) ([]components.FileRejection, error) {
	binding, err := a.field(name)
	if err != nil {
		return nil, err
	}
	accepted, rejected := components.CheckFiles(files, rules)
	if len(accepted) == 0 {
		err = binding.OnChange(nil)
	} else {
		err = binding.OnChange(accepted)
	}
	return rejected, err
}
