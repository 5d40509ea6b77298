package views

import (
	"fmt"
	"strings"

	"selectbox/internal/domain"
)

// OptionRow is one renderable row of an open dropdown body
type OptionRow struct {
	Label       string
	GroupLabel  string // non-empty when a group heading precedes this row
	Highlighted bool
	Selected    bool
}

// FieldView is the plain render model for one dropdown field
type FieldView struct {
	Label      string
	Value      string
	Focused    bool
	Invalid    bool
	Disabled   bool
	Searching  bool
	Native     bool
	Body       domain.BodyStatus
	Scroll     domain.ScrollStatus
	FilterLine string
	Rows       []OptionRow
	MoreAbove  bool
	MoreBelow  bool
}

// Renderer renders dropdown fields
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new field renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
	}
}

// RenderField renders one field: the trigger line plus, when open, the
// dropdown body above or below it
func (r *Renderer) RenderField(fv FieldView) string {
	trigger := r.renderTrigger(fv)

	if fv.Body == domain.BodyClosed {
		return trigger
	}

	body := r.renderBody(fv)
	if fv.Body == domain.BodyOpenAbove {
		return body + "\n" + trigger
	}
	return trigger + "\n" + body
}

func (r *Renderer) renderTrigger(fv FieldView) string {
	label := r.styles.Label.Render(fv.Label + ":")
	if fv.Focused {
		label = r.styles.Focused.Render("> " + fv.Label + ":")
	} else {
		label = "  " + label
	}

	value := fv.Value
	switch {
	case fv.Disabled:
		value = r.styles.Disabled.Render(value)
	case fv.Invalid:
		value = r.styles.Invalid.Render(value + " ✗")
	case value == "":
		value = r.styles.Placeholder.Render("(none)")
	default:
		value = r.styles.Value.Render(value)
	}

	marker := "▾"
	if fv.Body == domain.BodyOpenAbove {
		marker = "▴"
	}
	if fv.Native {
		marker = r.styles.Native.Render("[native]")
	}

	return fmt.Sprintf("%s %s %s", label, value, marker)
}

func (r *Renderer) renderBody(fv FieldView) string {
	var lines []string

	if fv.Searching {
		lines = append(lines, fv.FilterLine)
	}

	if fv.MoreAbove {
		lines = append(lines, r.styles.Scroll.Render("↑ more"))
	}

	for _, row := range fv.Rows {
		if row.GroupLabel != "" {
			lines = append(lines, r.styles.GroupLabel.Render(row.GroupLabel))
		}
		text := "  " + row.Label
		switch {
		case row.Highlighted:
			text = r.styles.Highlight.Render("» " + row.Label)
		case row.Selected:
			text = r.styles.Selected.Render("• " + row.Label)
		default:
			text = r.styles.Option.Render(text)
		}
		lines = append(lines, text)
	}

	if len(fv.Rows) == 0 {
		lines = append(lines, r.styles.Placeholder.Render("no matches"))
	}

	if fv.MoreBelow {
		lines = append(lines, r.styles.Scroll.Render("↓ more"))
	}

	return r.styles.Body.Render(strings.Join(lines, "\n"))
}
