package ui

import (
	"selectbox/internal/ui/views"
	"selectbox/internal/widget/state"
)

// viewRenderer bridges field state to the plain view models the views
// package renders
type viewRenderer struct {
	styles *views.Styles
	fields *views.Renderer
}

func newViewRenderer() *viewRenderer {
	return &viewRenderer{
		styles: views.NewStyles(),
		fields: views.NewRenderer(),
	}
}

// RenderFieldState renders one field, open or closed
func (r *viewRenderer) RenderFieldState(f *Field, focused bool) string {
	return r.fields.RenderField(buildFieldView(f, focused))
}

// buildFieldView flattens the field's current state into a FieldView
func buildFieldView(f *Field, focused bool) views.FieldView {
	st := f.State()

	value := ""
	if opt, ok := st.SelectedOption(); ok {
		value = opt.DisplayLabel()
	}

	fv := views.FieldView{
		Label:      f.Label,
		Value:      value,
		Focused:    focused,
		Invalid:    st.Invalid,
		Disabled:   st.Disabled,
		Searching:  st.Searching,
		Native:     st.UseNativeMode,
		Body:       st.Body,
		Scroll:     st.Scroll,
		FilterLine: f.filter.View(),
	}

	if st.IsClosed() {
		return fv
	}

	filtered := f.filteredIndexes()
	window := f.VisibleWindow(0)

	start := f.viewOffset
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + window
	if end > len(filtered) {
		end = len(filtered)
	}

	starts := groupStarts(st)
	for pos := start; pos < end; pos++ {
		idx := filtered[pos]
		opt, ok := st.OptionAt(idx)
		if !ok {
			continue
		}
		row := views.OptionRow{
			Label:       opt.DisplayLabel(),
			Highlighted: pos == f.highlight,
			Selected:    idx == st.SelectedIndex,
		}
		// Group headings only make sense in list order, not search order
		if !st.Searching {
			if label, ok := starts[idx]; ok {
				row.GroupLabel = label
			}
		}
		fv.Rows = append(fv.Rows, row)
	}

	fv.MoreAbove = start > 0
	fv.MoreBelow = end < len(filtered)
	return fv
}

// groupStarts maps the flattened index of each group's first option to the
// group's label
func groupStarts(st *state.State) map[int]string {
	starts := make(map[int]string)
	offset := 0
	for _, g := range st.Groups {
		if len(g.Options) > 0 && g.Label != "" {
			starts[offset] = g.Label
		}
		offset += len(g.Options)
	}
	return starts
}
