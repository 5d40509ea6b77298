package ui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"

	"selectbox/internal/config"
	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
	"selectbox/internal/registry"
	"selectbox/internal/widget/actions"
	"selectbox/internal/widget/state"
)

// maxSearchDistance is the largest edit distance a non-substring match may
// have to still appear in search results
const maxSearchDistance = 3

// Field is one dropdown-backed form field: widget state plus its bound
// action set, the search input, and the view bookkeeping the renderer needs.
type Field struct {
	Label string

	id    string
	state *state.State
	acts  *actions.Actions
	reg   *registry.Registry
	cfg   *config.Config

	filter     textinput.Model
	highlight  int // highlighted position within the filtered list
	viewOffset int // first visible filtered position
	row        int // trigger row within the rendered form
}

// NewField creates a dropdown field, registers it with the widget registry
// and resolves its action set
func NewField(label string, groups []domain.OptionGroup, cfg *config.Config, reg *registry.Registry, bus eventbus.EventBus, sched actions.Scheduler) *Field {
	st := state.New(groups)
	st.OptionHeight = cfg.OptionHeight

	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.CharLimit = 64

	f := &Field{
		Label:  label,
		state:  st,
		reg:    reg,
		cfg:    cfg,
		filter: ti,
	}

	// Siblings close this instance through the registry. The action set has
	// no standalone close, so the callback routes through direct mutation.
	f.id = reg.Register(func() {
		st.Body = domain.BodyClosed
		f.stopSearch()
	})

	f.acts = actions.Resolve(st, actions.Deps{
		WidgetID:            f.id,
		CloseOthers:         func() { reg.CloseOthers(f.id) },
		ScrollToView:        f.scrollToView,
		MeasureOptionHeight: func() int { return cfg.OptionHeight },
		Bus:                 bus,
		Scheduler:           sched,
	})

	if cfg.UseNativeThreshold > 0 && st.OptionCount() >= cfg.UseNativeThreshold {
		f.acts.UseNative()
	}

	return f
}

// ID returns the registry id of this field's widget instance
func (f *Field) ID() string { return f.id }

// State returns the underlying widget state
func (f *Field) State() *state.State { return f.state }

// Actions returns the bound action set
func (f *Field) Actions() *actions.Actions { return f.acts }

// Deregister removes the field from the widget registry
func (f *Field) Deregister() {
	f.reg.Deregister(f.id)
}

// SetRow records the field's trigger row within the rendered form
func (f *Field) SetRow(row int) { f.row = row }

// VisibleWindow returns how many option rows may render at once
func (f *Field) VisibleWindow(override int) int {
	window := f.cfg.MaxVisibleOptions
	if override > 0 {
		window = override
	}
	return window
}

// Open opens the field's dropdown, detecting the viewport collision from
// the trigger row against the terminal height
func (f *Field) Open(termHeight int) {
	collision := f.detectCollision(termHeight)
	window := f.VisibleWindow(collision.MaxVisibleOptionsOverride)

	f.highlight = f.positionOf(f.state.SelectedIndex)
	f.acts.Open(collision, func() bool {
		return len(f.filteredIndexes()) > window
	}, f.viewOffset)
}

// detectCollision classifies where the preferred below-the-trigger body
// would overflow the terminal
func (f *Field) detectCollision(termHeight int) domain.Collision {
	window := f.VisibleWindow(0)
	count := f.state.OptionCount()
	if count < window {
		window = count
	}
	bodyHeight := window * f.state.OptionHeight

	roomBelow := termHeight - f.row - 1
	roomAbove := f.row

	switch {
	case roomBelow >= bodyHeight:
		return domain.Collision{Type: domain.CollisionNone}
	case roomAbove >= bodyHeight:
		return domain.Collision{Type: domain.CollisionBottom}
	default:
		return domain.Collision{Type: domain.CollisionTop}
	}
}

// filteredIndexes returns the flattened option indexes visible under the
// current search query, ranked by edit distance when searching
func (f *Field) filteredIndexes() []int {
	count := f.state.OptionCount()
	query := strings.ToLower(strings.TrimSpace(f.filter.Value()))

	if !f.state.Searching || query == "" {
		all := make([]int, count)
		for i := range all {
			all[i] = i
		}
		return all
	}

	type ranked struct {
		index    int
		distance int
	}
	var matches []ranked
	for i := 0; i < count; i++ {
		opt, ok := f.state.OptionAt(i)
		if !ok {
			continue
		}
		label := strings.ToLower(opt.DisplayLabel())
		dist := levenshtein.ComputeDistance(label, query)
		if strings.Contains(label, query) {
			// Substring hits rank ahead of fuzzy hits
			dist = -1
		} else if dist > maxSearchDistance {
			continue
		}
		matches = append(matches, ranked{index: i, distance: dist})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.index
	}
	return out
}

// positionOf returns the filtered-list position of a flattened index,
// or 0 when the index is filtered out
func (f *Field) positionOf(index int) int {
	for pos, idx := range f.filteredIndexes() {
		if idx == index {
			return pos
		}
	}
	return 0
}

// MoveHighlight moves the open list's highlight by delta, scrolling the
// visible window and reporting edge transitions through the action set
func (f *Field) MoveHighlight(delta int) {
	filtered := f.filteredIndexes()
	if len(filtered) == 0 {
		return
	}

	f.highlight += delta
	if f.highlight < 0 {
		f.highlight = 0
	}
	if f.highlight >= len(filtered) {
		f.highlight = len(filtered) - 1
	}

	window := f.VisibleWindow(0)
	if f.highlight < f.viewOffset {
		f.viewOffset = f.highlight
	} else if f.highlight >= f.viewOffset+window {
		f.viewOffset = f.highlight - window + 1
	}

	if !f.state.Scrollable {
		return
	}
	switch {
	case f.viewOffset == 0:
		f.acts.TopOut()
	case f.viewOffset+window >= len(filtered):
		f.acts.BottomOut()
	default:
		f.acts.Scroll()
	}
}

// SelectHighlighted selects the currently highlighted option
func (f *Field) SelectHighlighted() {
	filtered := f.filteredIndexes()
	if len(filtered) == 0 {
		f.Dismiss()
		return
	}
	pos := f.highlight
	if pos >= len(filtered) {
		pos = len(filtered) - 1
	}
	f.acts.SelectOption(filtered[pos])
	f.stopSearch()
}

// Dismiss closes the open body without changing the chosen value. The
// action set has no standalone close, so dismissal re-selects the current
// index and lets selection's close-on-select semantics do the closing.
func (f *Field) Dismiss() {
	f.acts.SelectOption(f.state.SelectedIndex)
	f.stopSearch()
}

// StartSearch puts the field into filter/search input mode
func (f *Field) StartSearch() {
	f.state.Searching = true
	f.filter.Focus()
}

func (f *Field) stopSearch() {
	f.state.Searching = false
	f.filter.Blur()
	f.filter.Reset()
}

// scrollToView brings the selected option into the visible window. Bound
// as the ScrollToView collaborator; the top offset hint from the latest
// Open seeds the window position.
func (f *Field) scrollToView() {
	filtered := f.filteredIndexes()
	window := f.VisibleWindow(0)

	pos := f.positionOf(f.state.SelectedIndex)
	f.highlight = pos

	f.viewOffset = f.acts.TopOffset()
	if pos < f.viewOffset {
		f.viewOffset = pos
	} else if pos >= f.viewOffset+window {
		f.viewOffset = pos - window + 1
	}
	if max := len(filtered) - window; f.viewOffset > max && max >= 0 {
		f.viewOffset = max
	}
	if f.viewOffset < 0 {
		f.viewOffset = 0
	}
}
