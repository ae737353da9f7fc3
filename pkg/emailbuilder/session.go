package emailbuilder

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mailsmith/mailsmith/pkg/logger"
)

// ViewportMode is a presentation toggle only; it never alters the data model
type ViewportMode string

const (
	ViewportDesktop ViewportMode = "desktop"
	ViewportMobile  ViewportMode = "mobile"
)

// SelectionListener is notified when the selected component changes.
// A nil component means the selection was cleared.
type SelectionListener func(*Component)

// EditorSession owns the live template for the duration of an editing
// session, together with its history, selection and drag state. All
// mutation goes through the session's synchronous methods; no collaborator
// mutates the template directly.
type EditorSession struct {
	mu sync.Mutex

	logger   logger.Logger
	template *Template
	history  *History

	selectedID string
	viewport   ViewportMode
	drag       DragState

	onSelect SelectionListener
}

// NewEditorSession creates a session with no template loaded
func NewEditorSession(log logger.Logger) *EditorSession {
	return &EditorSession{
		logger:   log,
		history:  NewHistory(),
		viewport: ViewportDesktop,
		drag:     DragState{Kind: DragIdle},
	}
}

// SetSelectionListener registers the properties panel callback
func (s *EditorSession) SetSelectionListener(fn SelectionListener) {
	s.mu.Lock()
	s.onSelect = fn
	s.mu.Unlock()
}

// LoadTemplate replaces the current template wholesale, pushes the initial
// history snapshot and clears selection.
func (s *EditorSession) LoadTemplate(t *Template) error {
	if t == nil {
		return fmt.Errorf("cannot load nil template")
	}
	s.mu.Lock()
	s.template = t
	s.selectedID = ""
	s.history = NewHistory()
	err := s.history.Commit(t)
	notify := s.onSelect
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to record initial snapshot: %w", err)
	}
	if notify != nil {
		notify(nil)
	}
	return nil
}

// Template returns the session's live template. Read-only for callers:
// mutation must go through session methods.
func (s *EditorSession) Template() *Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// Render rebuilds the entire preview document from current state. It has no
// side effects on the data model and is safe to call repeatedly.
func (s *EditorSession) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RenderPreview(s.template, s.selectedID, s.viewport)
}

// FlattenedComponents derives the canonical ordered flat list. It is
// recomputed from current state on every call, never cached.
func (s *EditorSession) FlattenedComponents() []*Component {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template.Flatten()
}

// AddComponent creates a component of the given type with the registry's
// default properties, inserts it at position in the flattened list (append
// when position is nil), commits a snapshot and auto-selects it. Unknown
// types are logged and ignored.
func (s *EditorSession) AddComponent(t ComponentType, position *int) *Component {
	props := DefaultProperties(t)
	if props == nil {
		if s.logger != nil {
			s.logger.WithField("type", string(t)).Warn("Ignoring unknown component type")
		}
		return nil
	}

	component := &Component{
		ID:         "component-" + uuid.New().String(),
		Type:       t,
		Properties: props,
		Styles:     map[string]string{},
	}

	s.mu.Lock()
	if s.template == nil {
		s.template = NewTemplate()
	}
	flat := s.template.Flatten()
	idx := len(flat)
	if position != nil && *position >= 0 && *position <= len(flat) {
		idx = *position
	}
	flat = append(flat, nil)
	copy(flat[idx+1:], flat[idx:])
	flat[idx] = component
	s.template.SetFlat(flat)
	s.selectedID = component.ID
	commitErr := s.history.Commit(s.template)
	notify := s.onSelect
	s.mu.Unlock()

	if commitErr != nil && s.logger != nil {
		s.logger.WithField("error", commitErr.Error()).Error("Failed to commit history snapshot")
	}
	if notify != nil {
		notify(component)
	}
	return component
}

// Reorder moves the component at fromIndex next to toIndex in the flattened
// list, commits a snapshot and keeps selection intact.
func (s *EditorSession) Reorder(fromIndex, toIndex int, insertBefore bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flat := s.template.Flatten()
	if fromIndex < 0 || fromIndex >= len(flat) || toIndex < 0 || toIndex >= len(flat) {
		return fmt.Errorf("reorder indexes out of range: from=%d to=%d len=%d", fromIndex, toIndex, len(flat))
	}

	moved := flat[fromIndex]
	flat = append(flat[:fromIndex], flat[fromIndex+1:]...)
	idx := adjustedReorderIndex(fromIndex, toIndex, insertBefore)
	if idx < 0 {
		idx = 0
	}
	if idx > len(flat) {
		idx = len(flat)
	}
	flat = append(flat, nil)
	copy(flat[idx+1:], flat[idx:])
	flat[idx] = moved
	s.template.SetFlat(flat)

	if err := s.history.Commit(s.template); err != nil {
		return fmt.Errorf("failed to commit history snapshot: %w", err)
	}
	return nil
}

// UpdateProperty mutates one property of the matching component in place.
// Selection survives a property edit. History is NOT committed here:
// callers own the commit, debounced for text-like edits and immediate for
// discrete ones.
func (s *EditorSession) UpdateProperty(componentID, name string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	component := s.template.FindComponent(componentID)
	if component == nil {
		if s.logger != nil {
			s.logger.WithField("component_id", componentID).Warn("Property update for unknown component ignored")
		}
		return
	}
	if component.Properties == nil {
		component.Properties = map[string]interface{}{}
	}
	component.Properties[name] = value
}

// DeleteComponent removes a component from the flattened list and commits a
// snapshot. Deleting the selected component clears the selection so no
// dangling reference survives.
func (s *EditorSession) DeleteComponent(componentID string) {
	s.mu.Lock()
	flat := s.template.Flatten()
	filtered := flat[:0]
	removed := false
	for _, c := range flat {
		if c.ID == componentID {
			removed = true
			continue
		}
		filtered = append(filtered, c)
	}
	if !removed {
		s.mu.Unlock()
		return
	}
	s.template.SetFlat(filtered)

	var notify SelectionListener
	if s.selectedID == componentID {
		s.selectedID = ""
		notify = s.onSelect
	}
	commitErr := s.history.Commit(s.template)
	s.mu.Unlock()

	if commitErr != nil && s.logger != nil {
		s.logger.WithField("error", commitErr.Error()).Error("Failed to commit history snapshot")
	}
	if notify != nil {
		notify(nil)
	}
}

// SelectComponent marks a component as selected and notifies the panel.
// Selecting an unknown ID clears the selection instead.
func (s *EditorSession) SelectComponent(componentID string) *Component {
	s.mu.Lock()
	component := s.template.FindComponent(componentID)
	if component != nil {
		s.selectedID = component.ID
	} else {
		s.selectedID = ""
	}
	notify := s.onSelect
	s.mu.Unlock()

	if notify != nil {
		notify(component)
	}
	return component
}

// Deselect clears the selection and shows the panel's empty state
func (s *EditorSession) Deselect() {
	s.mu.Lock()
	s.selectedID = ""
	notify := s.onSelect
	s.mu.Unlock()

	if notify != nil {
		notify(nil)
	}
}

// SelectedComponent returns the currently selected component, or nil
func (s *EditorSession) SelectedComponent() *Component {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" || s.template == nil {
		return nil
	}
	return s.template.FindComponent(s.selectedID)
}

// SetViewport toggles the desktop/mobile presentation mode
func (s *EditorSession) SetViewport(mode ViewportMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode != ViewportDesktop && mode != ViewportMobile {
		return
	}
	s.viewport = mode
}

// Viewport returns the current presentation mode
func (s *EditorSession) Viewport() ViewportMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

// CommitHistory snapshots the current template. The properties panel calls
// this after a debounce window for text edits, or immediately for discrete
// ones.
func (s *EditorSession) CommitHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Commit(s.template)
}

// Undo steps the session back one snapshot. Applying a snapshot replaces
// the template wholesale and clears selection; at the oldest entry this is
// a no-op.
func (s *EditorSession) Undo() bool {
	return s.applyHistoryJump((*History).Undo)
}

// Redo steps the session forward one snapshot, with the same semantics as
// Undo at the newest entry.
func (s *EditorSession) Redo() bool {
	return s.applyHistoryJump((*History).Redo)
}

func (s *EditorSession) applyHistoryJump(step func(*History) *Template) bool {
	s.mu.Lock()
	snapshot := step(s.history)
	if snapshot == nil {
		s.mu.Unlock()
		return false
	}
	s.template = snapshot
	s.selectedID = ""
	notify := s.onSelect
	s.mu.Unlock()

	if notify != nil {
		notify(nil)
	}
	return true
}

// CanUndo reports whether an older snapshot exists
func (s *EditorSession) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

// CanRedo reports whether a newer snapshot exists
func (s *EditorSession) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}

// BeginNewDrag enters the dragging-new state for a palette drag
func (s *EditorSession) BeginNewDrag(t ComponentType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag = DragState{Kind: DragNew, NewType: t}
}

// BeginReorderDrag enters the dragging-existing state for a canvas reorder
func (s *EditorSession) BeginReorderDrag(componentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag = DragState{Kind: DragExisting, ComponentID: componentID}
}

// DragOver updates the hover target from the pointer position. The visual
// layer projects the returned indicator; it is never queried for state.
func (s *EditorSession) DragOver(pointerY float64, boxes []ElementBox) DropIndicator {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drag.Kind == DragIdle {
		return DropIndicator{}
	}
	exclude := ""
	if s.drag.Kind == DragExisting {
		exclude = s.drag.ComponentID
	}
	s.drag.Indicator = ResolveDropTarget(pointerY, boxes, exclude)
	return s.drag.Indicator
}

// Drop resolves the drag against the same midpoint rule used for the
// indicator, performs the insert or reorder, and returns to idle. The
// indicator is cleared whether or not the drop landed.
func (s *EditorSession) Drop(pointerY float64, boxes []ElementBox) {
	s.mu.Lock()
	drag := s.drag
	s.drag = DragState{Kind: DragIdle}
	s.mu.Unlock()

	switch drag.Kind {
	case DragNew:
		target := ResolveDropTarget(pointerY, boxes, "")
		if !target.Active {
			s.AddComponent(drag.NewType, nil)
			return
		}
		idx := s.flatIndexOf(target.TargetID)
		if idx < 0 {
			s.AddComponent(drag.NewType, nil)
			return
		}
		if !target.Before {
			idx++
		}
		s.AddComponent(drag.NewType, &idx)
	case DragExisting:
		target := ResolveDropTarget(pointerY, boxes, drag.ComponentID)
		if !target.Active {
			return
		}
		from := s.flatIndexOf(drag.ComponentID)
		to := s.flatIndexOf(target.TargetID)
		if from < 0 || to < 0 {
			return
		}
		if err := s.Reorder(from, to, target.Before); err != nil && s.logger != nil {
			s.logger.WithField("error", err.Error()).Error("Drop reorder failed")
		}
	}
}

// CancelDrag aborts an in-flight drag. The cancellation path must not leak
// indicator state.
func (s *EditorSession) CancelDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag = DragState{Kind: DragIdle}
}

// Drag returns a copy of the current drag state
func (s *EditorSession) Drag() DragState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag
}

func (s *EditorSession) flatIndexOf(componentID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.template.Flatten() {
		if c.ID == componentID {
			return i
		}
	}
	return -1
}
