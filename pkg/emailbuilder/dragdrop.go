package emailbuilder

// DragKind identifies what is being dragged over the canvas
type DragKind string

const (
	DragIdle     DragKind = "idle"
	DragNew      DragKind = "dragging-new"
	DragExisting DragKind = "dragging-existing"
)

// DropIndicator marks where the dragged element would be inserted. It is
// part of the session model, never read back from the rendered surface.
type DropIndicator struct {
	// TargetID is the component the indicator is bound to; empty when the
	// canvas has no eligible target.
	TargetID string
	// Before is true when insertion happens above the target, false for the
	// insert-at-end case bound to the last element.
	Before bool
	Active bool
}

// DragState is the explicit drag-and-drop state machine of a session
type DragState struct {
	Kind DragKind
	// NewType is set while dragging a fresh component from the palette
	NewType ComponentType
	// ComponentID is set while reordering an existing component
	ComponentID string
	Indicator   DropIndicator
}

// ElementBox is the vertical extent of one rendered component, reported by
// the visual layer in document order.
type ElementBox struct {
	ComponentID string
	Top         float64
	Height      float64
}

func (b ElementBox) midpoint() float64 {
	return b.Top + b.Height/2
}

// ResolveDropTarget applies the midpoint rule: walking boxes in document
// order, the first element whose midpoint is below pointerY becomes the
// insert-before target. If none qualifies, insertion binds after the last
// element. excludeID removes the dragged element itself from candidacy
// during a reorder drag.
func ResolveDropTarget(pointerY float64, boxes []ElementBox, excludeID string) DropIndicator {
	var last *ElementBox
	for i := range boxes {
		box := boxes[i]
		if box.ComponentID == excludeID {
			continue
		}
		if pointerY < box.midpoint() {
			return DropIndicator{TargetID: box.ComponentID, Before: true, Active: true}
		}
		last = &boxes[i]
	}
	if last == nil {
		return DropIndicator{}
	}
	return DropIndicator{TargetID: last.ComponentID, Before: false, Active: true}
}

// adjustedReorderIndex computes the reinsertion index after the dragged
// component has been removed from the flat list:
//
//	from < to, insert before  -> to - 1
//	from < to, insert after   -> to
//	from > to, insert before  -> to
//	from > to, insert after   -> to + 1
func adjustedReorderIndex(from, to int, insertBefore bool) int {
	switch {
	case from < to && insertBefore:
		return to - 1
	case from < to:
		return to
	case from > to && insertBefore:
		return to
	case from > to:
		return to + 1
	default:
		return to
	}
}
