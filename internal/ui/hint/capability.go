package hint

import (
	"context"
	"errors"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/domain/entity"
)

// ErrUnsupportedAction is returned when no accept behavior is registered
// for an element's type in the requested mode.
var ErrUnsupportedAction = errors.New("unsupported hint action")

// maxLineage bounds is-a chains so a misconfigured table cannot loop.
const maxLineage = 32

// Target is one hintable thing: an element, or one item of a composite element.
type Target struct {
	Element     port.Element
	SubPosition *entity.Point
}

// Outcome describes what an accept did beyond the native action.
type Outcome struct {
	// Submenu is the root of a menu opened by the accept.
	Submenu port.Element
	// AwaitPopup is set when a menu was requested but its root is not
	// resolvable yet.
	AwaitPopup bool
	// EnterInput is set when the target is now being edited.
	EnterInput bool
	// Text is the text copied by a yank.
	Text string
}

// OpensMenu reports whether the accept led into a (possibly deferred) menu.
func (o Outcome) OpensMenu() bool {
	return o.Submenu != nil || o.AwaitPopup
}

// Behavior is the policy of one type tag for one hint mode.
// Nil fields are inherited from the next ancestor in the tag's lineage.
type Behavior struct {
	// Eligible reports whether the element itself is a target.
	Eligible func(el port.Element) bool
	// Recurse reports whether discovery descends into the children.
	Recurse func(el port.Element) bool
	// SubTargets enumerates the items of a composite element. When set,
	// the items replace the whole-element target.
	SubTargets func(el port.Element) []entity.Point
	// Accept performs the mode's action.
	Accept func(ctx context.Context, t Target) (Outcome, error)
}

// Resolver is a flat capability table keyed by type tag, with an is-a
// classification used to fall back from specific tags to broader ones.
type Resolver struct {
	parents map[entity.TypeTag]entity.TypeTag
	table   map[entity.TypeTag]map[entity.HintMode]Behavior
}

// NewResolver creates an empty resolver. Every tag classifies as a widget
// and no behavior is registered.
func NewResolver() *Resolver {
	return &Resolver{
		parents: make(map[entity.TypeTag]entity.TypeTag),
		table:   make(map[entity.TypeTag]map[entity.HintMode]Behavior),
	}
}

// Classify declares that tag is-a parent.
func (r *Resolver) Classify(tag, parent entity.TypeTag) {
	if tag == entity.TagWidget || tag == parent {
		return
	}
	r.parents[tag] = parent
}

// Register merges b into the behavior of tag for mode.
// Non-nil fields of b override previously registered ones.
func (r *Resolver) Register(tag entity.TypeTag, mode entity.HintMode, b Behavior) {
	modes, ok := r.table[tag]
	if !ok {
		modes = make(map[entity.HintMode]Behavior)
		r.table[tag] = modes
	}
	cur := modes[mode]
	if b.Eligible != nil {
		cur.Eligible = b.Eligible
	}
	if b.Recurse != nil {
		cur.Recurse = b.Recurse
	}
	if b.SubTargets != nil {
		cur.SubTargets = b.SubTargets
	}
	if b.Accept != nil {
		cur.Accept = b.Accept
	}
	modes[mode] = cur
}

// Lineage returns tag followed by its ancestors, ending with TagWidget.
func (r *Resolver) Lineage(tag entity.TypeTag) []entity.TypeTag {
	lineage := []entity.TypeTag{tag}
	for i := 0; i < maxLineage && tag != entity.TagWidget; i++ {
		parent, ok := r.parents[tag]
		if !ok {
			parent = entity.TagWidget
		}
		tag = parent
		lineage = append(lineage, tag)
	}
	return lineage
}

// IsA reports whether tag is ancestor or one of its descendants.
func (r *Resolver) IsA(tag, ancestor entity.TypeTag) bool {
	for _, t := range r.Lineage(tag) {
		if t == ancestor {
			return true
		}
	}
	return false
}

// resolve returns the most specific behavior field selected by pick.
func (r *Resolver) resolve(tag entity.TypeTag, mode entity.HintMode, pick func(Behavior) bool) (Behavior, bool) {
	for _, t := range r.Lineage(tag) {
		if b, ok := r.table[t][mode]; ok && pick(b) {
			return b, true
		}
	}
	return Behavior{}, false
}

// SubTargets enumerates a composite element's items for mode.
// The boolean is false when the element is not composite for mode.
func (r *Resolver) SubTargets(el port.Element, mode entity.HintMode) ([]entity.Point, bool) {
	b, ok := r.resolve(el.TypeTag(), mode, func(b Behavior) bool { return b.SubTargets != nil })
	if !ok {
		return nil, false
	}
	return b.SubTargets(el), true
}

// IsSelfEligible reports whether the element itself is a target for mode.
func (r *Resolver) IsSelfEligible(el port.Element, mode entity.HintMode) bool {
	b, ok := r.resolve(el.TypeTag(), mode, func(b Behavior) bool { return b.Eligible != nil })
	return ok && b.Eligible(el)
}

// ShouldRecurse reports whether discovery descends into el's children.
func (r *Resolver) ShouldRecurse(el port.Element, mode entity.HintMode) bool {
	b, ok := r.resolve(el.TypeTag(), mode, func(b Behavior) bool { return b.Recurse != nil })
	return !ok || b.Recurse(el)
}

// Accept performs the accept action of mode on t.
func (r *Resolver) Accept(ctx context.Context, mode entity.HintMode, t Target) (Outcome, error) {
	if t.Element == nil {
		return Outcome{}, ErrUnsupportedAction
	}
	b, ok := r.resolve(t.Element.TypeTag(), mode, func(b Behavior) bool { return b.Accept != nil })
	if !ok {
		return Outcome{}, ErrUnsupportedAction
	}
	return b.Accept(ctx, t)
}

// IsEditable reports whether el accepts text input.
func (r *Resolver) IsEditable(el port.Element) bool {
	return el != nil && r.IsSelfEligible(el, entity.HintEditable)
}

// IsPopup reports whether el is a transient popup (menu, popover, tooltip).
func (r *Resolver) IsPopup(el port.Element) bool {
	return el != nil && r.IsA(el.TypeTag(), entity.TagPopup)
}

// IsTopLevelWindow reports whether el is a genuine top-level, non-popup window.
func (r *Resolver) IsTopLevelWindow(el port.Element) bool {
	if el == nil || el.Parent() != nil {
		return false
	}
	tag := el.TypeTag()
	return r.IsA(tag, entity.TagWindow) && !r.IsA(tag, entity.TagPopup)
}
