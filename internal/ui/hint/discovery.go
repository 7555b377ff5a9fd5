package hint

import (
	"context"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/domain/entity"
	"github.com/bnema/dumbhint/internal/logging"
)

// Discover walks the tree under root in pre-order and returns the targets
// for mode, in the order codes must be assigned.
// Invisible or disabled nodes are skipped together with their subtree.
// A node whose children cannot be read is skipped and the walk continues.
func Discover(ctx context.Context, r *Resolver, root port.Element, mode entity.HintMode) []Target {
	if root == nil {
		return nil
	}
	d := &discovery{
		ctx:     ctx,
		r:       r,
		mode:    mode,
		visited: make(map[port.Element]bool),
	}
	d.walk(root)

	logging.FromContext(ctx).Debug().
		Str("root", port.ElementName(root)).
		Str("mode", mode.String()).
		Int("targets", len(d.targets)).
		Int("skipped", d.skipped).
		Msg("discovery complete")

	return d.targets
}

type discovery struct {
	ctx     context.Context
	r       *Resolver
	mode    entity.HintMode
	targets []Target
	visited map[port.Element]bool
	skipped int
}

func (d *discovery) walk(el port.Element) {
	if el == nil || d.visited[el] {
		return
	}
	d.visited[el] = true

	if !el.IsVisible() || !el.IsEnabled() {
		return
	}

	before := len(d.targets)
	if items, composite := d.r.SubTargets(el, d.mode); composite {
		for _, item := range items {
			pos := item
			d.targets = append(d.targets, Target{Element: el, SubPosition: &pos})
		}
	} else if d.r.IsSelfEligible(el, d.mode) {
		d.targets = append(d.targets, Target{Element: el})
	}

	if !d.r.ShouldRecurse(el, d.mode) {
		return
	}

	children, err := el.Children()
	if err != nil {
		d.targets = d.targets[:before]
		d.skipped++
		logging.FromContext(d.ctx).Debug().
			Err(err).
			Str("element", port.ElementName(el)).
			Msg("skipping inconsistent element during discovery")
		return
	}
	for _, child := range children {
		d.walk(child)
	}
}

// Bounds returns where t's label belongs in window coordinates.
func (t Target) Bounds() entity.Rect {
	if t.SubPosition != nil {
		if c, ok := t.Element.(port.ItemContainer); ok {
			return c.ItemBounds(*t.SubPosition)
		}
	}
	return t.Element.Bounds()
}
