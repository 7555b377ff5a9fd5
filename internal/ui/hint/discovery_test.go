package hint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbhint/internal/application/port"
	"github.com/bnema/dumbhint/internal/domain/entity"
	"github.com/bnema/dumbhint/internal/infrastructure/fixture"
	"github.com/bnema/dumbhint/internal/ui/hint"
)

func names(targets []hint.Target) []string {
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		name := t.Element.(*fixture.Node).Name
		if t.SubPosition != nil {
			name += t.SubPosition.String()
		}
		out = append(out, name)
	}
	return out
}

func TestDiscover_PreOrderDepthFirst(t *testing.T) {
	r := hint.NewDefaultResolver(nil, nil)
	w := fixture.Window("w",
		fixture.El(entity.TagContainer, "left",
			fixture.El(entity.TagButton, "a"),
			fixture.El(entity.TagContainer, "inner",
				fixture.El(entity.TagButton, "b"),
			),
		),
		fixture.El(entity.TagButton, "c"),
		fixture.El(entity.TagLabel, "not-a-button"),
	)

	targets := hint.Discover(context.Background(), r, w, entity.HintActivatable)

	assert.Equal(t, []string{"a", "b", "c"}, names(targets))
}

func TestDiscover_DisabledSubtreeContributesNothing(t *testing.T) {
	r := hint.NewDefaultResolver(nil, nil)
	w := fixture.Window("w",
		fixture.El(entity.TagContainer, "disabled",
			fixture.El(entity.TagButton, "g1"),
			fixture.El(entity.TagButton, "g2"),
		).Disable(),
	)

	targets := hint.Discover(context.Background(), r, w, entity.HintActivatable)

	assert.Empty(t, targets)
}

func TestDiscover_HiddenSubtreeContributesNothing(t *testing.T) {
	r := hint.NewDefaultResolver(nil, nil)
	w := fixture.Window("w",
		fixture.El(entity.TagContainer, "hidden",
			fixture.El(entity.TagButton, "x"),
		).Hide(),
		fixture.El(entity.TagButton, "y"),
	)

	targets := hint.Discover(context.Background(), r, w, entity.HintActivatable)

	assert.Equal(t, []string{"y"}, names(targets))
}

func TestDiscover_CompositeEnumeratesVisibleItems(t *testing.T) {
	r := hint.NewDefaultResolver(nil, nil)
	table := fixture.El(entity.TagTable, "t",
		fixture.El(entity.TagButton, "cell-widget"),
	).WithItems(10, 2, 4, 2)
	w := fixture.Window("w", table, fixture.El(entity.TagButton, "after"))

	targets := hint.Discover(context.Background(), r, w, entity.HintActivatable)

	assert.Equal(t, []string{"t(0,4)", "t(1,4)", "t(0,5)", "t(1,5)", "after"}, names(targets))
}

func TestDiscover_CompositeRecursesForOtherModes(t *testing.T) {
	r := hint.NewDefaultResolver(nil, nil)
	table := fixture.El(entity.TagTable, "t",
		fixture.El(entity.TagEntry, "inline-editor"),
	).WithItems(3, 1, 0, 3)
	w := fixture.Window("w", table)

	targets := hint.Discover(context.Background(), r, w, entity.HintEditable)

	assert.Equal(t, []string{"inline-editor"}, names(targets))
}

// stubElement is a minimal element whose children can fail to load.
type stubElement struct {
	name     string
	tag      entity.TypeTag
	children []port.Element
	err      error
}

func (s *stubElement) TypeTag() entity.TypeTag { return s.tag }
func (s *stubElement) Bounds() entity.Rect { return entity.Rect{} }
func (s *stubElement) IsVisible() bool { return true }
func (s *stubElement) IsEnabled() bool { return true }
func (s *stubElement) Parent() port.Element { return nil }
func (s *stubElement) ID() string { return s.name }
func (s *stubElement) Children() ([]port.Element, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.children, nil
}

func TestDiscover_SkipsInconsistentNodesAndContinues(t *testing.T) {
	r := hint.NewDefaultResolver(nil, nil)
	a := &stubElement{name: "a", tag: entity.TagButton}
	broken := &stubElement{name: "broken", tag: entity.TagButton, err: errors.New("destroyed")}
	b := &stubElement{name: "b", tag: entity.TagButton}
	root := &stubElement{name: "root", tag: entity.TagWindow, children: []port.Element{a, broken, b}}

	targets := hint.Discover(context.Background(), r, root, entity.HintActivatable)

	require.Len(t, targets, 2)
	assert.Equal(t, a, targets[0].Element)
	assert.Equal(t, b, targets[1].Element)
}

func TestDiscover_VisitsSharedNodeOnce(t *testing.T) {
	r := hint.NewDefaultResolver(nil, nil)
	shared := &stubElement{name: "shared", tag: entity.TagButton}
	left := &stubElement{name: "left", tag: entity.TagContainer, children: []port.Element{shared}}
	right := &stubElement{name: "right", tag: entity.TagContainer, children: []port.Element{shared}}
	root := &stubElement{name: "root", tag: entity.TagWindow, children: []port.Element{left, right}}

	targets := hint.Discover(context.Background(), r, root, entity.HintActivatable)

	assert.Len(t, targets, 1)
}

func TestDiscover_DemoActivatableOrder(t *testing.T) {
	tree := fixture.Demo()
	r := hint.NewDefaultResolver(nil, nil)

	targets := hint.Discover(context.Background(), r, tree.Window("editor"), entity.HintActivatable)

	require.NotEmpty(t, targets)
	assert.Equal(t, []string{
		"file-menu", "edit-menu", "save", "wrap", "format",
		"files(0,3)", "files(1,3)", "files(0,4)", "files(1,4)",
		"files(0,5)", "files(1,5)", "files(0,6)", "files(1,6)",
	}, names(targets))
}

func TestDiscover_NilRoot(t *testing.T) {
	assert.Nil(t, hint.Discover(context.Background(), hint.NewResolver(), nil, entity.HintFocusable))
}

func TestTarget_BoundsUsesItemBounds(t *testing.T) {
	table := fixture.El(entity.TagTable, "t").WithItems(10, 2, 4, 2).At(10, 5, 30, 3)
	pos := entity.Point{X: 1, Y: 5}

	whole := hint.Target{Element: table}
	item := hint.Target{Element: table, SubPosition: &pos}

	assert.Equal(t, entity.Rect{X: 10, Y: 5, W: 30, H: 3}, whole.Bounds())
	assert.Equal(t, table.ItemBounds(pos), item.Bounds())
}
