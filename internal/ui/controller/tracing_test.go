package controller_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/bnema/dumbhint/internal/domain/entity"
	"github.com/bnema/dumbhint/internal/infrastructure/fixture"
	"github.com/bnema/dumbhint/internal/ui/controller"
)

func tracedController(t *testing.T) (*controller.Controller, *fixture.Tree, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tree := fixture.Demo()
	ctrl, err := controller.Create(context.Background(), entity.DefaultSettings(), controller.Deps{
		Executor: fixture.NewExecutor(),
		Windows:  tree,
		Tracer:   tp.Tracer("test"),
	})
	require.NoError(t, err)
	return ctrl, tree, rec
}

func spanNamed(rec *tracetest.SpanRecorder, name string) sdktrace.ReadOnlySpan {
	for _, s := range rec.Ended() {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func intAttr(s sdktrace.ReadOnlySpan, key string) (int64, bool) {
	for _, kv := range s.Attributes() {
		if kv.Key == attribute.Key(key) {
			return kv.Value.AsInt64(), true
		}
	}
	return 0, false
}

func TestTracing_EnterAndAccept(t *testing.T) {
	ctrl, tree, rec := tracedController(t)
	save := tree.Find("save")

	ctrl.RouteKeyEvent(save, alt('f'))
	for _, r := range "ad" {
		ctrl.RouteKeyEvent(save, entity.RuneKey(r, entity.ModNone))
	}

	enter := spanNamed(rec, "hint.enter")
	require.NotNil(t, enter)
	targets, ok := intAttr(enter, "hint.targets")
	require.True(t, ok)
	assert.Equal(t, int64(13), targets)

	accept := spanNamed(rec, "hint.accept")
	require.NotNil(t, accept)
	assert.Equal(t, codes.Unset, accept.Status().Code)
}

func TestTracing_UnsupportedActionMarksSpan(t *testing.T) {
	ctrl, tree, rec := tracedController(t)
	save := tree.Find("save")

	ctrl.RouteKeyEvent(save, alt('y'))
	for _, r := range "aa" {
		ctrl.RouteKeyEvent(save, entity.RuneKey(r, entity.ModNone))
	}

	accept := spanNamed(rec, "hint.accept")
	require.NotNil(t, accept)
	assert.Equal(t, codes.Error, accept.Status().Code)
}
