package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogger(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)

	assert.Equal(t, tl.Logger, FromContext(ctx))
	assert.Equal(t, tl.Logger, Ctx(ctx))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
	assert.Equal(t, Default(), FromContext(nil)) //nolint:staticcheck // exercising the nil guard
}

func TestWithService(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithService(ctx, "payments-api")

	FromContext(ctx).Info().Msg("resolved")

	lines := tl.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"service":"payments-api"`)
}
