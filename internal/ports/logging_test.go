package ports

import (
	"context"
	"testing"

	"github.com/rs/xid"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithCorrelationID(context.Background(), "abc-123")
	require.Equal(t, "abc-123", GetCorrelationID(ctx))
	require.Equal(t, "", GetCorrelationID(context.Background()))
	require.Equal(t, "", GetCorrelationID(nil)) //nolint:staticcheck // nil context is handled explicitly

	//nolint:staticcheck // nil parent is replaced by Background
	require.Equal(t, "cid", GetCorrelationID(WithCorrelationID(nil, "cid")))
}

func TestGenerateCorrelationID(t *testing.T) {
	t.Parallel()

	first := GenerateCorrelationID()
	second := GenerateCorrelationID()

	require.Len(t, first, 20)
	require.NotEqual(t, first, second)

	parsed, err := xid.FromString(first)
	require.NoError(t, err)
	require.Equal(t, first, parsed.String())
}
