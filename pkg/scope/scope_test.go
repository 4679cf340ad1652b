package scope

import (
	"context"
	"testing"

	"analytics-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScope_FallsBackToSubject(t *testing.T) {
	sc := NewScope(Payload{Subject: "u-1", Username: "ana@example.com", Role: "admin"})
	assert.Equal(t, model.Scope{UserID: "u-1", Username: "ana@example.com", Role: "admin"}, sc)

	sc = NewScope(Payload{UserID: "u-2", Subject: "ignored"})
	assert.Equal(t, "u-2", sc.UserID)
}

func TestScopeHeader_RoundTrip(t *testing.T) {
	in := model.Scope{UserID: "u-1", Username: "ana", Role: "viewer"}
	header, err := CreateScopeHeader(in)
	require.NoError(t, err)

	out, err := ParseScopeHeader(header)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = ParseScopeHeader("%%%")
	assert.Error(t, err)
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, model.Scope{}, GetScopeFromContext(ctx))

	ctx = SetScopeToContext(ctx, model.Scope{UserID: "u-1", Role: model.RoleViewer})
	assert.Equal(t, model.Scope{UserID: "u-1", Role: model.RoleViewer}, GetScopeFromContext(ctx))
}
