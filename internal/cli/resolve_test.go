package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/repository"
	"github.com/jmallek/compass/internal/service"
	"github.com/jmallek/compass/internal/testutil"
)

func newResolveApp(t *testing.T) (*App, []string) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	programs := repository.NewSQLiteProgramRepo(conn)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"Alpha Launch", "Beta Launch"} {
		p := testutil.NewTestProgram(name)
		require.NoError(t, programs.Create(ctx, p))
		ids = append(ids, p.ID)
	}

	return &App{Programs: service.NewProgramService(programs)}, ids
}

func TestResolveProgramID_ExactUUID(t *testing.T) {
	app, ids := newResolveApp(t)
	got, err := resolveProgramID(context.Background(), app, ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[0], got)
}

func TestResolveProgramID_NameCaseInsensitive(t *testing.T) {
	app, ids := newResolveApp(t)
	got, err := resolveProgramID(context.Background(), app, "alpha launch")
	require.NoError(t, err)
	assert.Equal(t, ids[0], got)
}

func TestResolveProgramID_UniquePrefix(t *testing.T) {
	app, ids := newResolveApp(t)
	got, err := resolveProgramID(context.Background(), app, ids[1][:8])
	require.NoError(t, err)
	assert.Equal(t, ids[1], got)
}

func TestResolveProgramID_NotFound(t *testing.T) {
	app, _ := newResolveApp(t)
	_, err := resolveProgramID(context.Background(), app, "zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveProgramID_EmptyInput(t *testing.T) {
	app, _ := newResolveApp(t)
	_, err := resolveProgramID(context.Background(), app, "")
	assert.Error(t, err)
}
