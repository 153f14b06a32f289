package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/repository"
	"github.com/jmallek/compass/internal/testutil"
)

func newAdminFixture(t *testing.T) (AdminService, repository.UserRepo, *domain.User, *domain.User) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(conn)
	svc := NewAdminService(users)
	ctx := context.Background()

	admin := testutil.NewTestUser("admin@example.com", domain.RoleAdmin)
	member := testutil.NewTestUser("member@example.com", domain.RoleMember)
	member.Status = domain.UserPending
	require.NoError(t, users.Create(ctx, admin))
	require.NoError(t, users.Create(ctx, member))
	return svc, users, admin, member
}

func TestAdminService_ApproveAndReject(t *testing.T) {
	svc, users, admin, member := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Act(ctx, admin, AdminApprove, member.ID))
	got, err := users.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserApproved, got.Status)

	require.NoError(t, svc.Act(ctx, admin, AdminReject, member.ID))
	got, err = users.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserRejected, got.Status)
}

func TestAdminService_Delete(t *testing.T) {
	svc, users, admin, member := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Act(ctx, admin, AdminDelete, member.ID))
	_, err := users.GetByID(ctx, member.ID)
	assert.Error(t, err)
}

func TestAdminService_NonAdminForbidden(t *testing.T) {
	svc, users, _, member := newAdminFixture(t)
	ctx := context.Background()

	err := svc.Act(ctx, member, AdminApprove, member.ID)
	assert.ErrorIs(t, err, ErrNotAdmin)

	err = svc.Act(ctx, nil, AdminApprove, member.ID)
	assert.ErrorIs(t, err, ErrNotAdmin)

	// Status untouched.
	got, gerr := users.GetByID(ctx, member.ID)
	require.NoError(t, gerr)
	assert.Equal(t, domain.UserPending, got.Status)
}

func TestAdminService_UnknownActionAndTarget(t *testing.T) {
	svc, _, admin, member := newAdminFixture(t)
	ctx := context.Background()

	err := svc.Act(ctx, admin, AdminAction("promote"), member.ID)
	assert.Error(t, err)

	err = svc.Act(ctx, admin, AdminApprove, "no-such-user")
	assert.Error(t, err)

	err = svc.Act(ctx, admin, AdminApprove, "")
	assert.Error(t, err)
}

func TestAdminService_Authenticate(t *testing.T) {
	svc, _, admin, _ := newAdminFixture(t)
	ctx := context.Background()

	got, err := svc.Authenticate(ctx, admin.APIToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Authenticate(ctx, "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestAdminService_CreateUser_Defaults(t *testing.T) {
	svc, users, _, _ := newAdminFixture(t)
	ctx := context.Background()

	u := &domain.User{Email: "new@example.com", Name: "New", OrganizationID: "org-test"}
	require.NoError(t, svc.CreateUser(ctx, u))

	got, err := users.GetByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, got.Role)
	assert.Equal(t, domain.UserPending, got.Status)
	assert.NotEmpty(t, got.APIToken)
}
