package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/user"
	"github.com/shuleni/kazi/storage/inmem"
)

func setup(t *testing.T) (*user.Service, user.Repository) {
	t.Helper()
	db := inmem.Open()
	repo := inmem.NewUserRepository(db)
	svc := user.NewService(repo, nil, nil)
	return svc, repo
}

func TestServiceCreate(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	usr, err := svc.Create(ctx, user.NewUser{
		Name: "ANN", Email: "ann@test.cd", Password: "s3cret-pwd", Class: core.Class8th, Role: core.RoleStudent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, usr.ID)
	assert.False(t, usr.CreatedAt.IsZero())
	assert.Equal(t, usr.CreatedAt, usr.UpdatedAt)

	// same email again
	_, err = svc.Create(ctx, user.NewUser{
		Name: "ANN 2", Email: "ann@test.cd", Password: "s3cret-pwd", Class: core.Class8th, Role: core.RoleStudent,
	})
	vErr, ok := err.(*core.ValidationError)
	require.True(t, ok, "want *ValidationError, got %v", err)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "email", vErr.Fields[0].Field)
}

func TestServiceAuthenticate(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, user.NewUser{
		Name: "ANN", Email: "ann@test.cd", Password: "s3cret-pwd", Class: core.Class8th, Role: core.RoleStudent,
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		email   string
		pwd     string
		wantErr bool
	}{
		{name: "ok", email: "ann@test.cd", pwd: "s3cret-pwd"},
		{name: "email case folded", email: "ANN@Test.CD", pwd: "s3cret-pwd"},
		{name: "wrong password", email: "ann@test.cd", pwd: "nope", wantErr: true},
		{name: "unknown email", email: "ghost@test.cd", pwd: "s3cret-pwd", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := svc.Authenticate(ctx, tt.email, tt.pwd)
			if tt.wantErr {
				_, ok := err.(*core.AuthError)
				require.True(t, ok, "want *AuthError, got %v", err)
				assert.Equal(t, "Invalid credentials", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ann@test.cd", usr.Email)
		})
	}
}

func TestServiceRegister(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	usr, err := svc.Register(ctx, "  ann  ", " Ann@Test.CD ", "s3cret-pwd")
	require.NoError(t, err)
	assert.Equal(t, "ANN", usr.Name)
	assert.Equal(t, "ann@test.cd", usr.Email)
	assert.Equal(t, core.RoleStudent, usr.Role)
	assert.Empty(t, usr.Class)

	// duplicate registration
	_, err = svc.Register(ctx, "Imposter", "ann@test.cd", "other-pwd")
	_, ok := err.(*core.AuthError)
	require.True(t, ok, "want *AuthError, got %v", err)
	assert.Equal(t, "Email already registered", err.Error())
}

func TestServiceDeleteMissing(t *testing.T) {
	svc, _ := setup(t)

	usr, err := svc.Delete(context.Background(), "ffffffffffffffffffffffff")
	require.NoError(t, err)
	assert.Nil(t, usr)
}

func TestServiceUpdate(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	usr, err := svc.Create(ctx, user.NewUser{
		Name: "ANN", Email: "ann@test.cd", Password: "s3cret-pwd", Class: core.Class8th, Role: core.RoleStudent,
	})
	require.NoError(t, err)

	class := core.Class9th
	updated, err := svc.Update(ctx, user.UpdateUser{ID: usr.ID, Class: &class})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, core.Class9th, updated.Class)
	assert.Equal(t, "ANN", updated.Name)
	assert.True(t, updated.UpdatedAt.After(usr.UpdatedAt) || updated.UpdatedAt.Equal(usr.UpdatedAt))

	// unknown id
	missing, err := svc.Update(ctx, user.UpdateUser{ID: "ffffffffffffffffffffffff", Class: &class})
	require.NoError(t, err)
	assert.Nil(t, missing)
}
