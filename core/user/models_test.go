package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuleni/kazi/core"
)

func TestNewUserValidate(t *testing.T) {
	validate, _ := core.NewValidator()

	tests := []struct {
		name    string
		nu      NewUser
		want    NewUser
		wantErr bool
	}{
		{
			name: "valid with normalization",
			nu:   NewUser{Name: "  ann  ", Email: " Ann@Test.CD ", Password: "s3cret-pwd", Class: "8th"},
			want: NewUser{Name: "ANN", Email: "ann@test.cd", Password: "s3cret-pwd", Class: "8th", Role: core.RoleStudent},
		},
		{
			name: "explicit role kept",
			nu:   NewUser{Name: "Boss", Email: "boss@test.cd", Password: "s3cret-pwd", Class: "10th", Role: core.RoleAdmin},
			want: NewUser{Name: "BOSS", Email: "boss@test.cd", Password: "s3cret-pwd", Class: "10th", Role: core.RoleAdmin},
		},
		{name: "missing name", nu: NewUser{Email: "a@test.cd", Password: "s3cret-pwd", Class: "8th"}, wantErr: true},
		{name: "bad email", nu: NewUser{Name: "A", Email: "nope", Password: "s3cret-pwd", Class: "8th"}, wantErr: true},
		{name: "short password", nu: NewUser{Name: "A", Email: "a@test.cd", Password: "short", Class: "8th"}, wantErr: true},
		{name: "missing class", nu: NewUser{Name: "A", Email: "a@test.cd", Password: "s3cret-pwd"}, wantErr: true},
		{name: "unknown class", nu: NewUser{Name: "A", Email: "a@test.cd", Password: "s3cret-pwd", Class: "11th"}, wantErr: true},
		{name: "unknown role", nu: NewUser{Name: "A", Email: "a@test.cd", Password: "s3cret-pwd", Class: "8th", Role: "boss"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.nu.Validate(validate)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.nu)
		})
	}
}

func TestUpdateUserValidate(t *testing.T) {
	validate, _ := core.NewValidator()
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name    string
		uu      UpdateUser
		wantErr bool
	}{
		{name: "id only", uu: UpdateUser{ID: "abc123"}},
		{name: "missing id", uu: UpdateUser{Name: strPtr("A")}, wantErr: true},
		{name: "partial update", uu: UpdateUser{ID: "abc123", Class: strPtr("9th"), Role: strPtr(core.RoleAdmin)}},
		{name: "unknown class", uu: UpdateUser{ID: "abc123", Class: strPtr("5th")}, wantErr: true},
		{name: "short password", uu: UpdateUser{ID: "abc123", Password: strPtr("short")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.uu.Validate(validate)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUpdateUserValidateNormalizes(t *testing.T) {
	validate, _ := core.NewValidator()
	name := " ann "
	email := " Ann@Test.CD "

	uu := UpdateUser{ID: " abc123 ", Name: &name, Email: &email}
	require.NoError(t, uu.Validate(validate))
	assert.Equal(t, "abc123", uu.ID)
	assert.Equal(t, "ANN", *uu.Name)
	assert.Equal(t, "ann@test.cd", *uu.Email)
}

func TestUserCheckPassword(t *testing.T) {
	usr := User{Password: "s3cret-pwd"}
	assert.True(t, usr.CheckPassword("s3cret-pwd"))
	assert.False(t, usr.CheckPassword("wrong"))
	assert.False(t, (&User{}).CheckPassword(""))
}

func TestUserRoleHelpers(t *testing.T) {
	assert.True(t, (&User{Role: core.RoleAdmin}).IsAdmin())
	assert.True(t, (&User{Role: core.RoleStudent}).IsStudent())
	assert.True(t, (&User{Role: core.RoleSuperAdmin}).IsSuperAdmin())
	assert.False(t, (&User{Role: core.RoleStudent}).IsAdmin())
}
