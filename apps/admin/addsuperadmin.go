package main

import (
	"context"
	"strings"
	"time"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/user"
)

// addSuperAdmin promotes an existing account to super admin, creating it first
// when the email is unknown.
func (cli *commandLine) addSuperAdmin(name, email, pwd string) error {
	ctx := context.Background()
	name = strings.ToUpper(core.CleanString(name))
	email = core.CleanString(email, true /* lower */)
	pwd = core.CleanString(pwd)

	usr, err := cli.usrRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	if usr == nil {
		now := time.Now().UTC()
		_, err = cli.usrRepo.CreateUser(ctx, user.User{
			Name:      name,
			Email:     email,
			Password:  pwd,
			Role:      core.RoleSuperAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return err
	}

	role := core.RoleSuperAdmin
	_, err = cli.usrRepo.UpdateUser(ctx, user.UpdateUser{
		ID:       usr.ID,
		Name:     &name,
		Password: &pwd,
		Role:     &role,
	})
	return err
}
