package main

import (
	"context"
	"testing"
	"time"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/user"
	"github.com/shuleni/kazi/storage/inmem"
)

func setup(t *testing.T) (*commandLine, user.Repository) {
	t.Helper()
	repo := inmem.NewUserRepository(inmem.Open())
	return &commandLine{usrRepo: repo}, repo
}

type cliTest struct {
	name    string
	args    []string // without program name
	pwd     string
	wantErr error
}

func Test_commandLine_addSuperAdmin(t *testing.T) {
	cli, repo := setup(t)

	now := time.Now().UTC()
	existing, err := repo.CreateUser(context.Background(), user.User{
		Name: "ANN", Email: "ann@test.cd", Password: "old-pwd", Class: core.Class8th, Role: core.RoleStudent,
		CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"addsuperadmin"}, wantErr: errHelp},
		{name: "name but no email", args: []string{"addsuperadmin", "-name", "Boss"}, wantErr: errHelp},
		{name: "no password", args: []string{"addsuperadmin", "-name", "Boss", "-email", "boss@test.cd"}, wantErr: errHelp},
		{name: "creates new account", args: []string{"addsuperadmin", "-name", "Boss", "-email", "boss@test.cd"}, pwd: "sup3r-pwd"},
		{name: "promotes existing account", args: []string{"addsuperadmin", "-name", "Ann", "-email", existing.Email}, pwd: "new-pwd"},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.pwd), nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err != tt.wantErr {
				t.Fatalf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	boss, err := repo.GetUserByEmail(context.Background(), "boss@test.cd")
	if err != nil || boss == nil {
		t.Fatalf("GetUserByEmail() = %v, %v", boss, err)
	}
	if !boss.IsSuperAdmin() {
		t.Errorf("new account role = %s, want %s", boss.Role, core.RoleSuperAdmin)
	}
	if !boss.CheckPassword("sup3r-pwd") {
		t.Error("new account password not set")
	}

	promoted, err := repo.GetUserByID(context.Background(), existing.ID)
	if err != nil || promoted == nil {
		t.Fatalf("GetUserByID() = %v, %v", promoted, err)
	}
	if !promoted.IsSuperAdmin() {
		t.Errorf("promoted role = %s, want %s", promoted.Role, core.RoleSuperAdmin)
	}
	if !promoted.CheckPassword("new-pwd") {
		t.Error("promoted password not updated")
	}
	if promoted.Class != core.Class8th {
		t.Errorf("promoted class = %s, want untouched %s", promoted.Class, core.Class8th)
	}
}
