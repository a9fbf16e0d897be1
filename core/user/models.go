package user

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shuleni/kazi/core"
)

type User struct {
	ID    string `bson:"_id,omitempty" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	// TODO: hash with bcrypt. Passwords are stored and compared in plaintext
	// to keep parity with existing records; migrate them before hashing.
	Password  string    `bson:"password" json:"-"`
	Class     string    `bson:"class,omitempty" json:"class,omitempty"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"` // UTC
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"` // UTC
}

func (u *User) CheckPassword(pwd string) bool {
	return u.Password != "" && u.Password == pwd
}

func (u *User) IsAdmin() bool      { return u.Role == core.RoleAdmin }
func (u *User) IsStudent() bool    { return u.Role == core.RoleStudent }
func (u *User) IsSuperAdmin() bool { return u.Role == core.RoleSuperAdmin }

// NewUser contains information needed to create a new User.
type NewUser struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Class    string `json:"class" validate:"required,class"`
	Role     string `json:"role" validate:"omitempty,role"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.Name = strings.ToUpper(core.CleanString(nu.Name))
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.Password = core.CleanString(nu.Password)
	if nu.Role == "" {
		nu.Role = core.RoleStudent
	}
	return validate.Struct(nu)
}

// UpdateUser defines what information may be provided to modify an existing
// User. All fields but ID are optional; nil means "leave unchanged".
type UpdateUser struct {
	ID       string  `json:"id" validate:"required"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=100"`
	Class    *string `json:"class" validate:"omitempty,class"`
	Role     *string `json:"role" validate:"omitempty,role"`
}

func (uu *UpdateUser) Validate(validate *validator.Validate) error {
	uu.ID = core.CleanString(uu.ID)
	if uu.Name != nil {
		name := strings.ToUpper(core.CleanString(*uu.Name))
		uu.Name = &name
	}
	if uu.Email != nil {
		email := core.CleanString(*uu.Email, true /* lower */)
		uu.Email = &email
	}
	return validate.Struct(uu)
}
