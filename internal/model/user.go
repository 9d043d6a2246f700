package model

// User is a row of the users table.
//
// Password is stored exactly as supplied. Hashing belongs to the
// authentication layer, which is not part of this module. It is never
// rendered in API responses.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// NewUser is the payload for inserting a user.
type NewUser struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

func (u *NewUser) Validate() error {
	return validate.Struct(u)
}

// GetUserByIDPayload selects a user by path id.
type GetUserByIDPayload struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (p *GetUserByIDPayload) Validate() error {
	return validate.Struct(p)
}

// GetUserByEmailPayload selects a user by email query parameter.
type GetUserByEmailPayload struct {
	Email string `query:"email" validate:"required,email"`
}

func (p *GetUserByEmailPayload) Validate() error {
	return validate.Struct(p)
}
