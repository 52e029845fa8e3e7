package models

// Avatar identifies which image the UI should render for an account.
// The zero value means the shared default avatar; a custom avatar points
// at an image keyed by ImageRef (by convention the account id).
type Avatar struct {
	ImageRef int64 `json:"image_ref,omitempty"`
	Custom   bool  `json:"custom"`
}

func DefaultAvatar() Avatar {
	return Avatar{}
}

func CustomAvatar(imageRef int64) Avatar {
	return Avatar{ImageRef: imageRef, Custom: true}
}

// AvatarFromColumn decodes the stored integer, where 0 marks the default
// avatar and anything else is a custom image reference.
func AvatarFromColumn(v int64) Avatar {
	if v == 0 {
		return DefaultAvatar()
	}
	return CustomAvatar(v)
}

// Column encodes the avatar back into its stored integer form.
func (a Avatar) Column() int64 {
	if !a.Custom {
		return 0
	}
	return a.ImageRef
}

type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Digest   string `json:"-"`
	Name     string `json:"name"`
	Avatar   Avatar `json:"avatar"`
}

// AccountView is the aggregate handed to the presentation layer: account
// info plus every note it owns. Notes is always non-nil; an account
// without notes yields an empty slice.
type AccountView struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   Avatar `json:"avatar"`
	Notes    []Note `json:"notes"`
}

type CreateAccountRequest struct {
	Username string `json:"username" validate:"min=5"`
	Password string `json:"password" validate:"min=8"`
	Name     string `json:"name" validate:"fullname"`
}

// UpdateAccountRequest leaves the stored password untouched when Password
// is empty, so the password rule only applies when one was supplied.
type UpdateAccountRequest struct {
	Username string `json:"username" validate:"min=5"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Name     string `json:"name" validate:"fullname"`
}
