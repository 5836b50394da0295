package domain

type User struct {
	Id       UserId
	Username Username
	Email    Email
	PassHash string
}

// OwnerId: a principal owns itself; account mutations go through the
// same ownership guard as resources.
func (u *User) OwnerId() UserId { return u.Id }

type Credentials struct {
	Username Username
	Password Password
}

// UserUpdate is a partial update: nil fields are left untouched.
// Password, when set, is the new plaintext; hashing happens in the service layer.
type UserUpdate struct {
	Username *Username
	Email    *Email
	Password *Password
}
