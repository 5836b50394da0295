package domain

type (
	Username = string
	Email    = string
	Password = string
	UserId   = int64

	ThreadTitle = string
	ThreadId    = int64

	PostText = string
	PostId   = int64
)
