package domain

import "time"

type PostCreationData struct {
	Text   PostText
	Author UserId
	Thread ThreadId
}

type Post struct {
	Id      PostId
	Text    PostText
	Created time.Time
	Updated time.Time
	Author  UserId
	Thread  ThreadId
}

// OwnerId is the post's own author. Replying to someone else's thread is
// allowed, so the parent thread's owner never enters authorization.
func (p *Post) OwnerId() UserId { return p.Author }

type PostUpdate struct {
	Text *PostText
}
