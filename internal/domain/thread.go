package domain

import "time"

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title   ThreadTitle
	Content string
	Author  UserId
}

type Thread struct {
	Id      ThreadId
	Title   ThreadTitle
	Content string
	Created time.Time
	Updated time.Time
	Author  UserId
}

func (t *Thread) OwnerId() UserId { return t.Author }

type ThreadUpdate struct {
	Title   *ThreadTitle
	Content *string
}
