package domain

// EntityKind names the deletable entity types for cascade planning.
type EntityKind string

const (
	KindUser   EntityKind = "user"
	KindThread EntityKind = "thread"
	KindPost   EntityKind = "post"
)

// Deletion is one step of a cascade plan.
type Deletion struct {
	Kind EntityKind
	Id   int64
}
