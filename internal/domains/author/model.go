package author

// Author represents the core Author entity. Authors are created lazily
// by the resolver when a book first references the name; they are never
// updated or deleted here.
type Author struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
