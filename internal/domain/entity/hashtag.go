package entity

// Hashtag is a first-class, deduplicated tag record. Name is the normalized
// tag text including the leading '#' and is unique across the store.
// Articles reference hashtags through an explicit relationship table; a
// hashtag left with zero referencing articles is eligible for removal.
type Hashtag struct {
	ID   int64
	Name string
}
