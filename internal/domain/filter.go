package domain

// PageFilter narrows page listings.
type PageFilter struct {
	PublishedOnly bool
}
