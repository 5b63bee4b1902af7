package domain

// Member identifies one author whose blog is crawled. ListingURL points at
// the paginated index of that member's posts and carries the query
// parameters the lister needs.
type Member struct {
	Name       string
	ListingURL string
}

// PostRef points at a single blog post discovered on a listing page.
type PostRef struct {
	URL string
}
