package domain

// Product is a catalog item. The catalog is installed at startup and has no
// runtime write path, so product records never change after seeding.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Features    []string
	Stock       int
}
