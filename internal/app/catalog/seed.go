package catalog

import "github.com/1000011-67/Earthly-Liquids/internal/domain"

// defaultCatalog is the product set installed on every startup.
var defaultCatalog = []*domain.Product{
	{
		ID:   "ecoshield-1l",
		Name: "EcoShield Natural Floor Cleanser",
		Description: "Experience the power of nature with EcoShield - our premium natural floor cleanser " +
			"that's 77.6% plant-based and crafted with pure neem extract and refreshing eucalyptus oil. " +
			"This eco-friendly formula not only deep cleans your floors but also acts as a natural fly " +
			"and mosquito repellent, creating a pest-free environment for your family. Safe for even the " +
			"most sensitive skin, EcoShield contains zero harmful chemicals while delivering powerful " +
			"disinfectant properties that eliminate bacteria and fungi. The unique moisture-retaining " +
			"formula prevents floor cracking while leaving behind the invigorating scent of eucalyptus.",
		Price:    159.0,
		ImageURL: "https://images.unsplash.com/photo-1658238613327-4330ee3f029a",
		Features: []string{
			"77.6% natural or plant-based ingredients",
			"Made with neem extract and eucalyptus oil",
			"Natural fly and mosquito repellent",
			"No harmful chemicals - safe for sensitive skin",
			"Retains floor moisture and prevents cracking",
			"Acts as disinfectant - kills bacteria and fungi",
			"Minimum water pollution",
			"Fresh eucalyptus fragrance",
		},
		Stock: 100,
	},
}
