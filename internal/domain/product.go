package domain

type Product struct {
	ID          int64  `json:"product_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Source      string `json:"source"`
	Description string `json:"description"`
}

// FixedCatalog is the deployment catalog shown even when Products.csv is empty.
var FixedCatalog = []Product{
	{ID: 1, Name: "Молоко (коровье)", Type: "молоко", Source: "коровье", Description: "Свежее молоко"},
	{ID: 2, Name: "Молоко (козье)", Type: "молоко", Source: "козье", Description: "Свежее молоко"},
	{ID: 3, Name: "Сары ірімшік (коровье)", Type: "сыр", Source: "коровье", Description: "Твёрдый сыр"},
	{ID: 4, Name: "Сары ірімшік (козье)", Type: "сыр", Source: "козье", Description: "Твёрдый сыр"},
	{ID: 5, Name: "Айран", Type: "кисломолочный", Source: "коровье", Description: "Кисломолочный продукт"},
}

func FixedProduct(id int64) (Product, bool) {
	for _, p := range FixedCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

type ProductCard struct {
	Product
	Color string `json:"color"`
}

// ProductDetails is everything the product page needs at once.
type ProductDetails struct {
	Product        Product        `json:"product"`
	Classification Classification `json:"classification"`
	Requirements   Requirements   `json:"requirements"`
	Steps          []Step         `json:"steps"`
	Samples        []Sample       `json:"samples"`
	Measurements   []Measurement  `json:"measurements"`
	Navigation     *Navigation    `json:"navigation,omitempty"`
}
