package domain

// Product represents a catalog item. Prices are whole Iraqi dinars.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	Category      string   `json:"category"`
	Images        []string `json:"images"`
	Stock         int      `json:"stock"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	IsOffer       bool     `json:"is_offer,omitempty"`
	DiscountPrice int64    `json:"discount_price,omitempty"`
	IsNew         bool     `json:"is_new,omitempty"`
}

// EffectivePrice is the price a buyer actually pays: the discounted price when
// the product is on offer and a discount is set, the list price otherwise.
func (p Product) EffectivePrice() int64 {
	if p.IsOffer && p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// Category groups catalog items for browsing.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
