package model

// NoDiscount is the sentinel value of TemporaryPrice signalling that no
// discount is active on a product.
const NoDiscount = -1

// Product represents a product document in the catalogue.
//
// The store assigns the ID on creation; it is immutable thereafter. No
// other field is required at the contract level.
type Product struct {
	ID             string  `json:"id" db:"id"`
	Name           string  `json:"name" db:"name"`
	OriginalPrice  float64 `json:"originalPrice" db:"original_price"`
	TemporaryPrice float64 `json:"temporaryPrice" db:"temporary_price"`
	Description    string  `json:"description" db:"description"`
	Category       string  `json:"category" db:"category"`
	ImgURL         string  `json:"imgUrl" db:"img_url"`
}

// HasDiscount reports whether the product carries an active discounted price.
func (p *Product) HasDiscount() bool {
	return p.TemporaryPrice != NoDiscount && p.TemporaryPrice != 0
}
