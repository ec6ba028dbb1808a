// internal/models/product.go
package models

// Product is a listing offered by a farmer. The farmer reference is a plain
// string id; it is not checked against the farmer collection.
// Collection name: "product"
type Product struct {
	FarmerID          string   `bson:"farmer_id" json:"farmer_id"`
	Title             string   `bson:"title" json:"title"`
	Category          string   `bson:"category" json:"category"` // e.g., "Vegetables"
	Price             float64  `bson:"price" json:"price"`       // unit price, >= 0
	Unit              string   `bson:"unit" json:"unit"`         // e.g., kg, box
	AvailableQuantity float64  `bson:"available_quantity" json:"available_quantity"` // >= 0
	Photos            []string `bson:"photos" json:"photos"`
	Description       string   `bson:"description,omitempty" json:"description,omitempty"`
}
