// internal/models/order.go
package models

// OrderItem is embedded in an order. Price is the unit price at the time the
// order was placed, deliberately decoupled from the product's current price.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Quantity  float64 `bson:"quantity" json:"quantity"` // > 0
	Price     float64 `bson:"price" json:"price"`       // >= 0
}

// Order is a purchase placed by a buyer.
// Collection name: "order"
type Order struct {
	BuyerID        string      `bson:"buyer_id" json:"buyer_id"`
	Items          []OrderItem `bson:"items" json:"items"`
	Status         string      `bson:"status" json:"status"`                   // pending | confirmed | in_transit | delivered | cancelled
	DeliveryMethod string      `bson:"delivery_method" json:"delivery_method"` // delivery | pickup
	ScheduledDate  string      `bson:"scheduled_date,omitempty" json:"scheduled_date,omitempty"` // ISO date
	RouteID        string      `bson:"route_id,omitempty" json:"route_id,omitempty"`
}
