// internal/models/route.go
package models

// RouteStop is embedded in a route.
type RouteStop struct {
	OrderID  string `bson:"order_id" json:"order_id"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	ETA      string `bson:"eta,omitempty" json:"eta,omitempty"` // ISO datetime
}

// Route is a delivery route for one day.
// Collection name: "route"
type Route struct {
	Date        string      `bson:"date" json:"date"` // ISO date
	VehicleType string      `bson:"vehicle_type,omitempty" json:"vehicle_type,omitempty"`
	ColdChain   bool        `bson:"cold_chain" json:"cold_chain"`
	Stops       []RouteStop `bson:"stops" json:"stops"`
}
