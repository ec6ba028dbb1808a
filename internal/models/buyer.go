// internal/models/buyer.go
package models

// Buyer is a purchasing party.
// Collection name: "buyer"
type Buyer struct {
	Name         string `bson:"name" json:"name"`
	Type         string `bson:"type" json:"type"` // consumer | restaurant | retailer | exporter
	Organization string `bson:"organization,omitempty" json:"organization,omitempty"`
	Phone        string `bson:"phone" json:"phone"`
	Region       string `bson:"region,omitempty" json:"region,omitempty"`
}
