// internal/models/farmer.go
package models

// Farmer is a producer profile.
// Collection name: "farmer"
type Farmer struct {
	Name           string   `bson:"name" json:"name"`
	Phone          string   `bson:"phone" json:"phone"`
	Region         string   `bson:"region" json:"region"` // e.g., "Fergana", "Samarkand"
	FarmName       string   `bson:"farm_name,omitempty" json:"farm_name,omitempty"`
	Languages      []string `bson:"languages" json:"languages"`           // defaults to ["uz"]
	Certifications []string `bson:"certifications" json:"certifications"` // e.g., "GlobalGAP"
	Bio            string   `bson:"bio,omitempty" json:"bio,omitempty"`
}
