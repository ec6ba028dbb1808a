// internal/database/seeder.go
package database

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"agribridge-api-server/internal/models"
	"agribridge-api-server/internal/store"
)

// SeedDemoData inserts a handful of farmers and products so a fresh
// database has something to browse. It only runs when the farmer
// collection is empty, so restarting the server does not duplicate data.
func SeedDemoData(db *mongo.Database, log *logrus.Logger) error {
	ctx := context.Background()

	count, err := db.Collection(store.CollectionFarmer).CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("Demo data already present, skipping seed")
		return nil
	}

	st := store.New(db)

	demo := []struct {
		farmer   models.Farmer
		products []models.Product
	}{
		{
			farmer: models.Farmer{
				Name:           "Akmal Karimov",
				Phone:          "+998901112233",
				Region:         "Fergana",
				FarmName:       "Karimov Orchard",
				Languages:      []string{"uz", "ru"},
				Certifications: []string{"GlobalGAP"},
			},
			products: []models.Product{
				{Title: "Tomatoes", Category: "Vegetables", Price: 9000, Unit: "kg", AvailableQuantity: 350, Photos: []string{}},
				{Title: "Cherries", Category: "Fruits", Price: 32000, Unit: "kg", AvailableQuantity: 80, Photos: []string{}},
			},
		},
		{
			farmer: models.Farmer{
				Name:           "Dilnoza Rashidova",
				Phone:          "+998909998877",
				Region:         "Samarkand",
				FarmName:       "Rashidova Greenhouses",
				Languages:      []string{"uz"},
				Certifications: []string{},
			},
			products: []models.Product{
				{Title: "Cucumbers", Category: "Vegetables", Price: 7000, Unit: "kg", AvailableQuantity: 500, Photos: []string{}},
			},
		},
	}

	for _, d := range demo {
		farmerID, err := st.Create(ctx, store.CollectionFarmer, d.farmer)
		if err != nil {
			return err
		}
		for _, p := range d.products {
			p.FarmerID = farmerID
			if _, err := st.Create(ctx, store.CollectionProduct, p); err != nil {
				return err
			}
		}
	}

	log.WithField("farmers", len(demo)).Info("Seeded demo farmers and products")
	return nil
}
