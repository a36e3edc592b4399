package mongo

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadDB opens the single shared client at process start. Every request
// reuses the handle returned here; there is no per-request setup.
func LoadDB() *driver.Database {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(os.Getenv("MONGO_URI")).
		SetServerAPIOptions(serverAPI)

	client, err := driver.Connect(context.TODO(), opts)
	if err != nil {
		log.Fatal("Cannot connect to MongoDB:", err)
	}

	if err := client.Database("admin").RunCommand(context.TODO(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		log.Fatal("MongoDB ping failed:", err)
	}

	return client.Database(os.Getenv("MONGO_DB_NAME"))
}
