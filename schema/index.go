package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexSchemeCollection())
	panicIfError(m.IndexSchemeApplicationCollection())
	panicIfError(m.IndexNotificationCollection())
}

func (m *MongoDBIndexer) IndexSchemeCollection() error {
	if err := m.createIndex(SchemeCollection, mongo.IndexModel{
		Keys: bson.M{
			"code": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(SchemeCollection, mongo.IndexModel{
		Keys: bson.D{
			{"is_active", 1},
			{"category", 1},
		},
	})
}

// IndexSchemeApplicationCollection allows a single application per farmer and scheme
func (m *MongoDBIndexer) IndexSchemeApplicationCollection() error {
	return m.createIndex(SchemeApplicationCollection, mongo.IndexModel{
		Keys: bson.D{
			{"scheme_id", 1},
			{"farmer_id", 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexNotificationCollection() error {
	return m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.D{
			{"account_id", 1},
			{"created_at", -1},
		},
	})
}
