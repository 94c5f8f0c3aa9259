package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v2"

	"github.com/kisan-sahay/kisan-api/schema"
	"github.com/kisan-sahay/kisan-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("kisan")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var schemeFile string
	flag.StringVar(&schemeFile, "schemes", "./schemes.yaml", "[optional] path of the scheme catalog to seed")
	flag.Parse()

	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.AccountProfile{},
		&schema.HelpRequest{},
		&schema.HelpResponse{},
	).Error; err != nil {
		panic(err)
	}

	// at most one accepted response per request
	if err := db.Model(schema.HelpResponse{}).Where("is_accepted = true").
		AddUniqueIndex("help_response_one_accepted", "request_id").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.HelpResponse{}).
		AddIndex("help_response_request_created", "request_id", "created_at").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	if err := seedSchemes(schemeFile); err != nil {
		panic(err)
	}
}

func seedSchemes(file string) error {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		fmt.Println("no scheme catalog to seed: ", err)
		return nil
	}

	var schemes []schema.Scheme
	if err := yaml.Unmarshal(data, &schemes); err != nil {
		return err
	}

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	fmt.Printf("initialize scheme collection with %d schemes\n", len(schemes))
	return store.NewMongoStore(client, viper.GetString("mongo.database")).UpsertSchemes(schemes)
}
