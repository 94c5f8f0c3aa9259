package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kisan-sahay/kisan-api/schema"
)

var (
	ErrSchemeNotExist      = fmt.Errorf("scheme not found")
	ErrApplicationNotExist = fmt.Errorf("scheme application not found")
	ErrAlreadyApplied      = fmt.Errorf("an application for this scheme has been submitted")
)

type Scheme interface {
	ListSchemes(category, query string) ([]schema.Scheme, error)
	GetScheme(schemeID primitive.ObjectID) (*schema.Scheme, error)
	UpsertSchemes(schemes []schema.Scheme) error

	ApplyScheme(application schema.SchemeApplication) (*schema.SchemeApplication, error)
	GetSchemeApplication(schemeID primitive.ObjectID, farmerID string) (*schema.SchemeApplication, error)
}

// ListSchemes returns active schemes, optionally of one category and matching
// a case-insensitive search on name and description
func (m *mongoDB) ListSchemes(category, query string) ([]schema.Scheme, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SchemeCollection)

	filter := bson.M{"is_active": true}
	if category != "" {
		filter["category"] = category
	}
	if query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	cursor, err := c.Find(ctx, filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}

	schemes := make([]schema.Scheme, 0)
	if err := cursor.All(ctx, &schemes); err != nil {
		return nil, err
	}

	return schemes, nil
}

func (m *mongoDB) GetScheme(schemeID primitive.ObjectID) (*schema.Scheme, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SchemeCollection)

	var scheme schema.Scheme
	if err := c.FindOne(ctx, bson.M{"_id": schemeID}).Decode(&scheme); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSchemeNotExist
		}
		return nil, err
	}

	return &scheme, nil
}

// UpsertSchemes writes a catalog keyed by scheme code
func (m *mongoDB) UpsertSchemes(schemes []schema.Scheme) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SchemeCollection)

	for _, s := range schemes {
		if _, err := c.UpdateOne(ctx,
			bson.M{"code": s.Code},
			bson.M{"$set": bson.M{
				"code":                 s.Code,
				"name":                 s.Name,
				"description":          s.Description,
				"category":             s.Category,
				"benefits":             s.Benefits,
				"eligibility_criteria": s.EligibilityCriteria,
				"required_documents":   s.RequiredDocuments,
				"application_process":  s.ApplicationProcess,
				"contact_details":      s.ContactDetails,
				"is_active":            s.IsActive,
			}},
			options.Update().SetUpsert(true),
		); err != nil {
			return err
		}
		log.WithField("prefix", mongoLogPrefix).WithField("code", s.Code).Debug("scheme upserted")
	}

	return nil
}

// ApplyScheme submits the farmer's application to an active scheme
func (m *mongoDB) ApplyScheme(application schema.SchemeApplication) (*schema.SchemeApplication, error) {
	scheme, err := m.GetScheme(application.SchemeID)
	if err != nil {
		return nil, err
	}
	if !scheme.IsActive {
		return nil, ErrSchemeNotExist
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SchemeApplicationCollection)

	application.ID = primitive.NewObjectID()
	application.Status = schema.ApplicationSubmitted
	application.CreatedAt = time.Now().UTC()

	if _, err := c.InsertOne(ctx, application); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}

	return &application, nil
}

func (m *mongoDB) GetSchemeApplication(schemeID primitive.ObjectID, farmerID string) (*schema.SchemeApplication, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SchemeApplicationCollection)

	var application schema.SchemeApplication
	if err := c.FindOne(ctx, bson.M{
		"scheme_id": schemeID,
		"farmer_id": farmerID,
	}).Decode(&application); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrApplicationNotExist
		}
		return nil, err
	}

	return &application, nil
}
