package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SchemeCollection            = "scheme"
	SchemeApplicationCollection = "scheme_application"
)

const (
	ApplicationSubmitted = "submitted"
	ApplicationApproved  = "approved"
	ApplicationRejected  = "rejected"
)

// Scheme is a government assistance programme farmers can apply to
type Scheme struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty" yaml:"-"`
	Code                string             `json:"code" bson:"code" yaml:"code"`
	Name                string             `json:"name" bson:"name" yaml:"name"`
	Description         string             `json:"description" bson:"description" yaml:"description"`
	Category            string             `json:"category" bson:"category" yaml:"category"`
	Benefits            string             `json:"benefits" bson:"benefits" yaml:"benefits"`
	EligibilityCriteria string             `json:"eligibility_criteria" bson:"eligibility_criteria" yaml:"eligibility_criteria"`
	RequiredDocuments   []string           `json:"required_documents" bson:"required_documents" yaml:"required_documents"`
	ApplicationProcess  string             `json:"application_process" bson:"application_process" yaml:"application_process"`
	ContactDetails      string             `json:"contact_details" bson:"contact_details" yaml:"contact_details"`
	IsActive            bool               `json:"is_active" bson:"is_active" yaml:"is_active"`
}

type ApplicationData struct {
	AnnualIncome   string `json:"annual_income" bson:"annual_income"`
	LandArea       string `json:"land_area" bson:"land_area"`
	CropType       string `json:"crop_type" bson:"crop_type"`
	BankAccount    string `json:"bank_account" bson:"bank_account"`
	AdditionalInfo string `json:"additional_info" bson:"additional_info"`
}

type SchemeApplication struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SchemeID        primitive.ObjectID `json:"scheme_id" bson:"scheme_id"`
	FarmerID        string             `json:"farmer_id" bson:"farmer_id"`
	ApplicationData ApplicationData    `json:"application_data" bson:"application_data"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
}
