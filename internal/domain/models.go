package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing is a marketplace item or pet-adoption entry owned by a seller.
// Pets are adoption-only: price must be 0 for the Pets category.
type Listing struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"` // Pets | Food | Accessories | Care Products
	Price       float64            `bson:"price" json:"price"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Email       string             `bson:"email" json:"email"` // owner identity
	Date        time.Time          `bson:"date" json:"date"`   // pickup date
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Order is a buyer's request to purchase or adopt a listing. ProductID is a
// format-checked reference only; the listing it points at may no longer exist.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID       primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName     string             `bson:"productName" json:"productName"`
	Category        string             `bson:"category" json:"category"`
	BuyerName       string             `bson:"buyerName" json:"buyerName"`
	Email           string             `bson:"email" json:"email"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	Price           float64            `bson:"price" json:"price"`
	Address         string             `bson:"address" json:"address"`
	Phone           string             `bson:"phone" json:"phone"`
	Date            time.Time          `bson:"date" json:"date"`
	AdditionalNotes string             `bson:"additionalNotes" json:"additionalNotes"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
