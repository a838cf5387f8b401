package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"confgive/database"
	"confgive/dto/model"
)

// Built-in catalog used when no mongo catalog is configured. Everything the
// form offers is enabled by default.
var defaultPaymentMethods = map[string]model.PaymentMethod{
	model.PaymentTypeCreditCard: {Slug: model.PaymentTypeCreditCard, DisplayName: "Credit Card", Enabled: true},
	model.PaymentTypeApplePay:   {Slug: model.PaymentTypeApplePay, DisplayName: "Apple Pay", Enabled: true},
	model.PaymentTypeGooglePay:  {Slug: model.PaymentTypeGooglePay, DisplayName: "Google Pay", Enabled: true},
	model.PaymentTypeSamsungPay: {Slug: model.PaymentTypeSamsungPay, DisplayName: "Samsung Pay", Enabled: true},
}

// FindPaymentMethodBySlug looks up one catalog entry, falling back to the
// built-in defaults when mongo is absent or the entry is missing.
func FindPaymentMethodBySlug(slug string) (*model.PaymentMethod, error) {
	if database.MongoClient == nil {
		if method, ok := defaultPaymentMethods[slug]; ok {
			return &method, nil
		}
		return nil, mongo.ErrNoDocuments
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := database.GetCollection("confgive", "payment_methods")

	var paymentMethod model.PaymentMethod
	filter := bson.M{"slug": slug}

	err := collection.FindOne(ctx, filter).Decode(&paymentMethod)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			if method, ok := defaultPaymentMethods[slug]; ok {
				return &method, nil
			}
		}
		return nil, err
	}

	return &paymentMethod, nil
}

// MethodCatalog adapts the catalog lookup to the capability probe.
type MethodCatalog struct{}

// Enabled reports whether a payment method may be offered. Lookup errors
// keep the method enabled so a catalog outage never blocks giving.
func (MethodCatalog) Enabled(slug string) bool {
	method, err := FindPaymentMethodBySlug(slug)
	if err != nil {
		log.Println("payment method lookup failed, treating as enabled:", err)
		return true
	}
	return method.Enabled
}
