package queries

import (
	"flightdeals/internal/domain/order"
	"flightdeals/internal/domain/promotion"
)

// Column names shared by the postgres readstore and the in-memory store.
const (
	ColumnCreatedAt = "created_at"
	ColumnOwnerID   = "owner_id"
	ColumnSavedAt   = "saved_at"
)

var UserSchema = Schema{
	Entity: "users",
	Fields: map[string]Field{
		"name":      {Column: "name", Op: OpContains, Kind: KindString},
		"email":     {Column: "email", Op: OpContains, Kind: KindString},
		"isPremium": {Column: "is_premium", Op: OpTier, Kind: KindBool, ExpiryColumn: "premium_expires_at"},
		"isAdmin":   {Column: "is_admin", Op: OpEq, Kind: KindBool},
		"createdAt": {Column: ColumnCreatedAt, Op: OpRange, Kind: KindTime},
	},
	Sortable: map[string]string{
		"name":      "name",
		"email":     "email",
		"createdAt": ColumnCreatedAt,
		"updatedAt": "updated_at",
	},
	DefaultSort: Sort{Column: ColumnCreatedAt, Desc: true},
}

var PromotionSchema = Schema{
	Entity: "promotions",
	Fields: promotionFields(),
	Sortable: map[string]string{
		"createdAt": ColumnCreatedAt,
		"updatedAt": "updated_at",
		"discount":  "discount",
		"price":     "price",
		"miles":     "miles",
		"from":      "origin",
		"to":        "destination",
		"airline":   "airline",
	},
	DefaultSort: Sort{Column: ColumnCreatedAt, Desc: true},
}

// SavedSchema lists a user's bookmarked promotions. The owner predicate is
// fixed by the caller and never taken from the query string.
var SavedSchema = Schema{
	Entity: "saved",
	Fields: promotionFields(),
	Sortable: map[string]string{
		"savedAt":   ColumnSavedAt,
		"createdAt": ColumnCreatedAt,
		"discount":  "discount",
	},
	DefaultSort: Sort{Column: ColumnSavedAt, Desc: true},
}

var OrderSchema = Schema{
	Entity: "orders",
	Fields: map[string]Field{
		"status":    {Column: "status", Op: OpIn, Kind: KindString, Enum: orderStatuses()},
		"plan":      {Column: "plan", Op: OpEq, Kind: KindString},
		"currency":  {Column: "currency", Op: OpEq, Kind: KindString},
		"userId":    {Column: "user_id", Op: OpEq, Kind: KindUUID},
		"amount":    {Column: "amount", Op: OpRange, Kind: KindDecimal},
		"createdAt": {Column: ColumnCreatedAt, Op: OpRange, Kind: KindTime},
	},
	Sortable: map[string]string{
		"createdAt": ColumnCreatedAt,
		"updatedAt": "updated_at",
		"amount":    "amount",
		"status":    "status",
	},
	DefaultSort: Sort{Column: ColumnCreatedAt, Desc: true},
}

func promotionFields() map[string]Field {
	return map[string]Field{
		"from":        {Column: "origin", Op: OpContains, Kind: KindString},
		"to":          {Column: "destination", Op: OpContains, Kind: KindString},
		"airline":     {Column: "airline", Op: OpContains, Kind: KindString},
		"tripType":    {Column: "trip_type", Op: OpIn, Kind: KindString, Enum: enumOf(promotion.TripTypes)},
		"travelClass": {Column: "travel_class", Op: OpIn, Kind: KindString, Enum: enumOf(promotion.TravelClasses)},
		"paymentType": {Column: "payment_type", Op: OpIn, Kind: KindString, Enum: enumOf(promotion.PaymentTypes)},
		"isPremium":   {Column: "is_premium", Op: OpTier, Kind: KindBool},
		"discount":    {Column: "discount", Op: OpRange, Kind: KindInt},
		"createdAt":   {Column: ColumnCreatedAt, Op: OpRange, Kind: KindTime},
	}
}

func enumOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func orderStatuses() []string {
	return enumOf(order.Statuses)
}
