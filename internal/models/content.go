package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentItem is a study-material record. Grade is the classification key the
// student view filters on; Date is stamped at insert and drives the
// newest-first listing.
type ContentItem struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Grade string             `bson:"grade" json:"grade"`
	Title string             `bson:"title,omitempty" json:"title,omitempty"`
	Date  time.Time          `bson:"date" json:"date"`

	Extra map[string]any `bson:",inline" json:"extra,omitempty"`
}
