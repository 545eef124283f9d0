package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mark is a score record. StudentID holds the hex id of the user it belongs
// to; the store does not enforce the reference.
type Mark struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID string             `bson:"studentId" json:"studentId"`
	Subject   string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Score     float64            `bson:"score,omitempty" json:"score,omitempty"`
	Date      time.Time          `bson:"date" json:"date"`

	Extra map[string]any `bson:",inline" json:"extra,omitempty"`
}
