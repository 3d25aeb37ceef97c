package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Project is a housing project shown on the marketing site.
// Status is one of "upcoming", "ongoing" or "completed".
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CoverImage  string             `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
}
