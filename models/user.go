package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered site user. The password hash is never serialized
// to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
}
