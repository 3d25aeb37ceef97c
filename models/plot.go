package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Plot is an individual plot listing. Size is free text ("5 Marla",
// "10 Marla"). Status is one of "available", "booked" or "sold".
type Plot struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlotNo string             `bson:"plot_no" json:"plot_no"`
	Size   string             `bson:"size" json:"size"`
	Sector string             `bson:"sector,omitempty" json:"sector,omitempty"`
	Price  *float64           `bson:"price,omitempty" json:"price,omitempty"`
	Status string             `bson:"status" json:"status"`
}
