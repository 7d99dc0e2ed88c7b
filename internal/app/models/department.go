package models

type Department struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Floor       int    `json:"floor" bson:"floor"`
	IsActive    bool   `json:"isActive" bson:"isActive"`

	TimeModel `bson:",inline"`
}
