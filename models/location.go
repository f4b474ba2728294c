package models

// State is one subdivision of a country.
type State struct {
	Name string `json:"name" bson:"name"`
	Code string `json:"code" bson:"code"`
}

// Location is one entry in the static country/state reference list,
// seeded out-of-band and read-only at runtime.
type Location struct {
	Name   string  `json:"name" bson:"name"`
	Code   string  `json:"code,omitempty" bson:"code,omitempty"`
	States []State `json:"states" bson:"states"`
}
