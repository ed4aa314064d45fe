package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Weekday names accepted in availability windows (Gregorian, English).
var Weekdays = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

// AvailabilityWindow is a weekday-scoped time range during which a doctor
// accepts appointments. Times are opaque display strings; the merge keyed on
// Day never inspects or validates their ordering.
type AvailabilityWindow struct {
	Day      string `bson:"day" json:"day"`
	FromTime string `bson:"fromTime" json:"fromTime"`
	ToTime   string `bson:"toTime" json:"toTime"`
}

type Doctor struct {
	ID              bson.ObjectID        `bson:"_id,omitempty" json:"_id,omitempty"`
	FullName        string               `bson:"fullName" json:"fullName"`
	Email           string               `bson:"email" json:"email"`
	Specialization  string               `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Phone           string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Organization    string               `bson:"organization,omitempty" json:"organization,omitempty"`
	Experience      int                  `bson:"experience,omitempty" json:"experience,omitempty"`
	ConsultationFee float64              `bson:"consultationFee,omitempty" json:"consultationFee,omitempty"`
	Location        string               `bson:"location,omitempty" json:"location,omitempty"`
	Availability    []AvailabilityWindow `bson:"availability" json:"availability"`
}

// DoctorRef is the joined subset attached to appointment reads.
type DoctorRef struct {
	ID             bson.ObjectID `bson:"_id" json:"_id"`
	FullName       string        `bson:"fullName" json:"fullName"`
	Specialization string        `bson:"specialization,omitempty" json:"specialization,omitempty"`
}
