package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Patient is the local profile document. SubjectID is the identity
// provider's durable user id and the join key for all patient-scoped reads.
type Patient struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName string        `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName  string        `bson:"lastName,omitempty" json:"lastName,omitempty"`
	DOB       string        `bson:"dob,omitempty" json:"dob,omitempty"`

	Age                int     `bson:"age,omitempty" json:"age,omitempty"`
	Weight             float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Height             float64 `bson:"height,omitempty" json:"height,omitempty"`
	BloodGroup         string  `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	MedicalHistory     string  `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
	CurrentMedications string  `bson:"currentMedications,omitempty" json:"currentMedications,omitempty"`
	Allergies          string  `bson:"allergies,omitempty" json:"allergies,omitempty"`

	Email     string `bson:"email" json:"email"`
	Contact   string `bson:"contact,omitempty" json:"contact,omitempty"`
	SubjectID string `bson:"subjectId" json:"subjectId"`
}

// FullName joins the name parts for display.
func (p *Patient) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
