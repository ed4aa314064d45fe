package store

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/heal-clinic/heal_backend/pkg/database"
)

// NewMongoStores builds the collection stores over a connected client.
func NewMongoStores(client *mongo.Client, dbName string) *Stores {
	db := client.Database(dbName)
	return &Stores{
		Patients:     &mongoPatientStore{coll: db.Collection(database.CollectionPatients)},
		Doctors:      &mongoDoctorStore{coll: db.Collection(database.CollectionDoctors)},
		Appointments: &mongoAppointmentStore{coll: db.Collection(database.CollectionAppointments)},
	}
}
