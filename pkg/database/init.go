package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/heal-clinic/heal_backend/config"
)

// InitializeDatabase creates the indexes the application relies on and seeds
// the doctor directory when it is empty. Safe to run repeatedly.
func InitializeDatabase(cfg *config.Config) error {
	client, err := NewMongoFromCentral(cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(cfg.Mongo.Database)

	if err := createIndexes(ctx, db); err != nil {
		return err
	}
	return seedDoctors(ctx, db)
}

func createIndexes(ctx context.Context, db *mongo.Database) error {
	patientIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "subjectId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(CollectionPatients).Indexes().CreateMany(ctx, patientIndexes); err != nil {
		return fmt.Errorf("create patient indexes: %w", err)
	}

	appointmentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "doctorId", Value: 1}}},
	}
	if _, err := db.Collection(CollectionAppointments).Indexes().CreateMany(ctx, appointmentIndexes); err != nil {
		return fmt.Errorf("create appointment indexes: %w", err)
	}

	return nil
}

// seedDoctors loads a small demo directory so a fresh install has someone
// to book with.
func seedDoctors(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(CollectionDoctors)

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count doctors: %w", err)
	}
	if count > 0 {
		return nil
	}

	doctors := []any{
		bson.M{
			"fullName":        "Dr. Meredith Grey",
			"email":           "meredith.grey@heal.example",
			"specialization":  "Cardiology",
			"phone":           "+1 555 0101",
			"organization":    "HEAL Clinic",
			"experience":      12,
			"consultationFee": 120.0,
			"location":        "Seattle, WA",
			"availability": []bson.M{
				{"day": "Monday", "fromTime": "09:00", "toTime": "13:00"},
				{"day": "Wednesday", "fromTime": "14:00", "toTime": "18:00"},
			},
		},
		bson.M{
			"fullName":        "Dr. Arjun Mehta",
			"email":           "arjun.mehta@heal.example",
			"specialization":  "Dermatology",
			"phone":           "+1 555 0102",
			"organization":    "HEAL Clinic",
			"experience":      8,
			"consultationFee": 90.0,
			"location":        "Portland, OR",
			"availability": []bson.M{
				{"day": "Tuesday", "fromTime": "10:00", "toTime": "14:00"},
				{"day": "Thursday", "fromTime": "10:00", "toTime": "14:00"},
				{"day": "Saturday", "fromTime": "09:00", "toTime": "12:00"},
			},
		},
		bson.M{
			"fullName":        "Dr. Lena Okafor",
			"email":           "lena.okafor@heal.example",
			"specialization":  "Pediatrics",
			"phone":           "+1 555 0103",
			"organization":    "HEAL Clinic",
			"experience":      15,
			"consultationFee": 100.0,
			"location":        "Seattle, WA",
			"availability": []bson.M{
				{"day": "Monday", "fromTime": "08:00", "toTime": "12:00"},
				{"day": "Friday", "fromTime": "13:00", "toTime": "17:00"},
			},
		},
	}

	if _, err := coll.InsertMany(ctx, doctors); err != nil {
		return fmt.Errorf("seed doctors: %w", err)
	}
	return nil
}
