package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/heal-clinic/heal_backend/internal/model"
)

type mongoAppointmentStore struct {
	coll *mongo.Collection
}

func (s *mongoAppointmentStore) Insert(ctx context.Context, a *model.Appointment) (bson.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, a)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("insert appointment: %w", err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("insert appointment: unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (s *mongoAppointmentStore) GetByID(ctx context.Context, id bson.ObjectID) (*model.Appointment, error) {
	var a model.Appointment
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

func (s *mongoAppointmentStore) ListByPatient(ctx context.Context, patientID bson.ObjectID, status string) ([]*model.Appointment, error) {
	filter := bson.M{"patientId": patientID}
	if status != "" {
		filter["status"] = status
	}
	return s.find(ctx, filter, nil)
}

func (s *mongoAppointmentStore) ListByDoctor(ctx context.Context, doctorID bson.ObjectID) ([]*model.Appointment, error) {
	return s.find(ctx, bson.M{"doctorId": doctorID}, nil)
}

func (s *mongoAppointmentStore) SearchPayments(ctx context.Context, patientID bson.ObjectID, doctorIDs []bson.ObjectID, txnSubstr string, oldestFirst bool) ([]*model.Appointment, error) {
	filter := bson.M{
		"patientId": patientID,
		"payment":   bson.M{"$exists": true},
	}

	var or []bson.M
	if len(doctorIDs) > 0 {
		or = append(or, bson.M{"doctorId": bson.M{"$in": doctorIDs}})
	}
	if txnSubstr != "" {
		or = append(or, bson.M{"payment.transactionId": bson.M{
			"$regex":   regexp.QuoteMeta(txnSubstr),
			"$options": "i",
		}})
	}
	if len(or) > 0 {
		filter["$or"] = or
	}

	dir := -1
	if oldestFirst {
		dir = 1
	}
	// Dates are ISO yyyy-mm-dd strings, so lexicographic order is
	// chronological order.
	return s.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: dir}}))
}

func (s *mongoAppointmentStore) Close(ctx context.Context, id bson.ObjectID, status, notes string, meds []model.Medication) (*model.Appointment, error) {
	var a model.Appointment
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": model.StatusUpcoming},
		bson.M{"$set": bson.M{
			"status":      status,
			"doctorNotes": notes,
			"medications": meds,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("close appointment: %w", err)
	}
	return &a, nil
}

func (s *mongoAppointmentStore) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]*model.Appointment, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = s.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	var appointments []*model.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appointments, nil
}
