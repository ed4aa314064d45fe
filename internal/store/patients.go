package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/heal-clinic/heal_backend/internal/model"
)

type mongoPatientStore struct {
	coll *mongo.Collection
}

func (s *mongoPatientStore) Insert(ctx context.Context, p *model.Patient) (bson.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("insert patient: %w", err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("insert patient: unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (s *mongoPatientStore) GetByID(ctx context.Context, id bson.ObjectID) (*model.Patient, error) {
	var p model.Patient
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return &p, nil
}

func (s *mongoPatientStore) GetBySubjectID(ctx context.Context, subjectID string) (*model.Patient, error) {
	var p model.Patient
	err := s.coll.FindOne(ctx, bson.M{"subjectId": subjectID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient by subject id: %w", err)
	}
	return &p, nil
}

func (s *mongoPatientStore) List(ctx context.Context) ([]*model.Patient, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	var patients []*model.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("decode patients: %w", err)
	}
	return patients, nil
}

func (s *mongoPatientStore) SetBySubjectID(ctx context.Context, subjectID string, fields bson.M) (*model.Patient, error) {
	return s.findOneAndSet(ctx, bson.M{"subjectId": subjectID}, fields)
}

func (s *mongoPatientStore) SetByID(ctx context.Context, id bson.ObjectID, fields bson.M) (*model.Patient, error) {
	return s.findOneAndSet(ctx, bson.M{"_id": id}, fields)
}

func (s *mongoPatientStore) findOneAndSet(ctx context.Context, filter, fields bson.M) (*model.Patient, error) {
	var p model.Patient
	err := s.coll.FindOneAndUpdate(ctx, filter,
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return &p, nil
}

func (s *mongoPatientStore) DeleteByID(ctx context.Context, id bson.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
