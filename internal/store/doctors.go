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

type mongoDoctorStore struct {
	coll *mongo.Collection
}

func (s *mongoDoctorStore) Insert(ctx context.Context, d *model.Doctor) (bson.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, d)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("insert doctor: %w", err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("insert doctor: unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (s *mongoDoctorStore) GetByID(ctx context.Context, id bson.ObjectID) (*model.Doctor, error) {
	var d model.Doctor
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return &d, nil
}

func (s *mongoDoctorStore) List(ctx context.Context) ([]*model.Doctor, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	var doctors []*model.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	return doctors, nil
}

func (s *mongoDoctorStore) FindIDsByName(ctx context.Context, substr string) ([]bson.ObjectID, error) {
	filter := bson.M{"fullName": bson.M{
		"$regex":   regexp.QuoteMeta(substr),
		"$options": "i",
	}}

	cursor, err := s.coll.Find(ctx, filter,
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("search doctors: %w", err)
	}

	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode doctor ids: %w", err)
	}

	ids := make([]bson.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (s *mongoDoctorStore) SetAvailability(ctx context.Context, id bson.ObjectID, windows []model.AvailabilityWindow) (*model.Doctor, error) {
	var d model.Doctor
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"availability": windows}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("set availability: %w", err)
	}
	return &d, nil
}
