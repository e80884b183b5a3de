package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/rakhaanw/mindhaven/internal/models"
	"github.com/rakhaanw/mindhaven/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EntryRepository interface {
	Insert(ctx context.Context, e *models.JournalEntry) error
	ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error)
	GetByID(ctx context.Context, id string) (*models.JournalEntry, error)
	Delete(ctx context.Context, id string) error
}

type entryRepo struct {
	col *mongo.Collection
}

func NewEntryRepo(db *mongo.Database) EntryRepository {
	return &entryRepo{col: db.Collection("entries")}
}

func (r *entryRepo) Insert(ctx context.Context, e *models.JournalEntry) error {
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return nil
}

func (r *entryRepo) ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.JournalEntry{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *entryRepo) GetByID(ctx context.Context, id string) (*models.JournalEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	var e models.JournalEntry
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *entryRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
