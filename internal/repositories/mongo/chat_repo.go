package mongo

import (
	"context"
	"time"

	"github.com/rakhaanw/mindhaven/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatRepository interface {
	// GetOrCreate returns the user's thread, creating an empty one if absent.
	GetOrCreate(ctx context.Context, userID string) (*models.ChatThread, error)
	// AppendMessages pushes messages onto the thread in one atomic update and
	// returns the post-update thread. Concurrent appends for the same user
	// commute at the store, so no pair is ever lost.
	AppendMessages(ctx context.Context, userID string, msgs []models.ChatMessage) (*models.ChatThread, error)
}

type chatRepo struct {
	col *mongo.Collection
}

func NewChatRepo(db *mongo.Database) ChatRepository {
	return &chatRepo{col: db.Collection("chats")}
}

func (r *chatRepo) GetOrCreate(ctx context.Context, userID string) (*models.ChatThread, error) {
	now := time.Now().UTC()

	var t models.ChatThread
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{"$setOnInsert": bson.M{
			"user_id":    userID,
			"messages":   []models.ChatMessage{},
			"created_at": now,
			"updated_at": now,
		}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *chatRepo) AppendMessages(ctx context.Context, userID string, msgs []models.ChatMessage) (*models.ChatThread, error) {
	now := time.Now().UTC()

	var t models.ChatThread
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$push": bson.M{"messages": bson.M{"$each": msgs}},
			"$set":  bson.M{"updated_at": now},
			"$setOnInsert": bson.M{
				"user_id":    userID,
				"created_at": now,
			},
		},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
