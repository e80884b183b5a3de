package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChatRole string

const (
	RoleChatUser  ChatRole = "user"
	RoleChatModel ChatRole = "model"
)

type ChatMessage struct {
	Role   ChatRole  `bson:"role" json:"role"`
	Text   string    `bson:"text" json:"text"`
	SentAt time.Time `bson:"sent_at" json:"sent_at"`
}

// ChatThread is the single conversation document per user. Messages are
// append-only and chronological; every user message sent to the model is
// followed by exactly one model reply.
type ChatThread struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   string             `bson:"user_id" json:"user_id"`
	Messages []ChatMessage      `bson:"messages" json:"messages"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
