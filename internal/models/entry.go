package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommended mood labels. The classifier is instructed to pick one of these
// but the value is not enforced at the schema level.
const (
	MoodHappy     = "Happy"
	MoodSad       = "Sad"
	MoodAnxious   = "Anxious"
	MoodCalm      = "Calm"
	MoodAngry     = "Angry"
	MoodExhausted = "Exhausted"
	MoodNeutral   = "Neutral"
)

// SentimentResult is the typed outcome of one classification call. It is
// never persisted on its own; it is embedded into the entry it classified.
type SentimentResult struct {
	Mood           string  `bson:"mood" json:"mood"`
	SentimentScore float64 `bson:"sentiment_score" json:"sentimentScore"`
	Analysis       string  `bson:"analysis" json:"analysis"`
}

// JournalEntry is one journal submission. Classification is always present:
// either a real model result or the service fallback, produced atomically by
// the same call that created the entry.
type JournalEntry struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string             `bson:"user_id" json:"user_id"`
	Content string             `bson:"content" json:"content"`

	Classification SentimentResult `bson:"classification" json:"classification"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
