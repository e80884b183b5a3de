package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakhaanw/mindhaven/internal/api/handlers"
	"github.com/rakhaanw/mindhaven/internal/models"
	"github.com/rakhaanw/mindhaven/internal/utils"
)

type stubJournalService struct {
	entries []models.JournalEntry
}

func (s *stubJournalService) CreateEntry(_ context.Context, userID, content string) (*models.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, "JournalService.CreateEntry", "please add text content", nil)
	}
	return &models.JournalEntry{
		ID:      primitive.NewObjectID(),
		UserID:  userID,
		Content: content,
		Classification: models.SentimentResult{
			Mood:           models.MoodCalm,
			SentimentScore: 0.4,
			Analysis:       "Feeling steady.",
		},
	}, nil
}

func (s *stubJournalService) ListEntries(context.Context, string) ([]models.JournalEntry, error) {
	return s.entries, nil
}

func (s *stubJournalService) DeleteEntry(_ context.Context, userID, entryID string) (string, error) {
	for _, e := range s.entries {
		if e.ID.Hex() != entryID {
			continue
		}
		if e.UserID != userID {
			return "", utils.E(utils.CodeUnauthorized, "JournalService.DeleteEntry", "user not authorized", nil)
		}
		return entryID, nil
	}
	return "", utils.E(utils.CodeNotFound, "JournalService.DeleteEntry", "entry not found", nil)
}

func journalRouter(svc *stubJournalService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	h := handlers.NewJournalHandler(svc)
	r.GET("/entries", h.List)
	r.POST("/entries", h.Create)
	r.DELETE("/entries/:id", h.Delete)
	return r
}

func TestCreateEntryHandler(t *testing.T) {
	r := journalRouter(&stubJournalService{})

	req := httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(`{"content":"I feel okay today"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)

	var entry models.JournalEntry
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &entry))
	require.Equal(t, "I feel okay today", entry.Content)
	require.Equal(t, models.MoodCalm, entry.Classification.Mood)
}

func TestCreateEntryHandlerEmptyContent(t *testing.T) {
	r := journalRouter(&stubJournalService{})

	req := httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(`{"content":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListEntriesHandler(t *testing.T) {
	svc := &stubJournalService{entries: []models.JournalEntry{
		{ID: primitive.NewObjectID(), UserID: "user-1", Content: "newest"},
		{ID: primitive.NewObjectID(), UserID: "user-1", Content: "older"},
	}}
	r := journalRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var out []models.JournalEntry
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Len(t, out, 2)
	require.Equal(t, "newest", out[0].Content)
}

func TestDeleteEntryHandler(t *testing.T) {
	mine := models.JournalEntry{ID: primitive.NewObjectID(), UserID: "user-1"}
	theirs := models.JournalEntry{ID: primitive.NewObjectID(), UserID: "user-2"}
	r := journalRouter(&stubJournalService{entries: []models.JournalEntry{mine, theirs}})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/entries/"+primitive.NewObjectID().Hex(), nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		require.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("not owner", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/entries/"+theirs.ID.Hex(), nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		require.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("ok", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/entries/"+mine.ID.Hex(), nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		require.Equal(t, http.StatusOK, resp.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Equal(t, mine.ID.Hex(), body["id"])
	})
}
