package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rakhaanw/mindhaven/internal/cache"
	"github.com/rakhaanw/mindhaven/internal/models"
	mongorepo "github.com/rakhaanw/mindhaven/internal/repositories/mongo"
	"github.com/rakhaanw/mindhaven/internal/utils"
	"github.com/sirupsen/logrus"
)

type JournalService interface {
	CreateEntry(ctx context.Context, userID, content string) (*models.JournalEntry, error)
	ListEntries(ctx context.Context, userID string) ([]models.JournalEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) (string, error)
}

type journalService struct {
	entries mongorepo.EntryRepository
	ai      AIService
	cache   cache.Cache
	ttl     time.Duration
	log     *logrus.Logger
}

func NewJournalService(entries mongorepo.EntryRepository, ai AIService, c cache.Cache, ttl time.Duration, log *logrus.Logger) JournalService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &journalService{entries: entries, ai: ai, cache: c, ttl: ttl, log: log}
}

func entriesCacheKey(userID string) string { return "entries:" + userID }

func (s *journalService) CreateEntry(ctx context.Context, userID, content string) (*models.JournalEntry, error) {
	const op = "JournalService.CreateEntry"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if strings.TrimSpace(content) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "please add text content", nil)
	}

	// Classification never fails: on model trouble it yields the fixed
	// fallback triple. Classification and persistence are not transactional;
	// a failed insert just loses the classification and a retry recomputes it.
	result := s.ai.ClassifySentiment(ctx, content)

	entry := &models.JournalEntry{
		UserID:         userID,
		Content:        content,
		Classification: result,
	}
	if err := s.entries.Insert(ctx, entry); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create entry", err)
	}

	s.invalidate(ctx, userID)
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	const op = "JournalService.ListEntries"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	key := entriesCacheKey(userID)
	if s.cache != nil {
		var cached []models.JournalEntry
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list entries", err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, out, s.ttl); err != nil {
			s.log.WithError(err).Warn("entries cache set failed")
		}
	}
	return out, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, userID, entryID string) (string, error) {
	const op = "JournalService.DeleteEntry"

	if userID == "" || entryID == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "user_id and entry id are required", nil)
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeNotFound, op, "entry not found", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to get entry", err)
	}

	if entry.UserID != userID {
		return "", utils.E(utils.CodeUnauthorized, op, "user not authorized", nil)
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeNotFound, op, "entry not found", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to delete entry", err)
	}

	s.invalidate(ctx, userID)
	return entryID, nil
}

func (s *journalService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, entriesCacheKey(userID)); err != nil {
		s.log.WithError(err).Warn("entries cache invalidation failed")
	}
}
