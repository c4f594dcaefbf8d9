package service

import (
	"context"
	"encoding/json"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/LourceDev/3pages/internal/model"
	"github.com/LourceDev/3pages/internal/pkg/dateutil"
	"github.com/LourceDev/3pages/internal/repo"
	"github.com/LourceDev/3pages/internal/richtext"
)

type EntryService struct {
	entries *repo.EntryRepo
}

func NewEntryService(entries *repo.EntryRepo) *EntryService {
	return &EntryService{entries: entries}
}

// Put creates or replaces the user's entry for the given date. The word
// count is derived from the document here so the stored value can never
// disagree with the stored text.
func (s *EntryService) Put(ctx context.Context, userID int64, dateStr string, doc *richtext.Node) (*model.Entry, error) {
	date, err := dateutil.Parse(dateStr)
	if err != nil {
		return nil, err
	}
	text, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	entry := &model.Entry{
		UserID:    userID,
		Date:      date,
		Text:      text,
		WordCount: doc.CountWords(),
	}
	if err := s.entries.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *EntryService) Get(ctx context.Context, userID int64, dateStr string) (*model.Entry, error) {
	date, err := dateutil.Parse(dateStr)
	if err != nil {
		return nil, err
	}
	return s.entries.Get(ctx, userID, date)
}

func (s *EntryService) Delete(ctx context.Context, userID int64, dateStr string) error {
	date, err := dateutil.Parse(dateStr)
	if err != nil {
		return err
	}
	return s.entries.Delete(ctx, userID, date)
}

func (s *EntryService) ListDates(ctx context.Context, userID int64) ([]dateutil.Date, error) {
	return s.entries.ListDates(ctx, userID)
}

// Recount walks every stored entry, recomputes the word count from the
// document, and repairs rows whose cached count has drifted. Returns the
// number of repaired rows.
func (s *EntryService) Recount(ctx context.Context) (int64, error) {
	const pageSize = 200
	var repaired int64
	for offset := uint(0); ; offset += pageSize {
		page, err := s.entries.List(ctx, offset, pageSize)
		if err != nil {
			return repaired, err
		}
		if len(page) == 0 {
			return repaired, nil
		}
		for _, entry := range page {
			var doc richtext.Node
			if err := json.Unmarshal(entry.Text, &doc); err != nil {
				logutil.GetLogger(ctx).Warn("recount: undecodable entry text",
					zap.Int64("user_id", entry.UserID),
					zap.String("date", entry.Date.String()),
					zap.Error(err),
				)
				continue
			}
			want := doc.CountWords()
			if want == entry.WordCount {
				continue
			}
			if err := s.entries.UpdateWordCount(ctx, entry.UserID, entry.Date, want); err != nil {
				return repaired, err
			}
			repaired++
		}
	}
}
