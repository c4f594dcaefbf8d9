package model

import (
	"encoding/json"
	"time"

	"github.com/LourceDev/3pages/internal/pkg/dateutil"
)

// Entry is one journal entry. A user owns at most one entry per calendar
// date; (UserID, Date) is the identity.
type Entry struct {
	UserID    int64           `json:"userId"`
	Date      dateutil.Date   `json:"date"`
	Text      json.RawMessage `json:"text"`
	WordCount int64           `json:"wordCount"`
	CreatedAt time.Time       `json:"createdAt"`
}
