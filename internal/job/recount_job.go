package job

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/LourceDev/3pages/internal/service"
)

// RecountJob repairs cached word counts that drifted from the stored
// documents, e.g. after a change to the counting rules.
type RecountJob struct {
	entries *service.EntryService
}

func NewRecountJob(entries *service.EntryService) *RecountJob {
	return &RecountJob{entries: entries}
}

func (j *RecountJob) Name() string {
	return "word_count_recount"
}

func (j *RecountJob) Run(ctx context.Context) error {
	repaired, err := j.entries.Recount(ctx)
	if err != nil {
		return err
	}
	if repaired > 0 {
		logutil.GetLogger(ctx).Info("word counts repaired", zap.Int64("entries", repaired))
	}
	return nil
}
