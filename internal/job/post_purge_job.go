package job

import (
	"Chronicle/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// retentionDays is how long soft-deleted posts stay recoverable.
const retentionDays = 30

type PostPurgeJob struct {
	postRepo repository.PostRepo
}

func NewPostPurgeJob(postRepo repository.PostRepo) *PostPurgeJob {
	return &PostPurgeJob{postRepo: postRepo}
}

func (s *PostPurgeJob) Run() {
	ctx := context.Background()
	log.Info("start post purge job")

	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	purged, err := s.postRepo.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		log.Error("post purge job failed", "err", err)
		return
	}

	if purged > 0 {
		log.Info("post purge job finished", "purged_count", purged)
	}
}
