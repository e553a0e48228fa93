package worker

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueTimelineWarm = "jobs:timeline_warm"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// TimelineWarmPayload asks the pool to rebuild one paiol's cached timeline.
type TimelineWarmPayload struct {
	PaiolID string `json:"paiol_id"`
}

// TimelineCacheKey is the Redis key holding the marshaled default timeline
// of a paiol. Deleted on every write that changes the paiol's history.
func TimelineCacheKey(paiolID uuid.UUID) string {
	return "timeline:" + paiolID.String()
}

// Dispatcher invalidates timeline caches and enqueues warm jobs into Redis
// lists. The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher { return &Dispatcher{rdb: rdb} }

// InvalidarTimeline drops the cached timeline of a paiol and enqueues a warm
// job so the pool rebuilds it. Best-effort: cache recomputation is always
// correct on a miss, so a Redis failure here is logged, never propagated.
func (d *Dispatcher) InvalidarTimeline(ctx context.Context, paiolID uuid.UUID) {
	if err := d.rdb.Del(ctx, TimelineCacheKey(paiolID)).Err(); err != nil {
		log.Warn().Err(err).Str("paiol_id", paiolID.String()).Msg("timeline cache invalidation failed")
	}
	if err := d.enqueue(ctx, QueueTimelineWarm, "timeline_warm", TimelineWarmPayload{PaiolID: paiolID.String()}); err != nil {
		log.Warn().Err(err).Str("paiol_id", paiolID.String()).Msg("timeline warm enqueue failed")
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// requeue pushes a failed job back with its attempt counter bumped.
func requeue(ctx context.Context, rdb *redis.Client, queue string, job Job) error {
	job.Attempts++
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return rdb.LPush(ctx, queue, encoded).Err()
}
