package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxAttempts = 3

// TimelineBuilder rebuilds a paiol's timeline. Implemented by the timeline
// service; declared here so the pool does not import the service package.
type TimelineBuilder interface {
	Montar(ctx context.Context, paiolID uuid.UUID, filtro dto.FiltroTimeline) (*dto.TimelineResponse, error)
}

// StartWorkerPool launches numWorkers goroutines consuming the warm queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, builder TimelineBuilder, cacheTTL time.Duration, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, builder, cacheTTL, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, builder TimelineBuilder, cacheTTL time.Duration, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueTimelineWarm).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			// result[0] is the queue name, result[1] the encoded job
			var job Job
			if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
				log.Error().Err(err).Msg("worker: malformed job discarded")
				continue
			}
			handleJob(ctx, rdb, builder, cacheTTL, job)
		}
	}
}

func handleJob(ctx context.Context, rdb *redis.Client, builder TimelineBuilder, cacheTTL time.Duration, job Job) {
	var payload TimelineWarmPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		SendToDLQ(ctx, rdb, QueueTimelineWarm, job.Type, job.Payload, "malformed payload: "+err.Error(), job.Attempts)
		return
	}
	paiolID, err := uuid.Parse(payload.PaiolID)
	if err != nil {
		SendToDLQ(ctx, rdb, QueueTimelineWarm, job.Type, job.Payload, "invalid paiol_id: "+err.Error(), job.Attempts)
		return
	}

	resp, err := builder.Montar(ctx, paiolID, dto.FiltroTimeline{})
	if err != nil {
		if job.Attempts+1 >= maxAttempts {
			SendToDLQ(ctx, rdb, QueueTimelineWarm, job.Type, job.Payload, err.Error(), job.Attempts+1)
			return
		}
		if reqErr := requeue(ctx, rdb, QueueTimelineWarm, job); reqErr != nil {
			log.Error().Err(reqErr).Msg("worker: requeue failed")
		}
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Msg("worker: timeline marshal failed")
		return
	}
	if err := rdb.Set(ctx, TimelineCacheKey(paiolID), data, cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("paiol_id", payload.PaiolID).Msg("worker: timeline cache set failed")
		return
	}
	log.Debug().Str("paiol_id", payload.PaiolID).Int("eventos", resp.Total).Msg("timeline cache warmed")
}
