package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// swappable in tests
var timeNow = time.Now

// publishEvent writes a marshalled event to the broker with bounded retries.
// Callers invoke it after their transaction committed, so failures are logged
// and swallowed rather than failing the request.
func publishEvent(ctx context.Context, producer EventProducer, msg []byte, key string) {
	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err := producer.WriteMessage(msg, key)
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}
}
