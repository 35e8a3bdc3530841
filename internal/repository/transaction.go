package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBTrxHandlerImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBTrxHandler(db *mongo.Database) TrxHandler {
	return &MongoDBTrxHandlerImpl{db: db}
}

// HandleTrx runs fn under session.WithTransaction. The driver retries
// transient transaction errors and unknown commit results on its own; anything
// it gives up on surfaces here and aborts the whole operation.
func (r *MongoDBTrxHandlerImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		return err
	}

	// Defers ending the session after the transaction is committed or aborted
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessionCtx mongo.SessionContext) (interface{}, error) {
		err := fn(sessionCtx)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		}
		return nil, err
	})

	return err
}
