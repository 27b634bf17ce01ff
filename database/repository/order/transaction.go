package orderRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// RunInOrderTx runs fn inside a mongo multi-document transaction. Every
// repository call made with the session context participates in the same
// transaction, so a reconciler's order and itinerary writes commit or abort
// together. Combined with the version check in Update this serializes
// mutations per order id.
func (r *MongoOrderRepo) RunInOrderTx(ctx context.Context, orderID string, fn func(txCtx context.Context) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("order %s transaction failed: %w", orderID, err)
	}
	return nil
}
