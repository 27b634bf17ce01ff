package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"meditrip/config"
	"meditrip/models"

	"github.com/hibiken/asynq"
)

const TypeReservationNotify = "reservation:notify"

// AsynqNotifier enqueues reservation notices onto the Redis-backed queue; the
// worker picks them up and pushes via FCM.
type AsynqNotifier struct {
	client *asynq.Client
}

func NewAsynqNotifier() *AsynqNotifier {
	return &AsynqNotifier{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPass,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

func (n *AsynqNotifier) EnqueueReservationNotice(ctx context.Context, userID, orderID, reservationID, reference string) error {
	payload := models.ReservationNoticePayload{
		UserID:        userID,
		OrderID:       orderID,
		ReservationID: reservationID,
		Reference:     reference,
		Title:         "Reservation confirmed",
		Body:          fmt.Sprintf("A service on your trip was confirmed (ref %s).", reference),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = n.client.EnqueueContext(ctx, asynq.NewTask(TypeReservationNotify, b))
	return err
}
