package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"meditrip/config"
	reservationRepo "meditrip/database/repository/reservation"
	"meditrip/models"
	"meditrip/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitNotificationWorker runs the async worker in background.
func InitNotificationWorker(notifSvc notification.NotificationService, reservations reservationRepo.ReservationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeReservationNotify, handleReservationNotice(notifSvc, reservations))

	go monitorRedisConnection()

	go func() {
		log.Println("[NotificationWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReservationNotice(notifSvc notification.NotificationService, reservations reservationRepo.ReservationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReservationNoticePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReservationNotice] 🔴 Invalid payload: %v", err)
			return err
		}

		data := map[string]string{
			"orderId":   p.OrderID,
			"reference": p.Reference,
			"type":      "reservation_confirmed",
		}

		if err := notifSvc.SendUserPushNotification(ctx, p.UserID, p.Title, p.Body, data); err != nil {
			log.Printf("[ReservationNotice] ❌ Failed to send notification: %v", err)
			return err
		}

		if p.ReservationID != "" {
			if err := reservations.MarkNotified(ctx, p.ReservationID); err != nil {
				log.Printf("[ReservationNotice] ⚠️ Failed to mark reservation %s notified: %v", p.ReservationID, err)
			}
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[NotificationWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
