package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"roomdesk/config"
	"roomdesk/models"
	"roomdesk/services/notification"
	"roomdesk/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitConfirmationWorker runs the async worker in background.
func InitConfirmationWorker(mailSvc notification.MailService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
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
	mux.HandleFunc(tasks.TypeSendConfirmation, handleConfirmationTask(mailSvc))

	// Start Redis health monitor
	go monitorQueueConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ConfirmationWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ConfirmationWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ConfirmationWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(mailSvc notification.MailService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ConfirmationHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		log.Printf("[ConfirmationHandler] ✉️ Delivering confirmation for booking %s → %s", p.BookingID, p.TargetEmail)

		if err := mailSvc.SendBookingConfirmation(ctx, p); err != nil {
			log.Printf("[ConfirmationHandler] ❌ Failed to queue confirmation mail: %v", err)
			return err
		}
		return nil
	}
}

// monitorQueueConnection pings Redis periodically to detect failures at runtime.
func monitorQueueConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ConfirmationWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
