package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	cmd "lineblocs.com/ledger/cmd"
	"lineblocs.com/ledger/internal/queue"
	"lineblocs.com/ledger/repository"
	"lineblocs.com/ledger/utils"
)

const reconcileSchedule = "*/10 * * * *"

func main() {
	logDestination := utils.Config("LOG_DESTINATIONS")
	helpers.InitLogrus(logDestination)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := utils.CreateRedisClient(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to redis")
	}
	defer rdb.Close()

	schedule := reconcileSchedule
	if utils.Config("DISTRIBUTOR_DEBUG") == "1" {
		schedule = "* * * * *"
	}

	c := cron.New()
	_, err = c.AddFunc(schedule, func() {
		runReconcile(ctx, rdb)
	})
	if err != nil {
		logrus.WithError(err).Fatal("invalid reconcile schedule")
	}

	logrus.WithField("schedule", schedule).Info("reconcile distributor started")
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
}

func runReconcile(ctx context.Context, rdb *redis.Client) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	// one replica per window
	lockKey := fmt.Sprintf("reconcile_run_lock:%s", time.Now().UTC().Format("2006-01-02-15:04"))
	locked, err := rdb.SetNX(ctx, lockKey, "running", 50*time.Second).Result()
	if err != nil || !locked {
		logrus.WithField("lock", lockKey).Info("skip: reconcile lock held by another instance")
		return
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		logrus.WithError(err).Error("could not connect to database")
		return
	}

	conn, ch, err := utils.DialQueue()
	if err != nil {
		logrus.WithError(err).Error("could not connect to queue")
		return
	}
	defer conn.Close()
	defer ch.Close()

	publisher, err := queue.NewConfirmPublisher(ch)
	if err != nil {
		logrus.WithError(err).Error("could not create publisher")
		return
	}

	job := cmd.NewReconcileJob(repository.NewCallRepository(db), publisher, utils.ReconcileAfter())
	if _, err := job.Run(ctx); err != nil {
		helpers.Log(logrus.ErrorLevel, err.Error())
	}
}
