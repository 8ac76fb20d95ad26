package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/sirupsen/logrus"
	"lineblocs.com/ledger/internal/ledger"
	"lineblocs.com/ledger/internal/purchase"
	"lineblocs.com/ledger/internal/queue"
	"lineblocs.com/ledger/repository"
	"lineblocs.com/ledger/utils"
)

func main() {
	logDestination := utils.Config("LOG_DESTINATIONS")
	helpers.InitLogrus(logDestination)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := utils.GetDBConnection()
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}
	rdb, err := utils.CreateRedisClient(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to redis")
	}
	defer rdb.Close()

	billingLedger := ledger.NewBillingLedger(repository.NewAccountRepository(db), utils.LedgerConfig())
	purchases := purchase.NewSettlement(billingLedger, purchase.NewRedisTokenGuard(rdb, purchase.DefaultTokenTTL))

	conn, ch, err := utils.DialQueue()
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to queue")
	}
	defer conn.Close()
	defer ch.Close()

	consumer := queue.NewConsumer(ch, queue.NumberPurchases, purchases.HandleMessage)
	if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
		logrus.WithError(err).Fatal("purchase worker stopped")
	}
}
