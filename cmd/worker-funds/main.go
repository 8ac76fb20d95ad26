package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/sirupsen/logrus"
	"lineblocs.com/ledger/handlers/billing"
	"lineblocs.com/ledger/internal/funds"
	"lineblocs.com/ledger/internal/ledger"
	"lineblocs.com/ledger/internal/queue"
	"lineblocs.com/ledger/repository"
	"lineblocs.com/ledger/utils"
)

func main() {
	logDestination := utils.Config("LOG_DESTINATIONS")
	helpers.InitLogrus(logDestination)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	secret := utils.Config("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		logrus.Fatal("STRIPE_WEBHOOK_SECRET is not set")
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}
	billingLedger := ledger.NewBillingLedger(repository.NewAccountRepository(db), utils.LedgerConfig())
	fundsSvc := funds.NewFundsService(billing.NewStripeFundsHandler(secret), billingLedger)

	conn, ch, err := utils.DialQueue()
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to queue")
	}
	defer conn.Close()
	defer ch.Close()

	consumer := queue.NewConsumer(ch, queue.PaymentEvents, fundsSvc.HandleMessage)
	if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
		logrus.WithError(err).Fatal("funds worker stopped")
	}
}
