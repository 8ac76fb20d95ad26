package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/sirupsen/logrus"
	"lineblocs.com/ledger/internal/ledger"
	"lineblocs.com/ledger/internal/queue"
	"lineblocs.com/ledger/internal/settlement"
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
	billingLedger := ledger.NewBillingLedger(repository.NewAccountRepository(db), utils.LedgerConfig())
	processor := settlement.NewProcessor(repository.NewCallRepository(db), billingLedger)

	conn, ch, err := utils.DialQueue()
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to queue")
	}
	defer conn.Close()
	defer ch.Close()

	consumer := queue.NewConsumer(ch, queue.CallStatusEvents, processor.HandleMessage)
	if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
		logrus.WithError(err).Fatal("settlement worker stopped")
	}
}
