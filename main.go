package main

import (
	"context"
	"os"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/sirupsen/logrus"
	cmd "lineblocs.com/ledger/cmd"
	"lineblocs.com/ledger/internal/ledger"
	"lineblocs.com/ledger/internal/queue"
	"lineblocs.com/ledger/repository"
	"lineblocs.com/ledger/utils"
)

func main() {
	var err error

	logDestination := utils.Config("LOG_DESTINATIONS")
	helpers.InitLogrus(logDestination)

	args := os.Args[1:]
	if len(args) == 0 {
		helpers.Log(logrus.InfoLevel, "Please provide command")
		return
	}
	ctx := context.Background()
	command := args[0]
	switch command {
	case "reconcile":
		helpers.Log(logrus.InfoLevel, "republishing unbilled completed calls")
		err = reconcile(ctx)
		if err != nil {
			helpers.Log(logrus.ErrorLevel, err.Error())
		}
	case "account_state":
		if len(args) < 2 {
			helpers.Log(logrus.InfoLevel, "Please provide account id")
			return
		}
		db, dbErr := helpers.CreateDBConn()
		if dbErr != nil {
			helpers.Log(logrus.ErrorLevel, dbErr.Error())
			return
		}
		billingLedger := ledger.NewBillingLedger(repository.NewAccountRepository(db), utils.LedgerConfig())
		err = cmd.PrintAccountState(ctx, billingLedger, args[1], os.Stdout)
		if err != nil {
			helpers.Log(logrus.ErrorLevel, err.Error())
		}
	default:
		helpers.Log(logrus.InfoLevel, "Unknown command "+command)
	}
}

func reconcile(ctx context.Context) error {
	db, err := helpers.CreateDBConn()
	if err != nil {
		return err
	}
	conn, ch, err := utils.DialQueue()
	if err != nil {
		return err
	}
	defer conn.Close()
	defer ch.Close()

	publisher, err := queue.NewConfirmPublisher(ch)
	if err != nil {
		return err
	}
	job := cmd.NewReconcileJob(repository.NewCallRepository(db), publisher, utils.ReconcileAfter())
	_, err = job.Run(ctx)
	return err
}
