package cmd

import (
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
	models "lineblocs.com/ledger/models"
)

type AccountStateReader interface {
	GetAccountState(ctx context.Context, accountID int) (*models.AccountState, error)
}

// PrintAccountState writes the account's current balance and allowance as JSON.
func PrintAccountState(ctx context.Context, reader AccountStateReader, rawID string, out io.Writer) error {
	accountID, err := strconv.Atoi(rawID)
	if err != nil {
		return errors.Wrapf(err, "invalid account id %q", rawID)
	}
	state, err := reader.GetAccountState(ctx, accountID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}
