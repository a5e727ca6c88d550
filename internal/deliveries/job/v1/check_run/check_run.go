package checkrun

import (
	"context"
	"errors"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common/flag"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/services"
)

var errMissingCheckRunID = errors.New("check run id is required, use -i")

type checkRunHandler struct {
	checkRunSrv services.CheckRunService
}

func Routes(cs services.CheckRunService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := checkRunHandler{
		checkRunSrv: cs,
	}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"ExportCheckRun": handler.ExportCheckRun,
	}
}

func (ch *checkRunHandler) ExportCheckRun(ctx context.Context, _ time.Time, flag flag.Job) error {
	if flag.ID == "" {
		return errMissingCheckRunID
	}

	url, err := ch.checkRunSrv.Export(ctx, flag.ID)
	if err != nil {
		return err
	}

	log.Info(ctx, "ExportCheckRun", log.String("check-run-id", flag.ID), log.String("url", url))

	return nil
}
