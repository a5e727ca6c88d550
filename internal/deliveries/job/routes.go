package job

import (
	"context"
	"errors"
	"maps"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/flag"
	"github.com/trustbooks/go-trust-ledger/internal/common/idgenerator"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/log/ctxdata"
	"github.com/trustbooks/go-trust-ledger/internal/config"
	v1checkRun "github.com/trustbooks/go-trust-ledger/internal/deliveries/job/v1/check_run"
	v1reconciliation "github.com/trustbooks/go-trust-ledger/internal/deliveries/job/v1/reconciliation"
	"github.com/trustbooks/go-trust-ledger/internal/services"
)

type JobFunc = func(ctx context.Context, date time.Time, flag flag.Job) error

type JobRoutes map[string]map[string]JobFunc

type Job struct {
	Routes JobRoutes
}

var ErrUnknownJob = errors.New("invalid version or job name")

func New(cfg config.Config, srv *services.Services) *Job {
	v1group := "v1"

	v1Routes := map[string]JobFunc{}
	maps.Copy(v1Routes, v1reconciliation.Routes(srv.Scheduler))
	maps.Copy(v1Routes, v1checkRun.Routes(srv.CheckRun))

	jobRoutes := JobRoutes{
		v1group: v1Routes,
		// add other version routes
	}

	return &Job{jobRoutes}
}

// Start runs the job named by flag and returns its error, which is also logged.
func (j *Job) Start(ctx context.Context, flag flag.Job) (err error) {
	ctx = ctxdata.Sets(ctx, ctxdata.SetCorrelationId(idgenerator.New().Generate()))
	defer func() {
		log.LogJob(ctx, flag.JobName, flag.Version, flag.Date, err)
	}()

	fn, ok := j.Routes[flag.Version][flag.JobName]
	if !ok {
		return ErrUnknownJob
	}

	runningDate := common.Now()
	if flag.Date != "" {
		runningDate, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, flag.Date)
		if err != nil {
			return err
		}
	}

	return fn(ctx, runningDate, flag)
}
