package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/amountwords"
	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	"github.com/trustbooks/go-trust-ledger/internal/common/idgenerator"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type CheckRunService interface {
	// Create pays every listed payable in one unit of work: either all instruments are issued and
	// posted, or nothing is and no check number is consumed.
	Create(ctx context.Context, in models.CreateCheckRunIn) (out *models.CheckRun, err error)
	GetByID(ctx context.Context, id string) (out *models.CheckRun, err error)
	// Export writes the print data of a run as CSV to object storage and returns its URL.
	Export(ctx context.Context, id string) (url string, err error)
}

type checkRun service

var _ CheckRunService = (*checkRun)(nil)

// instrument is one check before its number is allocated.
type instrument struct {
	vendorID       string
	payeeName      string
	clientLedgerID string
	amount         models.Decimal
	bills          []*models.VendorBill
}

func (cs *checkRun) Create(ctx context.Context, in models.CreateCheckRunIn) (out *models.CheckRun, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if len(in.PayableIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one payable is required", common.ErrValidation)
	}

	var posted []*models.Transaction
	err = cs.srv.sqlRepo.Atomic(ctx, func(actx context.Context, r repositories.SQLRepository) error {
		posted = nil

		account, err := r.GetTrustAccountRepository().GetByIDForUpdate(actx, in.TrustAccountID)
		if err != nil {
			return err
		}
		if !account.IsActive {
			return common.ErrTrustAccountInactive
		}

		bills, err := cs.lockPayables(actx, r, account.ID, in.PayableIDs)
		if err != nil {
			return err
		}

		instruments := groupInstruments(bills, in.ConsolidateByPayee)

		first, err := r.GetCheckSequenceRepository().Allocate(actx, account.ID, len(instruments))
		if err != nil {
			return err
		}

		run := &models.CheckRun{
			ID:                 cs.srv.idgenerator.Generate(idgenerator.PrefixCheckRun),
			TrustAccountID:     account.ID,
			ConsolidateByPayee: in.ConsolidateByPayee,
			CheckCount:         len(instruments),
			FirstCheckNumber:   first,
			LastCheckNumber:    first + int64(len(instruments)) - 1,
			Status:             models.CheckRunStatusIssued,
		}

		amounts := make([]models.Decimal, 0, len(instruments))
		for i, inst := range instruments {
			checkNumber := first + int64(i)
			payableIDs := inst.payableIDs()

			trx, err := cs.srv.Transaction.post(actx, r, models.PostTransactionIn{
				TrustAccountID: account.ID,
				ClientLedgerID: inst.clientLedgerID,
				Kind:           models.TransactionKindDisbursement,
				Amount:         inst.amount,
				Description:    fmt.Sprintf("Check %d to %s", checkNumber, inst.payeeName),
				Reference:      strconv.FormatInt(checkNumber, 10),
				Metadata: map[string]string{
					"checkRunId":  run.ID,
					"checkNumber": strconv.FormatInt(checkNumber, 10),
					"payableIds":  strings.Join(payableIDs, ","),
				},
			})
			if err != nil {
				return fmt.Errorf("check %d: %w", checkNumber, err)
			}
			posted = append(posted, trx)

			run.Items = append(run.Items, models.CheckRunItem{
				ID:             cs.srv.idgenerator.Generate(idgenerator.PrefixCheckRunItem),
				CheckNumber:    checkNumber,
				VendorID:       inst.vendorID,
				PayeeName:      inst.payeeName,
				ClientLedgerID: trx.ClientLedgerID,
				Amount:         inst.amount,
				AmountInWords:  amountInWords(inst.amount, account.Currency),
				Memo:           inst.memo(),
				PayableIDs:     payableIDs,
				TransactionID:  trx.ID,
			})
			amounts = append(amounts, inst.amount)
		}
		run.TotalAmount = models.SumDecimals(amounts...)

		if err = r.GetCheckRunRepository().Create(actx, run); err != nil {
			return err
		}

		now := common.Now()
		billRepo := r.GetVendorBillRepository()
		for _, bill := range bills {
			bill.MarkPaid(run.ID, now)
			if err = billRepo.Update(actx, bill); err != nil {
				return err
			}
		}

		out = run
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(ctx, constants.LogPrefixCheckRun,
		log.String("status", "check run issued"),
		log.String("checkRunId", out.ID),
		log.String("trustAccountId", out.TrustAccountID),
		log.Int("checkCount", out.CheckCount),
		log.Int64("firstCheckNumber", out.FirstCheckNumber),
		log.Int64("lastCheckNumber", out.LastCheckNumber))

	ledgerMetrics := cs.srv.metrics.GetLedgerPrometheus()
	events := make([]models.LedgerEvent, 0, len(posted)+1)
	for _, trx := range posted {
		ledgerMetrics.RecordPosting(trx.Kind.String(), trx.Amount.Decimal)
		events = append(events, newEvent(cs.srv, models.EventTransactionPosted, trx.TrustAccountID, trx.ID, trx.ToModelResponse()))
	}
	for _, it := range out.Items {
		ledgerMetrics.RecordCheckInstrument(it.Amount.Decimal)
	}
	events = append(events, newEvent(cs.srv, models.EventCheckRunCreated, out.TrustAccountID, out.ID, out.ToModelResponse()))
	publishEvents(ctx, cs.srv, events...)

	return out, nil
}

// lockPayables locks the requested bills in id order and checks them. The checks run in a fixed
// order so a repeated run always reports AlreadyPaid first.
func (cs *checkRun) lockPayables(ctx context.Context, r repositories.SQLRepository, trustAccountID string, ids []string) ([]*models.VendorBill, error) {
	locked, err := r.GetVendorBillRepository().GetByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.VendorBill, len(locked))
	for i := range locked {
		byID[locked[i].ID] = &locked[i]
	}

	for _, id := range ids {
		if bill, ok := byID[id]; ok && bill.Status == models.VendorBillStatusPaid {
			return nil, fmt.Errorf("%w: %s", common.ErrAlreadyPaid, id)
		}
	}

	for _, id := range ids {
		bill, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s does not exist", common.ErrPayableNotEligible, id)
		}
		if err = bill.CheckEligible(trustAccountID); err != nil {
			return nil, fmt.Errorf("%w: %s", err, id)
		}
	}

	seen := make(map[string]struct{}, len(ids))
	bills := make([]*models.VendorBill, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s", common.ErrDuplicatePayable, id)
		}
		seen[id] = struct{}{}
		bills = append(bills, byID[id])
	}

	return bills, nil
}

// groupInstruments keeps the order payables were requested in. Consolidation merges bills of one
// vendor drawn from the same client ledger into a single check.
func groupInstruments(bills []*models.VendorBill, consolidate bool) []*instrument {
	type key struct {
		vendorID       string
		clientLedgerID string
	}

	var (
		instruments []*instrument
		byKey       = make(map[key]*instrument)
	)
	for _, bill := range bills {
		k := key{vendorID: bill.VendorID, clientLedgerID: bill.ClientLedgerID}
		if consolidate {
			if inst, ok := byKey[k]; ok {
				inst.amount = inst.amount.Add(bill.BalanceDue)
				inst.bills = append(inst.bills, bill)
				continue
			}
		}

		inst := &instrument{
			vendorID:       bill.VendorID,
			payeeName:      bill.PayeeName,
			clientLedgerID: bill.ClientLedgerID,
			amount:         bill.BalanceDue,
			bills:          []*models.VendorBill{bill},
		}
		byKey[k] = inst
		instruments = append(instruments, inst)
	}

	return instruments
}

func (i instrument) payableIDs() []string {
	ids := make([]string, 0, len(i.bills))
	for _, b := range i.bills {
		ids = append(ids, b.ID)
	}
	return ids
}

func (i instrument) memo() string {
	refs := make([]string, 0, len(i.bills))
	for _, b := range i.bills {
		if b.Reference != "" {
			refs = append(refs, b.Reference)
		}
	}
	return strings.Join(refs, ", ")
}

func amountInWords(amount models.Decimal, currency string) string {
	return amountwords.ForCurrency(amount.Decimal, currency)
}

func (cs *checkRun) GetByID(ctx context.Context, id string) (out *models.CheckRun, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return cs.srv.sqlRepo.GetCheckRunRepository().GetByID(ctx, id)
}

func (cs *checkRun) Export(ctx context.Context, id string) (url string, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	run, err := cs.srv.sqlRepo.GetCheckRunRepository().GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	payload := models.NewCheckRunExportPayload(cs.srv.conf.CloudStorageConfig.CheckRunExportPrefix, *run)

	// a check run is immutable once created, an earlier export is still valid
	if exist, existingURL := cs.srv.cloudStorage.IsObjectExist(ctx, &payload); exist {
		return existingURL, nil
	}

	rows, err := checkRunExportRows(*run)
	if err != nil {
		return "", err
	}

	chanData := make(chan []byte)
	result := cs.srv.cloudStorage.WriteStream(ctx, &payload, constants.CheckRunExportContentType, chanData)
	go func() {
		defer close(chanData)
		for _, row := range rows {
			chanData <- row
		}
	}()

	url, err = result.Wait()
	if err != nil {
		return "", fmt.Errorf("failed to upload check run export: %w", err)
	}

	log.Info(ctx, constants.LogPrefixCheckRun,
		log.String("status", "check run exported"),
		log.String("checkRunId", run.ID),
		log.String("url", url))

	return url, nil
}

// checkRunExportRows renders the header and one line per instrument, each as its own CSV chunk.
func checkRunExportRows(run models.CheckRun) ([][]byte, error) {
	records := [][]string{models.CheckRunExportHeader}
	for _, it := range run.Items {
		records = append(records, []string{
			strconv.FormatInt(it.CheckNumber, 10),
			it.PayeeName,
			it.VendorID,
			it.Amount.StringFixed(models.MinorUnitPlaces),
			it.AmountInWords,
			it.Memo,
			strings.Join(it.PayableIDs, ";"),
			it.TransactionID,
		})
	}

	rows := make([][]byte, 0, len(records))
	for _, rec := range records {
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write(rec); err != nil {
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		rows = append(rows, buf.Bytes())
	}

	return rows, nil
}
