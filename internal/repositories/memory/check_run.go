package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/models"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type checkRunRepository struct {
	r *Repository
}

var _ repositories.CheckRunRepository = (*checkRunRepository)(nil)

func copyCheckRun(en models.CheckRun) models.CheckRun {
	en.Items = slices.Clone(en.Items)
	for i := range en.Items {
		en.Items[i].PayableIDs = slices.Clone(en.Items[i].PayableIDs)
	}
	return en
}

func (crr *checkRunRepository) Create(ctx context.Context, en *models.CheckRun) error {
	defer crr.r.write(ctx)()

	for _, run := range crr.r.data.checkRuns {
		if run.TrustAccountID != en.TrustAccountID {
			continue
		}
		for _, stored := range run.Items {
			for _, it := range en.Items {
				if stored.CheckNumber == it.CheckNumber {
					return fmt.Errorf("%w: check number %d already issued", common.ErrConcurrentModification, it.CheckNumber)
				}
			}
		}
	}

	en.CreatedAt = crr.r.now()
	for i := range en.Items {
		en.Items[i].CheckRunID = en.ID
	}
	crr.r.data.checkRuns[en.ID] = copyCheckRun(*en)

	return nil
}

func (crr *checkRunRepository) GetByID(ctx context.Context, id string) (*models.CheckRun, error) {
	defer crr.r.read(ctx)()

	en, ok := crr.r.data.checkRuns[id]
	if !ok {
		return nil, common.ErrCheckRunNotFound
	}
	cp := copyCheckRun(en)
	sort.Slice(cp.Items, func(i, j int) bool { return cp.Items[i].CheckNumber < cp.Items[j].CheckNumber })

	return &cp, nil
}

type checkSequenceRepository struct {
	r *Repository
}

var _ repositories.CheckSequenceRepository = (*checkSequenceRepository)(nil)

func (csr *checkSequenceRepository) Create(ctx context.Context, trustAccountID string, firstCheckNumber int64) error {
	defer csr.r.write(ctx)()

	if _, ok := csr.r.data.checkSequences[trustAccountID]; ok {
		return fmt.Errorf("%w: check sequence for %s already exists", common.ErrValidation, trustAccountID)
	}
	csr.r.data.checkSequences[trustAccountID] = firstCheckNumber

	return nil
}

func (csr *checkSequenceRepository) Allocate(ctx context.Context, trustAccountID string, count int) (int64, error) {
	defer csr.r.write(ctx)()

	if count <= 0 {
		return 0, fmt.Errorf("%w: check count must be positive", common.ErrValidation)
	}

	first, ok := csr.r.data.checkSequences[trustAccountID]
	if !ok {
		return 0, common.ErrCheckSequenceAbsent
	}
	csr.r.data.checkSequences[trustAccountID] = first + int64(count)

	return first, nil
}
