// Package resolver turns external identifiers into a single case record or a
// tagged failure explaining why it cannot.
package resolver

import (
	"context"
	"errors"

	"casework/internal/custody/models"
	id "casework/pkg/domain"
	dErrors "casework/pkg/domain-errors"
	"casework/pkg/platform/sentinel"
)

// CaseFinder is the read side of the case store used by resolution.
type CaseFinder interface {
	FindByID(ctx context.Context, caseID id.CaseID) (*models.Case, error)
	FindByCRN(ctx context.Context, crn id.CRN) (*models.Case, error)
	FindAllByNOMSNumber(ctx context.Context, noms id.NOMSNumber) ([]*models.Case, error)
}

// Resolver performs identifier lookups. It has no side effects.
type Resolver struct {
	cases CaseFinder
}

func New(cases CaseFinder) *Resolver {
	return &Resolver{cases: cases}
}

// ByID resolves a case by its internal id.
func (r *Resolver) ByID(ctx context.Context, caseID id.CaseID) (*models.Case, error) {
	c, err := r.cases.FindByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, models.Failf(models.ReasonOffenderNotFound, "offender with id %s not found", caseID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load case")
	}
	return c, nil
}

// ByCRN resolves a case by CRN, which is unique.
func (r *Resolver) ByCRN(ctx context.Context, crn id.CRN) (*models.Case, error) {
	c, err := r.cases.FindByCRN(ctx, crn)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, models.Failf(models.ReasonOffenderNotFound, "offender with crn %s not found", crn)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load case")
	}
	return c, nil
}

// MostLikelyByNOMSNumber applies the MostLikely tie-break to every case
// carrying the NOMS number.
func (r *Resolver) MostLikelyByNOMSNumber(ctx context.Context, noms id.NOMSNumber) (*models.Case, error) {
	candidates, err := r.cases.FindAllByNOMSNumber(ctx, noms)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load cases")
	}
	return MostLikely(noms, candidates)
}

// SingleByNOMSNumber requires exactly one record for the NOMS number.
func (r *Resolver) SingleByNOMSNumber(ctx context.Context, noms id.NOMSNumber) (*models.Case, error) {
	candidates, err := r.cases.FindAllByNOMSNumber(ctx, noms)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load cases")
	}
	switch len(candidates) {
	case 0:
		return nil, notFound(noms)
	case 1:
		return candidates[0], nil
	default:
		return nil, multiple(noms, len(candidates))
	}
}

// MostLikely picks the one record that should be treated as the case for a
// NOMS number:
//
//  1. soft-deleted records are discarded;
//  2. a single survivor wins;
//  3. otherwise only records with a current disposal are kept, and a single
//     one of those wins.
//
// Anything left ambiguous is MultipleOffendersFound carrying the number of
// non-deleted candidates.
func MostLikely(noms id.NOMSNumber, candidates []*models.Case) (*models.Case, error) {
	live := make([]*models.Case, 0, len(candidates))
	for _, c := range candidates {
		if c != nil && !c.SoftDeleted {
			live = append(live, c)
		}
	}
	switch len(live) {
	case 0:
		return nil, notFound(noms)
	case 1:
		return live[0], nil
	}

	var current []*models.Case
	for _, c := range live {
		if c.CurrentDisposal {
			current = append(current, c)
		}
	}
	if len(current) == 1 {
		return current[0], nil
	}
	return nil, multiple(noms, len(live))
}

func notFound(noms id.NOMSNumber) error {
	return models.Failf(models.ReasonOffenderNotFound, "offender with nomsNumber %s not found", noms)
}

func multiple(noms id.NOMSNumber, count int) error {
	return models.Failf(models.ReasonMultipleOffendersFound, "found %d offenders with nomsNumber %s", count, noms)
}
