package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casework/internal/custody/models"
	"casework/internal/custody/resolver"
	"casework/internal/custody/store/memory"
	id "casework/pkg/domain"
	"casework/pkg/testutil"
)

func reasonOf(t *testing.T, err error) models.Reason {
	t.Helper()
	reason, ok := models.ReasonOf(err)
	require.True(t, ok, "expected tagged failure, got %v", err)
	return reason
}

func TestMostLikely(t *testing.T) {
	const noms = id.NOMSNumber("G1234AB")

	testutil.Given(t, "no candidates", func(t *testing.T) {
		_, err := resolver.MostLikely(noms, nil)
		assert.Equal(t, models.ReasonOffenderNotFound, reasonOf(t, err))
	})

	testutil.Given(t, "only soft-deleted candidates", func(t *testing.T) {
		_, err := resolver.MostLikely(noms, []*models.Case{{ID: 1, SoftDeleted: true}, {ID: 2, SoftDeleted: true}})
		assert.Equal(t, models.ReasonOffenderNotFound, reasonOf(t, err))
	})

	testutil.Given(t, "one live and one soft-deleted candidate", func(t *testing.T) {
		c, err := resolver.MostLikely(noms, []*models.Case{{ID: 1, SoftDeleted: true}, {ID: 2}})
		require.NoError(t, err)
		testutil.Then(t, "the live record wins even without a current disposal", func(t *testing.T) {
			assert.Equal(t, id.CaseID(2), c.ID)
		})
	})

	testutil.Given(t, "two live candidates with one current", func(t *testing.T) {
		c, err := resolver.MostLikely(noms, []*models.Case{{ID: 1}, {ID: 2, CurrentDisposal: true}})
		require.NoError(t, err)
		assert.Equal(t, id.CaseID(2), c.ID)
	})

	testutil.Given(t, "two equally current candidates", func(t *testing.T) {
		_, err := resolver.MostLikely(noms, []*models.Case{{ID: 1, CurrentDisposal: true}, {ID: 2, CurrentDisposal: true}, {ID: 3, SoftDeleted: true}})
		assert.Equal(t, models.ReasonMultipleOffendersFound, reasonOf(t, err))
		assert.Contains(t, err.Error(), "found 2 offenders")
	})

	testutil.Given(t, "two candidates neither current", func(t *testing.T) {
		_, err := resolver.MostLikely(noms, []*models.Case{{ID: 1}, {ID: 2}})
		assert.Equal(t, models.ReasonMultipleOffendersFound, reasonOf(t, err))
	})
}

func TestResolver(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	st.PutCase(&models.Case{ID: 1, CRN: "X000001", NOMSNumber: "G0000AA", CurrentDisposal: true})
	st.PutCase(&models.Case{ID: 2, CRN: "X000002", NOMSNumber: "G1111BB", CurrentDisposal: true})
	st.PutCase(&models.Case{ID: 3, CRN: "X000003", NOMSNumber: "G1111BB", SoftDeleted: true})
	r := resolver.New(st)

	t.Run("by CRN", func(t *testing.T) {
		c, err := r.ByCRN(ctx, "X000002")
		require.NoError(t, err)
		assert.Equal(t, id.CaseID(2), c.ID)

		_, err = r.ByCRN(ctx, "X999999")
		assert.Equal(t, models.ReasonOffenderNotFound, reasonOf(t, err))
	})

	t.Run("by id", func(t *testing.T) {
		_, err := r.ByID(ctx, 42)
		assert.Equal(t, models.ReasonOffenderNotFound, reasonOf(t, err))
	})

	t.Run("most likely applies tie-break", func(t *testing.T) {
		c, err := r.MostLikelyByNOMSNumber(ctx, "G1111BB")
		require.NoError(t, err)
		assert.Equal(t, id.CaseID(2), c.ID)
	})

	t.Run("single match reports duplicates without tie-break", func(t *testing.T) {
		_, err := r.SingleByNOMSNumber(ctx, "G1111BB")
		assert.Equal(t, models.ReasonMultipleOffendersFound, reasonOf(t, err))
		assert.Contains(t, err.Error(), "found 2 offenders")

		c, err := r.SingleByNOMSNumber(ctx, "G0000AA")
		require.NoError(t, err)
		assert.Equal(t, id.CaseID(1), c.ID)

		_, err = r.SingleByNOMSNumber(ctx, "G2222CC")
		assert.Equal(t, models.ReasonOffenderNotFound, reasonOf(t, err))
	})
}
