package queries_test

import (
	"testing"

	"saleweight/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
)

func TestNewGetLineWeightQuery_Valid(t *testing.T) {
	line := queries.LineInput{Quantity: dec("2"), Unit: "u"}

	query := queries.NewGetLineWeightQuery(line, " kg ")

	assert.NoError(t, query.Validate())
	assert.Equal(t, "kg", query.WeightUnit())
	assert.Equal(t, "u", query.Line().Unit)
	assert.True(t, query.Line().Quantity.Equal(dec("2")))
}

func TestGetLineWeightQuery_NotConstructedViaConstructor(t *testing.T) {
	var query queries.GetLineWeightQuery

	assert.ErrorIs(t, query.Validate(), queries.ErrGetLineWeightQueryIsNotConstructed)
}
