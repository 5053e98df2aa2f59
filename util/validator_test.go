package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type rateParams struct {
	Value int `validate:"votevalue"`
}

func TestVoteValueValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(rateParams{Value: 1}))
	assert.NoError(t, ValidateStruct(rateParams{Value: -1}))
	assert.Error(t, ValidateStruct(rateParams{Value: 0}))
	assert.Error(t, ValidateStruct(rateParams{Value: 2}))
}

type poemParams struct {
	Text string `validate:"poemtext"`
}

func TestPoemTextValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(poemParams{Text: "a short verse"}))
	assert.Error(t, ValidateStruct(poemParams{Text: ""}))
}
