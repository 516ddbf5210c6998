package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckHeaderAcceptsCanonicalOrder(t *testing.T) {
	header := []string{"isbn", "title", "author", "description", "price", "stock", "language", "category"}
	assert.NoError(t, checkHeader(header))
}

func TestCheckHeaderIsCaseInsensitive(t *testing.T) {
	header := []string{"ISBN", "Title", "Author", "Description", "Price", "Stock", "Language", "Category"}
	assert.NoError(t, checkHeader(header))
}

func TestCheckHeaderRejectsMissingColumns(t *testing.T) {
	assert.Error(t, checkHeader([]string{"isbn", "title"}))
}

func TestCheckHeaderRejectsWrongOrder(t *testing.T) {
	header := []string{"title", "isbn", "author", "description", "price", "stock", "language", "category"}
	assert.Error(t, checkHeader(header))
}

func TestParseImportRow(t *testing.T) {
	row := []string{"978-0441569595", "Neuromancer", "William Gibson", "Cyberpunk classic", "12.50", "4", "English", "Fiction"}

	req, err := parseImportRow(row)
	require.NoError(t, err)

	assert.Equal(t, "Neuromancer", req.Title)
	assert.Equal(t, "William Gibson", req.Author)
	require.NotNil(t, req.ISBN)
	assert.Equal(t, "978-0441569595", *req.ISBN)
	assert.Equal(t, 4, req.Stock)
	assert.True(t, req.Price.Equal(req.Price.Truncate(2)))
	assert.NoError(t, req.Validate())
}

func TestParseImportRowEmptyISBN(t *testing.T) {
	row := []string{"", "Neuromancer", "William Gibson", "", "12.50", "4", "English", "Fiction"}

	req, err := parseImportRow(row)
	require.NoError(t, err)
	assert.Nil(t, req.ISBN)
}

func TestParseImportRowBadPrice(t *testing.T) {
	row := []string{"", "Neuromancer", "William Gibson", "", "cheap", "4", "English", "Fiction"}

	_, err := parseImportRow(row)
	assert.Error(t, err)
}

func TestParseImportRowBadStock(t *testing.T) {
	row := []string{"", "Neuromancer", "William Gibson", "", "12.50", "-3", "English", "Fiction"}

	_, err := parseImportRow(row)
	assert.Error(t, err)
}

func TestParseImportRowShortRowDefaults(t *testing.T) {
	// trailing empty cells are dropped by the sheet reader
	row := []string{"", "Neuromancer", "William Gibson", "", "12.50"}

	req, err := parseImportRow(row)
	require.NoError(t, err)
	assert.Equal(t, 0, req.Stock)
	assert.Empty(t, req.Language)
}
