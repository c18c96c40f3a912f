package bookdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/bookdata"
)

func titlesOf(t *testing.T, records bookdata.Records) []string {
	t.Helper()

	titles, missingAt := bookdata.Titles(records)
	require.Equal(t, -1, missingAt, "every record should have a title")

	return titles
}

func Test_JSONAdapter_AdaptsListOfRecordsInOrder(t *testing.T) {
	// act
	records, err := bookdata.NewJSONAdapter().AdaptData(`[{"title":"A"},{"title":"B"}]`)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titlesOf(t, records))
}

func Test_JSONAdapter_KeepsAdditionalFields(t *testing.T) {
	records, err := bookdata.NewJSONAdapter().AdaptData(`[{"title": "Clean Code", "author": "Robert C. Martin", "year": 2008, "available": true}]`)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Robert C. Martin", records[0]["author"])
	assert.Equal(t, "2008", records[0]["year"])
	assert.Equal(t, "true", records[0]["available"])
}

func Test_JSONAdapter_EmptyListYieldsNoRecords(t *testing.T) {
	records, err := bookdata.NewJSONAdapter().AdaptData(`[]`)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_JSONAdapter_MalformedInputFailsWithParseError(t *testing.T) {
	testCases := map[string]string{
		"not json":        `[{"title": "A"`,
		"object not list": `{"title": "A"}`,
		"null document":   `null`,
		"list of scalars": `["A", "B"]`,
		"null item":       `[null]`,
		"empty input":     ``,
		"null title":      `[{"title": null}]`,
	}

	for name, raw := range testCases {
		t.Run(name, func(t *testing.T) {
			// act
			records, err := bookdata.NewJSONAdapter().AdaptData(raw)

			// assert
			assert.ErrorIs(t, err, bookdata.ErrParse)
			assert.Nil(t, records)
		})
	}
}

func Test_CSVAdapter_AdaptsHeaderAndRowsInOrder(t *testing.T) {
	// act
	records, err := bookdata.NewCSVAdapter().AdaptData("title\nA\nB")

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titlesOf(t, records))
}

func Test_CSVAdapter_KeysRecordsByHeaderFields(t *testing.T) {
	records, err := bookdata.NewCSVAdapter().AdaptData("title,author\nRefactoring,Martin Fowler\n\"Design Patterns, 2nd ed\",GoF\n")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, bookdata.Record{"title": "Refactoring", "author": "Martin Fowler"}, records[0])
	assert.Equal(t, "Design Patterns, 2nd ed", records[1]["title"])
}

func Test_CSVAdapter_WithComma(t *testing.T) {
	records, err := bookdata.NewCSVAdapter(bookdata.WithComma(';')).AdaptData("title;author\nRefactoring;Martin Fowler")

	require.NoError(t, err)
	assert.Equal(t, "Martin Fowler", records[0]["author"])
}

func Test_CSVAdapter_IgnoresLeadingByteOrderMark(t *testing.T) {
	records, err := bookdata.NewCSVAdapter().AdaptData("\ufefftitle\nRefactoring\n")

	require.NoError(t, err)
	assert.Equal(t, []string{"Refactoring"}, titlesOf(t, records))
}

func Test_CSVAdapter_EmptyInputYieldsNoRecords(t *testing.T) {
	records, err := bookdata.NewCSVAdapter().AdaptData("")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_CSVAdapter_HeaderOnlyYieldsNoRecords(t *testing.T) {
	records, err := bookdata.NewCSVAdapter().AdaptData("title\n")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_CSVAdapter_InconsistentFieldCountFailsWithParseError(t *testing.T) {
	testCases := map[string]string{
		"too many fields": "title\nA,B",
		"too few fields":  "title,author\nA",
		"bare quote":      "title\n\"A",
	}

	for name, raw := range testCases {
		t.Run(name, func(t *testing.T) {
			records, err := bookdata.NewCSVAdapter().AdaptData(raw)

			assert.ErrorIs(t, err, bookdata.ErrParse)
			assert.Nil(t, records)
		})
	}
}

func Test_YAMLAdapter_AdaptsSequenceOfMappingsInOrder(t *testing.T) {
	// act
	records, err := bookdata.NewYAMLAdapter().AdaptData("- title: A\n- title: B\n  year: 1984\n")

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titlesOf(t, records))
	assert.Equal(t, "1984", records[1]["year"])
}

func Test_YAMLAdapter_MalformedInputFailsWithParseError(t *testing.T) {
	testCases := map[string]string{
		"not yaml":        "- title: [A",
		"mapping":         "title: A\n",
		"list of scalars": "- A\n- B\n",
		"nested value":    "- title:\n    - A\n",
		"empty input":     "",
		"two documents":   "- title: A\n---\n- title: B",
		"null title":      "- title: ~\n",
		"empty title":     "- title:\n",
	}

	for name, raw := range testCases {
		t.Run(name, func(t *testing.T) {
			records, err := bookdata.NewYAMLAdapter().AdaptData(raw)

			assert.ErrorIs(t, err, bookdata.ErrParse)
			assert.Nil(t, records)
		})
	}
}

func Test_Adapters_LeaveOutNullFields(t *testing.T) {
	testCases := map[string]struct {
		adapter bookdata.BookDataAdapter
		raw     string
	}{
		"json": {adapter: bookdata.NewJSONAdapter(), raw: `[{"title": "A", "author": null}]`},
		"yaml": {adapter: bookdata.NewYAMLAdapter(), raw: "- title: A\n  author: ~\n"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// act
			records, err := tc.adapter.AdaptData(tc.raw)

			// assert
			require.NoError(t, err)
			assert.Equal(t, bookdata.Records{{"title": "A"}}, records)
		})
	}
}

func Test_YAMLAdapter_QuotedTildeIsAString(t *testing.T) {
	records, err := bookdata.NewYAMLAdapter().AdaptData("- title: \"~\"\n")

	require.NoError(t, err)
	assert.Equal(t, []string{"~"}, titlesOf(t, records))
}

func Test_AdapterFor_ReturnsAdapterPerFormat(t *testing.T) {
	for _, format := range []string{"json", "YAML", "yml", "csv"} {
		adapter, err := bookdata.AdapterFor(format)

		require.NoError(t, err, format)
		records, err := adapter.AdaptData(sampleFor(adapter.Format()))
		require.NoError(t, err, format)
		assert.Equal(t, []string{"A", "B"}, titlesOf(t, records))
	}
}

func Test_AdapterFor_UnknownFormat(t *testing.T) {
	_, err := bookdata.AdapterFor("xml")

	assert.ErrorIs(t, err, bookdata.ErrUnsupportedFormat)
}

func Test_Titles_ReportsFirstRecordWithoutTitle(t *testing.T) {
	titles, missingAt := bookdata.Titles(bookdata.Records{{"title": "A"}, {"name": "B"}, {}})

	assert.Nil(t, titles)
	assert.Equal(t, 1, missingAt)
}

func sampleFor(format string) string {
	switch format {
	case bookdata.FormatJSON:
		return `[{"title":"A"},{"title":"B"}]`
	case bookdata.FormatYAML:
		return "- title: A\n- title: B\n"
	default:
		return "title\nA\nB"
	}
}
