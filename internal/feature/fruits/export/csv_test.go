package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chusu_backend/internal/feature/fruits/domain/entity"
)

func exportFixture() []entity.Fruit {
	followUp := time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)
	return []entity.Fruit{
		{
			ID:           1,
			UserID:       1,
			Name:         "Rakoto",
			Memo:         "met at church",
			Prayer:       "daily",
			ContactDate:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local),
			Category:     entity.CategoryEvent,
			FollowUpDate: &followUp,
			Outcome:      entity.OutcomePositive,
			CreatedAt:    time.Date(2024, 5, 1, 10, 30, 0, 0, time.Local),
			UpdatedAt:    time.Date(2024, 5, 2, 10, 30, 0, 0, time.Local),
		},
		{
			ID:          2,
			UserID:      1,
			Name:        "Hanta, \"the singer\"",
			Memo:        "line1\nline2",
			ContactDate: time.Date(2024, 5, 3, 0, 0, 0, 0, time.Local),
			Category:    entity.CategoryOther,
			CreatedAt:   time.Date(2024, 5, 3, 9, 0, 0, 0, time.Local),
			UpdatedAt:   time.Date(2024, 5, 3, 9, 0, 0, 0, time.Local),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportFixture()))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err, "output must round-trip through a CSV reader")
	require.Len(t, records, 3, "header plus one row per record")

	assert.Equal(t, csvHeader, records[0])

	first := records[1]
	assert.Equal(t, "Rakoto", first[0])
	assert.Equal(t, "2024-05-01", first[3], "dates use the short layout")
	assert.Equal(t, "2024-05-10", first[5])
	assert.Equal(t, "positive", first[7])
	assert.Equal(t, "2024-05-01T10:30:00", first[9][:19], "timestamps use RFC3339")

	second := records[2]
	assert.Equal(t, `Hanta, "the singer"`, second[0], "quoting survives the round trip")
	assert.Equal(t, "line1\nline2", second[1])
	assert.Empty(t, second[5], "absent optional dates are empty cells")
	assert.Empty(t, second[7])
}

func TestWriteCSV_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
	assert.Equal(t, csvHeader, records[0])
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, exportFixture()))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must start with the PDF magic")
	assert.Greater(t, len(out), 500, "document with records must not be trivially small")
}

func TestWritePDF_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, nil))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
