package tabular

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLog_WithHeader(t *testing.T) {
	in := "date,day,exercise,setNumber,weight,reps,rpe,note\n" +
		"2024-01-01,A,Bench,1,50,10,8,\n" +
		"2024-01-01,A,Bench,2,50,9,8.5,felt heavy\n"

	res, err := ReadLog(strings.NewReader(in))
	require.NoError(t, err)
	require.Empty(t, res.Skipped)
	require.Len(t, res.Records, 2)

	r := res.Records[1]
	assert.True(t, r.Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, domain.DayA, r.Day)
	assert.Equal(t, "Bench", r.Exercise)
	assert.Equal(t, 2, r.SetNumber)
	assert.True(t, r.Weight.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 9, r.Reps)
	assert.Equal(t, 8.5, r.RPE)
	assert.Equal(t, "felt heavy", r.Note)
}

func TestReadLog_WithoutHeader(t *testing.T) {
	res, err := ReadLog(strings.NewReader("2024-01-01,b,Row,1,60,12,9,\n"))
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, domain.DayB, res.Records[0].Day)
}

func TestReadLog_LegacyHeaderNamesAndOrder(t *testing.T) {
	in := "date,tag,exercise,set,weight,reps,rpe,note\n" +
		"2024-01-01,A,Bench,3,52.5,8,9.5,x\n"

	res, err := ReadLog(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 3, res.Records[0].SetNumber)
	assert.Equal(t, "52.5", res.Records[0].Weight.String())

	reordered := "exercise,date,day,reps\nBench,2024-01-02,A,7\n"
	res, err = ReadLog(strings.NewReader(reordered))
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 7, res.Records[0].Reps)
	assert.True(t, res.Records[0].Weight.IsZero())
}

func TestReadLog_MissingOptionalFieldsDefault(t *testing.T) {
	res, err := ReadLog(strings.NewReader("2024-01-01,A,Bench\n2024-01-01,A,Bench,2.0,,,,\n"))
	require.NoError(t, err)
	require.Empty(t, res.Skipped)
	require.Len(t, res.Records, 2)

	short := res.Records[0]
	assert.Equal(t, 0, short.SetNumber)
	assert.True(t, short.Weight.IsZero())
	assert.Equal(t, 0, short.Reps)
	assert.Equal(t, 0.0, short.RPE)
	assert.Empty(t, short.Note)

	assert.Equal(t, 2, res.Records[1].SetNumber)
}

func TestReadLog_BadRowsSkipped(t *testing.T) {
	in := "date,day,exercise,setNumber,weight,reps,rpe,note\n" +
		"not-a-date,A,Bench,1,50,10,8,\n" +
		"2024-01-01,C,Bench,1,50,10,8,\n" +
		"2024-01-01,A,,1,50,10,8,\n" +
		"2024-01-01,A,Bench,1,fifty,10,8,\n" +
		"\n" +
		"2024-01-01,A,Bench,1,50,10,8,\n"

	res, err := ReadLog(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
	require.Len(t, res.Skipped, 4)
	assert.Equal(t, 2, res.Skipped[0].Row)
	assert.Contains(t, res.Skipped[3].Error(), "weight")
}

func TestWriteLog_ReadBack(t *testing.T) {
	records := []domain.SetRecord{
		{
			Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Day: domain.DayB, Exercise: "Face Pull, cable",
			SetNumber: 1, Weight: decimal.RequireFromString("12.5"), Reps: 15, RPE: 7.5, Note: `said "easy"`,
		},
		{
			Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Day: domain.DayB, Exercise: "Face Pull, cable",
			SetNumber: 2, Weight: decimal.RequireFromString("12.5"), Reps: 14,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLog(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,day,exercise,setNumber,weight,reps,rpe,note", lines[0])
	assert.Equal(t, `2024-03-05,B,"Face Pull, cable",2,12.5,14,,`, lines[2])

	res, err := ReadLog(&buf)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, records[0].Note, res.Records[0].Note)
	assert.Equal(t, records[0].Exercise, res.Records[0].Exercise)
}
