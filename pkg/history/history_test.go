package history

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/phone.go/pkg/number"
)

func TestLogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dial.cbor")
	at := time.Date(2024, 3, 1, 12, 30, 0, 500, time.UTC)

	l, err := Open(path)
	require.NoError(t, err)
	require.True(t, l.Enabled())
	dialed := NewRecord(at, KindDialed, "555-123-4567").WithNumber(number.New(555, 123, 4567))
	rejected := NewRecord(at.Add(time.Second), KindRejected, "12")
	require.NoError(t, l.Append(dialed))
	require.NoError(t, l.Append(rejected))
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
	require.Error(t, l.Append(rejected))

	// reopening appends
	l, err = Open(path)
	require.NoError(t, err)
	relayed := NewRecord(at.Add(2*time.Second), KindRelayed, "7")
	require.NoError(t, l.Append(relayed))
	require.NoError(t, l.Close())

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, want := range []Record{dialed, rejected, relayed} {
		got := records[i]
		require.Equal(t, want.ID, got.ID)
		require.True(t, want.Time.Equal(got.Time), "%v != %v", want.Time, got.Time)
		require.Equal(t, want.Kind, got.Kind)
		require.Equal(t, want.Text, got.Text)
		require.Equal(t, want.Number, got.Number)
	}
}

func TestDisabledLog(t *testing.T) {
	l, err := Open("")
	require.NoError(t, err)
	require.False(t, l.Enabled())
	require.NoError(t, l.Append(NewRecord(time.Now(), KindDialed, "1")))
	require.NoError(t, l.Close())

	var nilLog *Log
	require.NoError(t, nilLog.Append(Record{}))
}

func TestReadAllGarbage(t *testing.T) {
	records, err := ReadAll(bytes.NewReader([]byte{0xff, 0x00}))
	require.Error(t, err)
	require.Empty(t, records)

	records, err = ReadAll(bytes.NewReader(nil))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestRecordString(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	rec := NewRecord(at, KindDialed, "5551234567").WithNumber(number.New(555, 123, 4567))
	require.Contains(t, rec.String(), "dialed")
	require.Contains(t, rec.String(), "555-123-4567")
	require.Equal(t, "Kind(9)", Kind(9).String())
}
