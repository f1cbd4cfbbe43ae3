package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateScan(t *testing.T) {
	want := NewDate(2030, time.January, 1)

	var fromText Date
	require.NoError(t, fromText.Scan("2030-01-01"))
	assert.Equal(t, want, fromText)

	var fromBytes Date
	require.NoError(t, fromBytes.Scan([]byte("2030-01-01T00:00:00Z")))
	assert.Equal(t, want, fromBytes)

	var fromTime Date
	require.NoError(t, fromTime.Scan(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, want, fromTime)

	var bad Date
	assert.Error(t, bad.Scan("01/01/2030"))
	assert.Error(t, bad.Scan(42))
}

func TestDateValueAndJSON(t *testing.T) {
	d := NewDate(2030, time.February, 3)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2030-02-03", v)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2030-02-03"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}

func TestDateAddDays(t *testing.T) {
	assert.Equal(t, NewDate(2030, time.January, 2), NewDate(2029, time.December, 31).AddDays(2))
	assert.Equal(t, NewDate(2028, time.February, 29), NewDate(2028, time.March, 1).AddDays(-1))
}
