package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.January, 5)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-05"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-05"`), &parsed))
	assert.True(t, parsed.Equal(d.Time))
}

func TestDateJSONRejectsBadFormat(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"05/01/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"2024-1-5"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240105`), &d))
}

func TestDateJSONNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.March, 9, 13, 45, 0, 0, time.FixedZone("X", 3600))))
	assert.Equal(t, "2024-03-09", d.String())

	require.NoError(t, d.Scan("2023-12-31"))
	assert.Equal(t, "2023-12-31", d.String())

	assert.Error(t, d.Scan(42))
}
