package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxshaw/qsql/qb"
)

func TestTime(t *testing.T) {
	ts := Time(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	assert.Equal(t, "2024-01-02 03:04:05", ts.String())
	assert.Equal(t, "'2024-01-02 03:04:05'", qb.Escape(ts))
	assert.Equal(t, "NULL", qb.Escape(Time{}))

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-02 03:04:05"`, string(b))

	var back Time
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, time.Time(ts).Equal(time.Time(back)))

	require.NoError(t, json.Unmarshal([]byte("null"), &back))
	assert.True(t, back.IsZero())
}

func TestJSON(t *testing.T) {
	j := NewJSON(map[string]any{"name": "O'Brien"})
	require.True(t, j.Valid())
	assert.Equal(t, "O'Brien", (*j.Get())["name"])
	assert.Equal(t, `'{"name":"O\'Brien"}'`, qb.Escape(j))

	var empty JSON[[]int]
	assert.False(t, empty.Valid())
	assert.Equal(t, "NULL", qb.Escape(empty))
	assert.Equal(t, "NULL", qb.Escape(&empty))

	var nilPtr *JSON[int]
	assert.Equal(t, "NULL", qb.Escape(nilPtr))
}

func TestJSONScan(t *testing.T) {
	var j JSON[[]int]
	require.NoError(t, j.Scan([]byte("[1,2]")))
	assert.Equal(t, []int{1, 2}, *j.Get())

	require.NoError(t, j.Scan("[3]"))
	assert.Equal(t, []int{3}, *j.Get())

	require.NoError(t, j.Scan(nil))
	assert.False(t, j.Valid())

	require.Error(t, j.Scan([]byte("{")))
	assert.False(t, j.Valid())

	b, err := json.Marshal(j)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
