package candidate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalString(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`{"id":"20261014101500123456","name":"Alice"}`), &r)
	require.NoError(t, err)
	require.Equal(t, ID("20261014101500123456"), r.ID)
}

func TestID_UnmarshalNumber(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`{"id":42,"name":"Alice"}`), &r)
	require.NoError(t, err)
	require.Equal(t, ID("42"), r.ID)
}

func TestID_UnmarshalLargeNumberKeepsDigits(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`{"id":20261014101500123456}`), &r)
	require.NoError(t, err)
	require.Equal(t, "20261014101500123456", r.ID.String())
}

func TestID_UnmarshalNull(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`{"id":null}`), &r)
	require.NoError(t, err)
	require.Empty(t, r.ID)
}

func TestID_UnmarshalInvalid(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`{"id":true}`), &r)
	require.Error(t, err)
}

func TestID_MarshalAsString(t *testing.T) {
	data, err := json.Marshal(Record{ID: "7", Name: "Bob"})
	require.NoError(t, err)
	require.Contains(t, string(data), `"id":"7"`)
}

func TestRecord_MissingFieldsDecodeEmpty(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`{"id":"1","name":"Alice","contact":"555-0100"}`), &r)
	require.NoError(t, err)
	require.Empty(t, r.Skills)
	require.Empty(t, r.Experience)
	require.False(t, r.HasSkills())
	require.False(t, r.HasExperience())
	require.False(t, r.HasCreatedAt())
}

func TestRecord_OptionalFlags(t *testing.T) {
	r := Record{Skills: "Go, SQL", CreatedAt: "2026-10-14 10:15:00"}
	require.True(t, r.HasSkills())
	require.False(t, r.HasExperience())
	require.True(t, r.HasCreatedAt())
}

func TestNewCandidate_SendsAllKeys(t *testing.T) {
	c := NewCandidate("Alice", "555-0100", "", "")
	data, err := json.Marshal(c)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Alice","contact":"555-0100","skills":"","experience":""}`, string(data))
}
