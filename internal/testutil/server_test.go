package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/talentdb/internal/candidate"
)

func getRecords(t *testing.T, rawURL string) []candidate.Record {
	t.Helper()
	resp, err := http.Get(rawURL) //nolint:gosec,noctx // test server URL
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var records []candidate.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	return records
}

func post(t *testing.T, s *Server, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(s.URL()+candidatesPath, "application/json", bytes.NewBufferString(body)) //nolint:noctx // test
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestBuilder_WithCandidateDefaults(t *testing.T) {
	s := NewBuilder(t).WithCandidate("7").Build()

	records := getRecords(t, s.URL()+candidatesPath)
	require.Equal(t, []candidate.Record{{
		ID: "7", Name: "7", Contact: "7@example.com", CreatedAt: "2026-10-14 09:00:00",
	}}, records)
}

func TestStandardTestData(t *testing.T) {
	s := NewBuilder(t).WithStandardTestData().Build()

	records := getRecords(t, s.URL()+candidatesPath)
	require.Len(t, records, 3)
	require.Equal(t, "Alice", records[0].Name)
	require.False(t, records[1].HasSkills())
	require.Equal(t, "김민수", records[2].Name)
}

func TestServer_CreateTrimsAndStamps(t *testing.T) {
	fixed := time.Date(2026, 10, 14, 12, 30, 0, 0, time.UTC)
	s := NewBuilder(t).WithStandardTestData().WithClock(func() time.Time { return fixed }).Build()

	status, body := post(t, s, `{"name":"  Dan ","contact":"555-0199","skills":"","experience":""}`)
	require.Equal(t, http.StatusCreated, status)
	require.Contains(t, body, "candidate")

	records := s.Records()
	require.Len(t, records, 4)
	require.Equal(t, candidate.Record{ID: "4", Name: "Dan", Contact: "555-0199", CreatedAt: "2026-10-14 12:30:00"}, records[3])
}

func TestServer_CreateRequiresNameAndContact(t *testing.T) {
	s := NewBuilder(t).Build()

	status, body := post(t, s, `{"name":"   ","contact":"x"}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, ErrRequiredFields, body["error"])
	require.Empty(t, s.Records())
}

func TestServer_Search(t *testing.T) {
	s := NewBuilder(t).WithStandardTestData().Build()

	tests := []struct {
		keyword string
		want    []string
	}{
		{"go", []string{"Alice", "김민수"}},
		{"  ALICE ", []string{"Alice"}},
		{"민수", []string{"김민수"}},
		{"", nil},
		{"cobol", nil},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			records := getRecords(t, s.URL()+searchPath+"?keyword="+url.QueryEscape(tt.keyword))
			var names []string
			for _, r := range records {
				names = append(names, r.Name)
			}
			require.Equal(t, tt.want, names)
		})
	}
}

func TestServer_DeleteAndRequests(t *testing.T) {
	s := NewBuilder(t).WithStandardTestData().Build()

	req, err := http.NewRequest(http.MethodDelete, s.URL()+candidatesPath+"/2", nil) //nolint:noctx // test
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, s.Records(), 2)
	require.Equal(t, []string{"DELETE /api/candidates/2"}, s.Requests())
}

func TestServer_FailWith(t *testing.T) {
	s := NewBuilder(t).WithStandardTestData().Build()
	s.FailWith(http.MethodGet, http.StatusServiceUnavailable, "<html>down</html>")

	resp, err := http.Get(s.URL() + candidatesPath) //nolint:noctx // test
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	s.FailWith(http.MethodGet, 0, "")
	require.Len(t, getRecords(t, s.URL()+candidatesPath), 3)
}
