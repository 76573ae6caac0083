package server

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/internal/config"
	"github.com/katalvlaran/stepviz/pathfind"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/sorting"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.Seed, cfg.Size = 42, 8
	reg := prometheus.NewRegistry()
	ts := httptest.NewServer(New(cfg, WithoutPacing(), WithRegistry(reg)).Handler())
	t.Cleanup(ts.Close)

	return ts
}

// lines performs the request and returns the NDJSON body split into lines.
func lines(t *testing.T, req *http.Request) []string {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/x-ndjson", resp.Header.Get("Content-Type"))

	var out []string
	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<22)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	require.NoError(t, sc.Err())

	return out
}

func get(t *testing.T, url string) *http.Request {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	return req
}

func post(t *testing.T, url, body string) *http.Request {
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	return req
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["error"]
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestAlgorithms(t *testing.T) {
	ts := newTestServer(t)

	var all []catalog.Entry
	resp, err := http.Get(ts.URL + "/api/algorithms")
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	resp.Body.Close()
	assert.Len(t, all, len(catalog.Default().All()))

	var graphs []catalog.Entry
	resp, err = http.Get(ts.URL + "/api/algorithms?family=graph")
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&graphs))
	resp.Body.Close()
	assert.Len(t, graphs, 3)

	resp, err = http.Get(ts.URL + "/api/algorithms?family=trees")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "trees")
}

func TestSort_StreamsEveryFrame(t *testing.T) {
	ts := newTestServer(t)

	got := lines(t, get(t, ts.URL+"/api/sort/bubble?values=3,1,2"))
	want := sorting.Tally(sorting.Bubble([]int{3, 1, 2}))
	require.Len(t, got, want.Steps)

	var last sorting.Snapshot
	require.NoError(t, json.Unmarshal([]byte(got[len(got)-1]), &last))
	assert.Equal(t, []int{1, 2, 3}, last.Array)
	assert.Equal(t, []int{0, 1, 2}, last.Sorted)
}

func TestSort_RandomValuesUseConfiguredSize(t *testing.T) {
	ts := newTestServer(t)

	got := lines(t, get(t, ts.URL+"/api/sort/merge-sort"))
	var last sorting.Snapshot
	require.NoError(t, json.Unmarshal([]byte(got[len(got)-1]), &last))
	assert.Len(t, last.Array, 8)
	assert.IsNonDecreasing(t, last.Array)
}

func TestSort_Errors(t *testing.T) {
	ts := newTestServer(t)

	cases := map[string]int{
		"/api/sort/bogo?values=1,2":                                http.StatusNotFound,
		"/api/sort/bubble?values=1,x":                              http.StatusBadRequest,
		"/api/sort/bubble?values=1&speed=0":                        http.StatusBadRequest,
		"/api/sort/bubble?values=1&speed=NaN":                      http.StatusBadRequest,
		"/api/sort/bubble?values=1&speed=Inf":                      http.StatusBadRequest,
		"/api/sort/bubble?speed=fast":                              http.StatusBadRequest,
		"/api/sort/counting?values=0,100000000000":                 http.StatusBadRequest,
		"/api/sort/radix?values=-1000001":                          http.StatusBadRequest,
		"/api/search/binary?values=1,9223372036854775807&target=1": http.StatusBadRequest,
	}
	for path, status := range cases {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err, path)
		assert.Equal(t, status, resp.StatusCode, path)
		assert.NotEmpty(t, decodeError(t, resp), path)
	}
}

func TestSearch_FindsTarget(t *testing.T) {
	ts := newTestServer(t)

	got := lines(t, get(t, ts.URL+"/api/search/binary?values=9,1,7,3,5&target=7"))
	require.Len(t, got, 3)

	var last search.Snapshot
	require.NoError(t, json.Unmarshal([]byte(got[len(got)-1]), &last))
	idx, ok := last.Found()
	require.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, 2, last.Comparisons)
}

func TestSearch_BadTarget(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/search/linear?values=1,2&target=two")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// pathState is the part of pathfind.State the tests inspect. PointSet
// fields only marshal, so the full State cannot be decoded.
type pathState struct {
	Path      []pathfind.Point `json:"path"`
	Done      bool             `json:"done"`
	PathFound bool             `json:"pathFound"`
}

func TestPathfind_TextGrid(t *testing.T) {
	ts := newTestServer(t)

	got := lines(t, post(t, ts.URL+"/api/pathfind/bfs?heartbeat=0", "S.E"))
	require.Len(t, got, 4)

	var last pathState
	require.NoError(t, json.Unmarshal([]byte(got[len(got)-1]), &last))
	assert.True(t, last.Done)
	assert.True(t, last.PathFound)
	assert.Equal(t, []pathfind.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, last.Path)
}

func TestPathfind_GeneratedMaze(t *testing.T) {
	ts := newTestServer(t)

	got := lines(t, post(t, ts.URL+"/api/pathfind/astar?maze=empty&conn=8", ""))
	var last pathState
	require.NoError(t, json.Unmarshal([]byte(got[len(got)-1]), &last))
	assert.True(t, last.PathFound)
	assert.Len(t, last.Path, 8) // diagonal across an 8x8 grid
}

func TestPathfind_Errors(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		path, body string
		status     int
	}{
		{"/api/pathfind/flood", "S.E", http.StatusNotFound},
		{"/api/pathfind/bfs", "S..", http.StatusBadRequest},
		{"/api/pathfind/bfs?conn=6", "S.E", http.StatusBadRequest},
		{"/api/pathfind/bfs?heartbeat=-1", "S.E", http.StatusBadRequest},
		{"/api/pathfind/bfs?maze=spiral", "", http.StatusBadRequest},
	}
	for _, tc := range cases {
		resp, err := http.Post(ts.URL+tc.path, "text/plain", strings.NewReader(tc.body))
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.status, resp.StatusCode, tc.path)
		resp.Body.Close()
	}
}

type graphState struct {
	Path      []int `json:"path"`
	Done      bool  `json:"done"`
	PathFound bool  `json:"pathFound"`
}

func TestGraph_GeneratedTree(t *testing.T) {
	ts := newTestServer(t)

	got := lines(t, post(t, ts.URL+"/api/graph/dijkstra", `{"kind":"tree","size":3,"start":0,"end":2}`))
	var last graphState
	require.NoError(t, json.Unmarshal([]byte(got[len(got)-1]), &last))
	assert.True(t, last.Done)
	assert.True(t, last.PathFound)
	assert.Equal(t, []int{0, 2}, last.Path)
}

func TestGraph_ExplicitGraph(t *testing.T) {
	ts := newTestServer(t)

	body := `{
		"nodes": [{"id": 0}, {"id": 1}, {"id": 2}],
		"edges": [{"from": 0, "to": 1, "weight": 1}, {"from": 1, "to": 2, "weight": 1}]
	}`
	got := lines(t, post(t, ts.URL+"/api/graph/bfs", body))
	var last graphState
	require.NoError(t, json.Unmarshal([]byte(got[len(got)-1]), &last))
	assert.Equal(t, []int{0, 1, 2}, last.Path)
}

func TestGraph_Errors(t *testing.T) {
	ts := newTestServer(t)

	cases := map[string]string{
		"bad kind":     `{"kind":"star"}`,
		"huge size":    `{"size":5000}`,
		"unknown key":  `{"sizes":3}`,
		"missing node": `{"kind":"tree","size":3,"end":9}`,
		"dangling":     `{"nodes":[{"id":0}],"edges":[{"from":0,"to":4,"weight":1}]}`,
		"not json":     `nodes`,
	}
	for name, body := range cases {
		resp, err := http.Post(ts.URL+"/api/graph/bfs", "application/json", strings.NewReader(body))
		require.NoError(t, err, name)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
		resp.Body.Close()
	}
}

func TestMetrics_CountStreamedFrames(t *testing.T) {
	ts := newTestServer(t)

	got := lines(t, get(t, ts.URL+"/api/sort/insertion?values=2,1"))

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	var b strings.Builder
	_, err = bufio.NewReader(resp.Body).WriteTo(&b)
	require.NoError(t, err)

	assert.Contains(t, b.String(),
		`stepviz_frames_total{algorithm="insertion-sort",family="sort"} `+strconv.Itoa(len(got)))
	assert.Contains(t, b.String(),
		`stepviz_runs_total{algorithm="insertion-sort",family="sort",outcome="completed"} 1`)
}
