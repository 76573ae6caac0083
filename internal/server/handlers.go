package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/graphsearch"
	"github.com/katalvlaran/stepviz/pathfind"
	"github.com/katalvlaran/stepviz/player"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/sorting"
)

// GET /api/sort/{algorithm}?values=5,3,1&speed=2
func (s *Server) sort(w http.ResponseWriter, r *http.Request) {
	algo, err := sorting.ParseAlgorithm(chi.URLParam(r, "algorithm"))
	if err != nil {
		fail(w, statusFor(err), err)
		return
	}
	values, err := s.values(r)
	if err != nil {
		fail(w, http.StatusBadRequest, err)
		return
	}
	seq, err := sorting.Generate(algo, values)
	if err != nil {
		fail(w, statusFor(err), err)
		return
	}

	stream(s, w, r, catalog.FamilySort, string(algo), seq, player.SortDelay)
}

// GET /api/search/{algorithm}?values=...&target=7
// Without a target a random element of the array is searched for.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	algo, err := search.ParseAlgorithm(chi.URLParam(r, "algorithm"))
	if err != nil {
		fail(w, statusFor(err), err)
		return
	}
	values, err := s.values(r)
	if err != nil {
		fail(w, http.StatusBadRequest, err)
		return
	}

	var target int
	switch raw := r.URL.Query().Get("target"); {
	case raw != "":
		if target, err = strconv.Atoi(raw); err != nil {
			fail(w, http.StatusBadRequest, fmt.Errorf("%w: target %q", ErrBadRequest, raw))
			return
		}
	case len(values) > 0:
		target = values[s.cfg.Rand().Intn(len(values))]
	}

	seq, err := search.Generate(algo, values, target)
	if err != nil {
		fail(w, statusFor(err), err)
		return
	}

	stream(s, w, r, catalog.FamilySearch, string(algo), seq, player.SearchDelay)
}

// POST /api/pathfind/{algorithm}?heartbeat=5&conn=4&maze=random
// The body is a text grid; an empty body generates a maze of the configured
// size.
func (s *Server) pathfind(w http.ResponseWriter, r *http.Request) {
	algo, err := pathfind.ParseAlgorithm(chi.URLParam(r, "algorithm"))
	if err != nil {
		fail(w, statusFor(err), err)
		return
	}
	opts, err := s.pathfindOptions(r)
	if err != nil {
		fail(w, http.StatusBadRequest, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		fail(w, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	var g *pathfind.Grid
	if text := strings.TrimSpace(string(body)); text != "" {
		g, err = pathfind.ParseGrid(text)
	} else {
		kind := pathfind.MazeKind(r.URL.Query().Get("maze"))
		if kind == "" {
			kind = pathfind.MazeRandom
		}
		g, err = pathfind.Maze(kind, s.cfg.Size, s.cfg.Size, s.cfg.Density, s.cfg.Rand())
	}
	if err != nil {
		fail(w, http.StatusBadRequest, err)
		return
	}

	seq, err := pathfind.Generate(algo, g, opts...)
	if err != nil {
		fail(w, statusFor(err), err)
		return
	}

	stream(s, w, r, catalog.FamilyPathfind, string(algo), seq, player.PathfindDelay)
}

func (s *Server) pathfindOptions(r *http.Request) ([]pathfind.Option, error) {
	q := r.URL.Query()
	heartbeat := s.cfg.Heartbeat
	if raw := q.Get("heartbeat"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: heartbeat %q", ErrBadRequest, raw)
		}
		heartbeat = n
	}

	conn := pathfind.Conn4
	switch raw := q.Get("conn"); raw {
	case "", "4":
	case "8":
		conn = pathfind.Conn8
	default:
		return nil, fmt.Errorf("%w: conn %q", ErrBadRequest, raw)
	}

	return []pathfind.Option{pathfind.WithHeartbeat(heartbeat), pathfind.WithConnectivity(conn)}, nil
}

// graphRequest is the body of POST /api/graph/{algorithm}. Either Nodes
// (with Edges) describe the graph, or Kind and Size generate one. End
// defaults to the last node.
type graphRequest struct {
	Nodes []graphsearch.Node `json:"nodes"`
	Edges []graphsearch.Edge `json:"edges"`
	Kind  graphsearch.Kind   `json:"kind" validate:"omitempty,oneof=random complete tree"`
	Size  int                `json:"size" validate:"omitempty,gte=1,lte=200"`
	Start int                `json:"start"`
	End   *int               `json:"end"`
}

// POST /api/graph/{algorithm}
func (s *Server) graph(w http.ResponseWriter, r *http.Request) {
	algo, err := graphsearch.ParseAlgorithm(chi.URLParam(r, "algorithm"))
	if err != nil {
		fail(w, statusFor(err), err)
		return
	}

	var req graphRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		fail(w, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}

	g, err := s.buildGraph(req)
	if err != nil {
		fail(w, http.StatusBadRequest, err)
		return
	}
	nodes := g.Nodes()
	end := nodes[len(nodes)-1].ID
	if req.End != nil {
		end = *req.End
	}

	seq, err := graphsearch.Generate(algo, g, req.Start, end)
	if err != nil {
		fail(w, statusFor(err), err)
		return
	}

	stream(s, w, r, catalog.FamilyGraph, string(algo), seq, player.GraphDelay)
}

func (s *Server) buildGraph(req graphRequest) (*graphsearch.Graph, error) {
	if len(req.Nodes) > 0 {
		return graphsearch.NewGraph(req.Nodes, req.Edges)
	}
	kind, size := req.Kind, req.Size
	if kind == "" {
		kind = graphsearch.KindRandom
	}
	if size == 0 {
		size = s.cfg.Size
	}

	return graphsearch.Build(kind, size, s.cfg.Rand())
}

// values reads the comma separated "values" query parameter. Without it a
// random array of the configured size is returned. Values beyond
// MaxMagnitude are rejected before any frame is streamed.
func (s *Server) values(r *http.Request) ([]int, error) {
	raw := r.URL.Query().Get("values")
	if raw == "" {
		return sorting.RandomValues(s.cfg.Size, s.cfg.Rand()), nil
	}
	fields := strings.Split(raw, ",")
	if len(fields) > MaxValues {
		return nil, fmt.Errorf("%w: more than %d values", ErrBadRequest, MaxValues)
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: value %q", ErrBadRequest, f)
		}
		if v < -MaxMagnitude || v > MaxMagnitude {
			return nil, fmt.Errorf("%w: value %d outside [-%d, %d]", ErrBadRequest, v, MaxMagnitude, MaxMagnitude)
		}
		out[i] = v
	}

	return out, nil
}
