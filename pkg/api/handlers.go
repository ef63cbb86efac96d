package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/graphsketch/pkg/buildinfo"
	"github.com/matzehuels/graphsketch/pkg/cache"
	"github.com/matzehuels/graphsketch/pkg/editor"
	gserrors "github.com/matzehuels/graphsketch/pkg/errors"
	"github.com/matzehuels/graphsketch/pkg/graph"
	"github.com/matzehuels/graphsketch/pkg/render/nodelink"
	"github.com/matzehuels/graphsketch/pkg/session"
)

// =============================================================================
// Wire types
// =============================================================================

type sessionResponse struct {
	ID string `json:"id"`
}

type canvasResponse struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type promptResponse struct {
	Source  string `json:"source"`
	Target  string `json:"target"`
	Prompt  string `json:"prompt"`
	Default string `json:"default"`
}

type stateResponse struct {
	ID        string          `json:"id"`
	Canvas    canvasResponse  `json:"canvas"`
	Style     graph.EdgeStyle `json:"style"`
	Selection string          `json:"selection"`
	Pending   *promptResponse `json:"pending"`
	Snapshot  graph.Snapshot  `json:"snapshot"`
}

type clickResponse struct {
	Selection string          `json:"selection"`
	Pending   *promptResponse `json:"pending"`
}

type edgeResponse struct {
	Source string          `json:"source"`
	Target string          `json:"target"`
	Weight graph.Weight    `json:"weight"`
	Style  graph.EdgeStyle `json:"style"`
}

type addNodeRequest struct {
	Color string   `json:"color"`
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
}

type pointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type styleRequest struct {
	Style string `json:"style"`
}

type weightRequest struct {
	Text string `json:"text"`
}

func toPrompt(r *editor.WeightRequest) *promptResponse {
	if r == nil {
		return nil
	}
	return &promptResponse{
		Source:  r.Source.ID,
		Target:  r.Target.ID,
		Prompt:  r.Prompt(),
		Default: r.Default,
	}
}

func toNode(n graph.Node) graph.SnapshotNode {
	return graph.SnapshotNode{ID: n.ID, X: n.X, Y: n.Y, Color: n.Color}
}

// =============================================================================
// Session plumbing
// =============================================================================

// withSession loads the session named in the URL and runs fn under its lock.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(e session.Editor) error) {
	id := chi.URLParam(r, "session")
	if err := gserrors.ValidateSessionID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := sess.Do(fn); err != nil {
		s.writeError(w, r, err)
	}
}

func nodeParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "node")
	if err := gserrors.ValidateNodeID(id); err != nil {
		return "", err
	}
	return id, nil
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Create(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("session created", "id", sess.ID)
	writeJSON(w, http.StatusCreated, sessionResponse{ID: sess.ID})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(e session.Editor) error {
		c := e.Controller
		resp := stateResponse{
			ID:        chi.URLParam(r, "session"),
			Canvas:    canvasResponse{Width: c.Canvas().Width, Height: c.Canvas().Height},
			Style:     c.EdgeStyle(),
			Selection: c.Selection().String(),
			Snapshot:  c.Snapshot(),
		}
		if p, ok := c.Pending(); ok {
			resp.Pending = toPrompt(&p)
		}
		writeJSON(w, http.StatusOK, resp)
		return nil
	})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")
	if err := gserrors.ValidateSessionID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addNode(w http.ResponseWriter, r *http.Request) {
	var req addNodeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	color, err := graph.ParseColor(req.Color)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if (req.X == nil) != (req.Y == nil) {
		s.writeError(w, r, gserrors.New(gserrors.ErrCodeInvalidInput, "x and y must be given together"))
		return
	}

	s.withSession(w, r, func(e session.Editor) error {
		var n graph.Node
		if req.X != nil {
			n = e.Controller.AddNodeAt(color, graph.Point{X: *req.X, Y: *req.Y})
		} else {
			n = e.Controller.AddNode(color)
		}
		writeJSON(w, http.StatusCreated, toNode(n))
		return nil
	})
}

func (s *Server) dragNode(w http.ResponseWriter, r *http.Request) {
	id, err := nodeParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req pointRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.withSession(w, r, func(e session.Editor) error {
		n, err := e.Controller.DragNode(id, graph.Point{X: req.X, Y: req.Y})
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, toNode(n))
		return nil
	})
}

func (s *Server) clickNode(w http.ResponseWriter, r *http.Request) {
	id, err := nodeParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.withSession(w, r, func(e session.Editor) error {
		req, err := e.Controller.ClickNode(id)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, clickResponse{
			Selection: e.Controller.Selection().String(),
			Pending:   toPrompt(req),
		})
		return nil
	})
}

func (s *Server) setStyle(w http.ResponseWriter, r *http.Request) {
	var req styleRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	style, err := graph.ParseEdgeStyle(req.Style)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.withSession(w, r, func(e session.Editor) error {
		e.Controller.SetEdgeStyle(style)
		writeJSON(w, http.StatusOK, styleRequest{Style: style.String()})
		return nil
	})
}

func (s *Server) confirmWeight(w http.ResponseWriter, r *http.Request) {
	var req weightRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.withSession(w, r, func(e session.Editor) error {
		edge, err := e.Controller.ConfirmWeight(req.Text)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusCreated, edgeResponse(edge))
		return nil
	})
}

func (s *Server) cancelWeight(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(e session.Editor) error {
		if err := e.Controller.CancelWeight(); err != nil {
			return err
		}
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
}

func (s *Server) describeEdge(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, r, gserrors.New(gserrors.ErrCodeInvalidInput, "invalid edge index %q", chi.URLParam(r, "index")))
		return
	}

	s.withSession(w, r, func(e session.Editor) error {
		text, err := e.Controller.DescribeEdge(index)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, map[string]string{"description": text})
		return nil
	})
}

func (s *Server) exportGraph(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(e session.Editor) error {
		snap, err := e.Controller.Export(r.Context())
		if err != nil {
			return gserrors.Wrap(gserrors.ErrCodeNetwork, err, "export failed")
		}
		writeJSON(w, http.StatusOK, snap)
		return nil
	})
}

func (s *Server) canvasSVG(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(e session.Editor) error {
		data := e.Scene.Bytes()
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return nil
	})
}

func (s *Server) graphPNG(w http.ResponseWriter, r *http.Request) {
	var dot string
	var ok bool
	s.withSession(w, r, func(e session.Editor) error {
		g := e.Controller.Graph()
		canvas := e.Controller.Canvas()
		dot = nodelink.ToDOT(g.Nodes(), g.Edges(), nodelink.Options{Width: canvas.Width, Height: canvas.Height})
		ok = true
		return nil
	})
	if !ok {
		return
	}

	ctx := r.Context()
	key := cache.Key("png", dot)
	data, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", "err", err)
	}
	if !hit {
		data, err = nodelink.RenderPNG(ctx, dot)
		if err != nil {
			s.writeError(w, r, gserrors.Wrap(gserrors.ErrCodeInternal, err, "render png"))
			return
		}
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
			s.logger.Warn("cache write failed", "err", err)
		}
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
