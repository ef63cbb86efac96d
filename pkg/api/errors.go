package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/matzehuels/graphsketch/pkg/editor"
	gserrors "github.com/matzehuels/graphsketch/pkg/errors"
	"github.com/matzehuels/graphsketch/pkg/graph"
	"github.com/matzehuels/graphsketch/pkg/session"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Code    gserrors.Code `json:"code"`
	Message string        `json:"message"`
}

// sentinelCodes assigns codes to package sentinel errors.
var sentinelCodes = []struct {
	err  error
	code gserrors.Code
}{
	{session.ErrNotFound, gserrors.ErrCodeSessionNotFound},
	{editor.ErrUnknownNode, gserrors.ErrCodeNodeNotFound},
	{graph.ErrUnknownSourceNode, gserrors.ErrCodeNodeNotFound},
	{graph.ErrUnknownTargetNode, gserrors.ErrCodeNodeNotFound},
	{editor.ErrUnknownEdge, gserrors.ErrCodeEdgeNotFound},
	{editor.ErrWeightPending, gserrors.ErrCodeWeightPending},
	{editor.ErrNoPendingWeight, gserrors.ErrCodeNoPendingWeight},
	{graph.ErrInvalidColor, gserrors.ErrCodeInvalidColor},
	{graph.ErrInvalidStyle, gserrors.ErrCodeInvalidStyle},
}

// codeOf returns the code carried by err, or the code of the first sentinel
// it wraps.
func codeOf(err error) gserrors.Code {
	if code := gserrors.GetCode(err); code != "" {
		return code
	}
	for _, s := range sentinelCodes {
		if errors.Is(err, s.err) {
			return s.code
		}
	}
	return gserrors.ErrCodeInternal
}

// statusOf maps an error code to an HTTP status.
func statusOf(code gserrors.Code) int {
	c := string(code)
	switch {
	case strings.HasPrefix(c, "INVALID_"):
		return http.StatusBadRequest
	case strings.HasSuffix(c, "NOT_FOUND"):
		return http.StatusNotFound
	case code == gserrors.ErrCodeWeightPending, code == gserrors.ErrCodeNoPendingWeight:
		return http.StatusConflict
	case code == gserrors.ErrCodeNetwork:
		return http.StatusBadGateway
	case code == gserrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case code == gserrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := codeOf(err)
	status := statusOf(code)
	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Message: gserrors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return gserrors.Wrap(gserrors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}
