package api

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/helium/helium-tools-api/chain"
	"github.com/helium/helium-tools-api/supply"
)

const contentTypeText = "text/plain; charset=utf-8"

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(status)
	if body != "" {
		_, _ = io.WriteString(w, body)
	}
}

// handleAddress serves GET /api/tools/address?address=<s>&to=<family>.
//
// A missing address or an unknown target is a client error. A failed conversion is not: the
// response is 200 with an empty body.
func (s *Server) handleAddress(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	target := q.Get("to")
	if !q.Has("address") || !chain.IsFamily(target) {
		writeText(w, http.StatusBadRequest, "")
		return
	}
	address := q.Get("address")

	out, err := s.transcoder.Convert(address, target)
	s.metrics.observeConversion(target, err)
	if err != nil {
		s.lggr.Debugw("Address conversion failed",
			"request_id", RequestID(r.Context()),
			"target", target,
			"error", err,
		)
		writeText(w, http.StatusOK, "")

		return
	}

	writeText(w, http.StatusOK, out)
}

// handleSupply serves GET /api/stats/supply/{token}?type=<kind>.
func (s *Server) handleSupply(w http.ResponseWriter, r *http.Request) {
	tok, ok := s.tokens.Lookup(r.PathValue("token"))
	if !ok {
		writeText(w, http.StatusBadRequest, "")
		return
	}

	kind, ok := supply.ParseKind(r.URL.Query().Get("type"))
	if !ok {
		writeText(w, http.StatusOK, "")
		return
	}
	s.metrics.observeSupply(tok.Symbol, string(kind))

	writeText(w, http.StatusOK, supply.FormatAmount(s.supply.Supply(r.Context(), tok, kind)))
}

// handleLegacyAccount redirects an explorer account page to the wallet page of the equivalent
// Solana address.
func (s *Server) handleLegacyAccount(w http.ResponseWriter, r *http.Request) {
	sol, ok := s.transcoder.MaybeConvert(r.PathValue("address"), chain.FamilySolana)
	if !ok {
		s.redirect(w, r, "")
		return
	}

	s.redirect(w, r, "/mobile/wallet/"+url.PathEscape(sol))
}

// handleLegacyHotspot redirects an explorer hotspot page to the gateway page. The address is
// passed through unchanged.
func (s *Server) handleLegacyHotspot(w http.ResponseWriter, r *http.Request) {
	s.redirect(w, r, "/iot/hotspots/gateway/"+url.PathEscape(r.PathValue("address")))
}

func (s *Server) handleFallback(w http.ResponseWriter, r *http.Request) {
	s.redirect(w, r, "")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

func (s *Server) redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, strings.TrimRight(s.cfg.RedirectBaseURL, "/")+path, http.StatusPermanentRedirect)
}
