package httpadapter

import "net/http"

// handleCreativeAssigned runs the campaign-assignment trigger. A campaign
// without active tactics produces 204 No Content.
func (h *Handler) handleCreativeAssigned(w http.ResponseWriter, r *http.Request) {
	var req creativeAssignedRequest
	if !h.decode(w, r, &req, false) {
		return
	}
	res, err := h.svc.OnCreativeAssignedToCampaign(r.Context(), req.CreativeID, req.CampaignID)
	if err != nil {
		h.writeError(w, r, "creative assigned", err)
		return
	}
	if res == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleTacticCreated(w http.ResponseWriter, r *http.Request) {
	var req tacticCreatedRequest
	if !h.decode(w, r, &req, false) {
		return
	}
	report, err := h.svc.OnTacticCreated(r.Context(), req.TacticID, req.CampaignID, req.SalesAgentID)
	if err != nil {
		h.writeError(w, r, "tactic created", err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
