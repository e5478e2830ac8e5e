package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"creative-sync/internal/core/domain"
	"creative-sync/internal/core/port"
)

// handleSync pushes the creative to an explicit partner list. Partner
// failures are part of the 200 response body; only an unknown creative
// yields 404.
func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if !h.decode(w, r, &req, false) {
		return
	}
	res, err := h.svc.SyncToAgents(r.Context(), chi.URLParam(r, "creativeID"), req.PartnerIDs, domain.SyncContext{
		CampaignID:  req.CampaignID,
		TacticID:    req.TacticID,
		TriggeredBy: domain.TriggerManual,
	})
	if err != nil {
		h.writeError(w, r, "sync", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleAutoSync resolves relevant partners and syncs to them. The body is
// optional.
func (h *Handler) handleAutoSync(w http.ResponseWriter, r *http.Request) {
	var req autoSyncRequest
	if !h.decode(w, r, &req, true) {
		return
	}
	res, err := h.svc.AutoSync(r.Context(), chi.URLParam(r, "creativeID"), port.RelevanceOptions{
		DaysBack:           req.DaysBack,
		IncludeActive:      req.IncludeActive,
		ForceIncludeAgents: req.ForceIncludeAgents,
	})
	if err != nil {
		h.writeError(w, r, "auto sync", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleSyncStatus(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.GetStatus(r.Context(), chi.URLParam(r, "creativeID"))
	if err != nil {
		h.writeError(w, r, "sync status", err)
		return
	}
	out := make([]syncStatusResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, newSyncStatusResponse(rec))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleApproval records a partner's review verdict. Approving a creative
// that is not synced is a 409.
func (h *Handler) handleApproval(w http.ResponseWriter, r *http.Request) {
	var req approvalRequest
	if !h.decode(w, r, &req, false) {
		return
	}
	err := h.svc.RecordApproval(r.Context(), chi.URLParam(r, "creativeID"), chi.URLParam(r, "partnerID"), domain.ApprovalDecision{
		Status:           domain.ApprovalStatus(req.Status),
		RejectionReason:  req.RejectionReason,
		RequestedChanges: req.RequestedChanges,
	})
	if err != nil {
		h.writeError(w, r, "record approval", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
