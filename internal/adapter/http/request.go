package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"creative-sync/internal/core/domain"
)

type syncRequest struct {
	PartnerIDs []string `json:"partnerIds" validate:"required,min=1,dive,required"`
	CampaignID *string  `json:"campaignId" validate:"omitempty,min=1"`
	TacticID   *string  `json:"tacticId" validate:"omitempty,min=1"`
}

type autoSyncRequest struct {
	DaysBack           int      `json:"daysBack" validate:"gte=0,lte=365"`
	IncludeActive      *bool    `json:"includeActive"`
	ForceIncludeAgents []string `json:"forceIncludeAgents" validate:"dive,required"`
}

type approvalRequest struct {
	Status           string   `json:"status" validate:"required,oneof=approved rejected changes_requested"`
	RejectionReason  string   `json:"rejectionReason" validate:"max=2000"`
	RequestedChanges []string `json:"requestedChanges" validate:"dive,required"`
}

type creativeAssignedRequest struct {
	CreativeID string `json:"creativeId" validate:"required"`
	CampaignID string `json:"campaignId" validate:"required"`
}

type tacticCreatedRequest struct {
	TacticID     string `json:"tacticId" validate:"required"`
	CampaignID   string `json:"campaignId" validate:"required"`
	SalesAgentID string `json:"salesAgentId" validate:"required"`
}

type syncStatusResponse struct {
	ID                         string     `json:"id"`
	CreativeID                 string     `json:"creativeId"`
	SalesAgentID               string     `json:"salesAgentId"`
	SalesAgentName             string     `json:"salesAgentName,omitempty"`
	BrandAgentID               string     `json:"brandAgentId"`
	SyncStatus                 string     `json:"syncStatus"`
	ApprovalStatus             *string    `json:"approvalStatus,omitempty"`
	RejectionReason            *string    `json:"rejectionReason,omitempty"`
	RequestedChanges           []string   `json:"requestedChanges,omitempty"`
	SyncError                  *string    `json:"syncError,omitempty"`
	LastSyncAttempt            *time.Time `json:"lastSyncAttempt,omitempty"`
	InitiallySyncedForTacticID *string    `json:"initiallySyncedForTacticId,omitempty"`
	LastCampaignContext        *string    `json:"lastCampaignContext,omitempty"`
	CreatedAt                  time.Time  `json:"createdAt"`
	UpdatedAt                  time.Time  `json:"updatedAt"`
}

func newSyncStatusResponse(rec domain.SyncStatusRecord) syncStatusResponse {
	resp := syncStatusResponse{
		ID:                         rec.ID,
		CreativeID:                 rec.CreativeID,
		SalesAgentID:               rec.SalesAgentID,
		SalesAgentName:             rec.SalesAgentName,
		BrandAgentID:               rec.BrandAgentID,
		SyncStatus:                 string(rec.SyncStatus),
		RejectionReason:            rec.RejectionReason,
		RequestedChanges:           rec.RequestedChanges,
		SyncError:                  rec.SyncError,
		LastSyncAttempt:            rec.LastSyncAttempt,
		InitiallySyncedForTacticID: rec.InitiallySyncedForTacticID,
		LastCampaignContext:        rec.LastCampaignContext,
		CreatedAt:                  rec.CreatedAt,
		UpdatedAt:                  rec.UpdatedAt,
	}
	if rec.ApprovalStatus != nil {
		s := string(*rec.ApprovalStatus)
		resp.ApprovalStatus = &s
	}
	return resp
}

// decode reads a JSON body into dst and validates it. An empty body is
// accepted when allowEmpty is set. On failure a 400 response has already
// been written and false is returned.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return false
		}
	}
	if err := h.validate.Struct(dst); err != nil {
		http.Error(w, validationMessage(err), http.StatusBadRequest)
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request"
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", e.Field(), e.Tag(), e.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field(), e.Tag()))
	}
	return "invalid request: " + strings.Join(parts, "; ")
}
