package domain

import (
	"fmt"
	"time"
)

// SyncStatus is the delivery state of a creative at one sales agent.
type SyncStatus string

const (
	SyncPending SyncStatus = "pending"
	SyncSyncing SyncStatus = "syncing"
	SyncSynced  SyncStatus = "synced"
	SyncFailed  SyncStatus = "failed"
)

// ApprovalStatus is the partner's review verdict. It is only meaningful
// once the creative is synced.
type ApprovalStatus string

const (
	ApprovalPending          ApprovalStatus = "pending"
	ApprovalApproved         ApprovalStatus = "approved"
	ApprovalRejected         ApprovalStatus = "rejected"
	ApprovalChangesRequested ApprovalStatus = "changes_requested"
)

// IsDecision reports whether a is a terminal review verdict a partner may
// report.
func (a ApprovalStatus) IsDecision() bool {
	switch a {
	case ApprovalApproved, ApprovalRejected, ApprovalChangesRequested:
		return true
	}
	return false
}

// SyncStatusRecord is the single row kept per (creative, sales agent) pair.
type SyncStatusRecord struct {
	ID                         string
	CreativeID                 string
	SalesAgentID               string
	SalesAgentName             string // joined on read, empty when unknown
	BrandAgentID               string
	SyncStatus                 SyncStatus
	ApprovalStatus             *ApprovalStatus
	RejectionReason            *string
	RequestedChanges           []string
	SyncError                  *string
	LastSyncAttempt            *time.Time
	InitiallySyncedForTacticID *string
	LastCampaignContext        *string
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// SyncStatusID derives the record identity for a pair.
func SyncStatusID(creativeID, salesAgentID string) string {
	return fmt.Sprintf("sync_%s_%s", creativeID, salesAgentID)
}

// SyncStatusPatch is a partial write. A nil field leaves the stored value
// untouched; ClearSyncError nulls the stored error and wins over SyncError.
type SyncStatusPatch struct {
	SyncStatus                 *SyncStatus
	ApprovalStatus             *ApprovalStatus
	RejectionReason            *string
	RequestedChanges           []string
	SyncError                  *string
	ClearSyncError             bool
	LastSyncAttempt            *time.Time
	InitiallySyncedForTacticID *string
	LastCampaignContext        *string
}

// NewRecord builds the row inserted when the pair has never been written.
func (p SyncStatusPatch) NewRecord(creativeID, salesAgentID, brandAgentID string, now time.Time) SyncStatusRecord {
	rec := SyncStatusRecord{
		ID:           SyncStatusID(creativeID, salesAgentID),
		CreativeID:   creativeID,
		SalesAgentID: salesAgentID,
		BrandAgentID: brandAgentID,
		SyncStatus:   SyncPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	rec.Apply(p, now)
	return rec
}

// Apply merges p into r following the field-presence rule.
func (r *SyncStatusRecord) Apply(p SyncStatusPatch, now time.Time) {
	if p.SyncStatus != nil {
		r.SyncStatus = *p.SyncStatus
	}
	if p.ApprovalStatus != nil {
		r.ApprovalStatus = p.ApprovalStatus
	}
	if p.RejectionReason != nil {
		r.RejectionReason = p.RejectionReason
	}
	if p.RequestedChanges != nil {
		r.RequestedChanges = append([]string(nil), p.RequestedChanges...)
	}
	if p.SyncError != nil {
		r.SyncError = p.SyncError
	}
	if p.ClearSyncError {
		r.SyncError = nil
	}
	if p.LastSyncAttempt != nil {
		r.LastSyncAttempt = p.LastSyncAttempt
	}
	if p.InitiallySyncedForTacticID != nil {
		r.InitiallySyncedForTacticID = p.InitiallySyncedForTacticID
	}
	if p.LastCampaignContext != nil {
		r.LastCampaignContext = p.LastCampaignContext
	}
	r.UpdatedAt = now
}

// ApprovalDecision is a partner's review verdict for a synced creative.
type ApprovalDecision struct {
	Status           ApprovalStatus
	RejectionReason  string
	RequestedChanges []string
}
