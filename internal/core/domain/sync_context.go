package domain

// SyncTrigger names what caused a sync run.
type SyncTrigger string

const (
	TriggerManual             SyncTrigger = "manual"
	TriggerCampaignAssignment SyncTrigger = "campaign_assignment"
	TriggerTacticCreation     SyncTrigger = "tactic_creation"
	TriggerCreativeUpdate     SyncTrigger = "creative_update"
)

// SyncContext carries the provenance of a sync run.
type SyncContext struct {
	CampaignID  *string
	TacticID    *string
	TriggeredBy SyncTrigger
}

// PartnerFailure records why one partner could not be synced.
type PartnerFailure struct {
	PartnerID string `json:"partnerId"`
	Error     string `json:"error"`
}

// SyncResult aggregates a sync run. Every requested partner appears in
// exactly one of the two lists.
type SyncResult struct {
	Success []string         `json:"success"`
	Failed  []PartnerFailure `json:"failed"`
}

// TacticSyncReport summarises a tactic-created trigger across the
// campaign's creatives.
type TacticSyncReport struct {
	Synced  []string `json:"synced"`
	Skipped []string `json:"skipped"`
	Errored []string `json:"errored"`
}
