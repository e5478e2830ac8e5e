package domain

import (
	"strconv"
	"time"
)

// NotificationType identifies the outcome a notification reports.
type NotificationType string

const (
	NotificationSyncCompleted NotificationType = "creative.sync_completed"
	NotificationSyncFailed    NotificationType = "creative.sync_failed"
)

// NotificationData is the JSON payload stored with a notification.
type NotificationData struct {
	CreativeID   string  `json:"creativeId"`
	SalesAgentID *string `json:"salesAgentId,omitempty"`
	CampaignID   *string `json:"campaignId,omitempty"`
	TacticID     *string `json:"tacticId,omitempty"`
	Message      string  `json:"message"`
	Reason       *string `json:"reason,omitempty"`
}

// NotificationRequest is the input to notification creation.
type NotificationRequest struct {
	Type         NotificationType
	CustomerID   int64
	BrandAgentID *string
	Data         NotificationData
}

// DedupKey returns the tuple notifications are deduplicated on.
func (r NotificationRequest) DedupKey() NotificationKey {
	return NotificationKey{
		Type:         r.Type,
		CustomerID:   r.CustomerID,
		BrandAgentID: r.BrandAgentID,
		CreativeID:   r.Data.CreativeID,
		SalesAgentID: r.Data.SalesAgentID,
	}
}

// NotificationKey identifies "the same" notification for deduplication.
// A nil BrandAgentID matches any brand agent.
type NotificationKey struct {
	Type         NotificationType
	CustomerID   int64
	BrandAgentID *string
	CreativeID   string
	SalesAgentID *string
}

// String renders the key for use in external dedup stores.
func (k NotificationKey) String() string {
	brand, agent := "*", "-"
	if k.BrandAgentID != nil {
		brand = *k.BrandAgentID
	}
	if k.SalesAgentID != nil {
		agent = *k.SalesAgentID
	}
	return string(k.Type) + ":" + strconv.FormatInt(k.CustomerID, 10) + ":" + brand + ":" + k.CreativeID + ":" + agent
}

// Notification is a persisted outcome record.
type Notification struct {
	ID           string
	Type         NotificationType
	CustomerID   int64
	BrandAgentID *string
	Data         NotificationData
	CreatedAt    time.Time
}
