package model

// NotificationKind classifies the outcome a notification reports.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// Notification is a short-lived user-facing message emitted on store
// mutation outcomes. IDs are derived from the enqueue timestamp in
// milliseconds, bumped on collision so dismissal stays unambiguous.
type Notification struct {
	ID      int64            `json:"id"`
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}
