package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status is the tracking state of a document slot.
type Status string

const (
	StatusMissing       Status = "missing"
	StatusLinked        Status = "linked"
	StatusPendingReview Status = "pending_review"
)

func (s Status) Valid() bool {
	switch s {
	case StatusMissing, StatusLinked, StatusPendingReview:
		return true
	}
	return false
}

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusLinked:
		return "Linked"
	case StatusPendingReview:
		return "Pending Review"
	default:
		return "Missing"
	}
}

// Color returns the UI color key for a status.
func (s Status) Color() string {
	switch s {
	case StatusLinked:
		return "green"
	case StatusPendingReview:
		return "yellow"
	default:
		return "red"
	}
}

// Provider identifies where an externally linked file lives.
type Provider string

const (
	ProviderGoogleDrive Provider = "google_drive"
	ProviderDropbox     Provider = "dropbox"
)

// InferProvider guesses the storage provider from a share link. Anything
// that is not Dropbox is treated as Google Drive.
func InferProvider(url string) Provider {
	if strings.Contains(url, "dropbox.com") {
		return ProviderDropbox
	}
	return ProviderGoogleDrive
}

// Document is a tracked form or file slot on a transaction. Files are never
// stored; the row holds a link to the party's own cloud storage.
type Document struct {
	ID               snowflake.ID  `json:"id,string" gorm:"primaryKey"`
	TransactionID    snowflake.ID  `json:"transaction_id,string" gorm:"index;not null"`
	Name             string        `json:"name" gorm:"not null"`
	Description      string        `json:"description"`
	IsRequired       bool          `json:"is_required"`
	Status           Status        `json:"status" gorm:"default:missing"`
	ExternalURL      *string       `json:"external_url,omitempty"`
	ExternalProvider *Provider     `json:"external_provider,omitempty"`
	OfficialFormURL  *string       `json:"official_form_url,omitempty"`
	VisibleToBuyer   bool          `json:"visible_to_buyer" gorm:"default:true"`
	VisibleToSeller  bool          `json:"visible_to_seller" gorm:"default:true"`
	UploadedBy       *snowflake.ID `json:"uploaded_by,string,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

// VisibleTo reports whether the document is shown to the given viewer role.
func (d Document) VisibleTo(role string) bool {
	if role == "buyer" {
		return d.VisibleToBuyer
	}
	return d.VisibleToSeller
}
