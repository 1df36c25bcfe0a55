package models

import "time"

// Favicon is a downloaded icon for a bookmarked page.
type Favicon struct {
	PageURL   string    `json:"page_url"`
	IconURL   string    `json:"icon_url"`
	Data      []byte    `json:"data"`
	FetchedAt time.Time `json:"fetched_at"`
}
