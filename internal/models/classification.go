package models

// Track identifies a classification outcome.
type Track string

const (
	TrackBusiness     Track = "business"
	TrackResearch     Track = "research"
	TrackUnclassified Track = "unclassified"
)

// ClassificationStats is the side artifact of a classification run.
type ClassificationStats struct {
	Total                  int     `json:"total"`
	BusinessCount          int     `json:"business_count"`
	ResearchCount          int     `json:"research_count"`
	UnclassifiedCount      int     `json:"unclassified_count"`
	BusinessPercentage     float64 `json:"business_percentage"`
	ResearchPercentage     float64 `json:"research_percentage"`
	UnclassifiedPercentage float64 `json:"unclassified_percentage"`
	HighUnclassified       bool    `json:"high_unclassified"`
}

// ClassificationResult holds three disjoint row-sets that together cover the input.
type ClassificationResult struct {
	Business     LedgerTable         `json:"business"`
	Research     LedgerTable         `json:"research"`
	Unclassified LedgerTable         `json:"unclassified"`
	Stats        ClassificationStats `json:"stats"`
}

// Rows returns the row-set for a track.
func (r *ClassificationResult) Rows(track Track) LedgerTable {
	switch track {
	case TrackBusiness:
		return r.Business
	case TrackResearch:
		return r.Research
	default:
		return r.Unclassified
	}
}
