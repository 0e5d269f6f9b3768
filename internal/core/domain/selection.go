package domain

import (
	"fmt"
	"strings"
)

// SelectedAd identifies the creative chosen for a placement.
type SelectedAd struct {
	CampaignID string
	AdGroupID  string
	AdID       string
}

func (a SelectedAd) validate() error {
	switch {
	case strings.TrimSpace(a.CampaignID) == "":
		return &InvalidSelectionError{Reason: "campaign id is blank"}
	case strings.TrimSpace(a.AdGroupID) == "":
		return &InvalidSelectionError{Reason: "ad group id is blank"}
	case strings.TrimSpace(a.AdID) == "":
		return &InvalidSelectionError{Reason: "ad id is blank"}
	}
	return nil
}

// AdSelection is the outcome of a successful selection. Its fields are only
// readable; use NewAdSelection to build one.
type AdSelection struct {
	ad              SelectedAd
	matchScore      int
	bid             int64
	estimatedCost   int64
	impressionToken string
}

// NewAdSelection validates and assembles a selection result. Failures are
// *InvalidSelectionError values.
func NewAdSelection(ad SelectedAd, matchScore int, bid, estimatedCost int64, impressionToken string) (AdSelection, error) {
	if err := ad.validate(); err != nil {
		return AdSelection{}, err
	}
	if matchScore < 0 || matchScore > MaxMatchScore {
		return AdSelection{}, &InvalidSelectionError{Reason: fmt.Sprintf("match score %d out of range", matchScore)}
	}
	if bid < 0 {
		return AdSelection{}, &InvalidSelectionError{Reason: fmt.Sprintf("negative bid %d", bid)}
	}
	if estimatedCost < 0 {
		return AdSelection{}, &InvalidSelectionError{Reason: fmt.Sprintf("negative estimated cost %d", estimatedCost)}
	}
	if strings.TrimSpace(impressionToken) == "" {
		return AdSelection{}, &InvalidSelectionError{Reason: "impression token is blank"}
	}
	return AdSelection{
		ad:              ad,
		matchScore:      matchScore,
		bid:             bid,
		estimatedCost:   estimatedCost,
		impressionToken: impressionToken,
	}, nil
}

func (s AdSelection) Ad() SelectedAd          { return s.ad }
func (s AdSelection) MatchScore() int         { return s.matchScore }
func (s AdSelection) Bid() int64              { return s.bid }
func (s AdSelection) EstimatedCost() int64    { return s.estimatedCost }
func (s AdSelection) ImpressionToken() string { return s.impressionToken }

// RankingScore is derived from bid and match score; it is not stored.
func (s AdSelection) RankingScore() int64 {
	return RankingScore(s.bid, s.matchScore)
}
