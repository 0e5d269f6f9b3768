package domain

import "math"

// MaxBidAmount is the largest bid that can be ranked without overflowing
// bid * matchScore.
const MaxBidAmount = math.MaxInt64 / MaxMatchScore

// ActiveCampaign is a campaign currently eligible to serve, as listed by the
// campaign directory. BidAmount is in minor currency units, 0..MaxBidAmount.
type ActiveCampaign struct {
	CampaignID string
	AdGroupID  string
	AdID       string
	BidAmount  int64
}

// MatchResult is what a targeting matcher reports for one campaign.
type MatchResult struct {
	Score   int
	Matched bool
}

// Candidate is one campaign evaluated within a single selection call.
type Candidate struct {
	Campaign   ActiveCampaign
	MatchScore int
	Matched    bool
}

// NewCandidate builds a candidate from a match result. A match reported with
// a zero score carries no selection signal and is not treated as a match,
// and neither is a bid outside 0..MaxBidAmount.
func NewCandidate(c ActiveCampaign, res MatchResult) Candidate {
	return Candidate{
		Campaign:   c,
		MatchScore: res.Score,
		Matched:    res.Matched && res.Score > 0 && validBid(c.BidAmount),
	}
}

func validBid(bid int64) bool {
	return bid >= 0 && bid <= MaxBidAmount
}

// RankingScore is bid * matchScore / 100 with integer truncation.
func (c Candidate) RankingScore() int64 {
	return RankingScore(c.Campaign.BidAmount, c.MatchScore)
}

// RankingScore combines a bid with a match score.
func RankingScore(bid int64, matchScore int) int64 {
	return bid * int64(matchScore) / MaxMatchScore
}

// Outranks reports whether c beats other. Equal ranking scores go to the
// lexicographically smallest campaign id.
func (c Candidate) Outranks(other Candidate) bool {
	a, b := c.RankingScore(), other.RankingScore()
	if a != b {
		return a > b
	}
	return c.Campaign.CampaignID < other.Campaign.CampaignID
}
