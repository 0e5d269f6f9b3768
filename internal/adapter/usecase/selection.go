package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"adbroker/internal/core/domain"
	"adbroker/internal/core/port"
)

const (
	collaboratorDirectory = "campaign_directory"
	collaboratorMatcher   = "targeting_matcher"
)

// SelectionUseCase picks the ad to serve for a placement. It validates the
// placement, scores every active campaign against the viewer, ranks the
// matching ones by bid * score / 100 and prices the winner. It holds no
// mutable state and is safe for concurrent use.
type SelectionUseCase struct {
	placements port.PlacementLookup
	campaigns  port.CampaignDirectory
	matcher    port.TargetingMatcher

	opts    Options
	logger  *slog.Logger
	metrics port.SelectionMetrics
	tracer  trace.Tracer

	// newToken mints the impression token for the winning campaign.
	newToken func(campaignID string) string
}

// NewSelectionUseCase wires the use case to its collaborators. A nil logger
// falls back to slog.Default and nil metrics are discarded.
func NewSelectionUseCase(
	placements port.PlacementLookup,
	campaigns port.CampaignDirectory,
	matcher port.TargetingMatcher,
	opts Options,
	logger *slog.Logger,
	metrics port.SelectionMetrics,
) *SelectionUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &SelectionUseCase{
		placements: placements,
		campaigns:  campaigns,
		matcher:    matcher,
		opts:       opts,
		logger:     logger,
		metrics:    metrics,
		tracer:     otel.Tracer("adbroker/usecase"),
		newToken:   impressionToken,
	}
}

// impressionToken is unique per call; its structure is not part of any
// contract.
func impressionToken(campaignID string) string {
	return uuid.NewString() + "." + campaignID
}

// SelectAd implements port.AdSelector.
func (u *SelectionUseCase) SelectAd(ctx context.Context, placementID string, user domain.UserContext) (sel domain.AdSelection, err error) {
	start := time.Now()
	ctx, span := u.tracer.Start(ctx, "SelectAd", trace.WithAttributes(attribute.String("placement.id", placementID)))
	defer func() {
		outcome := outcomeOf(err)
		u.metrics.ObserveSelection(outcome, time.Since(start))
		span.SetAttributes(attribute.String("selection.outcome", outcome))
		if err != nil && outcome != port.OutcomeNoAds {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	placement, err := u.validatePlacement(ctx, placementID)
	if err != nil {
		return domain.AdSelection{}, err
	}

	campaigns, err := u.activeCampaigns(ctx)
	if err != nil {
		return domain.AdSelection{}, err
	}
	if len(campaigns) == 0 {
		u.logger.Debug("no active campaigns", slog.String("placement_id", placementID))
		return domain.AdSelection{}, &domain.NoAdsAvailableError{PlacementID: placementID, Reason: "no active campaigns"}
	}

	candidates, err := u.scoreCandidates(ctx, campaigns, user)
	if err != nil {
		return domain.AdSelection{}, err
	}

	winner, ok := pickWinner(candidates)
	if !ok {
		u.logger.Debug("no matching campaigns",
			slog.String("placement_id", placementID),
			slog.Int("evaluated", len(candidates)))
		return domain.AdSelection{}, &domain.NoAdsAvailableError{PlacementID: placementID, Reason: "no campaign matched the user context"}
	}

	sel, err = u.assemble(placement, winner)
	if err != nil {
		u.logger.Error("assemble selection",
			slog.String("placement_id", placementID),
			slog.String("campaign_id", winner.Campaign.CampaignID),
			slog.Any("error", err))
		return domain.AdSelection{}, err
	}
	return sel, nil
}

func (u *SelectionUseCase) validatePlacement(ctx context.Context, placementID string) (domain.Placement, error) {
	placement, found, err := u.placements.GetPlacement(ctx, placementID)
	if err != nil {
		return domain.Placement{}, fmt.Errorf("lookup placement %q: %w", placementID, err)
	}
	if !found {
		return domain.Placement{}, &domain.PlacementNotFoundError{PlacementID: placementID}
	}
	if !placement.CanServeAds() {
		return domain.Placement{}, &domain.InactivePlacementError{PlacementID: placementID, Status: placement.Status}
	}
	return placement, nil
}

func (u *SelectionUseCase) activeCampaigns(ctx context.Context) ([]domain.ActiveCampaign, error) {
	callCtx, cancel := withOptionalTimeout(ctx, u.opts.DirectoryTimeout)
	defer cancel()

	campaigns, err := u.campaigns.ActiveCampaigns(callCtx)
	if err == nil {
		return campaigns, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	u.metrics.IncCollaboratorFailures(collaboratorDirectory)
	if !u.opts.FailOpen {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}
	u.logger.Warn("campaign directory failed, treating as empty", slog.Any("error", err))
	return nil, nil
}

// scoreCandidates fans the match calls out over a bounded errgroup and
// gathers one candidate per campaign, in input order.
func (u *SelectionUseCase) scoreCandidates(ctx context.Context, campaigns []domain.ActiveCampaign, user domain.UserContext) ([]domain.Candidate, error) {
	candidates := make([]domain.Candidate, len(campaigns))

	g, gctx := errgroup.WithContext(ctx)
	if u.opts.MaxConcurrency > 0 {
		g.SetLimit(u.opts.MaxConcurrency)
	}
	for i, c := range campaigns {
		i, c := i, c
		g.Go(func() error {
			res, err := u.match(gctx, c.CampaignID, user)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				u.metrics.IncCollaboratorFailures(collaboratorMatcher)
				if !u.opts.FailOpen {
					return fmt.Errorf("match campaign %q: %w", c.CampaignID, err)
				}
				u.logger.Warn("targeting match failed, excluding campaign",
					slog.String("campaign_id", c.CampaignID),
					slog.Any("error", err))
				res = domain.MatchResult{}
			}
			candidates[i] = domain.NewCandidate(c, res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matched int
	for _, c := range candidates {
		if c.Matched {
			matched++
		}
	}
	u.metrics.ObserveCandidates(len(candidates), matched)
	return candidates, nil
}

func (u *SelectionUseCase) match(ctx context.Context, campaignID string, user domain.UserContext) (domain.MatchResult, error) {
	ctx, cancel := withOptionalTimeout(ctx, u.opts.MatchTimeout)
	defer cancel()
	return u.matcher.Match(ctx, campaignID, user)
}

func (u *SelectionUseCase) assemble(placement domain.Placement, winner domain.Candidate) (domain.AdSelection, error) {
	bid := winner.Campaign.BidAmount
	var cost int64
	if bid > 0 {
		var err error
		cost, err = domain.Cost(placement.PricingModel, bid, 1)
		if err != nil {
			return domain.AdSelection{}, &domain.InvalidSelectionError{Reason: "estimate cost: " + err.Error()}
		}
	}
	ad := domain.SelectedAd{
		CampaignID: winner.Campaign.CampaignID,
		AdGroupID:  winner.Campaign.AdGroupID,
		AdID:       winner.Campaign.AdID,
	}
	return domain.NewAdSelection(ad, winner.MatchScore, bid, cost, u.newToken(ad.CampaignID))
}

// pickWinner returns the matched candidate with the greatest ranking score.
func pickWinner(candidates []domain.Candidate) (domain.Candidate, bool) {
	var (
		best  domain.Candidate
		found bool
	)
	for _, c := range candidates {
		if !c.Matched {
			continue
		}
		if !found || c.Outranks(best) {
			best, found = c, true
		}
	}
	return best, found
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return port.OutcomeSelected
	case errors.Is(err, domain.ErrNoAdsAvailable):
		return port.OutcomeNoAds
	case errors.Is(err, domain.ErrPlacementNotFound):
		return port.OutcomePlacementNotFound
	case errors.Is(err, domain.ErrInactivePlacement):
		return port.OutcomeInactivePlacement
	case errors.Is(err, domain.ErrInvalidSelection):
		return port.OutcomeInvalidSelection
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return port.OutcomeCanceled
	default:
		return port.OutcomeError
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveSelection(string, time.Duration) {}
func (nopMetrics) ObserveCandidates(int, int)             {}
func (nopMetrics) IncCollaboratorFailures(string)         {}
