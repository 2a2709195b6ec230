package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/turf-matchmaking/internal/domain/geo"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/matchmaking"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/team"
	"github.com/riskibarqy/turf-matchmaking/internal/domain/user"
	"github.com/riskibarqy/turf-matchmaking/internal/platform/logging"
)

const (
	OperationFindBestMatch      = "find_best_match"
	OperationFindPlayersForTeam = "find_players_for_team"
)

// TeamMatch is a ranked opponent.
type TeamMatch struct {
	Team       team.Team
	Score      float64
	MatchScore float64
}

// PlayerMatch is a ranked player candidate for a team.
type PlayerMatch struct {
	Player     user.User
	Score      float64
	MatchScore float64
}

type MatchmakingService struct {
	teamRepo     team.Repository
	userRepo     user.Repository
	scorer       *matchmaking.Scorer
	storeTimeout time.Duration
	recorder     RankingRecorder
	logger       *logging.Logger
}

func NewMatchmakingService(
	teamRepo team.Repository,
	userRepo user.Repository,
	scorer *matchmaking.Scorer,
	storeTimeout time.Duration,
	recorder RankingRecorder,
	logger *logging.Logger,
) *MatchmakingService {
	if scorer == nil {
		scorer = matchmaking.NewScorer(matchmaking.DefaultConfig())
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchmakingService{
		teamRepo:     teamRepo,
		userRepo:     userRepo,
		scorer:       scorer,
		storeTimeout: normalizeStoreTimeout(storeTimeout),
		recorder:     recorderOrNop(recorder),
		logger:       logger,
	}
}

// FindBestMatch ranks active opponents for a team by rating proximity,
// distance and availability.
func (s *MatchmakingService) FindBestMatch(ctx context.Context, teamID string, opts FindMatchOptions) (out []TeamMatch, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchmakingService.FindBestMatch")
	defer span.End()

	started := time.Now()
	candidateCount := 0
	defer func() {
		s.recorder.ObserveRanking(OperationFindBestMatch, candidateCount, len(out), time.Since(started), err)
		annotateRankingSpan(span, candidateCount, len(out), err)
	}()

	opts, err = opts.normalize()
	if err != nil {
		return nil, err
	}
	home, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	query := team.CandidateQuery{
		ExcludeID: home.ID,
		MinRating: home.Rating - opts.MaxRatingDiff,
		MaxRating: home.Rating + opts.MaxRatingDiff,
		Limit:     opts.Limit * candidateOverFetch,
	}
	if home.Location != nil {
		query.Within = &geo.Radius{Center: *home.Location, Km: opts.MaxDistanceKm}
	}

	candidates, err := storeCall(ctx, s.storeTimeout, "list team candidates", func(ctx context.Context) ([]team.Team, error) {
		return s.teamRepo.ListCandidates(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	candidateCount = len(candidates)

	scoreOpts := matchmaking.TeamScoreOptions{
		MaxDistanceKm: opts.MaxDistanceKm,
		MaxRatingDiff: opts.MaxRatingDiff,
	}
	ranked := make([]matchmaking.Ranked[team.Team], 0, len(candidates))
	for _, candidate := range candidates {
		// The store filter already excludes the home team; keep the guard
		// so a misbehaving store can never pair a team with itself.
		if candidate.ID == home.ID {
			continue
		}
		ranked = append(ranked, matchmaking.Ranked[team.Team]{
			Item:  candidate,
			Score: s.scorer.TeamSimilarity(home, candidate, scoreOpts),
		})
	}

	top := matchmaking.Top(ranked, opts.Limit)
	out = make([]TeamMatch, 0, len(top))
	for _, item := range top {
		out = append(out, TeamMatch{
			Team:       item.Item,
			Score:      item.Score,
			MatchScore: matchmaking.DisplayScore(item.Score),
		})
	}

	s.logger.DebugContext(ctx, "ranked opponents",
		"team_id", home.ID,
		"candidates", candidateCount,
		"returned", len(out),
	)
	return out, nil
}

// FindPlayersForTeam ranks players that could join a team.
func (s *MatchmakingService) FindPlayersForTeam(ctx context.Context, teamID string, opts FindPlayersOptions) (out []PlayerMatch, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchmakingService.FindPlayersForTeam")
	defer span.End()

	started := time.Now()
	candidateCount := 0
	defer func() {
		s.recorder.ObserveRanking(OperationFindPlayersForTeam, candidateCount, len(out), time.Since(started), err)
		annotateRankingSpan(span, candidateCount, len(out), err)
	}()

	opts, err = opts.normalize()
	if err != nil {
		return nil, err
	}
	squad, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	positions := opts.RequiredPositions
	if len(positions) == 0 {
		positions = squad.RequiredPositions
	}

	query := user.PlayerQuery{
		MinRating:  squad.Rating - playerRatingWindow,
		MaxRating:  squad.Rating + playerRatingWindow,
		Positions:  append([]user.Position(nil), positions...),
		ExcludeIDs: squad.MemberIDs(),
		Limit:      opts.Limit,
	}
	if squad.Location != nil {
		query.Within = &geo.Radius{Center: *squad.Location, Km: opts.MaxDistanceKm}
	}

	candidates, err := storeCall(ctx, s.storeTimeout, "list player candidates", func(ctx context.Context) ([]user.User, error) {
		return s.userRepo.ListPlayerCandidates(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	candidateCount = len(candidates)

	ranked := make([]matchmaking.Ranked[user.User], 0, len(candidates))
	for _, candidate := range candidates {
		if squad.HasMember(candidate.ID) {
			continue
		}
		ranked = append(ranked, matchmaking.Ranked[user.User]{
			Item:  candidate,
			Score: s.scorer.PlayerFit(candidate, squad, opts.MaxDistanceKm),
		})
	}

	top := matchmaking.Top(ranked, opts.Limit)
	out = make([]PlayerMatch, 0, len(top))
	for _, item := range top {
		out = append(out, PlayerMatch{
			Player:     item.Item,
			Score:      item.Score,
			MatchScore: matchmaking.DisplayScore(item.Score),
		})
	}

	s.logger.DebugContext(ctx, "ranked players",
		"team_id", squad.ID,
		"positions", positions,
		"candidates", candidateCount,
		"returned", len(out),
	)
	return out, nil
}

func (s *MatchmakingService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := storeLookup(ctx, s.storeTimeout, "get team", func(ctx context.Context) (team.Team, bool, error) {
		return s.teamRepo.GetByID(ctx, teamID)
	})
	if err != nil {
		return team.Team{}, err
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}
