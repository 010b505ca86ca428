package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dileepraotv/tt-tournament-system/brackets"
	"github.com/dileepraotv/tt-tournament-system/models"
	"github.com/dileepraotv/tt-tournament-system/scoring"
	"github.com/dileepraotv/tt-tournament-system/standings"
)

// EngineService is the stateless orchestration facade over the format
// engine. Every method is a pure computation on the snapshot it is handed;
// persistence, identifier assignment and sequencing of the stage lifecycle
// stay with the caller.
type EngineService interface {
	ValidateGame(score1, score2 int) scoring.ValidationResult
	MatchState(games []models.Game, format models.MatchFormat) (scoring.ComputedMatchState, error)
	CheckGameEntry(match models.Match, format models.MatchFormat) (scoring.GameEntryDecision, error)

	GenerateBracket(ctx context.Context, players []models.Player, cfg models.KnockoutStageConfig) (*brackets.BracketResult, error)
	AssignGroups(players []models.Player, cfg models.GroupStageConfig) ([]models.Group, error)
	GenerateFixtures(groups []models.Group, cfg models.GroupStageConfig) ([]models.Match, error)

	ComputeStandings(ctx context.Context, groups []models.Group, matches []models.Match, cfg models.GroupStageConfig) ([]standings.GroupStandings, error)
	ExtractQualifiers(groupTables []standings.GroupStandings) ([]brackets.Qualifier, error)
	CloseGroupStage(ctx context.Context, input CloseGroupStageInput) (*CloseGroupStageResult, error)
}

// CloseGroupStageInput is the snapshot for the stage-close convenience
// pipeline: group standings, qualifier extraction and next-stage bracket in
// one pass.
type CloseGroupStageInput struct {
	Players    []models.Player            `json:"players"`
	Groups     []models.Group             `json:"groups"`
	Matches    []models.Match             `json:"matches"`
	GroupStage models.GroupStageConfig    `json:"group_stage"`
	NextStage  models.KnockoutStageConfig `json:"next_stage"`
}

type CloseGroupStageResult struct {
	Standings  []standings.GroupStandings `json:"standings"`
	Qualifiers []brackets.Qualifier       `json:"qualifiers"`
	Bracket    *brackets.BracketResult    `json:"bracket"`
}

type engineService struct {
	logger *slog.Logger
}

func NewEngineService(logger *slog.Logger) EngineService {
	return &engineService{logger: logger}
}

func (s *engineService) ValidateGame(score1, score2 int) scoring.ValidationResult {
	return scoring.ValidateGameScore(score1, score2)
}

func (s *engineService) MatchState(games []models.Game, format models.MatchFormat) (scoring.ComputedMatchState, error) {
	state, err := scoring.ComputeMatchState(games, format)
	if err != nil {
		return scoring.ComputedMatchState{}, fmt.Errorf("%w: %w", ErrSnapshotInvalid, err)
	}
	return state, nil
}

func (s *engineService) CheckGameEntry(match models.Match, format models.MatchFormat) (scoring.GameEntryDecision, error) {
	decision, err := scoring.CanAddAnotherGame(match, format)
	if err != nil {
		return scoring.GameEntryDecision{}, fmt.Errorf("%w: %w", ErrSnapshotInvalid, err)
	}
	return decision, nil
}

func (s *engineService) GenerateBracket(ctx context.Context, players []models.Player, cfg models.KnockoutStageConfig) (*brackets.BracketResult, error) {
	res, err := brackets.GenerateSingleElimination(players, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBracketGeneration, err)
	}
	s.logger.InfoContext(ctx, "bracket generated",
		slog.Int("players", len(players)),
		slog.Int("bracket_size", res.BracketSize),
		slog.Int("rounds", res.Rounds))
	return res, nil
}

func (s *engineService) AssignGroups(players []models.Player, cfg models.GroupStageConfig) ([]models.Group, error) {
	groups, err := brackets.AssignGroups(players, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGroupAssignment, err)
	}
	return groups, nil
}

func (s *engineService) GenerateFixtures(groups []models.Group, cfg models.GroupStageConfig) ([]models.Match, error) {
	fixtures, err := brackets.GenerateRoundRobinFixtures(groups, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFixtureGeneration, err)
	}
	return fixtures, nil
}

// ComputeStandings fans the per-group computation out with an errgroup.
// The engine itself stays single-threaded; groups are independent, so the
// fan-out is safe caller-side concurrency.
func (s *engineService) ComputeStandings(ctx context.Context, groups []models.Group, matches []models.Match, cfg models.GroupStageConfig) ([]standings.GroupStandings, error) {
	tables := make([]standings.GroupStandings, len(groups))

	g, _ := errgroup.WithContext(ctx)
	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			table, err := standings.Compute(group, matches, cfg.Format, cfg.AdvanceCount)
			if err != nil {
				return fmt.Errorf("group %d: %w", group.Number, err)
			}
			tables[i] = standings.GroupStandings{Group: group, Standings: table}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStandingsComputeFailed, err)
	}

	if cfg.WildcardCount > 0 {
		withWildcards, err := standings.ApplyWildcards(tables, cfg.AdvanceCount+1, cfg.WildcardCount)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStandingsComputeFailed, err)
		}
		tables = withWildcards
	}
	return tables, nil
}

func (s *engineService) ExtractQualifiers(groupTables []standings.GroupStandings) ([]brackets.Qualifier, error) {
	quals, err := brackets.ExtractQualifiers(groupTables)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQualifierExtraction, err)
	}
	return quals, nil
}

// CloseGroupStage runs the stage-close pipeline: standings with wildcards,
// qualifier extraction and the next knockout bracket. The caller persists
// the result; nothing is stored here.
func (s *engineService) CloseGroupStage(ctx context.Context, input CloseGroupStageInput) (*CloseGroupStageResult, error) {
	tables, err := s.ComputeStandings(ctx, input.Groups, input.Matches, input.GroupStage)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStageClose, err)
	}

	quals, err := s.ExtractQualifiers(tables)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStageClose, err)
	}

	entrants := brackets.QualifierPlayers(quals, input.Players)
	bracket, err := s.GenerateBracket(ctx, entrants, input.NextStage)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStageClose, err)
	}

	s.logger.InfoContext(ctx, "group stage closed",
		slog.Int("groups", len(input.Groups)),
		slog.Int("qualifiers", len(quals)))

	return &CloseGroupStageResult{
		Standings:  tables,
		Qualifiers: quals,
		Bracket:    bracket,
	}, nil
}
