package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/winzz-app/tournament-server/engine"
	"github.com/winzz-app/tournament-server/live"
	"github.com/winzz-app/tournament-server/models"
	"github.com/winzz-app/tournament-server/repositories"
	"github.com/winzz-app/tournament-server/storage"
	"github.com/winzz-app/tournament-server/utils"
)

const minTournamentNameLen = 3

// Notifier pushes messages to the subscribers of a tournament room. The
// websocket hub satisfies it; a nil Notifier disables pushes.
type Notifier interface {
	BroadcastToRoom(roomID string, message live.Message)
}

// CreateTournamentInput carries the raw setup form. The service trims and
// validates every field before generating anything.
type CreateTournamentInput struct {
	Name        string                  `json:"name"`
	Format      models.TournamentFormat `json:"format"`
	FixtureType models.FixtureType      `json:"fixture_type"`
	Players     []string                `json:"players"`
}

type TournamentService interface {
	Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	Get(ctx context.Context, id string) (*models.Tournament, error)
	List(ctx context.Context, onlyIncomplete bool) ([]*models.Tournament, error)
	Delete(ctx context.Context, id string) error
	Reshuffle(ctx context.Context, id string) (*models.Tournament, error)
	SetScore(ctx context.Context, id, matchID string, side engine.Side, raw string) (*models.Tournament, error)
	ClearScore(ctx context.Context, id, matchID string, side engine.Side) (*models.Tournament, error)
	CompleteMatch(ctx context.Context, id, matchID string) (*models.Tournament, error)
	ReopenMatch(ctx context.Context, id, matchID string) (*models.Tournament, error)
	Standings(ctx context.Context, id string) ([]models.Standing, error)
	Finish(ctx context.Context, id string) (*models.Tournament, error)
}

type tournamentService struct {
	repo     repositories.TournamentRepository
	notifier Notifier
	archiver storage.SnapshotArchiver
	scoring  engine.Scoring
	rng      *rand.Rand
	logger   *slog.Logger
}

// NewTournamentService wires the tournament workflow together. notifier and
// archiver may be nil; rng may be nil to use the default source.
func NewTournamentService(
	repo repositories.TournamentRepository,
	notifier Notifier,
	archiver storage.SnapshotArchiver,
	scoring engine.Scoring,
	rng *rand.Rand,
	logger *slog.Logger,
) TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &tournamentService{
		repo:     repo,
		notifier: notifier,
		archiver: archiver,
		scoring:  scoring,
		rng:      rng,
		logger:   logger,
	}
}

func (s *tournamentService) Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	name, format, fixtureType, players, err := normalizeSetup(input)
	if err != nil {
		return nil, err
	}

	teams := engine.BuildTeams(s.rng, players, format)
	matches, totalRounds := engine.GenerateFixtures(s.rng, teams, fixtureOptions(fixtureType))

	tournament := &models.Tournament{
		ID:           utils.NewTournamentID(name),
		Name:         name,
		Format:       format,
		FixtureType:  fixtureType,
		Players:      players,
		Teams:        teams,
		Matches:      matches,
		CurrentRound: 1,
		TotalRounds:  totalRounds,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, tournament); err != nil {
		return nil, fmt.Errorf("save tournament: %w", err)
	}

	s.logger.Info("tournament created",
		"tournament_id", tournament.ID,
		"format", tournament.Format,
		"teams", len(tournament.Teams),
		"matches", len(tournament.Matches))
	return tournament, nil
}

func (s *tournamentService) Get(ctx context.Context, id string) (*models.Tournament, error) {
	return s.load(ctx, id)
}

func (s *tournamentService) List(ctx context.Context, onlyIncomplete bool) ([]*models.Tournament, error) {
	tournaments, err := s.repo.List(ctx, onlyIncomplete)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *tournamentService) Delete(ctx context.Context, id string) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.repo.Delete(gctx, id)
	})
	if s.archiver != nil {
		g.Go(func() error {
			if err := s.archiver.RemoveSnapshot(gctx, id); err != nil {
				s.logger.Warn("failed to remove archived snapshot", "tournament_id", id, "error", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}

	s.logger.Info("tournament deleted", "tournament_id", id)
	return nil
}

// Reshuffle regenerates teams and fixtures from the original player list.
// Any recorded scores are discarded with the old matches.
func (s *tournamentService) Reshuffle(ctx context.Context, id string) (*models.Tournament, error) {
	tournament, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if tournament.IsComplete {
		return nil, ErrTournamentFinished
	}

	teams := engine.BuildTeams(s.rng, tournament.Players, tournament.Format)
	matches, totalRounds := engine.GenerateFixtures(s.rng, teams, fixtureOptions(tournament.FixtureType))

	tournament.Teams = teams
	tournament.Matches = matches
	tournament.CurrentRound = 1
	tournament.TotalRounds = totalRounds

	if err := s.saveAndNotify(ctx, tournament); err != nil {
		return nil, err
	}
	s.logger.Info("tournament reshuffled", "tournament_id", id)
	return tournament, nil
}

func (s *tournamentService) SetScore(ctx context.Context, id, matchID string, side engine.Side, raw string) (*models.Tournament, error) {
	return s.mutateMatch(ctx, id, matchID, func(match *models.Match) error {
		return engine.SetScore(match, side, raw)
	})
}

// ClearScore removes the recorded entry for one side of an open match.
func (s *tournamentService) ClearScore(ctx context.Context, id, matchID string, side engine.Side) (*models.Tournament, error) {
	return s.SetScore(ctx, id, matchID, side, "")
}

func (s *tournamentService) CompleteMatch(ctx context.Context, id, matchID string) (*models.Tournament, error) {
	return s.mutateMatch(ctx, id, matchID, engine.Complete)
}

func (s *tournamentService) ReopenMatch(ctx context.Context, id, matchID string) (*models.Tournament, error) {
	return s.mutateMatch(ctx, id, matchID, engine.Reopen)
}

func (s *tournamentService) Standings(ctx context.Context, id string) ([]models.Standing, error) {
	tournament, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return engine.ComputeStandings(tournament.Teams, tournament.Matches, s.scoring), nil
}

// Finish marks a tournament complete once every match has a result, and
// archives the final snapshot when an archiver is configured.
func (s *tournamentService) Finish(ctx context.Context, id string) (*models.Tournament, error) {
	tournament, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if tournament.IsComplete {
		return nil, ErrTournamentFinished
	}
	for i := range tournament.Matches {
		if !tournament.Matches[i].Completed {
			return nil, ErrMatchesStillOpen
		}
	}

	tournament.IsComplete = true
	engine.ApplyRecords(tournament.Teams, tournament.Matches, s.scoring)

	if err := s.saveAndNotify(ctx, tournament); err != nil {
		return nil, err
	}
	s.archive(ctx, tournament)

	s.logger.Info("tournament finished", "tournament_id", id)
	return tournament, nil
}

// mutateMatch applies a single-match mutation, refreshes the cached team
// records and persists the whole snapshot.
func (s *tournamentService) mutateMatch(ctx context.Context, id, matchID string, mutate func(*models.Match) error) (*models.Tournament, error) {
	tournament, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if tournament.IsComplete {
		return nil, ErrTournamentFinished
	}
	match, ok := tournament.MatchByID(matchID)
	if !ok {
		return nil, ErrMatchNotFound
	}
	if err := mutate(match); err != nil {
		return nil, err
	}

	engine.ApplyRecords(tournament.Teams, tournament.Matches, s.scoring)
	if err := s.saveAndNotify(ctx, tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

func (s *tournamentService) load(ctx context.Context, id string) (*models.Tournament, error) {
	tournament, err := s.repo.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrTournamentNotFound):
			return nil, ErrTournamentNotFound
		case errors.Is(err, repositories.ErrTournamentCorrupt):
			return nil, ErrTournamentCorrupted
		default:
			return nil, fmt.Errorf("get tournament: %w", err)
		}
	}
	return tournament, nil
}

func (s *tournamentService) saveAndNotify(ctx context.Context, tournament *models.Tournament) error {
	if err := s.repo.Save(ctx, tournament); err != nil {
		return fmt.Errorf("save tournament: %w", err)
	}
	if s.notifier != nil {
		s.notifier.BroadcastToRoom(tournament.ID, live.Message{
			Type:         live.MessageTournamentUpdated,
			TournamentID: tournament.ID,
			Payload:      tournament,
		})
		s.notifier.BroadcastToRoom(tournament.ID, live.Message{
			Type:         live.MessageStandingsUpdated,
			TournamentID: tournament.ID,
			Payload:      engine.ComputeStandings(tournament.Teams, tournament.Matches, s.scoring),
		})
	}
	return nil
}

// archive is best effort: a failed upload is logged, never surfaced.
func (s *tournamentService) archive(ctx context.Context, tournament *models.Tournament) {
	if s.archiver == nil {
		return
	}
	snapshot, err := json.Marshal(tournament)
	if err != nil {
		s.logger.Warn("failed to encode snapshot for archive", "tournament_id", tournament.ID, "error", err)
		return
	}
	location, err := s.archiver.ArchiveSnapshot(ctx, tournament.ID, snapshot)
	if err != nil {
		s.logger.Warn("failed to archive snapshot", "tournament_id", tournament.ID, "error", err)
		return
	}
	s.logger.Info("tournament snapshot archived", "tournament_id", tournament.ID, "location", location)
}

func normalizeSetup(input CreateTournamentInput) (string, models.TournamentFormat, models.FixtureType, []string, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return "", "", "", nil, ErrTournamentNameRequired
	}
	if len(name) < minTournamentNameLen {
		return "", "", "", nil, ErrTournamentNameTooShort
	}

	format := input.Format
	if format != models.FormatSingles && format != models.FormatDoubles {
		return "", "", "", nil, ErrInvalidFormat
	}

	fixtureType := input.FixtureType
	if fixtureType == "" {
		fixtureType = models.FixtureWPL
	}
	if fixtureType != models.FixtureWPL && fixtureType != models.FixtureRoundRobin {
		return "", "", "", nil, ErrInvalidFixtureType
	}

	players := make([]string, 0, len(input.Players))
	seen := make(map[string]bool, len(input.Players))
	for _, p := range input.Players {
		p = strings.TrimSpace(p)
		if p == "" {
			return "", "", "", nil, ErrPlayerNameRequired
		}
		if seen[p] {
			return "", "", "", nil, ErrPlayerNamesNotUnique
		}
		seen[p] = true
		players = append(players, p)
	}

	switch format {
	case models.FormatSingles:
		if len(players) < 2 {
			return "", "", "", nil, ErrTooFewPlayers
		}
	case models.FormatDoubles:
		if len(players) < 4 {
			return "", "", "", nil, ErrTooFewPlayers
		}
		if len(players)%2 != 0 {
			return "", "", "", nil, ErrOddPlayersForDoubles
		}
	}

	return name, format, fixtureType, players, nil
}

// WPL-style fixtures get the day schedule; classic round robin keeps its
// walk-through order randomized instead.
func fixtureOptions(fixtureType models.FixtureType) engine.FixtureOptions {
	if fixtureType == models.FixtureRoundRobin {
		return engine.FixtureOptions{ShuffleOrder: true}
	}
	return engine.FixtureOptions{Schedule: true}
}
