package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dileepraotv/tt-tournament-system/models"
	"github.com/dileepraotv/tt-tournament-system/services"
	"github.com/dileepraotv/tt-tournament-system/standings"
)

// EngineHandler exposes the format engine as a stateless compute API.
// Requests carry the full snapshot; responses carry the full result.
type EngineHandler struct {
	engine services.EngineService
	logger *slog.Logger
}

func NewEngineHandler(engine services.EngineService, logger *slog.Logger) *EngineHandler {
	return &EngineHandler{engine: engine, logger: logger}
}

type validateGameInput struct {
	Score1 int `json:"score1"`
	Score2 int `json:"score2"`
}

func (h *EngineHandler) ValidateGame(w http.ResponseWriter, r *http.Request) {
	var input validateGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	result := h.engine.ValidateGame(input.Score1, input.Score2)
	_ = writeJSON(w, http.StatusOK, result)
}

type matchStateInput struct {
	Games  []models.Game      `json:"games"`
	Format models.MatchFormat `json:"format"`
}

func (h *EngineHandler) MatchState(w http.ResponseWriter, r *http.Request) {
	var input matchStateInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	state, err := h.engine.MatchState(input.Games, input.Format)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, state)
}

type entryCheckInput struct {
	Match  models.Match       `json:"match"`
	Format models.MatchFormat `json:"format"`
}

func (h *EngineHandler) CheckGameEntry(w http.ResponseWriter, r *http.Request) {
	var input entryCheckInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	decision, err := h.engine.CheckGameEntry(input.Match, input.Format)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, decision)
}

type generateBracketInput struct {
	Players []models.Player            `json:"players"`
	Config  models.KnockoutStageConfig `json:"config"`
}

func (h *EngineHandler) GenerateBracket(w http.ResponseWriter, r *http.Request) {
	var input generateBracketInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	if len(input.Players) == 0 {
		badRequestResponse(w, errors.New("players are required"))
		return
	}
	result, err := h.engine.GenerateBracket(r.Context(), input.Players, input.Config)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, result)
}

type assignGroupsInput struct {
	Players []models.Player         `json:"players"`
	Config  models.GroupStageConfig `json:"config"`
}

func (h *EngineHandler) AssignGroups(w http.ResponseWriter, r *http.Request) {
	var input assignGroupsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	if len(input.Players) == 0 {
		badRequestResponse(w, errors.New("players are required"))
		return
	}
	groups, err := h.engine.AssignGroups(input.Players, input.Config)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"groups": groups})
}

type generateFixturesInput struct {
	Groups []models.Group          `json:"groups"`
	Config models.GroupStageConfig `json:"config"`
}

func (h *EngineHandler) GenerateFixtures(w http.ResponseWriter, r *http.Request) {
	var input generateFixturesInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	if len(input.Groups) == 0 {
		badRequestResponse(w, errors.New("groups are required"))
		return
	}
	fixtures, err := h.engine.GenerateFixtures(input.Groups, input.Config)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"matches": fixtures})
}

type computeStandingsInput struct {
	Groups  []models.Group          `json:"groups"`
	Matches []models.Match          `json:"matches"`
	Config  models.GroupStageConfig `json:"config"`
}

func (h *EngineHandler) ComputeStandings(w http.ResponseWriter, r *http.Request) {
	var input computeStandingsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	if len(input.Groups) == 0 {
		badRequestResponse(w, errors.New("groups are required"))
		return
	}
	tables, err := h.engine.ComputeStandings(r.Context(), input.Groups, input.Matches, input.Config)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"standings": tables})
}

type extractQualifiersInput struct {
	Standings []standings.GroupStandings `json:"standings"`
}

func (h *EngineHandler) ExtractQualifiers(w http.ResponseWriter, r *http.Request) {
	var input extractQualifiersInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	quals, err := h.engine.ExtractQualifiers(input.Standings)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"qualifiers": quals})
}

func (h *EngineHandler) CloseGroupStage(w http.ResponseWriter, r *http.Request) {
	var input services.CloseGroupStageInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	if len(input.Groups) == 0 {
		badRequestResponse(w, errors.New("groups are required"))
		return
	}
	result, err := h.engine.CloseGroupStage(r.Context(), input)
	if err != nil {
		h.logger.Error("stage close failed", slog.String("error", err.Error()))
		mapServiceErrorToHTTP(w, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, result)
}

func (h *EngineHandler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, jsonResponse{"status": "available"})
}
