package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"matchday/models"
)

func TestPlayerListScopedToOwnTeam(t *testing.T) {
	env := newTestEnv(t)
	league := env.seedLeague(t, "Premier")
	rovers := env.seedTeam(t, league.ID, "Rovers")
	united := env.seedTeam(t, league.ID, "United")
	env.seedPlayer(t, rovers.ID, "Ada")
	env.seedPlayer(t, united.ID, "Mika")

	admin := env.seedAdmin(t)
	coach := env.seedCoach(t, "coach@rovers.test", &rovers.ID)

	resp, env1 := env.request(t, http.MethodGet, "/players", admin, nil)
	if resp.StatusCode != http.StatusOK || env1.Count == nil || *env1.Count != 2 {
		t.Fatalf("admin list: status=%d count=%v, want 200/2", resp.StatusCode, env1.Count)
	}

	resp, env2 := env.request(t, http.MethodGet, "/players", coach, nil)
	if resp.StatusCode != http.StatusOK || env2.Count == nil || *env2.Count != 1 {
		t.Fatalf("coach list: status=%d count=%v, want 200/1", resp.StatusCode, env2.Count)
	}
	var players []models.Player
	if err := json.Unmarshal(env2.Data, &players); err != nil {
		t.Fatalf("decode players: %v", err)
	}
	if players[0].FirstName != "Ada" {
		t.Fatalf("coach sees %s, want only own roster", players[0].FirstName)
	}
}

func TestPlayerListForTeamlessCoachIsEmpty(t *testing.T) {
	env := newTestEnv(t)
	league := env.seedLeague(t, "Premier")
	rovers := env.seedTeam(t, league.ID, "Rovers")
	env.seedPlayer(t, rovers.ID, "Ada")

	coach := env.seedCoach(t, "coach@nowhere.test", nil)

	resp, body := env.request(t, http.MethodGet, "/players", coach, nil)
	if resp.StatusCode != http.StatusOK || body.Count == nil || *body.Count != 0 {
		t.Fatalf("status=%d count=%v, want 200/0", resp.StatusCode, body.Count)
	}
}

func TestPlayerGetAcrossTeamsDenied(t *testing.T) {
	env := newTestEnv(t)
	league := env.seedLeague(t, "Premier")
	rovers := env.seedTeam(t, league.ID, "Rovers")
	united := env.seedTeam(t, league.ID, "United")
	foreign := env.seedPlayer(t, united.ID, "Mika")

	coach := env.seedCoach(t, "coach@rovers.test", &rovers.ID)

	resp, _ := env.request(t, http.MethodGet, fmt.Sprintf("/players/%d", foreign.ID), coach, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestPlayerCreateOnForeignTeamDenied(t *testing.T) {
	env := newTestEnv(t)
	league := env.seedLeague(t, "Premier")
	rovers := env.seedTeam(t, league.ID, "Rovers")
	united := env.seedTeam(t, league.ID, "United")

	coach := env.seedCoach(t, "coach@rovers.test", &rovers.ID)

	payload := map[string]interface{}{
		"first_name": "Ada", "last_name": "Eze", "team_id": united.ID,
	}
	resp, _ := env.request(t, http.MethodPost, "/players", coach, payload)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign create: status = %d, want 403", resp.StatusCode)
	}

	payload["team_id"] = rovers.ID
	resp, _ = env.request(t, http.MethodPost, "/players", coach, payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("own-team create: status = %d, want 201", resp.StatusCode)
	}
}

func TestPlayerMoveToForeignTeamDenied(t *testing.T) {
	env := newTestEnv(t)
	league := env.seedLeague(t, "Premier")
	rovers := env.seedTeam(t, league.ID, "Rovers")
	united := env.seedTeam(t, league.ID, "United")
	player := env.seedPlayer(t, rovers.ID, "Ada")

	coach := env.seedCoach(t, "coach@rovers.test", &rovers.ID)
	admin := env.seedAdmin(t)

	payload := map[string]interface{}{"team_id": united.ID}
	resp, _ := env.request(t, http.MethodPut, fmt.Sprintf("/players/%d", player.ID), coach, payload)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("coach move: status = %d, want 403", resp.StatusCode)
	}

	resp, _ = env.request(t, http.MethodPut, fmt.Sprintf("/players/%d", player.ID), admin, payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin move: status = %d, want 200", resp.StatusCode)
	}
}

func TestPlayerDeleteScoped(t *testing.T) {
	env := newTestEnv(t)
	league := env.seedLeague(t, "Premier")
	rovers := env.seedTeam(t, league.ID, "Rovers")
	united := env.seedTeam(t, league.ID, "United")
	own := env.seedPlayer(t, rovers.ID, "Ada")
	foreign := env.seedPlayer(t, united.ID, "Mika")

	coach := env.seedCoach(t, "coach@rovers.test", &rovers.ID)

	resp, _ := env.request(t, http.MethodDelete, fmt.Sprintf("/players/%d", foreign.ID), coach, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign delete: status = %d, want 403", resp.StatusCode)
	}

	resp, _ = env.request(t, http.MethodDelete, fmt.Sprintf("/players/%d", own.ID), coach, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("own delete: status = %d, want 200", resp.StatusCode)
	}
}

func TestPlayersByTeamRequiresTeamAccess(t *testing.T) {
	env := newTestEnv(t)
	league := env.seedLeague(t, "Premier")
	rovers := env.seedTeam(t, league.ID, "Rovers")
	united := env.seedTeam(t, league.ID, "United")
	env.seedPlayer(t, united.ID, "Mika")

	coach := env.seedCoach(t, "coach@rovers.test", &rovers.ID)
	admin := env.seedAdmin(t)

	resp, _ := env.request(t, http.MethodGet, fmt.Sprintf("/teams/%d/players", united.ID), coach, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("coach foreign roster: status = %d, want 403", resp.StatusCode)
	}

	resp, body := env.request(t, http.MethodGet, fmt.Sprintf("/teams/%d/players", united.ID), admin, nil)
	if resp.StatusCode != http.StatusOK || body.Count == nil || *body.Count != 1 {
		t.Fatalf("admin roster: status=%d count=%v, want 200/1", resp.StatusCode, body.Count)
	}
}

func TestPlayerUnknownIDIs404(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedAdmin(t)

	resp, body := env.request(t, http.MethodGet, "/players/999", admin, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if body.Success {
		t.Fatal("error envelope claims success")
	}
}
