package deck

import (
	"errors"
	"fmt"

	"deckgenie/content"
	"deckgenie/session"
)

// teamConfigKey is where the roster lives in the session store.
const teamConfigKey = "team_config"

// TeamConfig controls whether and how the team slide renders.
type TeamConfig struct {
	IncludeTeamSlide bool                 `json:"include_team_slide"`
	TeamMembers      []content.TeamMember `json:"team_members"`
}

// genericTeamNames are placeholder names and bare titles that disqualify a
// roster entry. A deck with only these reads as template filler, so the
// team slide is suppressed.
var genericTeamNames = map[string]struct{}{
	"John Doe": {}, "Jane Smith": {}, "Team Member": {},
	"CEO": {}, "CTO": {}, "Manager": {},
	"Chief Executive Officer": {}, "Chief Technology Officer": {},
	"Chief Operating Officer": {},
	"COO": {}, "CFO": {}, "CMO": {},
	"Director": {}, "VP": {}, "Vice President": {},
}

// HasRealMembers reports whether at least one roster entry carries a
// non-generic name and title.
func (tc TeamConfig) HasRealMembers() bool {
	for _, m := range tc.TeamMembers {
		if m.Name == "" {
			continue
		}
		_, genericName := genericTeamNames[m.Name]
		_, genericTitle := genericTeamNames[m.Title]
		if !genericName && !genericTitle {
			return true
		}
	}
	return false
}

// ShouldRender is the full team-slide gate: explicit opt-in, a non-empty
// roster, and at least one real member.
func (tc TeamConfig) ShouldRender() bool {
	return tc.IncludeTeamSlide && len(tc.TeamMembers) > 0 && tc.HasRealMembers()
}

// LoadTeamConfig reads the roster from the session store. A missing record
// means the team slide stays off.
func LoadTeamConfig(store session.Store) (TeamConfig, error) {
	var tc TeamConfig
	if store == nil {
		return tc, nil
	}
	err := store.Get(teamConfigKey, &tc)
	if errors.Is(err, session.ErrNotFound) {
		return TeamConfig{}, nil
	}
	if err != nil {
		return TeamConfig{}, WrapError("team", "LoadTeamConfig", fmt.Errorf("read roster: %w", err))
	}
	return tc, nil
}

// SaveTeamConfig persists the roster.
func SaveTeamConfig(store session.Store, tc TeamConfig) error {
	if store == nil {
		return WrapError("team", "SaveTeamConfig", errors.New("no session store"))
	}
	if err := store.Set(teamConfigKey, tc); err != nil {
		return WrapError("team", "SaveTeamConfig", err)
	}
	return nil
}
