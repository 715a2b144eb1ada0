// Package lifecycle holds the campaign and application status rules. The
// same tables drive the actions a console view offers and the pre-flight
// check run before a status change is sent to the marketplace API.
package lifecycle

import (
	"errors"
	"fmt"

	"wrapads/internal/models"
)

var (
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrUnknownAction        = errors.New("unknown action")
)

type ActionName string

const (
	ActionActivate ActionName = "activate"
	ActionPause    ActionName = "pause"
	ActionComplete ActionName = "complete"
	ActionResume   ActionName = "resume"
	ActionCancel   ActionName = "cancel"
)

// Action is one button a campaign view offers for its current status.
type Action struct {
	Name  ActionName            `json:"action"`
	Label string                `json:"label"`
	To    models.CampaignStatus `json:"to"`
}

var campaignTransitions = map[models.CampaignStatus][]Action{
	models.CampaignStatusDraft: {
		{Name: ActionActivate, Label: "Activate", To: models.CampaignStatusActive},
	},
	models.CampaignStatusActive: {
		{Name: ActionPause, Label: "Pause", To: models.CampaignStatusPaused},
		{Name: ActionComplete, Label: "Mark Completed", To: models.CampaignStatusCompleted},
	},
	models.CampaignStatusPaused: {
		{Name: ActionResume, Label: "Resume", To: models.CampaignStatusActive},
		{Name: ActionCancel, Label: "Cancel", To: models.CampaignStatusCancelled},
	},
	models.CampaignStatusCompleted: {},
	models.CampaignStatusCancelled: {},
}

// OfferedActions returns the actions available from status, in display
// order. Terminal and unknown statuses offer nothing.
func OfferedActions(status models.CampaignStatus) []Action {
	actions := campaignTransitions[status]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

func CanTransition(from, to models.CampaignStatus) bool {
	for _, a := range campaignTransitions[from] {
		if a.To == to {
			return true
		}
	}
	return false
}

func IsTerminal(status models.CampaignStatus) bool {
	actions, ok := campaignTransitions[status]
	return ok && len(actions) == 0
}

// CheckTransition validates a raw target status against the table.
func CheckTransition(from, to models.CampaignStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown target status %q", ErrTransitionNotAllowed, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, from, to)
	}
	return nil
}

// ActionFor resolves an action name against the campaign's current status.
func ActionFor(from models.CampaignStatus, name ActionName) (Action, error) {
	known := false
	for _, actions := range campaignTransitions {
		for _, a := range actions {
			if a.Name == name {
				known = true
			}
		}
	}
	if !known {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	for _, a := range campaignTransitions[from] {
		if a.Name == name {
			return a, nil
		}
	}
	return Action{}, fmt.Errorf("%w: %s is not offered for %s campaigns", ErrTransitionNotAllowed, name, from)
}

// TransitionTable lists every status with its offered actions, in the
// order of models.CampaignStatuses.
func TransitionTable() []StatusActions {
	out := make([]StatusActions, 0, len(models.CampaignStatuses))
	for _, s := range models.CampaignStatuses {
		out = append(out, StatusActions{
			Status:   s,
			Terminal: IsTerminal(s),
			Actions:  OfferedActions(s),
		})
	}
	return out
}

type StatusActions struct {
	Status   models.CampaignStatus `json:"status"`
	Terminal bool                  `json:"terminal"`
	Actions  []Action              `json:"actions"`
}
