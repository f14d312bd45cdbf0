package model

import (
	"errors"
	"fmt"
	"strings"
)

// PreferenceGroup names one of the yes/no radio groups in the options panel.
type PreferenceGroup string

const (
	PreferenceCommunication PreferenceGroup = "communication"
	PreferenceTailor        PreferenceGroup = "tailor"
	PreferenceEnrich        PreferenceGroup = "enrich"
)

// PreferenceGroups lists the radio groups in display order.
var PreferenceGroups = []PreferenceGroup{
	PreferenceCommunication,
	PreferenceTailor,
	PreferenceEnrich,
}

// Choice is the selected value of a radio group. The zero value means nothing
// has been picked yet.
type Choice string

const (
	ChoiceUnset Choice = ""
	ChoiceYes   Choice = "yes"
	ChoiceNo    Choice = "no"
)

// Choices lists the selectable values in display order.
var Choices = []Choice{ChoiceYes, ChoiceNo}

var (
	// ErrUnknownPreference is returned for a group outside PreferenceGroups.
	ErrUnknownPreference = errors.New("model: unknown preference group")
	// ErrInvalidChoice is returned for a value other than yes, no or unset.
	ErrInvalidChoice = errors.New("model: invalid preference choice")
)

// Preferences holds the three optional radio selections.
type Preferences struct {
	Communication Choice `json:"communication,omitempty"`
	Tailor        Choice `json:"tailor,omitempty"`
	Enrich        Choice `json:"enrich,omitempty"`
}

// ParseChoice normalises raw input ("Yes", " no ") into a Choice.
func ParseChoice(raw string) (Choice, error) {
	switch Choice(strings.ToLower(strings.TrimSpace(raw))) {
	case ChoiceUnset:
		return ChoiceUnset, nil
	case ChoiceYes:
		return ChoiceYes, nil
	case ChoiceNo:
		return ChoiceNo, nil
	default:
		return ChoiceUnset, fmt.Errorf("%w: %q", ErrInvalidChoice, raw)
	}
}

// Get returns the selection for group.
func (p Preferences) Get(group PreferenceGroup) (Choice, error) {
	switch group {
	case PreferenceCommunication:
		return p.Communication, nil
	case PreferenceTailor:
		return p.Tailor, nil
	case PreferenceEnrich:
		return p.Enrich, nil
	default:
		return ChoiceUnset, fmt.Errorf("%w: %q", ErrUnknownPreference, group)
	}
}

// Set stores choice for group.
func (p *Preferences) Set(group PreferenceGroup, choice Choice) error {
	switch choice {
	case ChoiceUnset, ChoiceYes, ChoiceNo:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
	}

	switch group {
	case PreferenceCommunication:
		p.Communication = choice
	case PreferenceTailor:
		p.Tailor = choice
	case PreferenceEnrich:
		p.Enrich = choice
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPreference, group)
	}
	return nil
}
