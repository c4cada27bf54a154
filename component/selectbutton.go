package component

import (
	"fmt"
	"math"
)

// ButtonAction names what an NPC dialog button does when pressed.
type ButtonAction int

const (
	ActionOpenShop ButtonAction = iota
	ActionEnterGiftCode
	ActionStartQuest
	ActionCompleteQuest
	ActionTeleport
	ActionUpgradeEquipment
	ActionTrade
	ActionBank
	ActionGuild
	ActionCustom
)

type button struct {
	text    string
	action  ButtonAction
	enabled bool
}

// SelectButton gives an NPC an interactive dialog: a name, greeting text,
// and a set of buttons each bound to an action.
type SelectButton struct {
	buttons            map[string]*button
	InteractionEnabled bool
	interactionRange   float64
	DialogText         string
	NPCName            string
}

// NewSelectButton creates a dialog component for the named NPC.
func NewSelectButton(npcName string) *SelectButton {
	return &SelectButton{
		buttons:            make(map[string]*button),
		InteractionEnabled: true,
		interactionRange:   32,
		NPCName:            npcName,
	}
}

// AddButton registers a button, enabled by default.
func (s *SelectButton) AddButton(id, text string, action ButtonAction) {
	s.buttons[id] = &button{text: text, action: action, enabled: true}
}

// RemoveButton deletes the button with the given ID.
func (s *SelectButton) RemoveButton(id string) {
	delete(s.buttons, id)
}

// ButtonText returns a button's label, or absence.
func (s *SelectButton) ButtonText(id string) (string, bool) {
	b, ok := s.buttons[id]
	if !ok {
		return "", false
	}
	return b.text, true
}

// ButtonActionOf returns a button's bound action, or absence.
func (s *SelectButton) ButtonActionOf(id string) (ButtonAction, bool) {
	b, ok := s.buttons[id]
	if !ok {
		return 0, false
	}
	return b.action, true
}

// Buttons returns the labels of all buttons keyed by ID.
func (s *SelectButton) Buttons() map[string]string {
	out := make(map[string]string, len(s.buttons))
	for id, b := range s.buttons {
		out[id] = b.text
	}
	return out
}

// EnabledButtons returns the labels of enabled buttons keyed by ID.
func (s *SelectButton) EnabledButtons() map[string]string {
	out := make(map[string]string)
	for id, b := range s.buttons {
		if b.enabled {
			out[id] = b.text
		}
	}
	return out
}

// IsButtonEnabled reports whether the button exists and is enabled.
func (s *SelectButton) IsButtonEnabled(id string) bool {
	b, ok := s.buttons[id]
	return ok && b.enabled
}

// SetButtonEnabled toggles a button. Unknown IDs are ignored.
func (s *SelectButton) SetButtonEnabled(id string, enabled bool) {
	if b, ok := s.buttons[id]; ok {
		b.enabled = enabled
	}
}

// SetAllButtonsEnabled toggles every button at once.
func (s *SelectButton) SetAllButtonsEnabled(enabled bool) {
	for _, b := range s.buttons {
		b.enabled = enabled
	}
}

// InteractionRange returns the distance within which the NPC responds.
func (s *SelectButton) InteractionRange() float64 {
	return s.interactionRange
}

// SetInteractionRange sets the interaction distance; negatives clamp to zero.
func (s *SelectButton) SetInteractionRange(r float64) {
	s.interactionRange = math.Max(0, r)
}

func (s *SelectButton) String() string {
	return fmt.Sprintf("SelectButton{npc=%q, buttons=%d, enabled=%t, range=%.1f}",
		s.NPCName, len(s.buttons), s.InteractionEnabled, s.interactionRange)
}
