package component_test

import (
	"testing"

	"github.com/arriety/arc/component"
)

func TestSkillCooldown(t *testing.T) {
	s := component.NewSkill("fireball", "Fireball", 5, 20, 1)

	if !s.Use(10) {
		t.Fatalf("fresh skill refused")
	}
	if s.Use(12) {
		t.Fatalf("skill usable during cooldown")
	}
	if s.CooldownRemaining(12) != 3 {
		t.Fatalf("expected 3s remaining, got %v", s.CooldownRemaining(12))
	}
	if !s.Use(15) {
		t.Fatalf("skill refused after cooldown")
	}
}

func TestSkillsGlobalCooldown(t *testing.T) {
	skills := component.NewSkills()
	skills.Add(component.NewSkill("fireball", "Fireball", 5, 20, 1))
	skills.Add(component.NewSkill("slash", "Slash", 0.5, 5, 1))

	if !skills.Use("fireball", 10) {
		t.Fatalf("fireball refused")
	}
	// The global cooldown blocks every other skill, not just the one used.
	if skills.Use("slash", 10.5) {
		t.Fatalf("slash fired inside the global cooldown")
	}
	if !skills.GlobalCooldownActive(10.5) {
		t.Fatalf("global cooldown not reported active")
	}
	if got := skills.GlobalCooldownRemaining(10.5); got != 0.5 {
		t.Fatalf("expected 0.5s remaining, got %v", got)
	}
	if !skills.Use("slash", 11.5) {
		t.Fatalf("slash refused after global cooldown expired")
	}
}

func TestSkillsUnknownSkill(t *testing.T) {
	skills := component.NewSkills()
	if skills.CanUse("missing", 0) {
		t.Fatalf("unknown skill reported usable")
	}
	if skills.Use("missing", 0) {
		t.Fatalf("unknown skill fired")
	}
}

func TestSkillsAddRemove(t *testing.T) {
	skills := component.NewSkills()
	skills.Add(component.NewSkill("heal", "Heal", 10, 30, 2))

	got, ok := skills.Get("heal")
	if !ok || got.Name != "Heal" {
		t.Fatalf("skill not retrievable")
	}

	removed, ok := skills.Remove("heal")
	if !ok || removed.ID != "heal" {
		t.Fatalf("remove failed")
	}
	if skills.Len() != 0 {
		t.Fatalf("expected empty set, got %d", skills.Len())
	}
	if _, ok := skills.Remove("heal"); ok {
		t.Fatalf("second remove reported success")
	}
}

func TestSelectButtonDialog(t *testing.T) {
	sb := component.NewSelectButton("Merchant")
	sb.DialogText = "Welcome, traveler!"
	sb.AddButton("shop", "Browse Wares", component.ActionOpenShop)
	sb.AddButton("quest", "Any work for me?", component.ActionStartQuest)

	text, ok := sb.ButtonText("shop")
	if !ok || text != "Browse Wares" {
		t.Fatalf("button text wrong: %q, %v", text, ok)
	}
	action, ok := sb.ButtonActionOf("quest")
	if !ok || action != component.ActionStartQuest {
		t.Fatalf("button action wrong: %v, %v", action, ok)
	}

	sb.SetButtonEnabled("shop", false)
	if sb.IsButtonEnabled("shop") {
		t.Fatalf("disabled button reported enabled")
	}
	enabled := sb.EnabledButtons()
	if len(enabled) != 1 {
		t.Fatalf("expected 1 enabled button, got %d", len(enabled))
	}
	if _, present := enabled["quest"]; !present {
		t.Fatalf("quest button missing from enabled set")
	}

	sb.SetAllButtonsEnabled(true)
	if len(sb.EnabledButtons()) != 2 {
		t.Fatalf("expected all buttons enabled")
	}

	sb.RemoveButton("shop")
	if _, ok := sb.ButtonText("shop"); ok {
		t.Fatalf("removed button still present")
	}

	sb.SetInteractionRange(-5)
	if sb.InteractionRange() != 0 {
		t.Fatalf("negative range not clamped: %v", sb.InteractionRange())
	}
}
