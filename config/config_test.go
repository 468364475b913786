package config

import "testing"

func TestEveryStateHasAnAnimation(t *testing.T) {
	for _, state := range AllStates {
		def, ok := FighterAnimations[state]
		if !ok {
			t.Errorf("state %v has no animation definition", state)
			continue
		}
		if def.Last < def.First {
			t.Errorf("state %v: last frame %d before first %d", state, def.Last, def.First)
		}
		if def.Step < 1 {
			t.Errorf("state %v: step %d", state, def.Step)
		}
		if def.Speed < 0 {
			t.Errorf("state %v: negative speed", state)
		}
	}
}

func TestEveryStateHasAFileName(t *testing.T) {
	for _, state := range AllStates {
		if _, ok := StateToFileName[state]; !ok {
			t.Errorf("state %v has no frame directory name", state)
		}
	}
}

func TestOneShotStatesDoNotLoop(t *testing.T) {
	for _, state := range []StateID{Punch, Kick, Block} {
		if FighterAnimations[state].Loop {
			t.Errorf("state %v must freeze or finish, not loop", state)
		}
	}
}

func TestEveryActionHasABinding(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		binding, ok := Input.Bindings[id]
		if !ok {
			t.Errorf("action %d has no binding", id)
			continue
		}
		if len(binding.Keys) == 0 {
			t.Errorf("action %d has no keyboard keys", id)
		}
	}
}

func TestDefaultWindowScaleIsListed(t *testing.T) {
	idx := SettingsMenu.DefaultScaleIndex
	if idx < 0 || idx >= len(SettingsMenu.WindowScales) {
		t.Fatalf("default scale index %d outside %d options", idx, len(SettingsMenu.WindowScales))
	}
	if SettingsMenu.WindowScales[idx].Factor < 1 {
		t.Errorf("default scale factor %d", SettingsMenu.WindowScales[idx].Factor)
	}
}

func TestFightActionsMapToStates(t *testing.T) {
	for action, state := range ActionToState {
		if _, ok := ActionNames[action]; !ok {
			t.Errorf("action %d maps to state %v but has no label", action, state)
		}
	}
}
