package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionKind
	}{
		{"TRAVEL", ActionTravel},
		{"travel", ActionTravel},
		{"Melee_Hit", ActionMeleeHit},
		{"DAMAGE", ActionDamage},
		{"PICK_ITEM", ActionPickItem},
		{"UNKNOWN_ACTION", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionKind_String(t *testing.T) {
	tests := []struct {
		action   ActionKind
		expected string
	}{
		{ActionTravel, "TRAVEL"},
		{ActionPlaceMarker, "PLACE_MARKER"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionKind(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestParseEvent(t *testing.T) {
	if got := ParseEvent("melee"); got != EventMelee {
		t.Errorf("ParseEvent(melee) = %v", got)
	}
	if got := ParseEvent("explosion"); got != EventOther {
		t.Errorf("unknown event should fall back to OTHER, got %v", got)
	}
	if (ActionEvent{}).IsNotable() {
		t.Error("zero ActionEvent must not be notable")
	}
}

func TestParseAbilityKind(t *testing.T) {
	var k AbilityKind
	if err := k.UnmarshalText([]byte("placebuoy")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if k != AbilityPlaceBuoy {
		t.Errorf("got %v, want PlaceBuoy", k)
	}
	if err := k.UnmarshalText([]byte("Fireball")); err == nil {
		t.Error("expected error for unknown ability kind")
	}
}
