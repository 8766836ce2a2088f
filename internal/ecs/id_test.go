package ecs

import "testing"

func TestPackEntityID(t *testing.T) {
	tests := []struct {
		name  string
		shard uint8
		gen   uint32
		index uint32
	}{
		{"zero parts", 0, 0, 1},
		{"simple", 3, 7, 42},
		{"max values", 0xFF, maskGen, maskIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := PackEntityID(tt.shard, tt.gen, tt.index)
			if id.Shard() != tt.shard {
				t.Errorf("Shard() = %d, want %d", id.Shard(), tt.shard)
			}
			if id.Generation() != tt.gen {
				t.Errorf("Generation() = %d, want %d", id.Generation(), tt.gen)
			}
			if id.Index() != tt.index {
				t.Errorf("Index() = %d, want %d", id.Index(), tt.index)
			}
		})
	}
}

func TestPackEntityID_GenerationMasked(t *testing.T) {
	id := PackEntityID(1, 0xFFFFFFFF, 5)
	if id.Generation() != maskGen {
		t.Errorf("Generation() = %d, want %d", id.Generation(), maskGen)
	}
	if id.Shard() != 1 {
		t.Errorf("generation overflow leaked into shard: %d", id.Shard())
	}
}

func TestEntityID_String(t *testing.T) {
	if got := NilEntityID.String(); got != "<nil>" {
		t.Errorf("NilEntityID.String() = %q", got)
	}
	if got := PackEntityID(2, 1, 9).String(); got != "[2:1:9]" {
		t.Errorf("String() = %q, want [2:1:9]", got)
	}
}
