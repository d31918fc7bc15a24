package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/remake/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("main.o")
	is2 := domain.NewInternedString("main.o")

	if is1.Value() != is2.Value() {
		t.Errorf("Expected handles to be equal for identical strings, got %v and %v", is1.Value(), is2.Value())
	}

	if is1.String() != "main.o" {
		t.Errorf("Expected String() to return %q, got %q", "main.o", is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString

	if !zero.IsZero() {
		t.Error("Expected zero value to report IsZero")
	}
	if zero.String() != "" {
		t.Errorf("Expected empty string for zero value, got %q", zero.String())
	}
	if domain.NewInternedString("").IsZero() {
		t.Error("Expected an interned empty string to be assigned")
	}
}

func TestInternedStringJSON(t *testing.T) {
	type targetRef struct {
		Name domain.InternedString `json:"name"`
	}

	original := targetRef{Name: domain.NewInternedString("app")}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to marshal struct: %v", err)
	}

	if string(data) != `{"name":"app"}` {
		t.Errorf("Expected JSON %q, got %q", `{"name":"app"}`, string(data))
	}

	var decoded targetRef
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal struct: %v", err)
	}

	if decoded.Name != original.Name {
		t.Errorf("Expected decoded name %q, got %q", original.Name, decoded.Name)
	}
}

func TestNewInternedStrings(t *testing.T) {
	t.Run("Preserves order", func(t *testing.T) {
		names := []string{"lib", "main.o", "app"}

		interned := domain.NewInternedStrings(names)

		if len(interned) != len(names) {
			t.Fatalf("Expected %d interned strings, got %d", len(names), len(interned))
		}
		for i, expected := range names {
			if interned[i].String() != expected {
				t.Errorf("Expected interned string at index %d to be %q, got %q", i, expected, interned[i].String())
			}
		}
	})

	t.Run("Duplicates share a handle", func(t *testing.T) {
		interned := domain.NewInternedStrings([]string{"b", "b"})

		if interned[0].Value() != interned[1].Value() {
			t.Errorf("Expected handles to be equal for identical strings")
		}
	})
}
