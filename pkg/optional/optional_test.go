package optional

import "testing"

func TestValue(t *testing.T) {
	t.Run("zero value is absent", func(t *testing.T) {
		var v Value[string]
		if v.IsSome() {
			t.Error("zero Value should be absent")
		}
		if _, ok := v.Get(); ok {
			t.Error("Get on zero Value should report absent")
		}
	})

	t.Run("Some holds value", func(t *testing.T) {
		v := Some("en")
		got, ok := v.Get()
		if !ok || got != "en" {
			t.Errorf("Get() = (%q, %v), want (%q, true)", got, ok, "en")
		}
		if v.IsNone() {
			t.Error("IsNone should be false")
		}
	})

	t.Run("Some empty string is present", func(t *testing.T) {
		v := Some("")
		if !v.IsSome() {
			t.Error("Some(\"\") should be present")
		}
	})

	t.Run("OrElse", func(t *testing.T) {
		if got := None[int]().OrElse(7); got != 7 {
			t.Errorf("OrElse = %d, want 7", got)
		}
		if got := Some(3).OrElse(7); got != 3 {
			t.Errorf("OrElse = %d, want 3", got)
		}
	})
}

func TestNonEmpty(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
	}{
		{"", false},
		{"x", true},
		{" ", true},
	}
	for _, tt := range tests {
		if got := NonEmpty(tt.in).IsSome(); got != tt.wantOK {
			t.Errorf("NonEmpty(%q).IsSome() = %v, want %v", tt.in, got, tt.wantOK)
		}
	}
}
