package styles

import "testing"

func TestDepartmentColorDeterministic(t *testing.T) {
	a := DepartmentColor("RIG")
	b := DepartmentColor("RIG")
	if a != b {
		t.Errorf("same department produced %q then %q", a, b)
	}
}

func TestDepartmentColorCaseInsensitive(t *testing.T) {
	if DepartmentColor("lx") != DepartmentColor("LX") {
		t.Error("department color should ignore case")
	}
}

func TestDepartmentColorIsHex(t *testing.T) {
	c := string(DepartmentColor("SND"))
	if len(c) != 7 || c[0] != '#' {
		t.Errorf("DepartmentColor = %q, want #rrggbb", c)
	}
}

func TestApplyGradientEmpty(t *testing.T) {
	if got := ApplyGradient("", "#ff0000", "#0000ff"); got != "" {
		t.Errorf("ApplyGradient(\"\") = %q, want empty", got)
	}
}
