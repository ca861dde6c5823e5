package compiler

import "testing"

func TestCheck(t *testing.T) {
	res := Check("ok.c1", "int bar() {return 0;}")
	if !res.Valid || res.Err != nil {
		t.Fatalf("Check() = %+v, want valid", res)
	}
	if res.Name != "ok.c1" {
		t.Errorf("Name = %q", res.Name)
	}
	if res.Tokens != 9 {
		t.Errorf("Tokens = %d, want 9", res.Tokens)
	}

	res = Check("bad.c1", "void foo()) {}")
	if res.Valid {
		t.Fatal("Check() accepted an invalid program")
	}
	if res.Err == nil || res.Err.Line != 1 || res.Err.Text != ")" {
		t.Errorf("Err = %+v, want error at ')' on line 1", res.Err)
	}
}
