package model

import "testing"

func TestDefaultsApplySkipsNil(t *testing.T) {
	user := "bob"

	s := Settings{Binary: "ssh", User: "alice"}

	Defaults{User: &user}.Apply(&s)

	if s.User != "bob" {
		t.Errorf("User = %q, want bob", s.User)
	}

	if s.Binary != "ssh" {
		t.Errorf("Binary = %q, want ssh (nil default must not override)", s.Binary)
	}
}

func TestApplyConnectionSkipsEmptyAndNil(t *testing.T) {
	empty := ""
	carol := "carol"

	s := Settings{User: "bob", Args: "-4"}

	c := Connection{ID: 3, Nickname: "n", Host: "h", User: &carol, Args: &empty}

	s.ApplyConnection(&c)

	if s.User != "carol" {
		t.Errorf("User = %q, want carol", s.User)
	}

	// An empty column behaves like an absent one.
	if s.Args != "-4" {
		t.Errorf("Args = %q, want -4", s.Args)
	}

	if s.Host != "h" || s.Nickname != "n" || s.ID != 3 {
		t.Errorf("identity fields not applied: %+v", s)
	}
}

func TestOptional(t *testing.T) {
	var c Connection

	for _, column := range OptionalColumns {
		p := c.Optional(column)
		if p == nil {
			t.Fatalf("Optional(%q) = nil", column)
		}

		*p = Ptr("x")
	}

	if Deref(c.User) != "x" || Deref(c.Binary) != "x" {
		t.Errorf("Optional did not address the struct fields: %+v", c)
	}

	if c.Optional("host") != nil {
		t.Error("Optional(host) should be nil, host is not optional")
	}
}

func TestPtrDeref(t *testing.T) {
	if Ptr("") != nil {
		t.Error("Ptr(\"\") should be nil")
	}

	if p := Ptr("v"); p == nil || *p != "v" {
		t.Errorf("Ptr(\"v\") = %v", p)
	}

	if Deref(nil) != "" {
		t.Error("Deref(nil) should be empty")
	}
}
