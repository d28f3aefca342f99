package nav

import (
	"strings"
	"testing"
)

func TestNames(t *testing.T) {
	want := []string{"works", "profile", "research", "contact"}
	got := Names()

	if len(got) != len(want) {
		t.Fatalf("Names() returned %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Callers must not be able to alter the table
	got[0] = "changed"
	if Names()[0] != "works" {
		t.Error("Names() should return a copy of the destination table")
	}
}

func TestResolve(t *testing.T) {
	r := New(nil)

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"works", "works", true},
		{"WORKS", "works", true},
		{"Profile", "profile", true},
		{"reSearch", "research", true},
		{"contact", "contact", true},
		{"", "", false},
		{"work", "", false},
		{"works/", "", false},
		{" works", "", false},
		{"worksx", "", false},
		{"bogus", "", false},
		{"works.html", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := r.Resolve(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveIsCaseInsensitiveForAllNames(t *testing.T) {
	r := New(nil)

	for _, name := range Names() {
		for _, variant := range []string{name, strings.ToUpper(name), strings.ToUpper(name[:1]) + name[1:]} {
			got, ok := r.Resolve(variant)
			if !ok {
				t.Errorf("Resolve(%q) should succeed", variant)
				continue
			}
			if got != name {
				t.Errorf("Resolve(%q) = %q, want canonical %q", variant, got, name)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	for _, d := range Destinations() {
		href, ok := Lookup(d.Name)
		if !ok {
			t.Fatalf("Lookup(%q) should succeed", d.Name)
		}
		if href != d.Name+".html" {
			t.Errorf("Lookup(%q) = %q, want %q", d.Name, href, d.Name+".html")
		}
	}

	if _, ok := Lookup("Works"); ok {
		t.Error("Lookup() only accepts canonical names")
	}
}

func TestNavigate(t *testing.T) {
	var visited []string
	r := New(LocationFunc(func(href string) {
		visited = append(visited, href)
	}))

	r.Navigate("works")
	r.Navigate("Contact")

	if len(visited) != 2 {
		t.Fatalf("expected 2 navigations, got %d (%v)", len(visited), visited)
	}
	if visited[0] != "works.html" {
		t.Errorf("first navigation = %q, want works.html", visited[0])
	}
	if visited[1] != "contact.html" {
		t.Errorf("second navigation = %q, want contact.html", visited[1])
	}
}

func TestNavigateUnknownIsNoop(t *testing.T) {
	called := false
	r := New(LocationFunc(func(string) { called = true }))

	r.Navigate("bogus")
	r.Navigate("")

	if called {
		t.Error("Navigate() should not leave the page for unknown names")
	}
}

func TestNavigateWithoutLocation(t *testing.T) {
	// Must not panic
	New(nil).Navigate("works")
}
