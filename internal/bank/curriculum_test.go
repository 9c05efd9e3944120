package bank

import "testing"

func TestDefaultTopics(t *testing.T) {
	c := NewStaticCurriculum()

	got := c.DefaultTopics("Math", "class6")
	want := []string{"Integers", "Fractions", "Decimals", "Basic Geometry"}
	if len(got) != len(want) {
		t.Fatalf("DefaultTopics(Math, class6) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DefaultTopics(Math, class6) = %v, want %v", got, want)
		}
	}

	// Lookup is case- and whitespace-insensitive.
	loose := c.DefaultTopics(" MATH ", "Class6")
	if len(loose) != len(want) || loose[0] != want[0] {
		t.Errorf("normalized lookup = %v, want %v", loose, want)
	}
}

func TestDefaultTopicsUnknownSubject(t *testing.T) {
	c := NewStaticCurriculum()

	got := c.DefaultTopics("Art", "class9")
	if len(got) == 0 {
		t.Fatal("unknown subject should still get a generic topic list")
	}
	if got[0] != "Foundations" {
		t.Errorf("generic topics = %v, want Foundations first", got)
	}
}

func TestDefaultTopicsReturnsCopy(t *testing.T) {
	c := NewStaticCurriculum()

	first := c.DefaultTopics("Math", "class6")
	first[0] = "mutated"

	second := c.DefaultTopics("Math", "class6")
	if second[0] != "Integers" {
		t.Error("callers must not be able to mutate the curriculum")
	}
}
