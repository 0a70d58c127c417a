package models

import (
	"encoding/json"
	"testing"
)

type patch struct {
	Title    Optional[string] `json:"title"`
	Rating   Optional[int]    `json:"rating"`
	Director Optional[uint]   `json:"director_id"`
	Genres   Optional[[]uint] `json:"genres_ids"`
}

func TestOptionalUnmarshal(t *testing.T) {
	var p patch
	body := `{"title": "", "rating": 0, "director_id": null}`
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !p.Title.Set || p.Title.Null || p.Title.Value != "" {
		t.Errorf("title: got %+v, want explicit empty string", p.Title)
	}
	if !p.Rating.Present() || p.Rating.Value != 0 {
		t.Errorf("rating: got %+v, want explicit zero", p.Rating)
	}
	if !p.Director.Set || !p.Director.Null {
		t.Errorf("director_id: got %+v, want explicit null", p.Director)
	}
	if p.Director.Ptr() != nil {
		t.Error("director_id: Ptr should be nil for null")
	}
	if p.Genres.Set {
		t.Errorf("genres_ids: got %+v, want omitted", p.Genres)
	}
}

func TestOptionalUnmarshalTypeError(t *testing.T) {
	var p patch
	if err := json.Unmarshal([]byte(`{"rating": "ten"}`), &p); err == nil {
		t.Fatal("expected type error for string rating")
	}
}

func TestOptionalHelpers(t *testing.T) {
	s := Some(7)
	if got := s.Ptr(); got == nil || *got != 7 {
		t.Errorf("Some(7).Ptr(): got %v", got)
	}
	n := Null[int]()
	if n.Present() {
		t.Error("Null should not be present")
	}
	var omitted Optional[int]
	if omitted.Set {
		t.Error("zero value should be omitted")
	}
}

func TestUniqueIDs(t *testing.T) {
	got := UniqueIDs([]uint{3, 1, 3, 2, 1})
	want := []uint{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestValidRating(t *testing.T) {
	for _, r := range []int{0, 5, 10} {
		if !ValidRating(r) {
			t.Errorf("ValidRating(%d): got false", r)
		}
	}
	for _, r := range []int{-1, 11} {
		if ValidRating(r) {
			t.Errorf("ValidRating(%d): got true", r)
		}
	}
}
