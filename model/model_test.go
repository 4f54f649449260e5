package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSectionListOrder(t *testing.T) {
	s := NewSectionList()
	s.Set("b", "2")
	s.Set("a", "1")
	s.Set("c", "3")

	want := []string{"b", "a", "c"}
	if got := s.Titles(); !reflect.DeepEqual(got, want) {
		t.Errorf("Titles() = %v, want insertion order %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSectionListOverwriteKeepsPosition(t *testing.T) {
	s := NewSectionList()
	s.Set("給与", "月給30万円")
	s.Set("勤務地", "東京")
	s.Set("給与", "月給35万円")

	want := []string{"給与", "勤務地"}
	if got := s.Titles(); !reflect.DeepEqual(got, want) {
		t.Errorf("Titles() = %v, want %v", got, want)
	}
	if body, _ := s.Get("給与"); body != "月給35万円" {
		t.Errorf("body = %q, want the later write", body)
	}
}

func TestSectionListGetMissing(t *testing.T) {
	s := NewSectionList()
	if body, ok := s.Get("なし"); ok || body != "" {
		t.Errorf("Get on missing title = (%q, %v), want (\"\", false)", body, ok)
	}
}

func TestSectionListJSONRoundTrip(t *testing.T) {
	s := NewSectionList()
	s.Set("勤務地", "東京都")
	s.Set("給与", "月給40万円〜")
	s.Set("空欄", "")

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"勤務地":"東京都","給与":"月給40万円〜","空欄":""}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back SectionList
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back.Titles(), s.Titles()) {
		t.Errorf("round trip titles = %v, want %v", back.Titles(), s.Titles())
	}
	for _, title := range s.Titles() {
		wantBody, _ := s.Get(title)
		if gotBody, _ := back.Get(title); gotBody != wantBody {
			t.Errorf("round trip body of %q = %q, want %q", title, gotBody, wantBody)
		}
	}
}

func TestSectionListUnmarshalRejectsNonObject(t *testing.T) {
	var s SectionList
	if err := json.Unmarshal([]byte(`["a"]`), &s); err == nil {
		t.Error("expected error for non-object JSON")
	}
}

func TestRecordJSONShape(t *testing.T) {
	sections := NewSectionList()
	sections.Set("給与", "月給40万円〜")

	rec := Record{
		JobTitle: "エンジニア",
		Company:  "テック株式会社",
		Salary:   "月給40万円〜",
		Sections: sections,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"job_title":"エンジニア","company":"テック株式会社","salary":"月給40万円〜","sections":{"給与":"月給40万円〜"}}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestFieldString(t *testing.T) {
	tests := []struct {
		field Field
		want  string
	}{
		{FieldJobTitle, "job_title"},
		{FieldCompany, "company"},
		{FieldSalary, "salary"},
		{Field(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.field.String(); got != tt.want {
			t.Errorf("Field(%d).String() = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestDefaultTablesReturnsFreshCopy(t *testing.T) {
	a := DefaultTables()
	a.SalaryKeywords[0] = "changed"
	a.Synonyms[0].Synonyms[0] = "changed"

	b := DefaultTables()
	if b.SalaryKeywords[0] == "changed" {
		t.Error("mutating a returned bundle leaked into DefaultTables")
	}
	if b.Synonyms[0].Synonyms[0] == "changed" {
		t.Error("mutating a returned synonym list leaked into DefaultTables")
	}
}

func TestDefaultTablesContents(t *testing.T) {
	tables := DefaultTables()

	if tables.FallbackTitle != "本文" {
		t.Errorf("FallbackTitle = %q", tables.FallbackTitle)
	}
	if len(tables.Synonyms) != 3 {
		t.Fatalf("got %d synonym fields, want 3", len(tables.Synonyms))
	}
	wantOrder := []Field{FieldJobTitle, FieldCompany, FieldSalary}
	for i, fs := range tables.Synonyms {
		if fs.Field != wantOrder[i] {
			t.Errorf("synonym field %d = %v, want %v (tie-break order)", i, fs.Field, wantOrder[i])
		}
		if len(fs.Synonyms) == 0 {
			t.Errorf("field %v has no synonyms", fs.Field)
		}
	}
	if len(tables.DefaultSections) != 13 {
		t.Errorf("got %d default section keys, want 13", len(tables.DefaultSections))
	}
}
