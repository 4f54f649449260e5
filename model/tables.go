package model

// Field identifies one of the primary record fields that a detected
// section header can resolve to via fuzzy matching.
type Field int

const (
	// FieldJobTitle is the position being advertised.
	FieldJobTitle Field = iota
	// FieldCompany is the hiring organization.
	FieldCompany
	// FieldSalary is the compensation description.
	FieldSalary
)

// String returns the JSON/record name of the field.
func (f Field) String() string {
	switch f {
	case FieldJobTitle:
		return "job_title"
	case FieldCompany:
		return "company"
	case FieldSalary:
		return "salary"
	default:
		return "unknown"
	}
}

// FieldSynonyms pairs a primary field with the header wordings commonly
// used for it. Slice order is significant: fields are evaluated in order
// and a similarity tie resolves to the earlier field.
type FieldSynonyms struct {
	Field    Field
	Synonyms []string
}

// Tables bundles the static data the heuristics run on. All fields are
// treated as immutable by the pipeline; construct a fresh bundle with
// DefaultTables and modify it to customize behavior.
type Tables struct {
	// Synonyms maps each primary field to its known header wordings,
	// in tie-break order.
	Synonyms []FieldSynonyms

	// DefaultSections is the fixed section template. Every key is present
	// in the final record, empty unless a detected section overrides it.
	DefaultSections []string

	// Markers is the set of decorative glyphs that may prefix a header
	// line (e.g. ◆仕事内容).
	Markers string

	// SalaryKeywords flags lines that carry compensation wording, used
	// when no section resolved to the salary field.
	SalaryKeywords []string

	// CompanySuffixes flags lines that carry an organizational-entity
	// marker, used when no section resolved to the company field.
	CompanySuffixes []string

	// FallbackTitle is the single section title used when a document
	// contains no detectable header at all.
	FallbackTitle string
}

// DefaultTables returns the standard table bundle, tuned for Japanese
// job postings with occasional English wording. The returned value is a
// fresh copy; callers may modify it freely.
func DefaultTables() Tables {
	return Tables{
		Synonyms: []FieldSynonyms{
			{Field: FieldJobTitle, Synonyms: []string{"職種", "募集職種", "ポジション", "タイトル"}},
			{Field: FieldCompany, Synonyms: []string{"会社名", "企業名", "社名", "運営"}},
			{Field: FieldSalary, Synonyms: []string{"給与", "給料", "報酬", "年収", "月給", "時給"}},
		},
		DefaultSections: []string{
			"キャッチコピー",
			"勤務地",
			"仕事内容",
			"求めている人材",
			"勤務時間",
			"勤務時間詳細",
			"勤務地所在地",
			"交通アクセス",
			"給与詳細",
			"試用期間",
			"待遇・福利厚生",
			"社会保険",
			"選考プロセス",
		},
		// The trailing U+FE0E keeps the text-style variant of ▶ in the set.
		Markers:         "◆■□●★☆◇▼▶︎",
		SalaryKeywords:  []string{"給与", "年収", "月給", "時給", "日給", "賞与"},
		CompanySuffixes: []string{"株式会社", "有限会社", "合同会社", "Inc", "LLC", "Co."},
		FallbackTitle:   "本文",
	}
}
