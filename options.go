package kyujin

import "github.com/hayasui/kyujin/model"

// WithTables replaces the static heuristic tables (synonyms, section
// template, marker glyphs, keyword lists) for this parse. Start from
// model.DefaultTables and adjust rather than building a bundle from
// scratch.
func (p *Parser) WithTables(tables model.Tables) *Parser {
	p.tables = tables
	return p
}

// Language sets the OCR recognition language(s) for FromImage sources,
// e.g. Language("jpn") or Language("jpn", "eng"). It has no effect on
// other sources. The default is jpn+eng.
func (p *Parser) Language(langs ...string) *Parser {
	p.ocrLangs = langs
	return p
}
