package segment

import (
	"strings"
	"testing"
)

const fallbackTitle = "本文"

func TestGroupSpans(t *testing.T) {
	lines := []string{
		"【仕事内容】",
		"API開発",
		"MLOps推進",
		"",
		"【給与】",
		"月給40万円〜",
	}

	d := NewDetector("")
	sections := Group(lines, d.Detect(lines), fallbackTitle)

	if sections.Len() != 2 {
		t.Fatalf("got %d sections, want 2", sections.Len())
	}
	if body, _ := sections.Get("仕事内容"); body != "API開発\nMLOps推進" {
		t.Errorf("仕事内容 body = %q", body)
	}
	if body, _ := sections.Get("給与"); body != "月給40万円〜" {
		t.Errorf("給与 body = %q", body)
	}
}

func TestGroupInlineContentLeadsBody(t *testing.T) {
	lines := []string{
		"勤務地：東京都千代田区",
		"フルリモート相談可",
	}

	d := NewDetector("")
	sections := Group(lines, d.Detect(lines), fallbackTitle)

	body, ok := sections.Get("勤務地")
	if !ok {
		t.Fatal("expected 勤務地 section")
	}
	if body != "東京都千代田区\nフルリモート相談可" {
		t.Errorf("body = %q", body)
	}
}

func TestGroupAdjacentHeaders(t *testing.T) {
	lines := []string{
		"【会社概要】",
		"勤務地：大阪市",
		"【連絡先】",
	}

	d := NewDetector("")
	sections := Group(lines, d.Detect(lines), fallbackTitle)

	// Zero-width span: the first header's body is empty, the inline
	// header keeps only its inline content.
	if body, _ := sections.Get("会社概要"); body != "" {
		t.Errorf("会社概要 body = %q, want empty", body)
	}
	if body, _ := sections.Get("勤務地"); body != "大阪市" {
		t.Errorf("勤務地 body = %q, want %q", body, "大阪市")
	}
	if body, _ := sections.Get("連絡先"); body != "" {
		t.Errorf("連絡先 body = %q, want empty", body)
	}
}

func TestGroupNoHeadersFallsBack(t *testing.T) {
	lines := []string{"ただのテキストです", "", "見出しはありません"}

	sections := Group(lines, nil, fallbackTitle)

	if sections.Len() != 1 {
		t.Fatalf("got %d sections, want 1", sections.Len())
	}
	body, ok := sections.Get(fallbackTitle)
	if !ok {
		t.Fatalf("expected fallback section %q", fallbackTitle)
	}
	if body != "ただのテキストです\n\n見出しはありません" {
		t.Errorf("fallback body = %q", body)
	}
}

func TestGroupDuplicateTitleLastWriteWins(t *testing.T) {
	lines := []string{
		"【給与】",
		"月給30万円",
		"【給与】",
		"月給35万円",
	}

	d := NewDetector("")
	sections := Group(lines, d.Detect(lines), fallbackTitle)

	if sections.Len() != 1 {
		t.Fatalf("got %d sections, want 1", sections.Len())
	}
	if body, _ := sections.Get("給与"); body != "月給35万円" {
		t.Errorf("給与 body = %q, want later occurrence", body)
	}
}

// Every non-empty line from the first header onward must land in exactly
// one section body or be the header line that produced a section;
// nothing is lost or duplicated. (Lines before the first header feed the
// primary-field inferencer instead of a section.)
func TestGroupCoversEveryLine(t *testing.T) {
	lines := []string{
		"【仕事内容】",
		"API開発",
		"",
		"勤務地：東京都",
		"アクセス良好",
		"応募方法:",
		"フォームから応募",
	}

	d := NewDetector("")
	candidates := d.Detect(lines)
	sections := Group(lines, candidates, fallbackTitle)

	headerLines := make(map[int]bool)
	for _, c := range candidates {
		headerLines[c.Index] = true
	}

	var bodyLines []string
	for _, title := range sections.Titles() {
		body, _ := sections.Get(title)
		if body == "" {
			continue
		}
		bodyLines = append(bodyLines, strings.Split(body, "\n")...)
	}

	counts := make(map[string]int)
	for _, line := range bodyLines {
		counts[line]++
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || headerLines[i] {
			continue
		}
		if counts[trimmed] != 1 {
			t.Errorf("line %q appears %d times across section bodies, want 1", trimmed, counts[trimmed])
		}
	}
}
