package bizinfo

import (
	"strings"
	"testing"
	"time"

	"github.com/jiwonnow/jiwonnow/internal/models"
)

func testNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	return NewNormalizer(DefaultRules())
}

func TestFromRaw_FullRecord(t *testing.T) {
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	raw := RawAnnouncement{
		"pblancId":        "PBLN_000000000099613",
		"pblancNm":        "2026년 청년창업 지원사업",
		"jrsdInsttNm":     "중소벤처기업부",
		"areaNm":          "서울특별시",
		"bsnsSumryCn":     "<p>예비창업자 대상 &nbsp;사업화 자금 지원</p>",
		"reqstBeginEndDe": "2026-01-15 ~ 2026-02-28",
		"hashtags":        "창업지원,청년,서울",
		"pblancUrl":       "https://www.bizinfo.go.kr/web/lay1/pblanc/1/view.do?id=99613",
	}

	p := testNormalizer(t).FromRaw(raw, 0, now)

	if p.ID != "PBLN_000000000099613" {
		t.Errorf("expected upstream ID, got %q", p.ID)
	}
	if p.Title != "2026년 청년창업 지원사업" {
		t.Errorf("unexpected title %q", p.Title)
	}
	if p.Organization != "중소벤처기업부" {
		t.Errorf("unexpected organization %q", p.Organization)
	}
	if p.Region != "서울특별시" {
		t.Errorf("unexpected region %q", p.Region)
	}
	if strings.Contains(p.Description, "<p>") || strings.Contains(p.Description, "&nbsp;") {
		t.Errorf("description not cleaned: %q", p.Description)
	}
	if p.ApplicationStartDate != "2026-01-15" || p.ApplicationEndDate != "2026-02-28" {
		t.Errorf("period not split: %q / %q", p.ApplicationStartDate, p.ApplicationEndDate)
	}
	if p.Status != models.StatusOpen {
		t.Errorf("expected open, got %s", p.Status)
	}
	if p.SupportType != "창업지원" {
		t.Errorf("expected support type from hashtag, got %q", p.SupportType)
	}
	if len(p.Tags) != 3 || p.Tags[0] != "창업지원" {
		t.Errorf("unexpected tags %v", p.Tags)
	}
	if p.CreatedAt != "2026-01-20" || p.UpdatedAt != "2026-01-20" {
		t.Errorf("unexpected timestamps %q / %q", p.CreatedAt, p.UpdatedAt)
	}
}

func TestFromRaw_EmptyRecordGetsDefaults(t *testing.T) {
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	p := testNormalizer(t).FromRaw(RawAnnouncement{}, 3, now)

	if p.Title != "제목 없음" {
		t.Errorf("expected title placeholder, got %q", p.Title)
	}
	if p.Organization != "미정" {
		t.Errorf("expected organization placeholder, got %q", p.Organization)
	}
	if p.Region != "전국" {
		t.Errorf("expected nationwide region, got %q", p.Region)
	}
	if p.ApplicationMethod != "온라인 신청" {
		t.Errorf("expected method placeholder, got %q", p.ApplicationMethod)
	}
	if p.TargetAudience != "중소기업, 소상공인" {
		t.Errorf("expected audience placeholder, got %q", p.TargetAudience)
	}
	if p.DetailURL != "https://www.bizinfo.go.kr" {
		t.Errorf("expected portal fallback URL, got %q", p.DetailURL)
	}
	if p.SupportType != "기타" {
		t.Errorf("expected fallback support type, got %q", p.SupportType)
	}
	// No dates at all: the window never opened and never closed.
	if p.Status != models.StatusOpen {
		t.Errorf("expected open, got %s", p.Status)
	}
	if p.Tags == nil || len(p.Tags) != 0 {
		t.Errorf("expected empty non-nil tags, got %v", p.Tags)
	}
	if !strings.HasPrefix(p.ID, "gen-") {
		t.Errorf("expected generated ID, got %q", p.ID)
	}
}

func TestFromRaw_LegacyFieldNames(t *testing.T) {
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	raw := RawAnnouncement{
		"pblancSj":   "구형 응답의 공고",
		"excInsttNm": "서울산업진흥원",
		"reqstDt":    "2026-03-01 ~ 2026-03-31",
	}

	p := testNormalizer(t).FromRaw(raw, 0, now)

	if p.Title != "구형 응답의 공고" {
		t.Errorf("secondary title key not used: %q", p.Title)
	}
	if p.Organization != "서울산업진흥원" {
		t.Errorf("secondary organization key not used: %q", p.Organization)
	}
	if p.Status != models.StatusUpcoming {
		t.Errorf("expected upcoming, got %s", p.Status)
	}
}

func TestFromRaw_GeneratedIDStableAcrossIndex(t *testing.T) {
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	raw := RawAnnouncement{
		"pblancNm":    "ID 없는 공고",
		"jrsdInsttNm": "기관",
	}

	n := testNormalizer(t)
	first := n.FromRaw(raw, 0, now)
	later := n.FromRaw(raw, 17, now)

	if first.ID != later.ID {
		t.Fatalf("content-derived ID changed with position: %q vs %q", first.ID, later.ID)
	}
}

func TestFromRaw_ContentFreeRecordsGetPositionalIDs(t *testing.T) {
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	n := testNormalizer(t)

	// A record carrying no identifying content at all falls back to the
	// positional branch, so two such records in one page must not collide.
	p := n.FromRaw(RawAnnouncement{}, 0, now)
	q := n.FromRaw(RawAnnouncement{}, 1, now)

	if !strings.HasPrefix(p.ID, "gen-") || !strings.HasPrefix(q.ID, "gen-") {
		t.Fatalf("expected generated IDs, got %q and %q", p.ID, q.ID)
	}
	if p.ID == q.ID {
		t.Fatalf("content-free records at different positions share an ID: %q", p.ID)
	}
}

func TestFromRaw_GeneratedIDIgnoresDefaultedFields(t *testing.T) {
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	n := testNormalizer(t)

	// The hash covers what the record carried, not the placeholders, so a
	// title-only record hashes its title even though org and URL defaulted.
	withTitle := n.FromRaw(RawAnnouncement{"pblancNm": "유일한 내용"}, 0, now)
	empty := n.FromRaw(RawAnnouncement{}, 0, now)

	if withTitle.ID == empty.ID {
		t.Fatalf("record with content must not hash like an empty one: %q", withTitle.ID)
	}
	if withTitle.ID != contentID("유일한 내용", "", "", 0) {
		t.Fatalf("defaulted fields leaked into the hash input: %q", withTitle.ID)
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"messy whitespace", "자금지원, 기술지원 ,창업지원", []string{"자금지원", "기술지원", "창업지원"}},
		{"empty entries dropped", "청년,,서울,", []string{"청년", "서울"}},
		{"empty string", "", []string{}},
		{"only separators", " , , ", []string{}},
		{"duplicates kept in order", "AI,서울,AI", []string{"AI", "서울", "AI"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTags(tt.input)
			if got == nil {
				t.Fatal("SplitTags must never return nil")
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("got %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestSupportType_CategoryBeforeFallback(t *testing.T) {
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	n := testNormalizer(t)

	// No recognized hashtag, but the category field is present.
	p := n.FromRaw(RawAnnouncement{
		"pblancNm":    "판로 개척 프로그램",
		"hashtags":    "청년,지역",
		"bsnsMclasNm": "수출",
	}, 0, now)
	if p.SupportType != "수출" {
		t.Errorf("expected category-derived type, got %q", p.SupportType)
	}

	// A recognized hashtag wins over the category field.
	p = n.FromRaw(RawAnnouncement{
		"pblancNm":    "판로 개척 프로그램",
		"hashtags":    "내수판로지원,청년",
		"bsnsMclasNm": "수출",
	}, 0, now)
	if p.SupportType != "내수판로지원" {
		t.Errorf("expected hashtag-derived type, got %q", p.SupportType)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "지원 내용 안내", "지원 내용 안내"},
		{"tags stripped", "<p>사업화 <b>자금</b> 지원</p>", "사업화 자금 지원"},
		{"entities decoded", "중소기업&nbsp;대상 R&amp;D", "중소기업 대상 R&D"},
		{"whitespace collapsed", "첫째  줄\n\n둘째   줄", "첫째 줄 둘째 줄"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
