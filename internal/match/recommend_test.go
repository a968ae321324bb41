package match

import (
	"testing"

	"github.com/jiwonnow/jiwonnow/internal/models"
)

func TestRecommend_RegionAndIndustry(t *testing.T) {
	profile := models.UserProfile{
		Region:       "경기도",
		Industry:     "정보통신업",
		BusinessType: models.BusinessIndividual,
	}

	projects := []models.Project{
		{ID: "hit-region-keyword", Region: "경기도", Title: "경기 AI 스타트업 지원", Tags: []string{"AI"}},
		{ID: "hit-nationwide", Region: "전국", Description: "소프트웨어 개발 기업 대상"},
		{ID: "miss-region", Region: "부산광역시", Title: "부산 IT 기업 지원"},
		{ID: "miss-industry", Region: "경기도", Title: "농가 판로 지원", Description: "농산물 직거래"},
	}

	got := Recommend(profile, projects)

	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d: %v", len(got), ids(got))
	}
	if got[0].ID != "hit-region-keyword" || got[1].ID != "hit-nationwide" {
		t.Fatalf("unexpected recommendations in %v", ids(got))
	}
}

func TestRecommend_ShortRegionFormMatches(t *testing.T) {
	profile := models.UserProfile{Region: "서울", Industry: "전체"}
	projects := []models.Project{
		{ID: "seoul", Region: "서울특별시", Title: "서울 소상공인 지원"},
		{ID: "busan", Region: "부산광역시", Title: "부산 소상공인 지원"},
	}

	got := Recommend(profile, projects)
	if len(got) != 1 || got[0].ID != "seoul" {
		t.Fatalf("expected the Seoul project only, got %v", ids(got))
	}
}

func TestRecommend_KeywordMatchIsCaseInsensitive(t *testing.T) {
	profile := models.UserProfile{Region: "전체", Industry: "정보통신업"}
	projects := []models.Project{
		{ID: "lower", Region: "전국", Title: "ict 융합 지원"},
		{ID: "upper", Region: "전국", Tags: []string{"ICT"}},
	}

	got := Recommend(profile, projects)
	if len(got) != 2 {
		t.Fatalf("expected both casings to match, got %v", ids(got))
	}
}

func TestRecommend_UniversalIndustryPassesAll(t *testing.T) {
	projects := []models.Project{
		{ID: "a", Region: "전국", Title: "아무 공고"},
		{ID: "b", Region: "전국", Title: "다른 공고"},
	}

	for _, industry := range []string{"", "전체"} {
		got := Recommend(models.UserProfile{Region: "서울", Industry: industry}, projects)
		if len(got) != 2 {
			t.Fatalf("industry %q: expected all projects, got %v", industry, ids(got))
		}
	}
}

func TestRecommend_EmptyProfileRegionPassesAllRegions(t *testing.T) {
	profile := models.UserProfile{Industry: "전체"}
	projects := []models.Project{
		{ID: "seoul", Region: "서울특별시"},
		{ID: "jeju", Region: "제주특별자치도"},
	}

	got := Recommend(profile, projects)
	if len(got) != 2 {
		t.Fatalf("expected every region to pass, got %v", ids(got))
	}
}

func TestRecommend_PreservesOrderAndInput(t *testing.T) {
	profile := models.UserProfile{Region: "전체", Industry: "전체"}
	projects := []models.Project{
		{ID: "1", Region: "전국"},
		{ID: "2", Region: "서울특별시"},
		{ID: "3", Region: "경기도"},
	}

	got := Recommend(profile, projects)
	if len(got) != 3 || got[0].ID != "1" || got[2].ID != "3" {
		t.Fatalf("order not preserved: %v", ids(got))
	}
}

func TestKeywordsForIndustry(t *testing.T) {
	keywords := KeywordsForIndustry("정보통신업")
	if len(keywords) == 0 {
		t.Fatal("expected curated keywords for a mapped industry")
	}
	found := false
	for _, k := range keywords {
		if k == "AI" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected AI among ICT keywords, got %v", keywords)
	}

	fallback := KeywordsForIndustry("양식업")
	if len(fallback) != 1 || fallback[0] != "양식" {
		t.Errorf("expected suffix-stripped fallback, got %v", fallback)
	}

	if got := KeywordsForIndustry(""); got != nil {
		t.Errorf("expected nil for empty industry, got %v", got)
	}
}
