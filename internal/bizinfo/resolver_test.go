package bizinfo

import "testing"

func TestResolve_FallbackOrder(t *testing.T) {
	r := NewResolver(DefaultRules())

	tests := []struct {
		name     string
		raw      RawAnnouncement
		field    string
		expected string
	}{
		{"primary key wins", RawAnnouncement{"pblancNm": "신규 공고", "pblancSj": "구형 공고"}, FieldTitle, "신규 공고"},
		{"secondary key when primary missing", RawAnnouncement{"pblancSj": "구형 공고"}, FieldTitle, "구형 공고"},
		{"secondary key when primary blank", RawAnnouncement{"pblancNm": "   ", "pblancSj": "구형 공고"}, FieldTitle, "구형 공고"},
		{"default when chain exhausted", RawAnnouncement{}, FieldTitle, "제목 없음"},
		{"numeric id coerced", RawAnnouncement{"pblancSn": float64(99613)}, FieldID, "99613"},
		{"unknown field is empty", RawAnnouncement{"pblancNm": "공고"}, "no_such_field", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.raw, tt.field); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRegionName(t *testing.T) {
	r := NewResolver(DefaultRules())

	if full, ok := r.RegionName("서울"); !ok || full != "서울특별시" {
		t.Errorf("short form lookup failed: %q %v", full, ok)
	}
	if full, ok := r.RegionName("서울특별시"); !ok || full != "서울특별시" {
		t.Errorf("full form lookup failed: %q %v", full, ok)
	}
	if _, ok := r.RegionName("중소벤처기업부"); ok {
		t.Error("agency name must not resolve as a region")
	}
}

func TestOrganizationAndRegion(t *testing.T) {
	r := NewResolver(DefaultRules())

	tests := []struct {
		name           string
		raw            RawAnnouncement
		expectedOrg    string
		expectedRegion string
	}{
		{
			name:           "clean record",
			raw:            RawAnnouncement{"jrsdInsttNm": "중소벤처기업부", "areaNm": "경기도"},
			expectedOrg:    "중소벤처기업부",
			expectedRegion: "경기도",
		},
		{
			name:           "region misfiled in organization field",
			raw:            RawAnnouncement{"jrsdInsttNm": "서울특별시", "excInsttNm": "서울산업진흥원"},
			expectedOrg:    "서울산업진흥원",
			expectedRegion: "서울특별시",
		},
		{
			name:           "misfiled short form expands to full form",
			raw:            RawAnnouncement{"jrsdInsttNm": "경기", "excInsttNm": "경기테크노파크"},
			expectedOrg:    "경기테크노파크",
			expectedRegion: "경기도",
		},
		{
			name:           "dedicated region field beats misfiled value",
			raw:            RawAnnouncement{"jrsdInsttNm": "부산광역시", "excInsttNm": "부산경제진흥원", "areaNm": "울산광역시"},
			expectedOrg:    "부산경제진흥원",
			expectedRegion: "울산광역시",
		},
		{
			name:           "all organization keys hold regions",
			raw:            RawAnnouncement{"jrsdInsttNm": "대전광역시"},
			expectedOrg:    "미정",
			expectedRegion: "대전광역시",
		},
		{
			name:           "empty record gets both defaults",
			raw:            RawAnnouncement{},
			expectedOrg:    "미정",
			expectedRegion: "전국",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, region := r.OrganizationAndRegion(tt.raw)
			if org != tt.expectedOrg || region != tt.expectedRegion {
				t.Errorf("got (%q, %q), want (%q, %q)", org, region, tt.expectedOrg, tt.expectedRegion)
			}
		})
	}
}
