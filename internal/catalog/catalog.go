// Package catalog holds the static category/domain taxonomy, prompt packs,
// and the per-domain strategy tables. Loaded once, never mutated.
package catalog

import "github.com/d60-Lab/agent-match/internal/model"

// categories is the full catalog, in presentation order. Router ties are
// broken by this order.
var categories = []model.Category{
	{
		ID: "dating", Name: "소개팅", Summary: "성향 기반 이성 추천", Icon: "heart.circle",
		Domain: model.DomainPeople, FocusHint: "성향, 나이대, 선호 스타일, 거리, 대화 성향",
		Keywords: []string{"소개팅", "이성", "연애", "데이트", "성향"},
	},
	{
		ID: "friend", Name: "친구 만들기", Summary: "관심사/성격 기반 매칭", Icon: "person.2.circle",
		Domain: model.DomainPeople, FocusHint: "취미, 성격, 선호 활동, 지역",
		Keywords: []string{"친구", "취미", "모임", "동네", "메이트"},
	},
	{
		ID: "trade", Name: "일반 거래", Summary: "사고팔기/가격 제안", Icon: "cart.circle",
		Domain: model.DomainMarket, FocusHint: "사려는/팔려는 물건, 예산, 상태 조건",
		Keywords: []string{"거래", "중고", "판매", "구매", "가격", "직거래"},
	},
	{
		ID: "luxury", Name: "명품 거래", Summary: "브랜드/상태 기반 매칭", Icon: "sparkles",
		Domain: model.DomainMarket, FocusHint: "브랜드, 모델, 상태, 예산",
		Keywords: []string{"명품", "브랜드", "샤넬", "루이비통", "시계", "정품"},
	},
	{
		ID: "soccer", Name: "축구 매칭", Summary: "상대팀/용병 매칭", Icon: "sportscourt.circle",
		Domain: model.DomainSport, FocusHint: "지역, 시간대, 실력대, 매칭 형식(8:8/11:11)",
		Keywords: []string{"축구", "상대팀", "용병", "매치", "풋볼"},
	},
	{
		ID: "futsal", Name: "풋살 매칭", Summary: "근거리 풋살 팀 매칭", Icon: "figure.indoor.soccer",
		Domain: model.DomainSport, FocusHint: "지역, 인원, 시간, 실력대",
		Keywords: []string{"풋살", "구장", "팀", "5:5", "야간"},
	},
	{
		ID: "freelance", Name: "전문가 의뢰", Summary: "견적/일정 기반 전문가 매칭", Icon: "briefcase.circle",
		Domain: model.DomainService, FocusHint: "요청 범위, 예산, 납기, 포트폴리오",
		Keywords: []string{"전문가", "외주", "견적", "디자인", "개발", "의뢰"},
	},
	{
		ID: "study", Name: "스터디 모집", Summary: "목표/레벨 기반 학습 그룹", Icon: "book.circle",
		Domain: model.DomainLearning, FocusHint: "주제, 레벨, 시간대, 온라인 여부",
		Keywords: []string{"스터디", "공부", "학습", "독서", "자격증"},
	},
	{
		ID: "job", Name: "채용 매칭", Summary: "경력/조건 기반 포지션 매칭", Icon: "person.badge.plus",
		Domain: model.DomainJob, FocusHint: "직무, 경력, 근무 형태, 관심 스택",
		Keywords: []string{"채용", "이직", "포지션", "경력", "구인", "구직"},
	},
}

// DefaultCategoryID is used when a caller omits the category.
const DefaultCategoryID = "friend"

// Categories returns the catalog in presentation order.
func Categories() []model.Category {
	out := make([]model.Category, len(categories))
	copy(out, categories)
	return out
}

// ByID looks up a catalog entry.
func ByID(id string) (model.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// NameOf returns the display name, falling back to a generic label.
func NameOf(id string) string {
	if c, ok := ByID(id); ok {
		return c.Name
	}
	return "매칭"
}

// DomainOf returns the category's domain, defaulting to people.
func DomainOf(id string) model.Domain {
	if c, ok := ByID(id); ok {
		return c.Domain
	}
	return model.DomainPeople
}
