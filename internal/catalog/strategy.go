package catalog

import (
	"strings"

	"github.com/d60-Lab/agent-match/internal/model"
)

// Candidate is one static board-independent example: a default candidate
// shown when a board is empty, or a seed row for the demo board.
type Candidate struct {
	Title    string
	Subtitle string
	Tags     []string
}

// Strategy bundles every domain-conditional policy in one place: default
// candidate templates, seed templates, the publish title suffix, and the
// fallback-suppression rule for no-hit queries.
type Strategy struct {
	DefaultTemplates []Candidate // {name} expands to the category name
	SeedTemplates    []Candidate
	ProfileSuffix    string
	SuppressFallback bool
}

var strategies = map[model.Domain]Strategy{
	model.DomainPeople: {
		ProfileSuffix: "프로필",
		DefaultTemplates: []Candidate{
			{"{name} 후보 A", "지역/시간/성향이 잘 맞는 후보", []string{"취향매칭", "근거리", "응답빠름"}},
			{"{name} 후보 B", "대화/활동 패턴이 비슷한 후보", []string{"성향유사", "활동적", "검증완료"}},
			{"{name} 후보 C", "목표와 스타일이 맞는 후보", []string{"목표일치", "친절", "추천많음"}},
		},
		SeedTemplates: []Candidate{
			{"{name} 프로필: 활동형", "주 2~3회 활동 가능, 근거리 선호", []string{"활동형", "근거리", "응답빠름"}},
			{"{name} 프로필: 대화형", "평일 저녁 중심, 온라인/오프라인 가능", []string{"대화형", "평일저녁", "온라인가능"}},
			{"{name} 프로필: 목표형", "명확한 조건 기반으로 매칭 희망", []string{"목표형", "조건명확", "매칭중"}},
		},
	},
	model.DomainSport: {
		ProfileSuffix: "모집글",
		DefaultTemplates: []Candidate{
			{"{name} 상대/파트너 A", "시간대와 실력대가 유사", []string{"시간일치", "실력유사", "매너"}},
			{"{name} 상대/파트너 B", "주요 지역이 겹치는 팀/파트너", []string{"근거리", "정시", "재매칭"}},
			{"{name} 상대/파트너 C", "참여 인원/포지션이 맞는 후보", []string{"인원적합", "빠른확정", "활동중"}},
		},
		SeedTemplates: []Candidate{
			{"{name} 모집: 주말 오전", "지역/실력 맞춰 상대 또는 파트너 모집", []string{"주말오전", "실력중", "근거리"}},
			{"{name} 모집: 평일 야간", "퇴근 후 참여 가능한 팀/파트너 선호", []string{"평일야간", "정시", "응답빠름"}},
			{"{name} 모집: 정기 고정", "정기적으로 고정 매칭 희망", []string{"정기", "고정팀", "매너중시"}},
		},
	},
	model.DomainMarket: {
		ProfileSuffix: "매물",
		// Queries in market categories must never fall back to unrelated
		// candidates; an empty result is the designed outcome.
		SuppressFallback: true,
		DefaultTemplates: []Candidate{
			{"{name} 매물 A", "예산 범위와 상태 조건이 맞는 매물", []string{"예산적합", "상태좋음", "안전거래"}},
			{"{name} 매물 B", "구성품/거래방식이 유리한 매물", []string{"풀구성", "직거래", "응답빠름"}},
			{"{name} 매물 C", "가격 협의가 가능한 매물", []string{"협의가능", "가성비", "당일거래"}},
		},
		SeedTemplates: []Candidate{
			{"{name} 매물: 상태 A", "구성품 포함, 직거래 우선", []string{"상태A", "직거래", "구성품포함"}},
			{"{name} 매물: 가성비형", "합리적 가격, 빠른 거래 가능", []string{"가성비", "빠른거래", "협의가능"}},
			{"{name} 매물: 안전거래", "안전결제/인증 가능", []string{"안전결제", "인증가능", "응답빠름"}},
		},
	},
	model.DomainService: {
		ProfileSuffix: "서비스",
		DefaultTemplates: []Candidate{
			{"{name} 전문가 A", "요청 범위와 일정이 맞는 전문가", []string{"포트폴리오", "납기준수", "후기좋음"}},
			{"{name} 전문가 B", "예산에 맞춘 견적이 가능한 전문가", []string{"합리견적", "빠른응답", "실무경험"}},
			{"{name} 전문가 C", "유사 프로젝트 경험이 풍부한 전문가", []string{"레퍼런스", "전문성", "온라인가능"}},
		},
		SeedTemplates: []Candidate{
			{"{name} 서비스: 기본형", "요청 범위 기반 견적/일정 제안 가능", []string{"견적가능", "일정협의", "실무경험"}},
			{"{name} 서비스: 빠른납기", "단기 납기 중심으로 대응 가능", []string{"빠른납기", "응답빠름", "온라인"}},
			{"{name} 서비스: 맞춤형", "요건 맞춤형으로 진행 가능", []string{"맞춤형", "협의가능", "후기좋음"}},
		},
	},
	model.DomainLearning: {
		ProfileSuffix: "모집글",
		DefaultTemplates: []Candidate{
			{"{name} 모임 A", "목표/레벨이 유사한 모임", []string{"목표일치", "주기적", "피드백"}},
			{"{name} 모임 B", "시간대가 맞는 학습 그룹", []string{"시간일치", "온라인", "꾸준함"}},
			{"{name} 모임 C", "같은 주제로 진행 중인 그룹", []string{"주제일치", "실전형", "신규환영"}},
		},
		SeedTemplates: []Candidate{
			{"{name} 모집: 주 2회", "목표 중심 학습, 피드백 포함", []string{"주2회", "목표형", "피드백"}},
			{"{name} 모집: 주말반", "주말 오전 중심 오프라인/온라인 병행", []string{"주말", "온라인병행", "신규환영"}},
			{"{name} 모집: 집중반", "단기 집중 학습/프로젝트형", []string{"집중반", "단기", "실전형"}},
		},
	},
	model.DomainJob: {
		ProfileSuffix: "등록",
		DefaultTemplates: []Candidate{
			{"{name} 기회 A", "경력/조건이 맞는 포지션", []string{"조건매칭", "성장기회", "즉시지원"}},
			{"{name} 기회 B", "근무 형태가 맞는 포지션", []string{"근무유연", "직무적합", "우대조건"}},
			{"{name} 기회 C", "관심 스택/산업과 맞는 포지션", []string{"스택일치", "산업적합", "추천"}},
		},
		SeedTemplates: []Candidate{
			{"{name} 등록: 기본형", "조건 협의 가능한 포지션/프로필", []string{"조건협의", "즉시시작", "경력무관"}},
			{"{name} 등록: 경력형", "경력 기반 우대 조건 포함", []string{"경력우대", "직무적합", "성장기회"}},
			{"{name} 등록: 유연근무", "근무 형태 유연, 협업 도구 활용", []string{"유연근무", "리모트", "협업"}},
		},
	},
}

// Curated data for the launch categories keeps the samples more natural than
// the generated domain templates.
var curatedCandidates = map[string][]Candidate{
	"dating": {
		{"활동적인 대화형", "주말 데이트/카페 선호", []string{"외향", "대화많음", "서울"}},
		{"차분한 취향형", "전시/영화/산책 선호", []string{"내향", "감성", "경기"}},
		{"취미공유형", "운동/맛집/여행 중심", []string{"취미", "주도적", "서울"}},
	},
	"friend": {
		{"러닝 메이트", "아침 러닝/헬스 루틴", []string{"운동", "꾸준함", "강남"}},
		{"콘텐츠 메이트", "넷플릭스/게임/잡담", []string{"집순", "게임", "홍대"}},
		{"스터디 메이트", "커리어/독서/생산성", []string{"성장", "독서", "판교"}},
	},
	"trade": {
		{"거래 후보 A", "가격 협상 가능 / 상태 A", []string{"직거래", "안전결제", "급매"}},
		{"거래 후보 B", "박스 포함 / 상태 S", []string{"풀박", "당일거래", "정품"}},
		{"거래 후보 C", "예산 친화 / 상태 B+", []string{"가성비", "협상", "리뷰좋음"}},
	},
	"luxury": {
		{"명품 후보 A", "인보이스/더스트백 보유", []string{"정품", "보증", "상태A"}},
		{"명품 후보 B", "최근 관리 완료", []string{"컨디션좋음", "실사용적음", "서울"}},
		{"명품 후보 C", "예산 내 추천", []string{"합리적", "빠른응답", "안전결제"}},
	},
	"soccer": {
		{"상대팀 후보 A", "토 오전 / 실력 중", []string{"11:11", "서울", "응답빠름"}},
		{"상대팀 후보 B", "일 오전 / 실력 중상", []string{"8:8", "경기", "매너좋음"}},
		{"상대팀 후보 C", "야간 가능 / 실력 중", []string{"야간", "직관적", "고정팀"}},
	},
	"futsal": {
		{"풋살팀 후보 A", "평일 저녁 / 중", []string{"5:5", "강남", "빠른매칭"}},
		{"풋살팀 후보 B", "주말 오후 / 중하", []string{"입문환영", "홍대", "친목"}},
		{"풋살팀 후보 C", "주말 오전 / 중상", []string{"실전", "송파", "정시"}},
	},
}

var curatedSeeds = map[string][]Candidate{
	"friend": {
		{"친구 프로필: 주말 러너", "강남, 토 오전 러닝 + 브런치", []string{"러닝", "강남", "주말오전"}},
		{"친구 프로필: 보드게임 메이트", "홍대, 보드게임/카페", []string{"보드게임", "홍대", "대화"}},
		{"친구 프로필: 스터디 메이트", "판교, 커리어 독서/스터디", []string{"독서", "판교", "성장"}},
	},
	"dating": {
		{"소개팅 프로필: 전시 좋아함", "분위기 좋은 카페/전시 데이트 선호", []string{"전시", "카페", "차분"}},
		{"소개팅 프로필: 운동 좋아함", "러닝/등산 같이 할 상대 원함", []string{"운동", "러닝", "활동적"}},
		{"소개팅 프로필: 영화 마니아", "주말 영화+산책 선호", []string{"영화", "산책", "감성"}},
	},
	"trade": {
		{"판매글: 아이패드 에어 5", "상태 A, 펜슬 포함, 55만원", []string{"아이패드", "상태A", "직거래"}},
		{"판매글: 소니 WH-1000XM5", "실사용 적음, 28만원", []string{"헤드폰", "소니", "가성비"}},
		{"판매글: 닌텐도 스위치 OLED", "풀박스, 32만원", []string{"닌텐도", "풀박", "급매"}},
	},
	"luxury": {
		{"명품 매물: Chanel 클래식 WOC", "인보이스/더스트백 포함, 365만원", []string{"샤넬", "정품", "인보이스"}},
		{"명품 매물: Louis Vuitton 네오노에", "상태 A-, 178만원", []string{"루이비통", "상태A", "서울"}},
		{"명품 매물: Cartier 탱크 머스트", "2024 구매, 보증서 포함", []string{"까르띠에", "보증서", "시계"}},
	},
	"soccer": {
		{"팀 등록: FC 강남토요", "토 10시, 11:11, 중상", []string{"11:11", "강남", "토요일"}},
		{"팀 등록: 송파 선데이", "일 08시, 11:11, 중", []string{"송파", "일요일", "중"}},
		{"팀 등록: 한강 나이트", "수 21시, 8:8, 중", []string{"야간", "8:8", "한강"}},
	},
	"futsal": {
		{"팀 등록: 홍대 풋살 크루", "평일 20시, 5:5, 중", []string{"홍대", "평일저녁", "5:5"}},
		{"팀 등록: 송파 실전팀", "토 09시, 5:5, 중상", []string{"송파", "실전", "주말오전"}},
		{"팀 등록: 판교 입문팀", "일 16시, 입문 환영", []string{"입문", "판교", "친목"}},
	},
}

var curatedProfileTitles = map[string]string{
	"friend": "친구 프로필",
	"dating": "소개팅 프로필",
	"trade":  "판매글",
	"luxury": "명품 매물",
	"soccer": "축구팀 등록",
	"futsal": "풋살팀 등록",
}

// StrategyFor returns the domain strategy for a category.
func StrategyFor(categoryID string) Strategy {
	return strategies[DomainOf(categoryID)]
}

func render(tpls []Candidate, name string) []Candidate {
	out := make([]Candidate, len(tpls))
	for i, t := range tpls {
		out[i] = Candidate{
			Title:    strings.ReplaceAll(t.Title, "{name}", name),
			Subtitle: strings.ReplaceAll(t.Subtitle, "{name}", name),
			Tags:     append([]string(nil), t.Tags...),
		}
	}
	return out
}

// DefaultCandidates returns the static fallback examples for an empty board.
func DefaultCandidates(categoryID string) []Candidate {
	if curated, ok := curatedCandidates[categoryID]; ok {
		return render(curated, "")
	}
	return render(StrategyFor(categoryID).DefaultTemplates, NameOf(categoryID))
}

// SeedCandidates returns the demo seed rows for a category board.
func SeedCandidates(categoryID string) []Candidate {
	if curated, ok := curatedSeeds[categoryID]; ok {
		return render(curated, "")
	}
	return render(StrategyFor(categoryID).SeedTemplates, NameOf(categoryID))
}

// ProfileTitle is the title prefix for a freshly published listing.
func ProfileTitle(categoryID string) string {
	if t, ok := curatedProfileTitles[categoryID]; ok {
		return t
	}
	suffix := StrategyFor(categoryID).ProfileSuffix
	if suffix == "" {
		suffix = "등록"
	}
	return NameOf(categoryID) + " " + suffix
}
