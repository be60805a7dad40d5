package catalog

import "github.com/d60-Lab/agent-match/internal/model"

// PromptPack is the per-category conversational wrapper shown to new sessions.
type PromptPack struct {
	Welcome    string `json:"welcome_message"`
	PromptHint string `json:"prompt_hint"`
}

var promptPacks = map[string]PromptPack{
	"dating": {
		Welcome:    "소개팅 에이전트입니다. 원하는 상대 조건을 말해주시면 바로 추천을 보여드릴게요.",
		PromptHint: "성향, 나이대, 선호 스타일, 거리, 대화 성향을 말해주세요.",
	},
	"friend": {
		Welcome:    "친구 만들기 에이전트입니다. 어떤 친구를 찾는지 알려주세요.",
		PromptHint: "취미, 성격, 선호 활동, 지역을 말해주세요.",
	},
	"trade": {
		Welcome:    "거래 에이전트입니다. 상품 조건을 말해주시면 맞춤 리스트를 보여드릴게요.",
		PromptHint: "사려는/팔려는 물건, 예산/희망가격, 상태 조건을 말해주세요.",
	},
	"luxury": {
		Welcome:    "명품 거래 에이전트입니다. 원하는 브랜드/조건을 알려주세요.",
		PromptHint: "브랜드, 모델, 상태, 예산/희망가격을 말해주세요.",
	},
	"soccer": {
		Welcome:    "축구 매칭 에이전트입니다. 조건에 맞는 팀을 추천해드릴게요.",
		PromptHint: "지역, 시간대, 실력대, 매칭 형식(8:8/11:11)을 말해주세요.",
	},
	"futsal": {
		Welcome:    "풋살 매칭 에이전트입니다. 빠르게 잡을 수 있는 경기 리스트를 찾아드릴게요.",
		PromptHint: "지역, 인원, 시간, 실력대를 말해주세요.",
	},
	"freelance": {
		Welcome:    "전문가 매칭 에이전트입니다. 요청 범위와 예산을 알려주세요.",
		PromptHint: "요청 범위, 예산, 납기, 선호 방식(온라인/오프라인)을 말해주세요.",
	},
	"study": {
		Welcome:    "스터디 매칭 에이전트입니다. 목표와 레벨을 알려주세요.",
		PromptHint: "주제, 레벨, 시간대, 온라인 여부를 말해주세요.",
	},
	"job": {
		Welcome:    "채용 매칭 에이전트입니다. 직무와 조건을 알려주세요.",
		PromptHint: "직무, 경력, 근무 형태, 관심 스택을 말해주세요.",
	},
}

// PackFor returns the prompt pack for a category, falling back to the
// default category's pack.
func PackFor(categoryID string) (PromptPack, bool) {
	if p, ok := promptPacks[categoryID]; ok {
		return p, true
	}
	return promptPacks[DefaultCategoryID], false
}

// Mode describes one interaction mode for the reply generator.
type Mode struct {
	ID           string
	Title        string
	Description  string
	SystemPrompt string
}

var modes = map[string]Mode{
	model.ModeFind: {
		ID:           model.ModeFind,
		Title:        "찾기",
		Description:  "조건에 맞는 상대/매물/팀을 탐색하는 모드",
		SystemPrompt: "사용자의 조건을 구체화하고 추천 후보를 근거와 함께 설명하라.",
	},
	model.ModePublish: {
		ID:           model.ModePublish,
		Title:        "등록",
		Description:  "내 프로필/매물/팀을 보드에 게시하는 모드",
		SystemPrompt: "등록된 내용을 확인해 주고 노출을 높일 보완 항목 한 가지를 제안하라.",
	},
}

// ResolveMode normalizes a mode id, defaulting to find.
func ResolveMode(modeID string) Mode {
	if m, ok := modes[modeID]; ok {
		return m
	}
	return modes[model.ModeFind]
}

// FallbackReply is the canned assistant text used when the reply generator
// is unavailable. This policy deliberately lives outside the matching core.
func FallbackReply(categoryID, modeID string) string {
	pack, _ := PackFor(categoryID)
	mode := ResolveMode(modeID)
	return pack.Welcome + " " + mode.Title + " 요청을 반영 중입니다. 정밀 매칭을 위해 지역/시간/예산 중 한 가지를 추가로 알려주세요."
}
