// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package critic

import (
	"github.com/tomtom215/vinoscope/internal/models"
	"github.com/tomtom215/vinoscope/internal/narrative"
)

// Axis is one taste structure dimension, scored 0 to 5.
type Axis int

const (
	Body Axis = iota
	Acidity
	Tannin
	Sweetness
)

func (a Axis) String() string {
	switch a {
	case Body:
		return "body"
	case Acidity:
		return "acidity"
	case Tannin:
		return "tannin"
	case Sweetness:
		return "sweetness"
	}
	return "unknown"
}

// tier is a named band of one axis. Floor is inclusive.
type tier struct {
	floor        float64
	names        map[narrative.Language]string
	descriptions map[narrative.Language]string
}

// tiers holds each axis's bands, highest floor first. The last band of every
// axis has floor 0 and catches the rest.
var tiers = map[Axis][]tier{
	Body: {
		{
			floor: 4,
			names: map[narrative.Language]string{
				narrative.English:  "Full Bodied",
				narrative.Korean:   "무거운 바디감",
				narrative.Japanese: "フルボディ",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "Full-bodied wines are rich and complex, with intense flavors and a long finish. They are often higher in alcohol and tannins. They pair well with hearty dishes like steak or lamb.",
				narrative.Korean:   "풀 바디 와인은 풍부하고 복합적이며 강렬한 풍미와 긴 여운을 갖고 있습니다. 알코올과 탄닌 함량이 더 높은 경우가 많습니다. 스테이크나 양고기 같은 풍성한 요리와 잘 어울립니다.",
				narrative.Japanese: "フルボディのワインは豊かで複雑で、強烈な風味と長い余韻を持っています。多くの場合、アルコールとタンニンが多く含まれています。ステーキやラム肉などのボリュームのある料理とよく合います。",
			},
		},
		{
			floor: 2.5,
			names: map[narrative.Language]string{
				narrative.English:  "Medium Bodied",
				narrative.Korean:   "중간 바디감",
				narrative.Japanese: "ミディアムボディ",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "Medium-bodied wines are versatile and easy to drink, with a good balance of fruit, acidity, and tannins. They pair well with a wide range of foods, from poultry to pasta.",
				narrative.Korean:   "미디엄 바디 와인은 다재다능하고 쉽게 마실 수 있으며 과일, 산도 및 탄닌의 균형이 좋습니다. 닭고기부터 파스타까지 다양한 음식과 잘 어울립니다.",
				narrative.Japanese: "ミディアムボディのワインは多目的で飲みやすく、果実味、酸味、タンニンのバランスが取れています。鶏肉からパスタまで幅広い料理とよく合います。",
			},
		},
		{
			floor: 0,
			names: map[narrative.Language]string{
				narrative.English:  "Light Bodied",
				narrative.Korean:   "가벼운 바디감",
				narrative.Japanese: "ライトボディ",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "Light-bodied wines are delicate and refreshing, with bright fruit flavors and a crisp finish. They pair well with light dishes like salads or seafood.",
				narrative.Korean:   "라이트 바디 와인은 가벼우며 상쾌하며 밝은 과일 풍미와 깔끔한 마무리가 특징입니다. 샐러드나 해산물과 같은 가벼운 요리와 잘 어울립니다.",
				narrative.Japanese: "ライトボディのワインは軽やかで爽やかで、明るい果実味とさっぱりとしたフィニッシュが特徴です。サラダやシーフードなどの軽い料理とよく合います。",
			},
		},
	},
	Acidity: {
		{
			floor: 4,
			names: map[narrative.Language]string{
				narrative.English:  "High Acidity",
				narrative.Korean:   "높은 산미",
				narrative.Japanese: "ハイアシディティ",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "High acidity wines are crisp and refreshing, with a zesty, mouthwatering quality. They pair well with rich, fatty foods like cheese or fried chicken.",
				narrative.Korean:   "높은 산미의 와인은 상쾌하고 깔끔하며 입안을 씻어주는 특징이 있습니다. 치즈나 튀긴 치킨과 같은 기름진 음식과 잘 어울립니다.",
				narrative.Japanese: "ハイアシディティのワインはさわやかで明るく、口中をさっぱりとさせる特徴があります。チーズやフライドチキンなどの脂っこい食べ物とよく合います。",
			},
		},
		{
			floor: 2.5,
			names: map[narrative.Language]string{
				narrative.English:  "Medium Acidity",
				narrative.Korean:   "중간 산미",
				narrative.Japanese: "ミディアムアシディティ",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "Medium acidity wines are balanced and versatile, with a lively, bright character. They pair well with a wide range of foods, from seafood to salads.",
				narrative.Korean:   "중간 산미의 와인은 균형이 잡히고 다재다능하며 생기 넘치고 밝은 성격을 가지고 있습니다. 해산물부터 샐러드까지 다양한 음식과 잘 어울립니다.",
				narrative.Japanese: "ミディアムアシディティのワインはバランスが取れており、多目的で生き生きとした明るい性格を持っています。シーフードからサラダまで幅広い料理とよく合います。",
			},
		},
		{
			floor: 0,
			names: map[narrative.Language]string{
				narrative.English:  "Low Acidity",
				narrative.Korean:   "낮은 산미",
				narrative.Japanese: "ローアシディティ",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "Low acidity wines are smooth and easy to drink, with a soft, rounded character. They pair well with rich, creamy dishes like pasta or risotto.",
				narrative.Korean:   "낮은 산미의 와인은 부드럽고 쉽게 마실 수 있으며 부드럽고 둥근 성격을 가지고 있습니다. 파스타나 리조또와 같은 풍부하고 크리미한 요리와 잘 어울립니다.",
				narrative.Japanese: "ローアシディティのワインは滑らかで飲みやすく、柔らかく丸みのある性格を持っています。パスタやリゾットなどのリッチでクリーミーな料理とよく合います。",
			},
		},
	},
	Tannin: {
		{
			floor: 4,
			names: map[narrative.Language]string{
				narrative.English:  "High Tannin",
				narrative.Korean:   "탄닌이 강한",
				narrative.Japanese: "ハイタンニン",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "High tannin wines are bold and structured, with a firm, grippy texture. They pair well with rich, fatty foods like steak or barbecue.",
				narrative.Korean:   "탄닌이 강한 와인은 대담하고 구조적이며 단단한 질감을 가지고 있습니다. 스테이크나 바베큐와 같은 기름진 음식과 잘 어울립니다.",
				narrative.Japanese: "ハイタンニンのワインは大胆で構造的で、しっかりとした質感があります。ステーキやバーベキューなどの脂っこい食べ物とよく合います。",
			},
		},
		{
			floor: 2.5,
			names: map[narrative.Language]string{
				narrative.English:  "Medium Tannin",
				narrative.Korean:   "중간 탄닌",
				narrative.Japanese: "ミディアムタンニン",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "Medium tannin wines are smooth and supple, with a balanced, velvety texture. They pair well with a wide range of foods, from poultry to pasta.",
				narrative.Korean:   "중간 탄닌의 와인은 부드럽고 유연하며 균형잡힌 벨벳 같은 질감을 가지고 있습니다. 닭고기부터 파스타까지 다양한 음식과 잘 어울립니다.",
				narrative.Japanese: "ミディアムタンニンのワインは滑らかでしなやかで、バランスの取れたベルベットのような質感を持っています。鶏肉からパスタまで幅広い料理とよく合います。",
			},
		},
		{
			floor: 0,
			names: map[narrative.Language]string{
				narrative.English:  "Low Tannin",
				narrative.Korean:   "낮은 탄닌",
				narrative.Japanese: "ロータンニン",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "Low tannin wines are soft and easy to drink, with a smooth, silky texture. They pair well with light dishes like salmon or salad.",
				narrative.Korean:   "탄닌이 낮은 와인은 부드럽고 쉽게 마실 수 있으며 부드럽고 실키한 질감을 가지고 있습니다. 연어나 샐러드와 같은 가벼운 요리와 잘 어울립니다.",
				narrative.Japanese: "ロータンニンのワインは滑らかで飲みやすく、柔らかくシルキーな質感を持っています。サーモンやサラダなどの軽い料理とよく合います。",
			},
		},
	},
	Sweetness: {
		{
			floor: 4,
			names: map[narrative.Language]string{
				narrative.English:  "Sweet",
				narrative.Korean:   "스위트",
				narrative.Japanese: "スウィート",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "Sweet wines are rich and luscious, with intense fruit flavors and a smooth, velvety texture. They pair well with rich, decadent desserts.",
				narrative.Korean:   "스위트 와인은 풍부하고 부드럽며 진한 과일 풍미와 부드러운 벨벳 같은 질감을 가지고 있습니다. 부드럽고 진한 디저트와 잘 어울립니다.",
				narrative.Japanese: "スウィートワインは豊かで滑らかで、濃厚な果実味と滑らかなベルベットのような質感を持っています。リッチで濃厚なデザートとよく合います。",
			},
		},
		{
			floor: 3,
			names: map[narrative.Language]string{
				narrative.English:  "Semi-Sweet",
				narrative.Korean:   "세미 스위트",
				narrative.Japanese: "セミスウィート",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "Semisweet wines are fruity and balanced, with a touch of sweetness and a crisp, refreshing finish. They pair well with spicy dishes like curry or barbecue.",
				narrative.Korean:   "세미 스위트 와인은 과일향이 풍부하고 균형이 잡히며 약간의 달콤함과 상쾌한 마무리가 특징입니다. 카레나 바베큐와 같은 매운 요리와 잘 어울립니다.",
				narrative.Japanese: "セミスウィートワインは果実味が豊かでバランスが取れ、少しの甘さとさっぱりとしたフィニッシュが特徴です。カレーやバーベキューなどの辛い料理とよく合います。",
			},
		},
		{
			floor: 2,
			names: map[narrative.Language]string{
				narrative.English:  "Off-Dry",
				narrative.Korean:   "오프 드라이",
				narrative.Japanese: "オフドライ",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "Off-dry wines are slightly sweet and fruity, with a hint of sweetness and a clean, refreshing finish. They pair well with spicy dishes like Thai curry or sushi.",
				narrative.Korean:   "오프 드라이 와인은 약간 달콤하고 과일향이 풍부하며 깔끔하고 상쾌한 마무리가 특징입니다. 태국 카레나 스시와 같은 매운 요리와 잘 어울립니다.",
				narrative.Japanese: "オフドライワインは少し甘くて果実味が豊かで、さっぱりとした爽やかなフィニッシュが特徴です。タイカレーや寿司などの辛い料理とよく合います。",
			},
		},
		{
			floor: 0,
			names: map[narrative.Language]string{
				narrative.English:  "Dry",
				narrative.Korean:   "드라이",
				narrative.Japanese: "ドライ",
			},
			descriptions: map[narrative.Language]string{
				narrative.English:  "Dry wines are crisp and refreshing, with no perceptible sweetness and a clean, zesty finish. They pair well with a wide range of foods, from seafood to salads.",
				narrative.Korean:   "드라이 와인은 상쾌하고 깔끔하며 감미료가 없으며 깔끔하고 상쾌한 마무리가 특징입니다. 해산물부터 샐러드까지 다양한 음식과 잘 어울립니다.",
				narrative.Japanese: "ドライワインはさわやかで明るく、甘味がなくさっぱりとした爽やかなフィニッシュが特徴です。シーフードからサラダまで幅広い料理とよく合います。",
			},
		},
	},
}

// Chart classifies value on axis. A missing or zero value has no tier.
func Chart(axis Axis, value *float64, lang narrative.Language) *models.TasteChart {
	if value == nil || *value == 0 {
		return nil
	}
	bands, ok := tiers[axis]
	if !ok {
		return nil
	}
	for _, band := range bands {
		if *value >= band.floor {
			return &models.TasteChart{
				Name:        localized(band.names, lang),
				Score:       *value,
				Description: localized(band.descriptions, lang),
			}
		}
	}
	return nil
}

// Structure classifies all four axes.
func Structure(taste models.ReviewTaste, lang narrative.Language) models.TasteStructure {
	return models.TasteStructure{
		Body:      Chart(Body, taste.Body, lang),
		Acidity:   Chart(Acidity, taste.Acidity, lang),
		Tannin:    Chart(Tannin, taste.Tannin, lang),
		Sweetness: Chart(Sweetness, taste.Sweetness, lang),
	}
}

func localized(texts map[narrative.Language]string, lang narrative.Language) string {
	if s, ok := texts[lang]; ok {
		return s
	}
	return texts[narrative.DefaultLanguage]
}
