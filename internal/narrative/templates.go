// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package narrative

// Table maps a template id to its text per language.
type Table map[string]map[Language]string

// Template ids shared by several tables.
const (
	KeyDefault = "default"
	KeyHigh    = "high"
	KeyAverage = "average"
	KeyLow     = "low"

	KeyCheap     = "cheap"
	KeyExpensive = "expensive"

	KeyEffective   = "effective"
	KeyIneffective = "ineffective"

	KeyDefaultHigh    = "default_high"
	KeyDefaultAverage = "default_average"
	KeyDefaultLow     = "default_low"
)

// CostEffectivenessLabels are the highlight badges for the three classes.
var CostEffectivenessLabels = Table{
	KeyHigh: {
		English:  "High Cost-Effectiveness",
		Korean:   "높은 가성비",
		Japanese: "高いコスト効果",
	},
	KeyAverage: {
		English:  "Average Cost-Effectiveness",
		Korean:   "보통 가성비",
		Japanese: "平均的なコスト効果",
	},
	KeyLow: {
		English:  "Low Cost-Effectiveness",
		Korean:   "낮은 가성비",
		Japanese: "低いコスト効果",
	},
}

// CriticDescriptions summarize the critic consensus. The plain keys need
// {name} {aromas} {taste} {color} {pairing} and {rating}; the default_* keys
// only {rating}.
var CriticDescriptions = Table{
	KeyHigh: {
		English:  "{name} is characterized by complex aromas of {aromas} and unique flavors of {taste}. The color of {color} is visually appealing, and it tastes even better when paired with {pairing}. This wine, which has an average rating of {rating}, has received high ratings from experts.",
		Korean:   "{name}은 {aromas}의 복합적인 아로마와 {taste}의 독특한 맛이 특징입니다. {color}의 색상은 시각적으로도 매력적이며, {pairing}와 함께하면 더욱 풍미가 돋보입니다. 평균 평점 {rating}점을 받은 이 와인은 전문가들로부터도 높은 평가를 받고 있습니다.",
		Japanese: "{name}は{aromas}の複雑な香りと{taste}のユニークな味わいが特徴です。{color}の色は視覚的にも魅力的で、{pairing}と一緒に飲むとさらに美味しく感じられます。 平均評価{rating}を受けたこのワインは、専門家からも高い評価を受けています。",
	},
	KeyAverage: {
		English:  "{name} is characterized by aromas of {aromas} and flavors of {taste}, with a striking {color} color. You can feel the true value of this wine when paired with {pairing}. This wine, with various tasting notes, can make your meal even more luxurious.",
		Korean:   "{name}은 {aromas}의 아로마와 {taste}의 맛이 특징으로, 감각적인 {color} 색상이 돋보입니다. {pairing}와 함께할 때 이 와인의 진가를 느낄 수 있습니다. 다양한 테이스팅 노트를 갖춘 이 와인은 식사를 더욱 풍성하게 만들어 줄 수 있습니다.",
		Japanese: "{name}は{aromas}の香りと{taste}の味わいが特徴で、印象的な{color}の色が際立ちます。{pairing}と一緒に飲むと、このワインの真価を感じることができます。さまざまなテイスティングノートを持つこのワインは、食事をさらに豪華にすることができます。",
	},
	KeyLow: {
		English:  "{name} has aromas of {aromas} and flavors of {taste}, with a {color} color that provides visual appeal. However, the average rating from experts was somewhat low. This wine may be suitable for wine enthusiasts with specific tastes, but it may be limited in satisfying a variety of palates. In the process of exploring various wines and finding your own taste, trying this wine can be an experience.",
		Korean:   "{name}은 {aromas}의 아로마와 {taste}의 맛을 가지고 있으며, {color}의 색상으로 시각적인 매력도 제공합니다. 그러나 전문가들로부터의 평균 평점은 다소 낮게 나왔습니다. 이 와인은 특정한 취향을 가진 와인 애호가들에게는 적합할 수 있으나, 다양한 입맛을 만족시키기에는 제한적일 수 있습니다. 다양한 와인을 탐색하고 자신만의 취향을 찾는 과정에서, 이 와인을 시도해 보는 것도 하나의 경험이 될 수 있습니다.",
		Japanese: "{name}は{aromas}の香りと{taste}の味わいを持ち、{color}の色が視覚的な魅力を提供します。しかし、専門家からの平均評価はやや低かったです。このワインは特定の好みを持つワイン愛好家に適しているかもしれませんが、さまざまな味覚を満足させるには限界があるかもしれません。さまざまなワインを探求し、自分だけの味を見つける過程で、このワインを試してみることも一つの経験になるかもしれません。",
	},
	KeyDefaultHigh: {
		English:  "This wine has received a high rating of {rating} from experts. This high rating indicates that the quality and taste of the wine are excellent, and it is recommended by many wine enthusiasts and critics. This wine represents dignity and excellence in itself and is a notable choice in any wine collection.",
		Korean:   "이 와인은 전문가들로부터 높은 평점인 {rating}점을 받았습니다. 이러한 높은 평가는 와인의 품질과 맛이 탁월함을 나타내며, 많은 와인 애호가들과 비평가들로부터 추천받고 있습니다. 이 와인은 그 자체로 품격과 우수성을 대변하며, 모든 와인 컬렉션에서 주목할 만한 선택입니다.",
		Japanese: "このワインは専門家から高い評価{rating}を受けています。この高い評価は、ワインの品質と味が優れていることを示し、多くのワイン愛好家や評論家から推薦されています。このワインはその自体が品格と卓越性を表し、あらゆるワインコレクションで注目すべき選択肢です。",
	},
	KeyDefaultAverage: {
		English:  "This wine has an average rating of {rating} from experts. This means that while this wine shows impressive characteristics in some aspects, it may not completely meet expectations overall. This rating can be an important indicator to consider when choosing a wine.",
		Korean:   "이 와인은 전문가들로부터 평균적인 평점인 {rating}점을 받았습니다. 이는 이 와인이 일부 측면에서는 인상적인 특성을 보여주지만, 전체적으로는 기대치를 완전히 충족시키지는 못할 수도 있음을 의미합니다. 이 평점은 와인을 선택할 때 신중한 고려를 요하는 중요한 지표가 될 수 있습니다.",
		Japanese: "このワインは専門家から平均評価{rating}を受けています。これは、このワインがいくつかの面で印象的な特性を示している一方で、全体的には期待に完全に応えないかもしれないことを意味します。この評価は、ワインを選ぶ際に考慮すべき重要な指標となる可能性があります。",
	},
	KeyDefaultLow: {
		English:  "This wine has an average rating of {rating} from experts. Some experts highly rated the unique characteristics of this wine, but overall, it received less than expected ratings. This can be an important indicator to consider when choosing a wine.",
		Korean:   "이 와인은 전문가들로부터 평균 평점 {rating}을 받았습니다. 일부 전문가들은 이 와인의 독특한 특성을 높이 평가했지만, 전반적으로는 기대에 못 미치는 평가를 받았습니다. 이는 와인 선택 시 참고할 수 있는 중요한 지표가 될 수 있습니다.",
		Japanese: "このワインは専門家から平均評価{rating}を受けています。一部の専門家はこのワインのユニークな特性を高く評価しましたが、全体的には期待に応えない評価を受けました。これはワインを選ぶ際に考慮すべき重要な指標となる可能性があります。",
	},
}

// GlobalPriceDescriptions compare the viewer's market with the cheapest one.
var GlobalPriceDescriptions = Table{
	KeyDefault: {
		English:  "{lowest_country} offers the best price for {name} at an average of {lowest_price}.",
		Korean:   "{lowest_country}에서는 {name}을(를) 평균 {lowest_price}에 가장 저렴하게 구입할 수 있습니다.",
		Japanese: "{lowest_country}では{name}を平均{lowest_price}で最も安く購入できます。",
	},
	KeyExpensive: {
		English:  "{name} is currently selling for an average of {local_price} in {local_country}. However, it can be purchased for an average of {lowest_price} in {lowest_country}. This price difference may be due to manufacturing and transportation costs, import duties and taxes, distribution costs, etc. Therefore, it may be more economical to purchase this wine in {lowest_country} while traveling abroad.",
		Korean:   "{name}은(는) 현재 {local_country}에서 평균 {local_price}에 판매되고 있습니다. 그러나 {lowest_country}에서는 평균{lowest_price}에 구입할 수 있습니다. 이 가격 차이는 제조 및 운송 비용, 수입 관세 및 세금, 유통 비용 등에 의해 발생할 수 있습니다. 따라서 해외 여행 중에는 해당 와인을 더 저렴하게 구입할 수 있는 {lowest_country}에서 구매하는 것이 경제적일 수 있습니다.",
		Japanese: "{name}は現在{local_country}で平均{local_price}で販売されています。しかし、{lowest_country}では平均{lowest_price}で購入できます。この価格差は製造および輸送費用、輸入関税および税金、流通費用などによるものです。したがって、海外旅行中には{lowest_country}でこのワインを購入する方が経済的かもしれません。",
	},
	KeyCheap: {
		English:  "{name} is currently selling for an average of {local_price} in {local_country}. This is a very low price even in the global market, so it may be more economical to purchase this wine domestically.",
		Korean:   "{name}은(는) 현재 {local_country}에서 평균 {local_price}에 판매되고 있습니다. 글로벌 시장에서도 이는 매우 저렴한 가격이므로 이 와인을 구매하실 거라면 국내에서 구하는 것이 경제적일 수 있습니다.",
		Japanese: "{name}は現在{local_country}で平均{local_price}で販売されています。グローバル市場でもこれは非常に安い価格ですので、このワインを購入する場合は国内で購入する方が経済的かもしれません。",
	},
}

// EstimatedPriceDescriptions are appended to a global price description when
// the local price is far from the predicted market price.
var EstimatedPriceDescriptions = Table{
	KeyEffective: {
		English:  "However, {name} is a high-quality wine with excellent taste, so it would be worth purchasing in {local_country} even if it is more expensive.",
		Korean:   "그러나 {name}은(는) 높은 퀄리티와 훌륭한 맛을 가진 와인이기 때문에 {local_country}에서 구입하더라도 충분히 가치있을 것입니다.",
		Japanese: "しかし、{name}は高品質で優れた味わいのワインですので、{local_country}で購入しても十分価値があるでしょう。",
	},
	KeyIneffective: {
		English:  "However, the average price in {local_country} is about {percent}% higher than the predicted market price, so consider once more whether it is worth paying this amount.",
		Korean:   "그러나 {local_country}에서의 평균 가격이 예측된 시장가격 보다는 약 {percent}% 더 비싸기 때문에 이 금액을 주고 마실 가격인지는 한 번 더 생각해보시길 권장합니다.",
		Japanese: "しかし、{local_country}での平均価格が予測される市場価格よりも約{percent}%高いため、この価格で購入して飲む価値があるかどうか、もう一度考えてみることをお勧めします。",
	},
}

// PriceDescriptions describe cost-effectiveness in the viewer's country.
var PriceDescriptions = Table{
	KeyDefault: {
		English:  "Discover the price of {name} in various countries around the world!",
		Korean:   "{name}의 가격을 전 세계 다양한 국가에서 확인해보세요!",
		Japanese: "{name}の価格を世界中のさまざまな国で確認してください！",
	},
	KeyHigh: {
		English:  "{name} is highly cost-effective in {local_country}. Compare prices by country below and purchase at the lowest price!",
		Korean:   "{local_country}에서 {name}은 상당히 가성비 있는 제품입니다. 아래에서 국가 별 가격을 비교해보고, 최저가로 구매해보세요!",
		Japanese: "{local_country}で{name}は非常にコストパフォーマンスの高い製品です。以下で国別価格を比較し、最安値で購入してください！",
	},
	KeyAverage: {
		English:  "The average price of {name} in {local_country} is similar to the predicted market price. Compare prices by country below and purchase at the lowest price!",
		Korean:   "{local_country}에서의 평균 가격이 예측된 시장가격과 비슷합니다. 아래에서 국가 별 가격을 비교해보고, 최저가로 구매해보세요!",
		Japanese: "{local_country}での平均価格が予測される市場価格とほぼ同じです。以下で国別価格を比較し、最安値で購入してください！",
	},
	KeyLow: {
		English:  "{name} is not cost-effective in {local_country}. Compare prices by country below and purchase at a lower price online!",
		Korean:   "{local_country}에서 {name}은 가성비가 좋지 않습니다. 아래에서 국가 별 가격을 비교하고, 온라인을 통해 좀 더 저렴하게 구입해보세요!",
		Japanese: "{local_country}で{name}はコストパフォーマンスが良くありません。以下で国別価格を比較し、オンラインでより安く購入してください！",
	},
}
