package catalog

import "flixhub/pkg/models"

// DefaultReference returns the built-in reference tables.
func DefaultReference() *Reference {
	return &Reference{
		CountryGroups: []models.CountryGroup{
			{
				Key:  "ad-tier-ng",
				Name: "Netflix広告つきプランNG",
				Regions: []models.CountryRegion{
					{Key: "asiapacific", Name: "アジア太平洋", Countries: map[string]string{
						"HK": "香港", "TH": "タイ", "SG": "シンガポール", "IN": "インド", "PH": "フィリピン",
					}},
					{Key: "europe", Name: "ヨーロッパ", Countries: map[string]string{
						"BE": "ベルギー", "CZ": "チェコ", "GR": "ギリシャ", "NL": "オランダ", "PL": "ポーランド",
						"PT": "ポルトガル", "RO": "ルーマニア", "SK": "スロバキア", "SE": "スウェーデン",
						"CH": "スイス", "UA": "ウクライナ",
					}},
					{Key: "africamiddleeast", Name: "アフリカ・中近東", Countries: map[string]string{
						"IL": "イスラエル", "TR": "トルコ", "ZA": "南アフリカ",
					}},
					{Key: "americas", Name: "南北アメリカ", Countries: map[string]string{
						"AR": "アルゼンチン",
					}},
				},
			},
			{
				Key:  "ad-tier-ok",
				Name: "Netflix広告なしプランOK",
				Regions: []models.CountryRegion{
					{Key: "americas", Name: "南北アメリカ", Countries: map[string]string{
						"US": "米国", "CA": "カナダ", "CO": "コロンビア", "MX": "メキシコ", "BR": "ブラジル",
					}},
					{Key: "europe", Name: "ヨーロッパ", Countries: map[string]string{
						"DE": "ドイツ", "GB": "英国", "FR": "フランス", "IT": "イタリア", "HU": "ハンガリー",
						"IS": "アイスランド", "LT": "リトアニア", "ES": "スペイン",
					}},
					{Key: "asiapacific", Name: "アジア太平洋", Countries: map[string]string{
						"MY": "マレーシア", "AU": "オーストラリア", "KR": "韓国",
					}},
				},
			},
		},
		CountryNames: map[string]string{
			"US": "アメリカ",
			"NL": "オランダ",
			"CH": "スイス",
			"DE": "ドイツ",
			"FI": "フィンランド",
			"FR": "フランス",
			"GB": "英国",
		},
		YearScope: []string{"US", "NL", "CH", "DE", "FI", "FR", "GB"},
		Specials: []models.SpecialCategory{
			{
				Key:      "ghibli",
				Name:     "スタジオジブリ",
				Category: AnimeCategory,
				Keywords: []string{"ジブリ", "スタジオジブリ", "ghibli", "studio ghibli"},
				Titles: []string{
					"Spirited Away",
					"Princess Mononoke",
					"Howl’s Moving Castle",
					"My Neighbor Totoro",
					"Kiki’s Delivery Service",
					"Ponyo",
					"The Wind Rises",
					"Nausicaä of the Valley of the Wind",
					"Castle in the Sky",
					"Grave of the Fireflies",
					"The Secret World of Arrietty",
					"When Marnie Was There",
					"Whisper of the Heart",
					"From Up on Poppy Hill",
					"My Neighbors the Yamadas",
					"Ocean Waves",
					"Tales from Earthsea",
					"The Cat Returns",
					"Kaguyahime no monogatari",
					"Porco Rosso",
					"Only Yesterday",
					"Pom Poko",
					"The Boy and the Heron",
					"Earwig and the Witch",
					"The Red Turtle",
				},
			},
			{
				Key:      "conan",
				Name:     "名探偵コナン",
				Category: AnimeCategory,
				Titles: []string{
					"Detective Conan : The Time-Bombed Skyscraper",
					"Detective Conan : The Fourteenth Target",
					"Detective Conan : The Last Wizard of the Century",
					"Detective Conan : Captured in Her Eyes",
					"Detective Conan : Countdown to Heaven",
					"Detective Conan : The Phantom of Baker Street",
					"Detective Conan : Crossroad in the Ancient Capital",
					"Detective Conan : Magician of the Silver Sky",
					"Detective Conan : Strategy Above the Depths",
					"Detective Conan : The Private Eyes' Requiem",
					"Detective Conan : Jolly Roger in the Deep Azure",
					"Detective Conan : Full Score of Fear",
					"Detective Conan : The Raven Chaser",
					"Detective Conan : The Lost Ship in The Sky",
					"Detective Conan : Quarter of Silence",
					"Detective Conan : The Eleventh Striker",
					"Detective Conan : Private Eye in the Distant Sea",
					"Detective Conan : Dimensional Sniper",
					"Detective Conan : Sunflowers of Inferno",
					"Detective Conan : The Darkest Nightmare",
					"Detective Conan : The Crimson Love Letter",
					"Detective Conan : Zero The Enforcer",
					"Detective Conan : The Fist of Blue Sapphire",
					"Detective Conan : The Scarlet Bullet",
					"Detective Conan : The Bride of Halloween",
					"Detective Conan : Black Iron Submarine",
				},
			},
			{
				Key:      "onepiece",
				Name:     "ワンピース",
				Category: AnimeCategory,
				Titles: []string{
					"One Piece: Episode of Alabasta",
					"One Piece: Episode of Chopper: Bloom in the Winter, Miracle Sakura",
					"One Piece Film: Strong World",
					"One Piece Film Z",
					"One Piece: 3D2Y - Overcome Ace's Death! Luffy's Vow to His Friends",
					"One Piece Adventure of Nebulandia",
					"One Piece Heart of Gold",
					"One Piece Film: Gold",
					"One Piece Episode of East blue - Luffy and His Four Crewmates' Great Adventure",
					"One Piece Episode of Skypiea",
					"One Piece Stampede",
					"One Piece Film: Red",
				},
			},
			{
				Key:      "naruto",
				Name:     "NARUTO",
				Category: AnimeCategory,
				Titles: []string{
					"Naruto the Movie: Ninja Clash in the Land of Snow",
					"Naruto the Movie 2: Legend of the Stone of Gelel",
					"Naruto the Movie 3: Guardians of the Crescent Moon Kingdom",
					"Naruto Shippuden: The Movie",
					"Naruto Shippuden The Movie: Bonds",
					"Naruto Shippuden the Movie: The Will of Fire",
					"Naruto Shippuden: The Movie: The Lost Tower",
					"Naruto Shippuden : Blood Prison",
					"Road to Ninja: Naruto the Movie",
					"The Last: Naruto the Movie",
					"Boruto: Naruto the Movie",
				},
			},
		},
		Featured: []string{
			"Spirited Away",
			"Princess Mononoke",
			"Howl's Moving Castle",
			"My Neighbor Totoro",
			"Kiki's Delivery Service",
			"Ponyo",
			"The Wind Rises",
			"Nausicaä of the Valley of the Wind",
			"Castle in the Sky",
			"Grave of the Fireflies",
			"The Secret World of Arrietty",
			"When Marnie Was There",
			"Whisper of the Heart",
			"From Up on Poppy Hill",
			"My Neighbors the Yamadas",
			"Ocean Waves",
			"Tales from Earthsea",
			"The Cat Returns",
			"Kaguyahime no monogatari",
		},
	}
}
