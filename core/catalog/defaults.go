package catalog

import "margin-suggest/core/types"

// Default returns the built-in tables. Each call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		Surcharges: Surcharges{
			Processing: 3,
			Platform:   5,
			Marketing:  10,
			Returns:    5,
		},
		Categories: []CategoryEntry{
			{
				CategoryProfile: profile(types.CategoryElectronics, 25, 40, 15),
				Saturation:      types.SaturationHigh,
				Elasticity:      1.5,
				Keywords: []string{
					"phone", "laptop", "computer", "tablet", "headphone", "earbud", "earphone",
					"charger", "camera", "bluetooth", "usb", "speaker", "smartwatch", "keyboard",
					"electronic", "gadget", "téléphone", "écouteur",
				},
			},
			{
				CategoryProfile: profile(types.CategoryFashion, 50, 70, 30),
				Saturation:      types.SaturationHigh,
				Elasticity:      1.2,
				Keywords: []string{
					"dress", "shirt", "jacket", "coat", "jeans", "pants", "skirt", "shoe",
					"sneaker", "boot", "handbag", "jewelry", "necklace", "bracelet", "earring",
					"fashion", "clothing", "robe", "vêtement",
				},
			},
			{
				CategoryProfile: profile(types.CategoryHome, 40, 60, 25),
				Saturation:      types.SaturationMedium,
				Elasticity:      1.0,
				Keywords: []string{
					"kitchen", "furniture", "chair", "sofa", "decor", "lamp", "pillow", "blanket", "curtain",
					"carpet", "rug", "organizer", "cookware", "mug", "vase", "bedding",
					"maison", "cuisine",
				},
			},
			{
				CategoryProfile: profile(types.CategoryBeauty, 60, 80, 40),
				Saturation:      types.SaturationHigh,
				Elasticity:      0.8,
				Keywords: []string{
					"makeup", "cosmetic", "skincare", "serum", "lipstick", "mascara", "perfume",
					"nail", "shampoo", "beauty", "hair", "beauté", "maquillage",
				},
			},
			{
				CategoryProfile: profile(types.CategoryToys, 45, 65, 25),
				Saturation:      types.SaturationMedium,
				Elasticity:      1.1,
				Keywords: []string{
					"toy", "puzzle", "doll", "lego", "board game", "plush", "kids", "children",
					"educational", "jouet",
				},
			},
			{
				CategoryProfile: profile(types.CategorySports, 35, 55, 20),
				Saturation:      types.SaturationMedium,
				Elasticity:      1.0,
				Keywords: []string{
					"fitness", "yoga", "gym", "sport", "running", "cycling", "bike", "dumbbell",
					"workout", "camping", "hiking", "outdoor",
				},
			},
			{
				CategoryProfile: profile(types.CategoryPet, 40, 60, 25),
				Saturation:      types.SaturationLow,
				Elasticity:      0.7,
				Keywords: []string{
					"dog", "puppy", "kitten", "feline", "cat litter", "cat tree", "pet", "leash",
					"aquarium", "chien",
				},
			},
			{
				CategoryProfile: profile(types.CategoryAutomotive, 30, 50, 20),
				Saturation:      types.SaturationLow,
				Elasticity:      0.9,
				Keywords: []string{
					"vehicle", "automotive", "motorcycle", "tire", "tyre", "windshield",
					"dash cam", "car seat", "car mount", "car cover", "voiture",
				},
			},
			{
				CategoryProfile: profile(types.CategoryGeneral, 35, 55, 20),
				Saturation:      types.SaturationMedium,
				Elasticity:      1.0,
			},
		},
		Strategies: []types.StrategyDefinition{
			{
				Key:             types.StrategyAggressive,
				Name:            "Aggressive",
				Description:     "Maximum profit per sale, for unique or hard-to-find products",
				Icon:            "🚀",
				TargetMargin:    types.Band{Min: 50, Max: 70},
				PriceMultiplier: types.Band{Min: 2.5, Max: 4.0},
			},
			{
				Key:             types.StrategyBalanced,
				Name:            "Balanced",
				Description:     "Healthy margin with competitive positioning",
				Icon:            "⚖️",
				TargetMargin:    types.Band{Min: 35, Max: 45},
				PriceMultiplier: types.Band{Min: 1.8, Max: 2.5},
			},
			{
				Key:             types.StrategyCompetitive,
				Name:            "Competitive",
				Description:     "Aligned with competitor prices to win on crowded markets",
				Icon:            "🎯",
				TargetMargin:    types.Band{Min: 25, Max: 35},
				PriceMultiplier: types.Band{Min: 1.5, Max: 2.0},
			},
			{
				Key:             types.StrategyPremium,
				Name:            "Premium",
				Description:     "Positions the product as high-end with a strong brand perception",
				Icon:            "💎",
				TargetMargin:    types.Band{Min: 60, Max: 80},
				PriceMultiplier: types.Band{Min: 3.0, Max: 5.0},
			},
			{
				Key:             types.StrategyPenetration,
				Name:            "Penetration",
				Description:     "Low entry price to gain market share quickly",
				Icon:            "📈",
				TargetMargin:    types.Band{Min: 15, Max: 25},
				PriceMultiplier: types.Band{Min: 1.2, Max: 1.6},
			},
		},
		Tiers: []TierDefinition{
			{Name: "minimum", Multiplier: 1.1, MarginLabel: "10%", Description: "Lowest price that still leaves a profit"},
			{Name: "breakEven", Multiplier: 1.0, MarginLabel: "0%", Description: "Covers every cost, no profit"},
			{Name: "comfortable", Multiplier: 1.5, MarginLabel: "33%", Description: "Comfortable margin for steady sales"},
			{Name: "optimal", Multiplier: 2.0, MarginLabel: "50%", Description: "Recommended for most dropshipping products"},
			{Name: "premium", Multiplier: 3.0, MarginLabel: "67%", Description: "High-end positioning"},
		},
		ProfitTargets: []float64{500, 1000, 2000, 5000},
		Endings: []EndingDefinition{
			{Style: "charm", Label: "Charm pricing (.99)", Cents: 99},
			{Style: "rounded", Label: "Rounded (.00)", Cents: 0},
			{Style: "economy", Label: "Economy (.95)", Cents: 95},
			{Style: "mid", Label: "Mid-point (.50)", Cents: 50},
		},
	}
}

func profile(key types.CategoryKey, typical, premium, minViable float64) types.CategoryProfile {
	return types.CategoryProfile{
		Key:             key,
		TypicalMargin:   typical,
		PremiumMargin:   premium,
		MinViableMargin: minViable,
	}
}
