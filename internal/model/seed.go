package model

// Seed dataset used when persisted state is absent or unreadable.
// Mirrors the demo accounts and demo listings the marketplace ships with.

// SeedIdentities returns the demo user roster.
func SeedIdentities() []Identity {
	return []Identity{
		{ID: 1, Name: "Kasun Perera", IsVerified: true},
		{ID: 2, Name: "Nimali Fernando", IsVerified: true},
		{ID: 3, Name: "Ruwan Silva", IsVerified: false},
	}
}

// SeedListings returns the demo product catalog. Sellers are snapshots of
// the seed identities; ids here define the starting point for id allocation.
func SeedListings() []Listing {
	kasun := Identity{ID: 1, Name: "Kasun Perera", IsVerified: true}
	nimali := Identity{ID: 2, Name: "Nimali Fernando", IsVerified: true}
	ruwan := Identity{ID: 3, Name: "Ruwan Silva", IsVerified: false}

	return []Listing{
		{
			ID:          1,
			Name:        "NVIDIA RTX 3080 Founders Edition",
			Category:    CategoryGPU,
			Price:       185000,
			Description: "Well cared for card from a non-smoking home. Never mined, repasted six months ago. Boxed with original accessories.",
			Condition:   ConditionGood,
			ImageURL:    "https://picsum.photos/seed/rtx3080/600/400",
			Seller:      kasun,
			DatePosted:  "2024-05-18",
			Status:      StatusAvailable,
		},
		{
			ID:          2,
			Name:        "AMD Ryzen 5 5600X",
			Category:    CategoryCPU,
			Price:       42000,
			Description: "Solid six-core chip for gaming builds. Comes with the stock Wraith cooler, unused.",
			Condition:   ConditionLikeNew,
			ImageURL:    "https://picsum.photos/seed/r5600x/600/400",
			Seller:      nimali,
			DatePosted:  "2024-05-16",
			Status:      StatusAvailable,
		},
		{
			ID:          3,
			Name:        "Corsair Vengeance LPX 16GB (2x8GB) DDR4 3200",
			Category:    CategoryRAM,
			Price:       14500,
			Description: "Pulled from an upgrade. Tested with memtest, zero errors.",
			Condition:   ConditionGood,
			ImageURL:    "https://picsum.photos/seed/lpx16/600/400",
			Seller:      kasun,
			DatePosted:  "2024-05-14",
			Status:      StatusAvailable,
		},
		{
			ID:          4,
			Name:        "Samsung 970 EVO Plus 1TB NVMe",
			Category:    CategoryStorage,
			Price:       23000,
			Description: "94% health reported by Samsung Magician. Fast boot drive for any build.",
			Condition:   ConditionUsed,
			ImageURL:    "https://picsum.photos/seed/970evo/600/400",
			Seller:      ruwan,
			DatePosted:  "2024-05-12",
			Status:      StatusAvailable,
		},
		{
			ID:          5,
			Name:        "MSI B550 Tomahawk",
			Category:    CategoryMotherboard,
			Price:       38000,
			Description: "Great VRMs for Ryzen 5000. Latest BIOS flashed, IO shield included.",
			Condition:   ConditionLikeNew,
			ImageURL:    "https://picsum.photos/seed/b550tomahawk/600/400",
			Seller:      nimali,
			DatePosted:  "2024-05-10",
			Status:      StatusAvailable,
		},
		{
			ID:          6,
			Name:        "Corsair RM750x 750W Gold",
			Category:    CategoryPSU,
			Price:       27500,
			Description: "Fully modular with all original cables. Quiet under load.",
			Condition:   ConditionGood,
			ImageURL:    "https://picsum.photos/seed/rm750x/600/400",
			Seller:      kasun,
			DatePosted:  "2024-05-07",
			Status:      StatusAvailable,
		},
		{
			ID:          7,
			Name:        "NZXT H510 Mid Tower",
			Category:    CategoryCase,
			Price:       16000,
			Description: "Minor scratch on the side panel, otherwise clean. Both stock fans spin fine.",
			Condition:   ConditionUsed,
			ImageURL:    "https://picsum.photos/seed/h510/600/400",
			Seller:      ruwan,
			DatePosted:  "2024-05-05",
			Status:      StatusAvailable,
		},
		{
			ID:          8,
			Name:        "Noctua NH-D15 chromax.black",
			Category:    CategoryCooling,
			Price:       29000,
			Description: "Top-tier air cooler, AM4 and LGA1700 mounting kits included.",
			Condition:   ConditionLikeNew,
			ImageURL:    "https://picsum.photos/seed/nhd15/600/400",
			Seller:      nimali,
			DatePosted:  "2024-05-02",
			Status:      StatusSold,
		},
	}
}
