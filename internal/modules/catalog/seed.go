package catalog

import "github.com/google/uuid"

// SeedData returns the initial catalog: the starter products, the ingredient
// glossary and a few community stories tied to the seeded products. The
// returned slices are safe for the caller to own.
func SeedData() ([]Product, []Ingredient, []CommunityStory) {
	anointingOil := Product{
		ID:               uuid.New(),
		Name:             "Sacred Anointing Oil (Victory)",
		ShortDescription: "A consecrated blend of frankincense and lavender for prayer and meditation.",
		Description:      "Hand-blended anointing oil crafted in small batches. Frankincense resin is slowly infused in organic olive oil, then finished with lavender to support a sense of calm and focus during prayer, meditation, or quiet reflection.",
		ImageURL:         "https://placehold.co/600x400.png",
		Price:            24.99,
		Category:         "Oils",
		Ailments:         []AilmentType{AilmentSpiritual, AilmentEmotional},
		Ingredients:      []string{"Frankincense", "Lavender"},
		SKU:              "AA-OIL-001",
		Inventory:        40,
		IsActive:         true,
	}
	healingOil := Product{
		ID:               uuid.New(),
		Name:             "Herbal Healing Oil",
		ShortDescription: "Calendula-forward skin oil for everyday scrapes and irritation.",
		Description:      "A gentle, all-natural body oil built on calendula, traditionally used to soothe irritated skin and support healing. Suitable for gardeners' hands, dry patches, and everyday wear.",
		ImageURL:         "https://placehold.co/600x400.png",
		Price:            18.50,
		Category:         "Oils",
		Ailments:         []AilmentType{AilmentPhysical},
		Ingredients:      []string{"Calendula", "Lavender"},
		SKU:              "AA-OIL-002",
		Inventory:        55,
		IsActive:         true,
	}
	blackSoap := Product{
		ID:               uuid.New(),
		Name:             "All Natural Herbal Black Soap",
		ShortDescription: "Traditional black soap with peppermint for clarity and refreshment.",
		Description:      "Classic African black soap enriched with peppermint and calendula. Cleanses without stripping, leaves skin soft, and the peppermint lift helps clear mental fog in the morning.",
		ImageURL:         "https://placehold.co/600x400.png",
		Price:            12.00,
		Category:         "Soaps",
		Ailments:         []AilmentType{AilmentPhysical, AilmentMental},
		Ingredients:      []string{"Peppermint", "Calendula"},
		SKU:              "AA-SOAP-001",
		Inventory:        120,
		IsActive:         true,
	}

	products := []Product{anointingOil, healingOil, blackSoap}

	ingredients := []Ingredient{
		{
			ID:                uuid.New(),
			Slug:              "lavender",
			Name:              "Lavender",
			Description:       "A versatile herb known for its calming aroma and soothing properties.",
			TraditionalUses:   "Used for centuries to promote relaxation, reduce anxiety, and aid sleep. Also applied topically for skin irritations and burns.",
			SpiritualBenefits: "Promotes peace, tranquility, and purification. Enhances intuition and spiritual awareness. Associated with the crown chakra.",
			PhysicalBenefits:  "Anti-inflammatory, antiseptic, and analgesic properties. Helps alleviate headaches, muscle pain, and insect bites. Supports skin healing.",
			ImageURL:          "https://placehold.co/300x200.png",
		},
		{
			ID:                uuid.New(),
			Slug:              "frankincense",
			Name:              "Frankincense",
			Description:       "A resin obtained from Boswellia trees, prized for its aromatic and healing qualities.",
			TraditionalUses:   "Burned as incense in religious ceremonies for purification and to create a sacred atmosphere. Used in traditional medicine for its anti-inflammatory effects.",
			SpiritualBenefits: "Elevates spiritual consciousness, aids in meditation and prayer, and dispels negative energy. Connects to higher realms.",
			PhysicalBenefits:  "Supports respiratory health, reduces inflammation (especially in joints), boosts immune system, and promotes healthy skin.",
			ImageURL:          "https://placehold.co/300x200.png",
		},
		{
			ID:                uuid.New(),
			Slug:              "calendula",
			Name:              "Calendula",
			Description:       "A vibrant orange flower with powerful skin-healing abilities.",
			TraditionalUses:   "Applied to wounds, burns, and rashes to accelerate healing and prevent infection. Taken internally for digestive issues.",
			SpiritualBenefits: "Brings warmth, joy, and light. Associated with the sun and creativity. Offers protection and aids in manifesting positive outcomes.",
			PhysicalBenefits:  "Potent anti-inflammatory, antimicrobial, and vulnerary (wound-healing) properties. Excellent for all types of skin conditions.",
			ImageURL:          "https://placehold.co/300x200.png",
		},
		{
			ID:                uuid.New(),
			Slug:              "peppermint",
			Name:              "Peppermint",
			Description:       "A hybrid mint known for its refreshing scent and invigorating effects.",
			TraditionalUses:   "Used to aid digestion, relieve nausea, freshen breath, and alleviate headaches. Its cooling sensation is valued for muscle pain.",
			SpiritualBenefits: "Clears mental fog, enhances focus and concentration. Purifies energy and promotes alertness. Aids in communication.",
			PhysicalBenefits:  "Soothes digestive upset, relieves tension headaches, opens airways, and has antimicrobial properties beneficial for oral health.",
			ImageURL:          "https://placehold.co/300x200.png",
		},
	}

	stories := []CommunityStory{
		{
			ID:            uuid.New(),
			UserName:      "Seraphina Moon",
			UserAvatarURL: "https://placehold.co/100x100.png",
			ProductID:     &anointingOil.ID,
			ProductName:   anointingOil.Name,
			Story:         "Using the Sacred Anointing Oil during my daily meditation has transformed my practice. I feel a deeper connection to my inner self and a profound sense of peace. It's truly a blessing.",
			Date:          "2023-10-15",
		},
		{
			ID:            uuid.New(),
			UserName:      "Elias Stone",
			UserAvatarURL: "https://placehold.co/100x100.png",
			ProductID:     &healingOil.ID,
			ProductName:   healingOil.Name,
			Story:         "I'm an avid gardener and often get minor cuts and scrapes. The Herbal Healing Oil is a lifesaver! It soothes irritation instantly and helps my skin heal much faster. I love that it's all-natural.",
			Date:          "2023-11-02",
		},
		{
			ID:            uuid.New(),
			UserName:      "Luna Bloom",
			UserAvatarURL: "https://placehold.co/100x100.png",
			ProductID:     &blackSoap.ID,
			ProductName:   blackSoap.Name,
			Story:         "The All Natural Herbal Black Soap has become a staple in my routine. The scent is incredibly calming, and it leaves my skin feeling soft. I've noticed a significant improvement in my skin's clarity.",
			Date:          "2023-09-20",
		},
	}

	return products, ingredients, stories
}
