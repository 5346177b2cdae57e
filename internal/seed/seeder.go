package seed

import (
	"context"
	"errors"
	"math/rand"

	"trailbook/internal/experience"
	"trailbook/internal/logger"
	"trailbook/internal/promo"
)

// ErrAlreadySeeded is returned when the catalog already holds experiences.
var ErrAlreadySeeded = errors.New("database already seeded")

var seedDates = []string{"Nov 1", "Nov 2", "Nov 3", "Nov 4", "Nov 5", "Nov 6", "Nov 7"}

var seedTimes = []string{"07:00 AM", "09:00 AM", "11:00 AM", "01:00 PM", "03:00 PM", "05:00 PM"}

var seedExperiences = []experience.CreateExperienceRequest{
	{
		Title:           "Kayaking in River",
		Location:        "Udaipur, Rajasthan",
		Image:           "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800",
		Price:           999,
		Description:     "Curated small-group experience. Certified guide. Safety first with gear included.",
		FullDescription: "Experience the thrill of kayaking in the beautiful waters of Udaipur. Curated small-group experience with certified guides. Safety first with all gear included including helmet and life jackets. An expert will accompany you throughout the journey.",
		About:           "Scenic routes, trained guides, and safety standards. Minimum age 10 years. Duration: 2-3 hours.",
	},
	{
		Title:           "Nandi Hills Sunrise Trek",
		Location:        "Bangalore, Karnataka",
		Image:           "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
		Price:           899,
		Description:     "Witness breathtaking sunrise views from Nandi Hills. Guided trek with refreshments.",
		FullDescription: "Start your day with a magical sunrise trek to Nandi Hills. Experience stunning panoramic views as the sun rises over the hills. Includes guided trek, refreshments, and photography opportunities.",
		About:           "Easy to moderate difficulty level. Suitable for beginners. Duration: 4-5 hours including travel.",
	},
	{
		Title:           "Coorg Coffee Plantation Tour",
		Location:        "Coorg, Karnataka",
		Image:           "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=800",
		Price:           1299,
		Description:     "Explore lush coffee plantations. Learn about coffee cultivation and processing.",
		FullDescription: "Walk through aromatic coffee plantations and learn about the entire coffee-making process from bean to cup. Includes coffee tasting, plantation walk, and local cuisine.",
		About:           "Family-friendly activity. Includes lunch and coffee tasting. Duration: 5-6 hours.",
	},
	{
		Title:           "Kerala Backwater Kayaking",
		Location:        "Alleppey, Kerala",
		Image:           "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?w=800",
		Price:           1199,
		Description:     "Paddle through serene backwaters. Explore village life and nature.",
		FullDescription: "Discover the tranquil beauty of Kerala backwaters on a kayaking expedition. Navigate through narrow canals, witness local village life, and spot diverse bird species.",
		About:           "Suitable for all fitness levels. Duration: 3-4 hours. Morning and evening slots available.",
	},
	{
		Title:           "Rishikesh River Rafting",
		Location:        "Rishikesh, Uttarakhand",
		Image:           "https://images.unsplash.com/photo-1527004013197-933c4bb611b3?w=800",
		Price:           1499,
		Description:     "Thrilling white water rafting experience. Professional instructors and safety gear.",
		FullDescription: "Experience the adrenaline rush of white water rafting in the holy Ganges. Professional rafting instructors, premium safety equipment, and stunning Himalayan views.",
		About:           "Moderate to difficult rapids. Minimum age 14 years. Duration: 2-3 hours in water.",
	},
	{
		Title:           "Sundarbans Boat Safari",
		Location:        "Sundarbans, West Bengal",
		Image:           "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800",
		Price:           2499,
		Description:     "Explore mangrove forests. Wildlife spotting including Royal Bengal Tigers.",
		FullDescription: "Embark on an unforgettable journey through the worlds largest mangrove forest. Spot Royal Bengal Tigers, crocodiles, and diverse bird species on this guided boat safari.",
		About:           "Full day experience with meals. Wildlife sighting not guaranteed. Eco-friendly tour.",
	},
	{
		Title:           "Bungee Jumping Adventure",
		Location:        "Rishikesh, Uttarakhand",
		Image:           "https://images.unsplash.com/photo-1533174072545-7a4b6ad7a6c3?w=800",
		Price:           3500,
		Description:     "Take the leap! Experience the ultimate adrenaline rush.",
		FullDescription: "Jump from 83 meters into the stunning valley. Indias highest bungee jumping experience with international safety standards and certified jump masters.",
		About:           "Weight limit: 40-110 kg. Minimum age 12 years. Medical certificate required for age 45+.",
	},
	{
		Title:           "Goa Scuba Diving",
		Location:        "Grande Island, Goa",
		Image:           "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800",
		Price:           2999,
		Description:     "Discover underwater world. Coral reefs and marine life exploration.",
		FullDescription: "Dive into the crystal clear waters of Goa and explore vibrant coral reefs. No prior experience needed. Complete training and equipment provided by PADI certified instructors.",
		About:           "Beginners welcome. Duration: 4-5 hours including training. Underwater photography available.",
	},
}

func seedPromos() []promo.CreatePromoRequest {
	active := true
	return []promo.CreatePromoRequest{
		{Code: "SAVE10", Discount: 10, Type: "percentage", Active: &active},
		{Code: "FLAT100", Discount: 100, Type: "fixed", Active: &active},
		{Code: "WELCOME20", Discount: 20, Type: "percentage", Active: &active},
		{Code: "ADVENTURE50", Discount: 50, Type: "fixed", Active: &active},
	}
}

// Summary reports what a seed run created.
type Summary struct {
	Experiences int `json:"experiences"`
	Slots       int `json:"slots"`
	PromoCodes  int `json:"promoCodes"`
}

type Seeder struct {
	catalogRepo experience.Repository
	promoRepo   promo.Repository
	spotsFn     func() int
}

func NewSeeder(catalogRepo experience.Repository, promoRepo promo.Repository) *Seeder {
	return &Seeder{
		catalogRepo: catalogRepo,
		promoRepo:   promoRepo,
		spotsFn: func() int {
			return rand.Intn(8) + 2
		},
	}
}

// Run populates the catalog with demo experiences, a week of slots per
// experience, and the starter promo codes. It refuses to run twice.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	count, err := s.catalogRepo.CountExperiences(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadySeeded
	}

	logger.Info("Starting database seed")

	summary := &Summary{}
	for _, req := range seedExperiences {
		exp, err := s.catalogRepo.CreateExperience(ctx, req)
		if err != nil {
			return nil, err
		}
		summary.Experiences++

		for _, date := range seedDates {
			for _, time := range seedTimes {
				_, err := s.catalogRepo.CreateSlot(ctx, exp.ID, experience.CreateSlotRequest{
					Date:           date,
					Time:           time,
					TotalSpots:     10,
					AvailableSpots: s.spotsFn(),
				})
				if err != nil {
					return nil, err
				}
				summary.Slots++
			}
		}
	}

	for _, req := range seedPromos() {
		if _, err := s.promoRepo.Create(ctx, req); err != nil {
			return nil, err
		}
		summary.PromoCodes++
	}

	logger.Infof("Seed complete: %d experiences, %d slots, %d promo codes",
		summary.Experiences, summary.Slots, summary.PromoCodes)

	return summary, nil
}
