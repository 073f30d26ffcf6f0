package data

import "github.com/rebeat-kr/souvenir-backend/internal/catalog/domain"

// Activities is the seed activity catalog, served when no database is
// configured.
var Activities = []domain.Activity{
	{
		ID:        1,
		Title:     "Korean Art Galleries Tour (As Seen On Social Media)",
		ImageURL:  "https://dynamic-media.tacdn.com/media/photo-o/30/e8/ca/1a/caption.jpg?w=800&h=600&s=1",
		Rating:    5.0,
		Reviews:   42,
		Duration:  "4 hours (approx.)",
		Price:     150,
		IsPopular: true,
		Labels:    []string{"Art", "Culture", "Tour"},
	},
	{
		ID:       2,
		Title:    "K-Pop Dance Class & Video Shooting in Seoul",
		ImageURL: "https://dynamic-media.tacdn.com/media/photo-o/2f/03/a4/a1/caption.jpg?w=800&h=600&s=1",
		Rating:   4.8,
		Reviews:  112,
		Duration: "3 hours",
		Price:    75,
		Labels:   []string{"K-Pop", "Dance", "Culture"},
	},
	{
		ID:        3,
		Title:     "DMZ Tour: 3rd Tunnel & Observatory from Seoul",
		ImageURL:  "https://dynamic-media.tacdn.com/media/photo-o/31/22/7c/fa/caption.jpg?w=800&h=600&s=1",
		Rating:    4.9,
		Reviews:   840,
		Duration:  "7 hours",
		Price:     55,
		IsPopular: true,
		Labels:    []string{"History", "Tour", "Military"},
	},
	{
		ID:       4,
		Title:    "Seoul's History: Gyeongbok Palace & Bukchon Village",
		ImageURL: "https://dynamic-media.tacdn.com/media/photo-o/2e/ff/45/fc/caption.jpg?w=800&h=600&s=1",
		Rating:   4.9,
		Reviews:  550,
		Duration: "4 hours",
		Price:    60,
		Labels:   []string{"History", "Culture", "Tour"},
	},
	{
		ID:       5,
		Title:    "Gyeongbok Palace Hanbok Rental & Photoshoot",
		ImageURL: "https://dynamic-media.tacdn.com/media/photo-o/2e/fc/7d/9d/caption.jpg?w=800&h=600&s=1",
		Rating:   5.0,
		Reviews:  315,
		Duration: "2 hours",
		Price:    45,
		Labels:   []string{"Culture", "History", "Photoshoot"},
	},
	{
		ID:       6,
		Title:    "Craft Makgeolli Brewery Tour & Tasting",
		ImageURL: "https://res.klook.com/image/upload/w_1265,h_791,c_fill,q_85/w_80,x_15,y_15,g_south_west,l_Klook_water_br_trans_yhcmh3/activities/ssprvv52skokhdpcg7px.webp",
		Rating:   5.0,
		Reviews:  116,
		Duration: "2.5 hours",
		Price:    58,
		Labels:   []string{"Food", "Culture", "Tasting"},
		Article: &domain.Article{
			Title: "Discover the Art of Korean Rice Wine",
			Content: "Dive into the fascinating world of Makgeolli, Korea's traditional rice wine, with this hands-on brewery tour in the heart of Seoul. " +
				"Visit a local craft brewery, meet the master brewer, and walk through the entire process from steaming the rice to the final fermentation. " +
				"A guided tasting of freshly brewed premium Makgeolli follows, paired with Korean side dishes (anju) chosen to complement the rice wine.",
		},
	},
	{
		ID:       10,
		Title:    "Traditional Soju & Makgeolli Tasting in a Hanok",
		ImageURL: "https://res.klook.com/image/upload/w_500,h_313,c_fill,q_85/activities/bs2votirvtlzm6sezdgb.jpg",
		Rating:   5.0,
		Reviews:  35,
		Duration: "2 hours",
		Price:    50,
		Labels:   []string{"Food", "Culture", "Tasting"},
		Article: &domain.Article{
			Title: "A Sommelier-Led Journey Through Korea's Finest Spirits",
			Content: "Experience the authentic soul of Korean drinking culture in a traditional Hanok, guided by a certified traditional liquor sommelier. " +
				"Sample a curated flight of 10 different craft soju and makgeolli, each thoughtfully paired with Korean side dishes, " +
				"and hear the stories behind brewing methods passed down through generations.",
		},
	},
	{
		ID:       9,
		Title:    "Ramen Factory Tour",
		ImageURL: "https://newsimg.koreatimes.co.kr/2024/01/25/6fa8e58d-ff25-4229-bdfa-3a86b6e9c60f.jpg?v=1706860080000&w=1200",
		Rating:   4.8,
		Reviews:  75,
		Duration: "3 hours",
		Price:    120,
		Labels:   []string{"Food", "Factory Tour", "Unique"},
		Article: &domain.Article{
			Title: "Uncover the Secrets of Slurp-Worthy Ramen!",
			Content: "Step into the heart of noodle nirvana with an immersive factory tour: watch master noodle makers at work in the noodle room, " +
				"breathe in the simmering vats of tonkotsu, miso and shoyu broth, then design your own custom cup of instant ramen — broth, toppings and packaging — " +
				"before a guided tasting of the factory's signature bowls.",
		},
	},
	{
		ID:        7,
		Title:     "Nami Island, Samaksan Cable Car & Rail Bike Day Trip",
		ImageURL:  "https://dynamic-media-cdn.tripadvisor.com/media/photo-o/15/1b/ef/60/caption.jpg?w=1100&h=800&s=1",
		Rating:    4.7,
		Reviews:   188,
		Duration:  "12 hours",
		Price:     110,
		IsPopular: true,
		Labels:    []string{"Nature", "Tour", "Day Trip"},
	},
	{
		ID:       8,
		Title:    "The Korean War: A Historical DMZ Deep-Dive",
		ImageURL: "https://dynamic-media.tacdn.com/media/photo-o/2f/5a/d7/3d/caption.jpg?w=800&h=600&s=1",
		Rating:   4.9,
		Reviews:  210,
		Duration: "6 hours",
		Price:    70,
		Labels:   []string{"History", "Military", "Tour"},
	},
}
