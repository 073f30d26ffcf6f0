package data

import "github.com/rebeat-kr/souvenir-backend/internal/catalog/domain"

func price(v float64) *float64 { return &v }

// Albums is the seed K-POP album catalog, served when no database is
// configured.
var Albums = []domain.KpopAlbum{
	{ID: 1, Artist: "NewJeans", Title: "Get Up", ImageURL: "https://image.bugsm.co.kr/album/images/500/40921/4092191.jpg", Price: price(28.99)},
	{ID: 2, Artist: "BTS", Title: "Proof", ImageURL: "https://image.bugsm.co.kr/album/images/500/40776/4077685.jpg", Price: price(64.99)},
	{ID: 3, Artist: "BLACKPINK", Title: "BORN PINK", ImageURL: "https://image.bugsm.co.kr/album/images/500/40811/4081194.jpg", Price: price(32.99)},
	{ID: 4, Artist: "Stray Kids", Title: "5-STAR", ImageURL: "https://image.bugsm.co.kr/album/images/500/40903/4090342.jpg", Price: price(29.99)},
	{ID: 5, Artist: "IVE", Title: "I've IVE", ImageURL: "https://image.bugsm.co.kr/album/images/500/40886/4088690.jpg", Price: price(27.99)},
	{ID: 6, Artist: "SEVENTEEN", Title: "FML", ImageURL: "https://image.bugsm.co.kr/album/images/500/40891/4089132.jpg", Price: price(25.99)},
	{ID: 7, Artist: "aespa", Title: "MY WORLD", ImageURL: "https://image.bugsm.co.kr/album/images/500/40894/4089470.jpg", Price: price(26.99)},
	{ID: 8, Artist: "LE SSERAFIM", Title: "UNFORGIVEN", ImageURL: "https://image.bugsm.co.kr/album/images/500/40892/4089292.jpg"},
}
