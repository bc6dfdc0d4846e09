package models

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func defaultSettings() Settings {
	return Settings{
		ID:       1,
		SiteName: "Оленевка.Тур",
		MainCity: "Москва",
		Phone:    "+7 (978) 000-00-00",
		Email:    "info@olenevka.ru",
	}
}

func defaultCities() []City {
	names := []string{"Москва", "Санкт-Петербург", "Новосибирск", "Екатеринбург", "Казань", "Оленёк"}
	cities := make([]City, 0, len(names))
	for _, name := range names {
		cities = append(cities, City{Name: name, IsActive: true})
	}
	return cities
}

func defaultPlaces() []Place {
	return []Place{
		{Name: "Тарханкут", Description: "мыс, маяк, гроты", Price: 500, Image: "img1", SortOrder: 1},
		{Name: "Чаша любви", Description: "природный бассейн", Price: 0, Image: "img2", SortOrder: 2},
		{Name: "Аллея вождей", Description: "подводный музей", Price: 2500, Image: "img3", SortOrder: 3},
		{Name: "Атлеш", Description: "скалы, дельфины", Price: 800, Image: "img4", SortOrder: 4},
	}
}

func defaultHotels() []Hotel {
	return []Hotel{
		{Name: "Оленевка Village", Description: "кемпинг, центр", PricePerNight: 500, Rating: 4.5, Image: "img5", SortOrder: 1},
		{Name: "Гостевой дом «Клевер»", Description: "частный сектор", PricePerNight: 800, Rating: 5.0, Image: "img6", SortOrder: 2},
		{Name: "Парк-отель «Тарханкут»", Description: "первая линия", PricePerNight: 2500, Rating: 4.2, Image: "img7", SortOrder: 3},
	}
}

// Seed inserts the default dataset into every table that is still empty.
// Reviews are never seeded. A failed row count is logged and that table is
// skipped; subsequent reads simply see it empty.
func Seed(dbc *gorm.DB, log *zap.Logger) {
	seedTable(dbc, log, "settings", &Settings{}, func() error {
		s := defaultSettings()
		return dbc.Create(&s).Error
	})
	seedTable(dbc, log, "cities", &City{}, func() error {
		cities := defaultCities()
		return dbc.Create(&cities).Error
	})
	seedTable(dbc, log, "places", &Place{}, func() error {
		places := defaultPlaces()
		return dbc.Create(&places).Error
	})
	seedTable(dbc, log, "hotels", &Hotel{}, func() error {
		hotels := defaultHotels()
		return dbc.Create(&hotels).Error
	})
}

func seedTable(dbc *gorm.DB, log *zap.Logger, table string, model interface{}, insert func() error) {
	var count int64
	if err := dbc.Model(model).Count(&count).Error; err != nil {
		log.Error("Row count failed, skipping seed", zap.String("table", table), zap.Error(err))
		return
	}
	if count > 0 {
		return
	}
	if err := insert(); err != nil {
		log.Error("Seed insert failed", zap.String("table", table), zap.Error(err))
		return
	}
	log.Info("Seeded default rows", zap.String("table", table))
}
