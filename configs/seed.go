package configs

import (
	"log"

	"quickbite-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// Seed the two demo accounts the storefront ships with.
func SeedUsers() error {
	db := DB()

	users := []struct {
		name, email, password, phone, avatar string
	}{
		{"John Doe", "admin@example.com", "password123", "+1 (555) 123-4567",
			"https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"},
		{"Jane Smith", "user@example.com", "user123", "+1 (555) 987-6543",
			"https://images.unsplash.com/photo-1494790108755-2616b9f3c2c5?w=150&h=150&fit=crop&crop=face"},
	}

	for _, u := range users {
		var count int64
		db.Model(&entity.User{}).Where("email = ?", u.email).Count(&count)
		if count > 0 {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := entity.User{
			Name:     u.name,
			Email:    u.email,
			Password: string(hash),
			Phone:    u.phone,
			Avatar:   u.avatar,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	log.Println("demo users seeded")
	return nil
}

// Seed coupon definitions.
func SeedCoupons() error {
	db := DB()

	db.FirstOrCreate(&entity.Coupon{}, entity.Coupon{
		Code: "SAVE50", Detail: "Flat 50 off", Type: entity.CouponFlat, Value: 50,
	})
	db.FirstOrCreate(&entity.Coupon{}, entity.Coupon{
		Code: "PERCENT10", Detail: "10% off", Type: entity.CouponPercent, Value: 10,
	})
	db.FirstOrCreate(&entity.Coupon{}, entity.Coupon{
		Code: "FIRSTORDER", Detail: "100 off your first order", Type: entity.CouponFlat, Value: 100, MinOrder: 300,
	})

	return nil
}

// Seed a small catalog so browsing works out of the box.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	catalog := []struct {
		restaurant entity.Restaurant
		menus      []entity.Menu
	}{
		{
			entity.Restaurant{
				Name: "Spice Garden", Description: "Authentic North Indian kitchen",
				Cuisines: "North Indian,Biryani", Rating: 4.3, ReviewCount: 1240,
				DeliveryTime: "25-30 min", MinimumOrder: 100, IsOpen: true,
				CoverImage: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=800",
			},
			[]entity.Menu{
				{Name: "Paneer Butter Masala", Description: "Cottage cheese in tomato gravy", Price: 220, IsVeg: true},
				{Name: "Chicken Biryani", Description: "Hyderabadi style, serves one", Price: 250, IsVeg: false},
				{Name: "Butter Naan", Price: 40, IsVeg: true},
			},
		},
		{
			entity.Restaurant{
				Name: "Dragon Wok", Description: "Indo-Chinese favourites",
				Cuisines: "Chinese,Thai", Rating: 4.1, ReviewCount: 860,
				DeliveryTime: "30-35 min", MinimumOrder: 150, IsOpen: true,
				CoverImage: "https://images.unsplash.com/photo-1525755662778-989d0524087e?w=800",
			},
			[]entity.Menu{
				{Name: "Veg Hakka Noodles", Price: 160, IsVeg: true},
				{Name: "Chilli Chicken", Description: "Dry, with bell peppers", Price: 240, IsVeg: false},
			},
		},
		{
			entity.Restaurant{
				Name: "Pizza Theatre", Description: "Wood-fired pizzas and sides",
				Cuisines: "Italian,Fast Food", Rating: 3.9, ReviewCount: 410,
				DeliveryTime: "20-25 min", MinimumOrder: 200, IsOpen: true,
				CoverImage: "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=800",
			},
			[]entity.Menu{
				{Name: "Margherita", Description: "Classic tomato and mozzarella", Price: 300, IsVeg: true},
				{Name: "Pepperoni", Price: 380, IsVeg: false},
				{Name: "Garlic Bread", Price: 120, IsVeg: true},
			},
		},
	}

	for _, c := range catalog {
		r := c.restaurant
		if err := db.Create(&r).Error; err != nil {
			return err
		}
		for _, m := range c.menus {
			m.RestaurantID = r.ID
			if err := db.Create(&m).Error; err != nil {
				return err
			}
		}
	}

	log.Println("catalog seeded")
	return nil
}
