package config

import (
	"context"
	"log"
)

type seedItem struct {
	id       int
	name     string
	category string
	price    float64
	image    string
	desc     string
	prepTime int
}

var menuSeed = []seedItem{
	{1, "Pav Bhaji", "Indian", 80, "https://i.pinimg.com/474x/4c/c0/20/4cc020f1e46e0e37ea9c35e5097aadca.jpg", "Spicy potato curry with bread", 10},
	{2, "Samosa", "Snacks", 30, "https://i.pinimg.com/474x/6e/15/80/6e15809f0c0c9e7db9dcc8c0f9c5c6c8.jpg", "Crispy fried pastry with spiced potato", 8},
	{3, "Dosa", "South Indian", 60, "https://i.pinimg.com/474x/9c/5e/3c/9c5e3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Crispy pancake with sambar and chutney", 12},
	{4, "Idli", "South Indian", 40, "https://i.pinimg.com/474x/5e/5c/3c/5e5c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Steamed rice cake with sambar", 10},
	{5, "Vada Pav", "Snacks", 25, "https://i.pinimg.com/474x/7e/5c/3c/7e5c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Spicy potato ball in bread", 8},
	{6, "Misal Pav", "Indian", 70, "https://i.pinimg.com/474x/8e/5c/3c/8e5c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Spicy sprouted beans with bread", 12},
	{7, "Biryani", "Rice", 120, "https://i.pinimg.com/474x/9e/5c/3c/9e5c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Fragrant rice with meat", 20},
	{8, "Fried Rice", "Rice", 90, "https://i.pinimg.com/474x/ae/5c/3c/ae5c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Rice stir-fried with vegetables", 12},
	{9, "Butter Chicken", "Curries", 150, "https://i.pinimg.com/474x/be/5c/3c/be5c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Creamy tomato-based chicken curry", 15},
	{10, "Paneer Tikka", "Appetizers", 100, "https://i.pinimg.com/474x/ce/5c/3c/ce5c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Grilled cottage cheese with spices", 10},
	{11, "Tandoori Chicken", "Appetizers", 130, "https://i.pinimg.com/474x/de/5c/3c/de5c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Spiced grilled chicken", 18},
	{12, "Noodles", "Fast Food", 70, "https://i.pinimg.com/474x/ee/5c/3c/ee5c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Stir-fried noodles with vegetables", 10},
	{13, "Burger", "Fast Food", 80, "https://i.pinimg.com/474x/fe/5c/3c/fe5c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Classic beef burger", 8},
	{14, "Pizza", "Fast Food", 100, "https://i.pinimg.com/474x/0f/6c/3c/0f6c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Cheesy pizza with toppings", 15},
	{15, "Frankie", "Snacks", 60, "https://i.pinimg.com/474x/1f/6c/3c/1f6c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Rolled flatbread with filling", 10},
	{16, "Chocolate Cake", "Desserts", 60, "https://i.pinimg.com/474x/2f/6c/3c/2f6c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Rich chocolate cake slice", 5},
	{17, "Ice Cream", "Desserts", 40, "https://i.pinimg.com/474x/3f/6c/3c/3f6c3c0e0f5f5c5e0f5c9c5e3c0f5c5.jpg", "Vanilla ice cream cup", 3},
}

// SeedMenu inserts the default catalog when the menu table is empty.
// Only runs when SEED_MENU=true.
func SeedMenu() {
	ctx := context.Background()

	var count int
	if err := DB.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count); err != nil {
		log.Printf("Menu seed skipped: %v", err)
		return
	}
	if count > 0 {
		log.Printf("Menu seed skipped: %d items already present", count)
		return
	}

	for _, item := range menuSeed {
		_, err := DB.Exec(ctx,
			`INSERT INTO menu_items (external_id, name, category, price, image, description, available, preparation_time)
			 VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)
			 ON CONFLICT (external_id) DO NOTHING`,
			item.id, item.name, item.category, item.price, item.image, item.desc, item.prepTime)
		if err != nil {
			log.Printf("Menu seed failed for %q: %v", item.name, err)
			return
		}
	}

	log.Printf("Menu seeded with %d items", len(menuSeed))
}
