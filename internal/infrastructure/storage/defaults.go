package storage

import "github.com/yourusername/product-catalog/internal/domain/entity"

// DefaultSource catalog source name while no spreadsheet has been imported
const DefaultSource = "defaults"

// DefaultCategories fixed display categories of the catalog page
func DefaultCategories() []entity.Category {
	return []entity.Category{
		{ID: "beverages", Name: "Beverages", Description: "Energy drinks, coffee, and soft drinks", Icon: "bi bi-cup-straw", Image: "assets/images/products/soft-drinks.jpg"},
		{ID: "snacks", Name: "Confectionery", Description: "Chocolates, spreads, and treats", Icon: "bi bi-cupcake", Image: "assets/images/products/snakss.webp"},
		{ID: "breakfast", Name: "Breakfast & Pantry", Description: "Oats, coffee mate, and more", Icon: "bi bi-egg-fried", Image: "assets/images/products/bakery.webp"},
		{ID: "pasta", Name: "Pasta", Description: "Delicious pasta and noodles", Icon: "bi bi-egg-fried", Image: "assets/images/products/pasta-main.jpg"},
		{ID: "oliveOil", Name: "Olive oil", Description: "Olive oil", Icon: "bi bi-egg-fried", Image: "assets/images/products/olive oil.jpg"},
		{ID: "tea-coffee", Name: "Tea & Coffee", Description: "Tea & Coffee", Icon: "bi bi-egg-fried", Image: "assets/images/products/coffee.webp"},
	}
}

// DefaultProducts catalog served before the first import and after a reset
func DefaultProducts() []entity.Product {
	return []entity.Product{
		defaultProduct(1, "Energy Drink", "Refreshing energy drink for a quick boost.", "assets/images/products/energyDrink.jpg", "beverages", 2.99, 50, "BEV001"),
		defaultProduct(2, "Redbull", "The world-famous energy drink.", "assets/images/products/redbull.jpg", "beverages", 3.49, 30, "BEV002"),
		defaultProduct(3, "Monster", "Monster energy drink for extreme energy.", "https://images.monsterenergy.com/media/uploads/2021/07/monster-energy-can.png", "beverages", 2.99, 25, "BEV003"),
		defaultProduct(4, "Coca-Cola", "Classic Coca-Cola soft drink.", "https://www.coca-cola.com/content/dam/journey/us/en/private/2019/07/coca-cola-original-12oz-can.png", "beverages", 1.99, 100, "BEV004"),
		defaultProduct(5, "Nescafé", "Instant coffee for a quick start.", "https://www.nescafe.com/gb/sites/default/files/2021-03/NESCAFE-Original-200g.png", "beverages", 8.99, 20, "BEV005"),
		defaultProduct(6, "Nescafé Gold", "Premium instant coffee blend.", "https://www.nescafe.com/gb/sites/default/files/2021-03/NESCAFE-Gold-200g.png", "beverages", 12.99, 15, "BEV006"),
		defaultProduct(7, "Mars", "Classic Mars chocolate bar.", "https://m.media-amazon.com/images/I/71QKQ9mwV7L._SL1500_.jpg", "snacks", 1.49, 75, "SNK001"),
		defaultProduct(8, "Twix", "Crunchy and caramel Twix bar.", "https://m.media-amazon.com/images/I/81QwQwQwQwL._SL1500_.jpg", "snacks", 1.29, 60, "SNK002"),
		defaultProduct(9, "Bounty", "Coconut-filled Bounty chocolate.", "https://m.media-amazon.com/images/I/81bountybar.jpg", "snacks", 1.39, 45, "SNK003"),
		defaultProduct(10, "Kinder Joy", "Delicious Kinder Joy treat.", "https://m.media-amazon.com/images/I/61kinderjoy.jpg", "snacks", 2.99, 40, "SNK004"),
		defaultProduct(11, "Nutella", "Hazelnut chocolate spread.", "https://www.nutella.com/sites/default/files/styles/product_image/public/2021-01/Nutella-jar.png", "snacks", 6.99, 25, "SNK005"),
		defaultProduct(12, "Quaker Oats", "Healthy and nutritious oats.", "https://www.quakeroats.com/-/media/Images/QuakerOats/Products/Product%20Images/Quaker-Old-Fashioned-Oats-18oz.png", "breakfast", 4.99, 30, "BRK001"),
		defaultProduct(13, "Coffee mate", "Creamy coffee creamer.", "https://www.coffeemate.com/sites/g/files/jgfbjl601/files/2021-01/coffee-mate-original-powder.png", "breakfast", 3.99, 35, "BRK002"),
	}
}

func defaultProduct(id int, name, description, image, category string, price float64, stock int, sku string) entity.Product {
	return entity.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Image:       image,
		Category:    category,
		Price:       entity.Float64(price),
		Stock:       entity.Int(stock),
		SKU:         entity.String(sku),
	}
}
