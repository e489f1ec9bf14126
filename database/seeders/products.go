package seeders

import (
	"context"
	"time"

	"github.com/shashiranjanraj/stylevault/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	Register("products", SeedProducts)
}

// SeedProducts upserts the demo catalog by product name, so re-running the
// seeder refreshes prices and stock without duplicating documents.
func SeedProducts(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("products")
	now := time.Now().UTC()

	for _, p := range catalog {
		update := bson.M{
			"$set": bson.M{
				"description": p.Description,
				"price":       p.Price,
				"imageUrl":    p.ImageURL,
				"category":    p.Category,
				"sizes":       p.Sizes,
				"stock":       p.Stock,
				"updatedAt":   now,
			},
			"$setOnInsert": bson.M{
				"name":      p.Name,
				"createdAt": now,
			},
		}
		_, err := col.UpdateOne(ctx, bson.M{"name": p.Name}, update,
			options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}

var allSizes = []string{"S", "M", "L", "XL"}
var smlSizes = []string{"S", "M", "L"}

var catalog = []models.Product{
	{
		Name:        "Classic White T-Shirt",
		Description: "Premium cotton t-shirt, perfect for everyday comfort. Breathable fabric with a modern fit.",
		Price:       1999,
		ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&auto=format&fit=crop",
		Category:    "Men",
		Sizes:       allSizes,
		Stock:       50,
	},
	{
		Name:        "Slim Fit Denim Jeans",
		Description: "Classic blue denim jeans with a contemporary slim fit. Perfect for casual outings.",
		Price:       6499,
		ImageURL:    "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500&auto=format&fit=crop",
		Category:    "Men",
		Sizes:       allSizes,
		Stock:       35,
	},
	{
		Name:        "Leather Biker Jacket",
		Description: "Authentic black leather jacket with zipper details. Timeless style meets modern design.",
		Price:       19999,
		ImageURL:    "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500&auto=format&fit=crop",
		Category:    "Men",
		Sizes:       []string{"M", "L", "XL"},
		Stock:       12,
	},
	{
		Name:        "Cotton Blend Hoodie",
		Description: "Soft, cozy hoodie in charcoal gray. Perfect for layering in cooler weather.",
		Price:       4999,
		ImageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=500&auto=format&fit=crop",
		Category:    "Men",
		Sizes:       allSizes,
		Stock:       42,
	},
	{
		Name:        "Navy Business Blazer",
		Description: "Elegant navy blazer crafted from premium wool blend. Ideal for formal occasions.",
		Price:       15499,
		ImageURL:    "https://images.unsplash.com/photo-1617127365659-c47fa864d8bc?w=500&auto=format&fit=crop",
		Category:    "Men",
		Sizes:       []string{"M", "L", "XL"},
		Stock:       18,
	},
	{
		Name:        "Striped Polo Shirt",
		Description: "Classic navy and white striped polo shirt. Versatile for smart-casual occasions.",
		Price:       3799,
		ImageURL:    "https://images.unsplash.com/photo-1581655353564-df123a1eb820?w=500&auto=format&fit=crop",
		Category:    "Men",
		Sizes:       allSizes,
		Stock:       28,
	},
	{
		Name:        "Khaki Chino Trousers",
		Description: "Comfortable chino pants in beige. Perfect balance of casual and refined style.",
		Price:       5399,
		ImageURL:    "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=500&auto=format&fit=crop",
		Category:    "Men",
		Sizes:       allSizes,
		Stock:       31,
	},
	{
		Name:        "Crew Neck Sweater",
		Description: "Warm merino wool sweater in olive green. Classic design for autumn and winter.",
		Price:       7499,
		ImageURL:    "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=500&auto=format&fit=crop",
		Category:    "Men",
		Sizes:       allSizes,
		Stock:       25,
	},
	{
		Name:        "Athletic Performance T-Shirt",
		Description: "Moisture-wicking athletic t-shirt perfect for workouts and sports activities.",
		Price:       3499,
		ImageURL:    "https://images.unsplash.com/photo-1618354691373-d851c5c3a990?w=500&auto=format&fit=crop",
		Category:    "Men",
		Sizes:       allSizes,
		Stock:       38,
	},
	{
		Name:        "Cargo Shorts",
		Description: "Functional cargo shorts with multiple pockets. Perfect for outdoor adventures.",
		Price:       4299,
		ImageURL:    "https://images.unsplash.com/photo-1624378515192-85dd52317559?w=500&auto=format&fit=crop",
		Category:    "Men",
		Sizes:       allSizes,
		Stock:       33,
	},
	{
		Name:        "Floral Midi Dress",
		Description: "Beautiful floral print midi dress. Flowing fabric perfect for spring and summer events.",
		Price:       7499,
		ImageURL:    "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=500&auto=format&fit=crop",
		Category:    "Women",
		Sizes:       smlSizes,
		Stock:       32,
	},
	{
		Name:        "Elegant Cocktail Dress",
		Description: "Sophisticated black cocktail dress with subtle shimmer. Perfect for evening occasions.",
		Price:       10799,
		ImageURL:    "https://images.unsplash.com/photo-1490367532201-b9bc1dc483f6?w=500&auto=format&fit=crop",
		Category:    "Women",
		Sizes:       allSizes,
		Stock:       20,
	},
	{
		Name:        "Cropped Denim Jacket",
		Description: "Trendy cropped denim jacket in light wash. Adds a stylish layer to any outfit.",
		Price:       6199,
		ImageURL:    "https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3?w=500&auto=format&fit=crop",
		Category:    "Women",
		Sizes:       smlSizes,
		Stock:       27,
	},
	{
		Name:        "Soft Pink Cardigan",
		Description: "Cozy pink cardigan with button front. Perfect for layering and transitioning seasons.",
		Price:       5399,
		ImageURL:    "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=500&auto=format&fit=crop",
		Category:    "Women",
		Sizes:       allSizes,
		Stock:       30,
	},
	{
		Name:        "Silk Blouse",
		Description: "Elegant white silk blouse with ruffled details. Suitable for office or special occasions.",
		Price:       7899,
		ImageURL:    "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=500&auto=format&fit=crop",
		Category:    "Women",
		Sizes:       smlSizes,
		Stock:       24,
	},
	{
		Name:        "High-Waisted Wide Leg Pants",
		Description: "Chic high-waisted pants in black. Comfortable wide-leg design with a modern silhouette.",
		Price:       7099,
		ImageURL:    "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=500&auto=format&fit=crop",
		Category:    "Women",
		Sizes:       allSizes,
		Stock:       29,
	},
	{
		Name:        "Beige Trench Coat",
		Description: "Classic beige trench coat with belt. Timeless outerwear for rainy days and cool weather.",
		Price:       18299,
		ImageURL:    "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=500&auto=format&fit=crop",
		Category:    "Women",
		Sizes:       smlSizes,
		Stock:       15,
	},
	{
		Name:        "Maxi Summer Dress",
		Description: "Flowing maxi dress with tropical print. Lightweight and perfect for beach vacations.",
		Price:       6499,
		ImageURL:    "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=500&auto=format&fit=crop",
		Category:    "Women",
		Sizes:       smlSizes,
		Stock:       22,
	},
	{
		Name:        "Ribbed Knit Sweater",
		Description: "Cozy ribbed sweater in camel color. Perfect for autumn and winter styling.",
		Price:       5799,
		ImageURL:    "https://images.unsplash.com/photo-1574180566232-aaad1b5b8450?w=500&auto=format&fit=crop",
		Category:    "Women",
		Sizes:       allSizes,
		Stock:       26,
	},
	{
		Name:        "Pleated Midi Skirt",
		Description: "Elegant pleated skirt in navy blue. Versatile piece that pairs with any top.",
		Price:       4599,
		ImageURL:    "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=500&auto=format&fit=crop",
		Category:    "Women",
		Sizes:       smlSizes,
		Stock:       33,
	},
	{
		Name:        "Wrap Front Blouse",
		Description: "Stylish wrap-front blouse in cream color. Flattering design that suits all body types.",
		Price:       6299,
		ImageURL:    "https://images.unsplash.com/photo-1594633313593-bab3825d0caf?w=500&auto=format&fit=crop",
		Category:    "Women",
		Sizes:       allSizes,
		Stock:       28,
	},
	{
		Name:        "Leather Ankle Boots",
		Description: "Classic black leather ankle boots with comfortable heel. Perfect for everyday wear.",
		Price:       12499,
		ImageURL:    "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=500&auto=format&fit=crop",
		Category:    "Women",
		Sizes:       smlSizes,
		Stock:       19,
	},
	{
		Name:        "Superhero Graphic Tee",
		Description: "Fun and colorful superhero t-shirt. Made from soft, kid-friendly organic cotton.",
		Price:       1899,
		ImageURL:    "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=500&auto=format&fit=crop",
		Category:    "Kids",
		Sizes:       smlSizes,
		Stock:       48,
	},
	{
		Name:        "Denim Play Shorts",
		Description: "Durable denim shorts designed for active play. Comfortable fit with reinforced seams.",
		Price:       2749,
		ImageURL:    "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?w=500&auto=format&fit=crop",
		Category:    "Kids",
		Sizes:       smlSizes,
		Stock:       41,
	},
	{
		Name:        "Princess Party Dress",
		Description: "Sparkly party dress in pink with tulle skirt. Perfect for special occasions and celebrations.",
		Price:       3749,
		ImageURL:    "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=500&auto=format&fit=crop",
		Category:    "Kids",
		Sizes:       smlSizes,
		Stock:       36,
	},
	{
		Name:        "Fleece Hooded Jacket",
		Description: "Warm and soft fleece jacket with hood. Water-resistant outer shell perfect for outdoor play.",
		Price:       4599,
		ImageURL:    "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=500&auto=format&fit=crop",
		Category:    "Kids",
		Sizes:       smlSizes,
		Stock:       38,
	},
	{
		Name:        "Cotton Play Set",
		Description: "Comfortable two-piece play set in cheerful colors. Easy to move in for active kids.",
		Price:       3299,
		ImageURL:    "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?w=500&auto=format&fit=crop",
		Category:    "Kids",
		Sizes:       smlSizes,
		Stock:       43,
	},
	{
		Name:        "School Uniform Shirt",
		Description: "Crisp white button-down shirt. Perfect for school or formal events.",
		Price:       2399,
		ImageURL:    "https://images.unsplash.com/photo-1586790170083-2f9ceadc732d?w=500&auto=format&fit=crop",
		Category:    "Kids",
		Sizes:       smlSizes,
		Stock:       52,
	},
	{
		Name:        "Winter Puffer Coat",
		Description: "Insulated puffer jacket in bright colors. Keeps kids warm during cold weather adventures.",
		Price:       6199,
		ImageURL:    "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?w=500&auto=format&fit=crop",
		Category:    "Kids",
		Sizes:       smlSizes,
		Stock:       29,
	},
	{
		Name:        "Sports Jersey Set",
		Description: "Athletic jersey and shorts set. Moisture-wicking fabric perfect for sports and activities.",
		Price:       2899,
		ImageURL:    "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=500&auto=format&fit=crop",
		Category:    "Kids",
		Sizes:       smlSizes,
		Stock:       47,
	},
}
