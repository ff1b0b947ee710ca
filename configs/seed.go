package configs

import "github.com/dineshdk1011/college-canteen/entity"

// SeedCanteens is the static catalog. It is loaded once at startup and
// treated as read-only for the life of the process.
func SeedCanteens() []entity.Canteen {
	return []entity.Canteen{
		{
			ID:          "central-mess",
			Name:        "Central Mess",
			Description: "The main canteen next to the academic block. Full meals all day.",
			Image:       "/images/canteens/central-mess.jpg",
			Menu: []entity.MenuItem{
				{ID: "cm-veg-thali", Name: "Veg Thali", Description: "Rice, dal, two sabzis, roti and curd", Price: 80, Category: entity.CategoryMainCourse, IsVeg: true, Image: "/images/menu/veg-thali.jpg"},
				{ID: "cm-chicken-biryani", Name: "Chicken Biryani", Description: "Hyderabadi style with raita", Price: 120, Category: entity.CategoryMainCourse, IsVeg: false, Image: "/images/menu/chicken-biryani.jpg"},
				{ID: "cm-samosa", Name: "Samosa", Description: "Crisp pastry with spiced potato filling", Price: 15, Category: entity.CategorySnacks, IsVeg: true, Image: "/images/menu/samosa.jpg"},
				{ID: "cm-masala-chai", Name: "Masala Chai", Description: "Strong tea brewed with spices", Price: 10, Category: entity.CategoryBeverages, IsVeg: true, Image: "/images/menu/masala-chai.jpg"},
				{ID: "cm-gulab-jamun", Name: "Gulab Jamun", Description: "Two pieces, served warm", Price: 30, Category: entity.CategoryDesserts, IsVeg: true, Image: "/images/menu/gulab-jamun.jpg"},
			},
		},
		{
			ID:          "juice-junction",
			Name:        "Juice Junction",
			Description: "Fresh juices and quick bites near the sports complex.",
			Image:       "/images/canteens/juice-junction.jpg",
			Menu: []entity.MenuItem{
				{ID: "jj-mango-shake", Name: "Mango Shake", Description: "Made with alphonso pulp", Price: 50, Category: entity.CategoryBeverages, IsVeg: true, Image: "/images/menu/mango-shake.jpg"},
				{ID: "jj-cold-coffee", Name: "Cold Coffee", Description: "Blended with ice cream", Price: 60, Category: entity.CategoryBeverages, IsVeg: true, Image: "/images/menu/cold-coffee.jpg"},
				{ID: "jj-veg-sandwich", Name: "Grilled Veg Sandwich", Description: "Three layers with mint chutney", Price: 40, Category: entity.CategorySnacks, IsVeg: true, Image: "/images/menu/veg-sandwich.jpg"},
				{ID: "jj-fruit-bowl", Name: "Fruit Bowl", Description: "Seasonal cut fruits", Price: 45, Category: entity.CategoryDesserts, IsVeg: true, Image: "/images/menu/fruit-bowl.jpg"},
			},
		},
		{
			ID:          "night-canteen",
			Name:        "Night Canteen",
			Description: "Open till 2 AM behind hostel block C.",
			Image:       "/images/canteens/night-canteen.jpg",
			Menu: []entity.MenuItem{
				{ID: "nc-maggi", Name: "Masala Maggi", Description: "With vegetables and extra masala", Price: 35, Category: entity.CategorySnacks, IsVeg: true, Image: "/images/menu/maggi.jpg"},
				{ID: "nc-egg-roll", Name: "Egg Roll", Description: "Double egg, onions, green chutney", Price: 55, Category: entity.CategorySnacks, IsVeg: false, Image: "/images/menu/egg-roll.jpg"},
				{ID: "nc-paneer-paratha", Name: "Paneer Paratha", Description: "Served with butter and pickle", Price: 65, Category: entity.CategoryMainCourse, IsVeg: true, Image: "/images/menu/paneer-paratha.jpg"},
				{ID: "nc-hot-chocolate", Name: "Hot Chocolate", Description: "For the exam nights", Price: 40, Category: entity.CategoryBeverages, IsVeg: true, Image: "/images/menu/hot-chocolate.jpg"},
			},
		},
	}
}
