package mockapi

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/streetbazaar/storefront/pkg/models"
)

// DemoPassword is the password for every seeded demo account
const DemoPassword = "demo123"

type seedUser struct {
	email        string
	name         string
	phone        string
	userType     string
	businessName string
	city         string
	state        string
}

var seedVendors = []seedUser{
	{"rajesh.dosa@gmail.com", "Rajesh Kumar", "9876543210", models.RoleVendor, "Rajesh Dosa Corner", "Delhi", "Delhi"},
	{"sunita.chaat@gmail.com", "Sunita Sharma", "9876543211", models.RoleVendor, "Sunita's Chaat Bhandaar", "Mumbai", "Maharashtra"},
	{"vikram.paratha@gmail.com", "Vikram Singh", "9876543212", models.RoleVendor, "Vikram Paratha Point", "Jaipur", "Rajasthan"},
}

var seedSuppliers = []seedUser{
	{"delhi.agro@gmail.com", "Amit Gupta", "9876543213", models.RoleSupplier, "Delhi Agro Supplies", "Delhi", "Delhi"},
	{"mumbai.oils@gmail.com", "Priya Patel", "9876543214", models.RoleSupplier, "Mumbai Oil Traders", "Mumbai", "Maharashtra"},
	{"punjab.fresh@gmail.com", "Harjeet Singh", "9876543215", models.RoleSupplier, "Punjab Fresh Supply", "Chandigarh", "Punjab"},
}

type seedProduct struct {
	name        string
	category    string
	description string
	price       float64
	unit        string
	stock       int
	minQty      int
	maxQty      int
	supplier    int // index into seedSuppliers
}

var seedProducts = []seedProduct{
	{"Premium Basmati Rice", "grains", "Long grain premium quality rice from Punjab", 45.0, "kg", 500, 10, 100, 0},
	{"Refined Sunflower Oil", "oils", "Cold-pressed refined cooking oil", 120.0, "liter", 200, 5, 50, 1},
	{"Fresh Red Onions", "vegetables", "Farm-fresh red onions from Punjab", 25.0, "kg", 300, 20, 100, 2},
	{"Turmeric Powder", "spices", "Pure organic turmeric powder", 180.0, "kg", 80, 2, 20, 0},
	{"Pure Ghee", "dairy", "Traditional cow milk ghee", 450.0, "kg", 50, 1, 10, 2},
	{"Cumin Seeds", "spices", "Whole cumin seeds from Rajasthan", 320.0, "kg", 100, 5, 25, 0},
	{"Refined Wheat Flour", "grains", "Fine quality wheat flour for rotis", 35.0, "kg", 400, 25, 100, 1},
	{"Fresh Tomatoes", "vegetables", "Ripe red tomatoes from local farms", 30.0, "kg", 150, 10, 50, 2},
}

// seed loads the demo accounts and catalog. MinCost hashing: this data is
// rebuilt on every startup, including in tests.
func (s *Server) seed() {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	now := time.Now().UTC()
	addUser := func(u seedUser) *models.User {
		user := &models.User{
			ID:           uuid.NewString(),
			Email:        u.email,
			Name:         u.name,
			Phone:        u.phone,
			UserType:     u.userType,
			BusinessName: u.businessName,
			City:         u.city,
			State:        u.state,
			CreatedAt:    now,
		}
		s.users[user.ID] = user
		s.emails[user.Email] = user.ID
		s.passwords[user.ID] = string(hash)
		return user
	}

	for _, u := range seedVendors {
		addUser(u)
	}
	suppliers := make([]*models.User, len(seedSuppliers))
	for i, u := range seedSuppliers {
		suppliers[i] = addUser(u)
	}

	for _, p := range seedProducts {
		supplier := suppliers[p.supplier]
		s.products = append(s.products, &models.Product{
			ID:           uuid.NewString(),
			Name:         p.name,
			Category:     p.category,
			Description:  p.description,
			Price:        p.price,
			Unit:         p.unit,
			Stock:        p.stock,
			MinOrderQty:  p.minQty,
			MaxOrderQty:  p.maxQty,
			SupplierID:   supplier.ID,
			SupplierName: supplier.BusinessName,
			IsAvailable:  true,
			CreatedAt:    now,
		})
	}
}
