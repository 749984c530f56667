package seed

import (
	"time"

	"campus-dining-api/models"
	"campus-dining-api/services"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type campusSpec struct {
	Name  string
	Halls []string
}

var campusData = []campusSpec{
	{Name: "Christ University Central", Halls: []string{"Jonas Hall", "Main Mess", "North Mess"}},
	{Name: "Christ University Kengeri", Halls: []string{"South Block Mess", "Lakeview Hall"}},
	{Name: "Christ University Bannerghatta", Halls: []string{"BG Road Mess", "Hostel Dining"}},
	{Name: "St Josephs College", Halls: []string{"Cloister Mess", "Quadrangle Dining"}},
	{Name: "Mount Carmel College", Halls: []string{"Amber Mess", "Carmel Dining"}},
	{Name: "Indian Institute of Science", Halls: []string{"Prakruthi Mess", "Main Dining"}},
	{Name: "BMS College of Engineering", Halls: []string{"BMS Central Mess", "Tech Mess"}},
	{Name: "PES University", Halls: []string{"EC Campus Mess", "Hampi Hall"}},
	{Name: "RV University", Halls: []string{"Valley Mess", "Scholars Dining"}},
	{Name: "Dayananda Sagar University", Halls: []string{"DSU North", "DSU South"}},
	{Name: "MS Ramaiah Institute of Technology", Halls: []string{"RIT Main Mess", "Green Field Mess"}},
	{Name: "Jain University", Halls: []string{"JGI Central Mess", "Knowledge Park Dining"}},
	{Name: "Alliance University", Halls: []string{"Alliance Commons", "Law School Dining"}},
	{Name: "CMR Institute of Technology", Halls: []string{"CMR Mess", "Spectrum Dining"}},
	{Name: "New Horizon College", Halls: []string{"Horizon Mess", "Innovation Dining"}},
	{Name: "Presidency University", Halls: []string{"Presidency Mess", "Liberty Dining"}},
}

var breakfastOptions = []string{
	"Idli & Vada with Sambar",
	"Masala Dosa & Coconut Chutney",
	"Poha with Sev & Jalebi",
	"Puri Bhaji with Pickle",
	"Uttapam & Tomato Chutney",
	"Upma with Banana",
	"Paratha with Curd & Achar",
}

var lunchOptions = []string{
	"South Indian Meals (Sambar, Rasam, Poriyal)",
	"North Indian Thali (Paneer Butter Masala, Dal, Naan)",
	"Curd Rice, Lemon Rice & Fryums",
	"Veg Biryani with Raita",
	"Dal Tadka, Jeera Rice, Aloo Gobi",
	"Schezwan Fried Rice & Gobi Manchurian",
	"Rajma Chawal with Papad",
}

var snackOptions = []string{
	"Samosa & Cutting Chai",
	"Sweet Corn & Lemon Tea",
	"Bread Pakora & Coffee",
	"Masala Maggi & Chaas",
	"Bonda & Filter Coffee",
	"Pani Puri & Jaljeera",
	"Banana Fritters & Tea",
}

var dinnerOptions = []string{
	"Chapati, Dal Makhani, Veg Kurma",
	"Ghee Rice, Kurma, Salad",
	"Phulka, Kadai Paneer, Jeera Rice",
	"Veg Pulao, Raita, Fryums",
	"Poori, Chole, Onion Salad",
	"Tawa Paratha, Mixed Veg Curry",
	"Khichdi, Kadhi, Roasted Papad",
}

func subtitleOptions(meal models.MealType) []string {
	switch meal {
	case models.MealBreakfast:
		return breakfastOptions
	case models.MealLunch:
		return lunchOptions
	case models.MealSnacks:
		return snackOptions
	default:
		return dinnerOptions
	}
}

// Run wipes all collections and inserts the reference data set: 16
// campuses with their halls, a week of menu content per hall, the
// contact record, and an admin account.
func Run(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.MenuItem{}, &models.Hall{}, &models.Campus{}, &models.ContactInfo{}, &models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}

	start := services.StartOfDay(time.Now())

	var halls []models.Hall
	for _, spec := range campusData {
		campus := models.Campus{Name: spec.Name}
		if err := db.Create(&campus).Error; err != nil {
			return err
		}
		for _, name := range spec.Halls {
			hall := models.Hall{Name: name, CampusID: campus.ID}
			if err := db.Create(&hall).Error; err != nil {
				return err
			}
			halls = append(halls, hall)
		}
	}
	log.Info().Int("campuses", len(campusData)).Int("halls", len(halls)).Msg("Reference campuses created")

	var items []models.MenuItem
	for hallIndex, hall := range halls {
		for dayIndex := 0; dayIndex < 7; dayIndex++ {
			day := start.AddDate(0, 0, dayIndex)
			for mealIndex, meal := range services.DefaultMeals {
				options := subtitleOptions(meal.Key)
				items = append(items, models.MenuItem{
					HallID:      hall.ID,
					Date:        day,
					MealType:    meal.Key,
					Title:       meal.Title,
					Subtitle:    options[(hallIndex+mealIndex+dayIndex)%len(options)],
					TimeRange:   meal.TimeRange,
					Likes:       25 + (hallIndex*3+mealIndex*2+dayIndex)%40,
					Rating:      3 + float64((hallIndex+mealIndex+dayIndex)%7)*0.2,
					RatingCount: 8 + (hallIndex+mealIndex+dayIndex)%10,
				})
			}
		}
	}
	if err := db.CreateInBatches(items, 200).Error; err != nil {
		return err
	}
	log.Info().Int("menuItems", len(items)).Msg("Menu content created")

	contact := models.ContactInfo{
		Email:   "support@cumeal.app",
		Phone:   "+91 98765 43210",
		Address: "Christ University, Bengaluru, Karnataka",
	}
	if err := db.Create(&contact).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "Admin",
		Phone:        "+919999888777",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
