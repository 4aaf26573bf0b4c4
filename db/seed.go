package db

import (
	"time"

	"github.com/caregivers-platform/backend/logger"
	"github.com/caregivers-platform/backend/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed loads the demo dataset: 20 users, 11 caregivers, 9 members with
// addresses, 15 jobs, 26 applications, 15 appointments. Idempotence is not
// attempted; run against a freshly migrated database.
func Seed() {
	if err := DB.Transaction(seed); err != nil {
		logger.Log.Fatalw("failed to seed database", "error", err)
	}
	logger.Log.Info("seed data inserted")
}

func seed(tx *gorm.DB) error {
	users := []models.User{
		{Email: "arman.armanov@email.com", GivenName: "Arman", Surname: "Armanov", City: "Astana", PhoneNumber: "+77771234567", ProfileDescription: "Experienced caregiver", Password: "password123"},
		{Email: "amina.aminova@email.com", GivenName: "Amina", Surname: "Aminova", City: "Almaty", PhoneNumber: "+77772345678", ProfileDescription: "Family member seeking care", Password: "password123"},
		{Email: "david.davidov@email.com", GivenName: "David", Surname: "Davidov", City: "Astana", PhoneNumber: "+77773456789", ProfileDescription: "Professional babysitter", Password: "password123"},
		{Email: "elena.elenova@email.com", GivenName: "Elena", Surname: "Elenova", City: "Astana", PhoneNumber: "+77774567890", ProfileDescription: "Looking for elderly care", Password: "password123"},
		{Email: "farid.faridov@email.com", GivenName: "Farid", Surname: "Faridov", City: "Almaty", PhoneNumber: "+77775678901", ProfileDescription: "Elderly care specialist", Password: "password123"},
		{Email: "gulnara.gulnarova@email.com", GivenName: "Gulnara", Surname: "Gulnarova", City: "Astana", PhoneNumber: "+77776789012", ProfileDescription: "Mother of two children", Password: "password123"},
		{Email: "hasan.hasanov@email.com", GivenName: "Hasan", Surname: "Hasanov", City: "Shymkent", PhoneNumber: "+77777890123", ProfileDescription: "Playmate for children", Password: "password123"},
		{Email: "irina.irinova@email.com", GivenName: "Irina", Surname: "Irinova", City: "Astana", PhoneNumber: "+77778901234", ProfileDescription: "Babysitter with 5 years experience", Password: "password123"},
		{Email: "john.johnson@email.com", GivenName: "John", Surname: "Johnson", City: "Almaty", PhoneNumber: "+77779012345", ProfileDescription: "Father seeking babysitter", Password: "password123"},
		{Email: "kate.kateova@email.com", GivenName: "Kate", Surname: "Kateova", City: "Astana", PhoneNumber: "+77770123456", ProfileDescription: "Elderly care professional", Password: "password123"},
		{Email: "lisa.lisova@email.com", GivenName: "Lisa", Surname: "Lisova", City: "Astana", PhoneNumber: "+77771234560", ProfileDescription: "Mother of 5-year-old son", Password: "password123"},
		{Email: "michael.michaelov@email.com", GivenName: "Michael", Surname: "Michaelov", City: "Almaty", PhoneNumber: "+77772345601", ProfileDescription: "Babysitter", Password: "password123"},
		{Email: "nina.ninova@email.com", GivenName: "Nina", Surname: "Ninova", City: "Shymkent", PhoneNumber: "+77773456712", ProfileDescription: "Family member", Password: "password123"},
		{Email: "omar.omarov@email.com", GivenName: "Omar", Surname: "Omarov", City: "Astana", PhoneNumber: "+77774567823", ProfileDescription: "Playmate specialist", Password: "password123"},
		{Email: "paul.paulov@email.com", GivenName: "Paul", Surname: "Paulov", City: "Astana", PhoneNumber: "+77775678934", ProfileDescription: "Seeking elderly care", Password: "password123"},
		{Email: "qasim.qasimov@email.com", GivenName: "Qasim", Surname: "Qasimov", City: "Almaty", PhoneNumber: "+77776789045", ProfileDescription: "Elderly care expert", Password: "password123"},
		{Email: "rosa.rosova@email.com", GivenName: "Rosa", Surname: "Rosova", City: "Astana", PhoneNumber: "+77777890156", ProfileDescription: "Babysitter", Password: "password123"},
		{Email: "sam.samov@email.com", GivenName: "Sam", Surname: "Samov", City: "Shymkent", PhoneNumber: "+77778901267", ProfileDescription: "Father of three", Password: "password123"},
		{Email: "tina.tinova@email.com", GivenName: "Tina", Surname: "Tinova", City: "Astana", PhoneNumber: "+77779012378", ProfileDescription: "Elderly care professional", Password: "password123"},
		{Email: "umar.umarov@email.com", GivenName: "Umar", Surname: "Umarov", City: "Almaty", PhoneNumber: "+77770123489", ProfileDescription: "Playmate for children", Password: "password123"},
	}
	if err := tx.Create(&users).Error; err != nil {
		return err
	}

	id := make(map[string]uint, len(users))
	for _, u := range users {
		id[u.GivenName] = u.UserID
	}

	rate := decimal.RequireFromString

	caregivers := []models.Caregiver{
		{CaregiverUserID: id["Arman"], Photo: "photo1.jpg", Gender: "Male", CaregivingType: models.TypeBabysitter, HourlyRate: rate("8.50")},
		{CaregiverUserID: id["David"], Photo: "photo3.jpg", Gender: "Male", CaregivingType: models.TypeBabysitter, HourlyRate: rate("9.00")},
		{CaregiverUserID: id["Farid"], Photo: "photo5.jpg", Gender: "Male", CaregivingType: models.TypeElderlyCare, HourlyRate: rate("12.00")},
		{CaregiverUserID: id["Hasan"], Photo: "photo7.jpg", Gender: "Male", CaregivingType: models.TypePlaymate, HourlyRate: rate("7.50")},
		{CaregiverUserID: id["Irina"], Photo: "photo8.jpg", Gender: "Female", CaregivingType: models.TypeBabysitter, HourlyRate: rate("10.00")},
		{CaregiverUserID: id["Kate"], Photo: "photo10.jpg", Gender: "Female", CaregivingType: models.TypeElderlyCare, HourlyRate: rate("11.50")},
		{CaregiverUserID: id["Michael"], Photo: "photo12.jpg", Gender: "Male", CaregivingType: models.TypeBabysitter, HourlyRate: rate("9.50")},
		{CaregiverUserID: id["Omar"], Photo: "photo14.jpg", Gender: "Male", CaregivingType: models.TypePlaymate, HourlyRate: rate("8.00")},
		{CaregiverUserID: id["Rosa"], Photo: "photo17.jpg", Gender: "Female", CaregivingType: models.TypeBabysitter, HourlyRate: rate("10.50")},
		{CaregiverUserID: id["Tina"], Photo: "photo19.jpg", Gender: "Female", CaregivingType: models.TypeElderlyCare, HourlyRate: rate("13.00")},
		{CaregiverUserID: id["Umar"], Photo: "photo20.jpg", Gender: "Male", CaregivingType: models.TypePlaymate, HourlyRate: rate("7.00")},
	}
	if err := tx.Create(&caregivers).Error; err != nil {
		return err
	}

	members := []models.Member{
		{MemberUserID: id["Amina"], HouseRules: "No pets. Please maintain hygiene.", DependentDescription: "Looking for babysitter for 3-year-old daughter"},
		{MemberUserID: id["Elena"], HouseRules: "No pets. Quiet environment required.", DependentDescription: "Elderly mother needs daily care, age 75"},
		{MemberUserID: id["Gulnara"], HouseRules: "No pets. Clean environment.", DependentDescription: "I have a 5-year-old son who likes painting"},
		{MemberUserID: id["John"], HouseRules: "Pets allowed. Respectful behavior.", DependentDescription: "Two children aged 4 and 6 need babysitting"},
		{MemberUserID: id["Lisa"], HouseRules: "No pets. Strict hygiene rules.", DependentDescription: "5-year-old son who likes painting and drawing"},
		{MemberUserID: id["Nina"], HouseRules: "No pets. Professional care required.", DependentDescription: "Elderly father, age 80, needs assistance"},
		{MemberUserID: id["Paul"], HouseRules: "No pets. Regular schedule.", DependentDescription: "Elderly grandmother, age 70, needs care"},
		{MemberUserID: id["Qasim"], HouseRules: "No pets. Soft-spoken caregiver preferred.", DependentDescription: "Elderly parent needs gentle care"},
		{MemberUserID: id["Sam"], HouseRules: "Pets allowed. Flexible schedule.", DependentDescription: "Three children need playmate and supervision"},
	}
	if err := tx.Create(&members).Error; err != nil {
		return err
	}

	addresses := []models.Address{
		{MemberUserID: id["Amina"], HouseNumber: "15", Street: "Kabanbay Batyr", Town: "Astana"},
		{MemberUserID: id["Elena"], HouseNumber: "22", Street: "Abay Avenue", Town: "Astana"},
		{MemberUserID: id["Gulnara"], HouseNumber: "33", Street: "Kabanbay Batyr", Town: "Astana"},
		{MemberUserID: id["John"], HouseNumber: "44", Street: "Al-Farabi Avenue", Town: "Almaty"},
		{MemberUserID: id["Lisa"], HouseNumber: "55", Street: "Kabanbay Batyr", Town: "Astana"},
		{MemberUserID: id["Nina"], HouseNumber: "66", Street: "Tauelsizdik Avenue", Town: "Shymkent"},
		{MemberUserID: id["Paul"], HouseNumber: "77", Street: "Kabanbay Batyr", Town: "Astana"},
		{MemberUserID: id["Qasim"], HouseNumber: "88", Street: "Abay Avenue", Town: "Astana"},
		{MemberUserID: id["Sam"], HouseNumber: "99", Street: "Al-Farabi Avenue", Town: "Almaty"},
	}
	if err := tx.Create(&addresses).Error; err != nil {
		return err
	}

	d := models.NewDate

	jobs := []models.Job{
		{MemberUserID: id["Amina"], RequiredCaregivingType: models.TypeBabysitter, OtherRequirements: "Must be soft-spoken and patient", DatePosted: d(2025, time.January, 15)},
		{MemberUserID: id["Elena"], RequiredCaregivingType: models.TypeElderlyCare, OtherRequirements: "Experience with dementia patients preferred", DatePosted: d(2025, time.January, 16)},
		{MemberUserID: id["Gulnara"], RequiredCaregivingType: models.TypeBabysitter, OtherRequirements: "Art background preferred, soft-spoken", DatePosted: d(2025, time.January, 17)},
		{MemberUserID: id["John"], RequiredCaregivingType: models.TypeBabysitter, OtherRequirements: "Energetic and fun-loving", DatePosted: d(2025, time.January, 18)},
		{MemberUserID: id["Lisa"], RequiredCaregivingType: models.TypePlaymate, OtherRequirements: "Creative activities required", DatePosted: d(2025, time.January, 19)},
		{MemberUserID: id["Nina"], RequiredCaregivingType: models.TypeElderlyCare, OtherRequirements: "Medical training preferred", DatePosted: d(2025, time.January, 20)},
		{MemberUserID: id["Paul"], RequiredCaregivingType: models.TypeElderlyCare, OtherRequirements: "Gentle and caring personality", DatePosted: d(2025, time.January, 21)},
		{MemberUserID: id["Qasim"], RequiredCaregivingType: models.TypeElderlyCare, OtherRequirements: "Soft-spoken caregiver needed", DatePosted: d(2025, time.January, 22)},
		{MemberUserID: id["Sam"], RequiredCaregivingType: models.TypePlaymate, OtherRequirements: "Active and engaging", DatePosted: d(2025, time.January, 23)},
		{MemberUserID: id["Amina"], RequiredCaregivingType: models.TypeBabysitter, OtherRequirements: "Weekend availability required", DatePosted: d(2025, time.January, 24)},
		{MemberUserID: id["Elena"], RequiredCaregivingType: models.TypeElderlyCare, OtherRequirements: "Morning shifts preferred", DatePosted: d(2025, time.January, 25)},
		{MemberUserID: id["Gulnara"], RequiredCaregivingType: models.TypeBabysitter, OtherRequirements: "Afternoon availability", DatePosted: d(2025, time.January, 26)},
		{MemberUserID: id["John"], RequiredCaregivingType: models.TypePlaymate, OtherRequirements: "Outdoor activities preferred", DatePosted: d(2025, time.January, 27)},
		{MemberUserID: id["Lisa"], RequiredCaregivingType: models.TypeBabysitter, OtherRequirements: "Educational activities", DatePosted: d(2025, time.January, 28)},
		{MemberUserID: id["Nina"], RequiredCaregivingType: models.TypeElderlyCare, OtherRequirements: "Evening care needed", DatePosted: d(2025, time.January, 29)},
	}
	if err := tx.Create(&jobs).Error; err != nil {
		return err
	}

	applications := []models.JobApplication{
		{CaregiverUserID: id["Arman"], JobID: jobs[0].JobID, DateApplied: d(2025, time.January, 20)},
		{CaregiverUserID: id["David"], JobID: jobs[0].JobID, DateApplied: d(2025, time.January, 21)},
		{CaregiverUserID: id["Irina"], JobID: jobs[0].JobID, DateApplied: d(2025, time.January, 22)},
		{CaregiverUserID: id["Arman"], JobID: jobs[1].JobID, DateApplied: d(2025, time.January, 25)},
		{CaregiverUserID: id["Farid"], JobID: jobs[1].JobID, DateApplied: d(2025, time.January, 26)},
		{CaregiverUserID: id["Kate"], JobID: jobs[1].JobID, DateApplied: d(2025, time.January, 27)},
		{CaregiverUserID: id["Tina"], JobID: jobs[1].JobID, DateApplied: d(2025, time.January, 28)},
		{CaregiverUserID: id["Arman"], JobID: jobs[2].JobID, DateApplied: d(2025, time.January, 30)},
		{CaregiverUserID: id["Irina"], JobID: jobs[2].JobID, DateApplied: d(2025, time.January, 31)},
		{CaregiverUserID: id["Michael"], JobID: jobs[2].JobID, DateApplied: d(2025, time.February, 1)},
		{CaregiverUserID: id["Rosa"], JobID: jobs[2].JobID, DateApplied: d(2025, time.February, 2)},
		{CaregiverUserID: id["Hasan"], JobID: jobs[4].JobID, DateApplied: d(2025, time.February, 3)},
		{CaregiverUserID: id["Omar"], JobID: jobs[4].JobID, DateApplied: d(2025, time.February, 4)},
		{CaregiverUserID: id["Umar"], JobID: jobs[4].JobID, DateApplied: d(2025, time.February, 5)},
		{CaregiverUserID: id["Farid"], JobID: jobs[5].JobID, DateApplied: d(2025, time.February, 6)},
		{CaregiverUserID: id["Kate"], JobID: jobs[5].JobID, DateApplied: d(2025, time.February, 7)},
		{CaregiverUserID: id["Tina"], JobID: jobs[5].JobID, DateApplied: d(2025, time.February, 8)},
		{CaregiverUserID: id["Farid"], JobID: jobs[6].JobID, DateApplied: d(2025, time.February, 9)},
		{CaregiverUserID: id["Kate"], JobID: jobs[6].JobID, DateApplied: d(2025, time.February, 10)},
		{CaregiverUserID: id["Tina"], JobID: jobs[6].JobID, DateApplied: d(2025, time.February, 11)},
		{CaregiverUserID: id["Farid"], JobID: jobs[7].JobID, DateApplied: d(2025, time.February, 12)},
		{CaregiverUserID: id["Kate"], JobID: jobs[7].JobID, DateApplied: d(2025, time.February, 13)},
		{CaregiverUserID: id["Tina"], JobID: jobs[7].JobID, DateApplied: d(2025, time.February, 14)},
		{CaregiverUserID: id["Hasan"], JobID: jobs[8].JobID, DateApplied: d(2025, time.February, 15)},
		{CaregiverUserID: id["Omar"], JobID: jobs[8].JobID, DateApplied: d(2025, time.February, 16)},
		{CaregiverUserID: id["Umar"], JobID: jobs[8].JobID, DateApplied: d(2025, time.February, 17)},
	}
	if err := tx.Create(&applications).Error; err != nil {
		return err
	}

	appointments := []models.Appointment{
		{CaregiverUserID: id["Arman"], MemberUserID: id["Amina"], AppointmentDate: d(2025, time.February, 10), AppointmentTime: "09:00", WorkHours: rate("3.00"), Status: models.StatusAccepted},
		{CaregiverUserID: id["David"], MemberUserID: id["Gulnara"], AppointmentDate: d(2025, time.February, 11), AppointmentTime: "14:00", WorkHours: rate("4.00"), Status: models.StatusAccepted},
		{CaregiverUserID: id["Farid"], MemberUserID: id["Elena"], AppointmentDate: d(2025, time.February, 12), AppointmentTime: "10:00", WorkHours: rate("5.00"), Status: models.StatusAccepted},
		{CaregiverUserID: id["Irina"], MemberUserID: id["John"], AppointmentDate: d(2025, time.February, 13), AppointmentTime: "15:00", WorkHours: rate("3.50"), Status: models.StatusAccepted},
		{CaregiverUserID: id["Kate"], MemberUserID: id["Nina"], AppointmentDate: d(2025, time.February, 14), AppointmentTime: "08:00", WorkHours: rate("6.00"), Status: models.StatusAccepted},
		{CaregiverUserID: id["Michael"], MemberUserID: id["Lisa"], AppointmentDate: d(2025, time.February, 15), AppointmentTime: "16:00", WorkHours: rate("2.50"), Status: models.StatusAccepted},
		{CaregiverUserID: id["Rosa"], MemberUserID: id["Sam"], AppointmentDate: d(2025, time.February, 16), AppointmentTime: "11:00", WorkHours: rate("4.00"), Status: models.StatusAccepted},
		{CaregiverUserID: id["Tina"], MemberUserID: id["Paul"], AppointmentDate: d(2025, time.February, 17), AppointmentTime: "09:30", WorkHours: rate("5.50"), Status: models.StatusAccepted},
		{CaregiverUserID: id["Arman"], MemberUserID: id["Gulnara"], AppointmentDate: d(2025, time.February, 18), AppointmentTime: "13:00", WorkHours: rate("3.00"), Status: models.StatusAccepted},
		{CaregiverUserID: id["Farid"], MemberUserID: id["Qasim"], AppointmentDate: d(2025, time.February, 19), AppointmentTime: "10:00", WorkHours: rate("4.00"), Status: models.StatusAccepted},
		{CaregiverUserID: id["Irina"], MemberUserID: id["Amina"], AppointmentDate: d(2025, time.February, 20), AppointmentTime: "14:00", WorkHours: rate("3.00"), Status: models.StatusPending},
		{CaregiverUserID: id["Kate"], MemberUserID: id["Elena"], AppointmentDate: d(2025, time.February, 21), AppointmentTime: "11:00", WorkHours: rate("4.00"), Status: models.StatusPending},
		{CaregiverUserID: id["David"], MemberUserID: id["John"], AppointmentDate: d(2025, time.February, 22), AppointmentTime: "15:00", WorkHours: rate("2.00"), Status: models.StatusDeclined},
		{CaregiverUserID: id["Hasan"], MemberUserID: id["Lisa"], AppointmentDate: d(2025, time.February, 23), AppointmentTime: "16:00", WorkHours: rate("3.00"), Status: models.StatusPending},
		{CaregiverUserID: id["Omar"], MemberUserID: id["Sam"], AppointmentDate: d(2025, time.February, 24), AppointmentTime: "12:00", WorkHours: rate("4.00"), Status: models.StatusDeclined},
	}
	return tx.Create(&appointments).Error
}
