package seeds

import (
	"log"

	"gorm.io/gorm"

	"churchhub_backend/internals/configs"
	courses "churchhub_backend/internals/seeds/learning/courses"
	admin "churchhub_backend/internals/seeds/users/admin"
)

func RunAllSeeds(db *gorm.DB) {
	//* Admin
	if err := admin.SeedAdmin(db,
		configs.GetEnv("ADMIN_NAME"),
		configs.GetEnv("ADMIN_EMAIL"),
		configs.GetEnv("ADMIN_PASSWORD"),
	); err != nil {
		log.Printf("[ERROR] seed admin: %v", err)
	}

	//* Learning
	if err := courses.SeedCoursesFromJSON(db, configs.GetEnv("SEED_COURSES_FILE", "internals/seeds/learning/courses/data_courses.json")); err != nil {
		log.Printf("[ERROR] seed courses: %v", err)
	}
}
