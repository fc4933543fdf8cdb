package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/urbanbarber/api/internal/config"
	"github.com/urbanbarber/api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Barber{},
		&models.Service{},
		&models.Appointment{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	Seed(db)

	return db
}

// Seed loads the initial catalog and the admin account. Rows are only
// inserted when their table is empty.
func Seed(db *gorm.DB) {
	var count int64

	db.Model(&models.Barber{}).Count(&count)
	if count == 0 {
		db.Create(&[]models.Barber{
			{Name: "Ricardo 'El Clásico'", Specialty: "Cortes Tradicionales", Experience: "10 años", Rating: 4.9, Available: true},
			{Name: "Rafael 'El Diseñador'", Specialty: "Diseños y Fade Modernos", Experience: "8 años", Rating: 4.8, Available: true},
			{Name: "Juan 'El Lápiz'", Specialty: "Afeitado con Navaja y Patillas", Experience: "12 años", Rating: 5.0, Available: true},
		})
	}

	db.Model(&models.Service{}).Count(&count)
	if count == 0 {
		db.Create(&[]models.Service{
			{Name: "Corte Sencillo", Description: "Corte clásico y limpio", DurationMin: 45, Price: 25000, Available: true},
			{Name: "Corte + Cejas", Description: "Corte preciso y diseño de cejas", DurationMin: 50, Price: 25000, Available: true},
			{Name: "Tratamiento Corte Premium (Cejas + Perfilado de Barba)", Description: "Servicio completo", DurationMin: 60, Price: 40000, Available: true},
			{Name: "Perfilado de Barba", Description: "Definición exacta", DurationMin: 20, Price: 15000, Available: true},
			{Name: "Corte + Tinturado de Cabello", Description: "Corte moderno con color", DurationMin: 90, Price: 35000, Available: true},
			{Name: "Corte + Mascarilla", Description: "Corte con mascarilla facial", DurationMin: 60, Price: 35000, Available: true},
		})
	}

	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		db.Create(&models.User{
			Username:     "admin",
			FirstName:    "Administrador",
			LastName:     "Sistema",
			Email:        "admin@urbanbarber.com",
			Phone:        "3001234567",
			PasswordHash: string(hashed),
			Role:         models.RoleAdmin,
			RegisteredAt: time.Now().UTC(),
		})
	}
}
