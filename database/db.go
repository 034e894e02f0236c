package database

import (
	"fmt"
	"log"
	"os"

	"hvac-backoffice/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "db"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Kolkata",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), port)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
}

// AutoMigrate creates/updates all tables, then applies the raw
// constraint pass from migrate.go.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&models.Role{}, &models.User{}, &models.PasswordResetToken{},
		&models.Customer{},
		&models.Lead{}, &models.LeadProduct{},
		&models.LeadFAQ{}, &models.LeadFollowUp{},
		&models.LeadFollowUpFAQAnswer{}, &models.LeadFollowUpProduct{},
		&models.AcType{}, &models.AcSubType{}, &models.Brand{},
		&models.ProductModel{}, &models.ProductVariant{}, &models.ProductInventory{},
		&models.MaterialType{}, &models.ItemType{}, &models.FeatureType{},
		&models.ItemClass{}, &models.Item{},
		&models.Vendor{}, &models.TermsConditionType{}, &models.TermsCondition{},
		&models.PurchaseOrder{}, &models.PurchaseOrderProduct{},
		&models.Quotation{}, &models.QuotationVersion{},
		&models.QuotationHighSideItem{}, &models.QuotationLowSideItem{},
		&models.CompanyProfile{},
		&models.Invoice{}, &models.InvoiceItem{}, &models.InvoiceTaxBreakup{},
		&models.IdempotencyKey{},
	); err != nil {
		log.Fatalf("automigrate failed: %v", err)
	}

	if err := MigrateConstraints(); err != nil {
		log.Fatalf("constraint migration failed: %v", err)
	}
}
