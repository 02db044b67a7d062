package consumers

import (
	"log"
	"os"
	"testing"

	"iban-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NOTE: These tests require a running MySQL instance.

var testDB *gorm.DB

func setup() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("Skipping DB tests: DATABASE_URL not set")
		return
	}

	var err error
	testDB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		return
	}

	testDB.AutoMigrate(&models.ValidationJob{}, &models.ValidationRecord{})
}

func cleanup() {
	if testDB != nil {
		testDB.Exec("DELETE FROM validation_records")
		testDB.Exec("DELETE FROM validation_jobs")
	}
}

func TestProcessBatchValidate(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	job := models.ValidationJob{
		Reference:  uuid.NewString(),
		Status:     models.JobStatusPending,
		TotalCount: 3,
	}
	testDB.Create(&job)

	processor := NewBatchProcessor(testDB)
	processor.ProcessBatchValidate(BatchValidateDTO{
		JobReference: job.Reference,
		Items: []string{
			"DE89370400440532013000",
			"GB29NWBK60161331926819",
			"DE99370400440532013000",
		},
	})

	var updated models.ValidationJob
	if err := testDB.Where("reference = ?", job.Reference).First(&updated).Error; err != nil {
		t.Fatalf("Job not found after processing: %v", err)
	}
	if updated.Status != models.JobStatusCompleted {
		t.Errorf("Expected status completed, got %d", updated.Status)
	}
	if updated.ValidCount != 2 || updated.InvalidCount != 1 {
		t.Errorf("Expected 2 valid / 1 invalid, got %d / %d", updated.ValidCount, updated.InvalidCount)
	}

	var records []models.ValidationRecord
	testDB.Where("job_id = ?", updated.ID).Order("id asc").Find(&records)
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	if !records[0].Valid || records[0].BIC != "COBADEFFXXX" {
		t.Errorf("Unexpected first record: %+v", records[0])
	}
	if records[2].Valid || records[2].ErrorKind != "invalid_checksum_digits" {
		t.Errorf("Unexpected third record: %+v", records[2])
	}
}

func TestProcessBatchValidateUnknownJob(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}

	// Must not panic or create orphan records.
	processor := NewBatchProcessor(testDB)
	processor.ProcessBatchValidate(BatchValidateDTO{JobReference: uuid.NewString()})

	var count int64
	testDB.Model(&models.ValidationRecord{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no records, found %d", count)
	}
}

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	cleanup()
	os.Exit(code)
}
