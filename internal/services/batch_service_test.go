package services

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
// For this environment, we will write them to be ready for integration testing.

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

	// Migrate schemas
	testDB.AutoMigrate(&models.ValidationJob{}, &models.ValidationRecord{})
}

func cleanup() {
	if testDB != nil {
		testDB.Exec("DELETE FROM validation_records")
		testDB.Exec("DELETE FROM validation_jobs")
	}
}

func TestGetJobPaginatesRecords(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewBatchService(testDB, nil)

	job := models.ValidationJob{
		Reference:  uuid.NewString(),
		Status:     models.JobStatusCompleted,
		TotalCount: 3,
	}
	testDB.Create(&job)
	for _, input := range []string{"DE89370400440532013000", "GB29NWBK60161331926819", "DE99370400440532013000"} {
		testDB.Create(&models.ValidationRecord{JobID: job.ID, Input: input})
	}

	got, records, total, err := svc.GetJob(job.Reference, 1, 2)
	if err != nil {
		t.Fatalf("GetJob failed: %v", err)
	}
	if got.ID != job.ID {
		t.Errorf("Expected job %d, got %d", job.ID, got.ID)
	}
	if total != 3 {
		t.Errorf("Expected 3 records total, got %d", total)
	}
	if len(records) != 2 {
		t.Errorf("Expected page of 2 records, got %d", len(records))
	}

	_, records, _, err = svc.GetJob(job.Reference, 2, 2)
	if err != nil {
		t.Fatalf("GetJob page 2 failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Expected 1 record on page 2, got %d", len(records))
	}
}

func TestGetJobUnknownReference(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}

	svc := NewBatchService(testDB, nil)
	if _, _, _, err := svc.GetJob(uuid.NewString(), 1, 10); err == nil {
		t.Error("Expected an error for an unknown reference")
	}
}

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	cleanup()
	os.Exit(code)
}
