package services

import (
	"log"

	"github.com/robfig/cron/v3"

	"iban-service/pkg/iban"
	"iban-service/pkg/iban/registry"
)

// RegistryAuditService cross-checks the embedded data sets: every bank
// record must carry a parseable BIC whose country matches the record, and
// every country with positional data must describe a layout inside its BBAN
// length. Anomalies are logged, never fatal; the data is embedded so a
// failed audit means a bad data release, not a runtime fault.
type RegistryAuditService struct{}

func NewRegistryAuditService() *RegistryAuditService {
	return &RegistryAuditService{}
}

func (s *RegistryAuditService) Audit() (int, int) {
	checked, anomalies := 0, 0

	for _, record := range registry.Banks() {
		checked++
		if record.BIC == "" {
			continue
		}
		parsed, err := iban.ParseBIC(record.BIC)
		if err != nil {
			log.Printf("Registry audit: bank %s/%s carries malformed BIC %q: %v",
				record.CountryCode, record.BankCode, record.BIC, err)
			anomalies++
			continue
		}
		if parsed.CountryCode() != record.CountryCode {
			log.Printf("Registry audit: bank %s/%s BIC %s belongs to %s",
				record.CountryCode, record.BankCode, record.BIC, parsed.CountryCode())
			anomalies++
		}
	}

	for _, code := range registry.Countries() {
		spec, ok := registry.CountrySpecFor(code)
		if !ok {
			continue
		}
		checked++
		if spec.IBANLength != spec.BBANLength+4 {
			log.Printf("Registry audit: %s IBAN length %d does not cover BBAN length %d",
				code, spec.IBANLength, spec.BBANLength)
			anomalies++
		}
	}

	log.Printf("Registry audit finished: %d entries checked, %d anomalies", checked, anomalies)
	return checked, anomalies
}

// StartScheduler initializes the cron job to run daily at 02:00
func (s *RegistryAuditService) StartScheduler() {
	c := cron.New()
	_, err := c.AddFunc("0 2 * * *", func() {
		log.Println("Running scheduled registry audit task...")
		s.Audit()
	})
	if err != nil {
		log.Printf("Error scheduling registry audit task: %v", err)
		return
	}
	c.Start()
	log.Println("Registry Audit Scheduler started (Daily at 02:00)")
}
