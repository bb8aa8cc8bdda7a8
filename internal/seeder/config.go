package seeder

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

// Config holds seeder settings. FixturePath points to an optional YAML file
// with the tags and samples to insert; without it DefaultFixtures is used.
type Config struct {
	FixturePath string `env:"SEEDER_FIXTURE_PATH"`
	DryRun      bool   `env:"SEEDER_DRY_RUN"`
}

// Fixtures is the data set written by the seeder.
type Fixtures struct {
	Tags    []string        `yaml:"tags"`
	Samples []SampleFixture `yaml:"samples"`
}

// SampleFixture describes one sample row. TagUID must appear in Fixtures.Tags.
type SampleFixture struct {
	SampleNumber  string `yaml:"sample_number"`
	SampleType    string `yaml:"sample_type"`
	Category      string `yaml:"category"`
	PersonName    string `yaml:"person_name"`
	CollectedDate string `yaml:"collected_date"`
	Location      string `yaml:"location"`
	TagUID        string `yaml:"rfid"`
	Status        string `yaml:"status"`
}

// DefaultFixtures returns the demo data set: three tags and one sample in
// each of the pending, checked and approved states.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Tags: []string{"RFID-AX92-7781", "RFID-BB12-1234", "RFID-CC34-5678"},
		Samples: []SampleFixture{
			{
				SampleNumber:  "20230422001",
				SampleType:    "دم",
				Category:      "جنائية",
				PersonName:    "يوسف أحمد",
				CollectedDate: "2026-02-01",
				Location:      "الرياض",
				TagUID:        "RFID-AX92-7781",
				Status:        "pending",
			},
			{
				SampleNumber:  "20230422002",
				SampleType:    "لعاب",
				Category:      "جنائية",
				PersonName:    "سارة محمد",
				CollectedDate: "2026-02-01",
				Location:      "جدة",
				TagUID:        "RFID-BB12-1234",
				Status:        "checked",
			},
			{
				SampleNumber:  "20230422003",
				SampleType:    "شعر",
				Category:      "طب شرعي",
				PersonName:    "خالد علي",
				CollectedDate: "2026-02-01",
				Location:      "مكة",
				TagUID:        "RFID-CC34-5678",
				Status:        "approved",
			},
		},
	}
}

// LoadConfig reads seeder configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}
	return &cfg, nil
}

// LoadFixtures reads fixtures from a YAML file, or returns DefaultFixtures
// when path is empty.
func LoadFixtures(path string) (Fixtures, error) {
	if path == "" {
		return DefaultFixtures(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return Fixtures{}, fmt.Errorf("seeder fixtures: file %s not found", path)
	}

	var f Fixtures
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return Fixtures{}, fmt.Errorf("seeder fixtures: read %s: %w", path, err)
	}
	return f, nil
}

// Validate checks that every sample references a listed tag, carries a
// known status and a YYYY-MM-DD collection date.
func (f Fixtures) Validate() error {
	tags := make(map[string]bool, len(f.Tags))
	for _, uid := range f.Tags {
		tags[uid] = true
	}

	for _, s := range f.Samples {
		if s.SampleNumber == "" {
			return errors.New("seeder fixtures: sample without number")
		}
		if !tags[s.TagUID] {
			return fmt.Errorf("seeder fixtures: sample %s: unknown rfid %q", s.SampleNumber, s.TagUID)
		}
		if _, err := time.Parse(time.DateOnly, s.CollectedDate); err != nil {
			return fmt.Errorf("seeder fixtures: sample %s: collected_date: %w", s.SampleNumber, err)
		}
		if !domain.SampleStatus(s.Status).IsValid() {
			return fmt.Errorf("seeder fixtures: sample %s: unknown status %q", s.SampleNumber, s.Status)
		}
	}
	return nil
}
