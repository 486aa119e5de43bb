package main

import (
	"congregation-manager-backend/internal/config"
	"congregation-manager-backend/internal/database"
	"congregation-manager-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CongregationData struct {
	Name                      string `yaml:"name"`
	MidweekMeetingDayEvenYear string `yaml:"midweek_meeting_day_even_year"`
	MidweekMeetingDayOddYear  string `yaml:"midweek_meeting_day_odd_year"`
	WeekendMeetingDayEvenYear string `yaml:"weekend_meeting_day_even_year"`
	WeekendMeetingDayOddYear  string `yaml:"weekend_meeting_day_odd_year"`
	Address                   string `yaml:"address,omitempty"`
	City                      string `yaml:"city,omitempty"`
}

type PublisherData struct {
	FirstName      string   `yaml:"first_name"`
	LastName       string   `yaml:"last_name"`
	MotherLastName string   `yaml:"mother_last_name,omitempty"`
	Phone          string   `yaml:"phone,omitempty"`
	Email          string   `yaml:"email,omitempty"`
	Gender         string   `yaml:"gender"`
	Privilege      string   `yaml:"privilege,omitempty"`
	Qualifications []string `yaml:"qualifications,omitempty"`
}

type DepartmentData struct {
	Name                     string `yaml:"name"`
	IsActive                 *bool  `yaml:"is_active,omitempty"`
	ResponsiblePublisherName string `yaml:"responsible_publisher_name,omitempty"`
}

type AssignmentConfigData struct {
	MeetingType string `yaml:"meeting_type"`
	Quantity    int    `yaml:"quantity"`
}

type ResponsibilityData struct {
	Name              string                 `yaml:"name"`
	Description       string                 `yaml:"description,omitempty"`
	DepartmentName    string                 `yaml:"department_name,omitempty"`
	AssignmentConfigs []AssignmentConfigData `yaml:"assignment_configs,omitempty"`
}

// File structures
type CongregationsFile struct {
	Congregations []CongregationData `yaml:"congregations"`
}

type PublishersFile struct {
	Publishers []PublisherData `yaml:"publishers"`
}

type DepartmentsFile struct {
	Departments []DepartmentData `yaml:"departments"`
}

type ResponsibilitiesFile struct {
	Responsibilities []ResponsibilityData `yaml:"responsibilities"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	congregations, err := loadCongregations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load congregations: %w", err)
	}

	publishers, err := loadPublishers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load publishers: %w", err)
	}

	departments, err := loadDepartments(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}

	responsibilities, err := loadResponsibilities(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load responsibilities: %w", err)
	}

	// Create the congregation first
	congCreated := 0
	for _, congData := range congregations {
		_, created, err := createCongregation(db, congData)
		if err != nil {
			return fmt.Errorf("failed to create congregation %s: %w", congData.Name, err)
		}
		if created {
			congCreated++
		}
	}
	log.Printf("📋 Congregations: %d created, %d total", congCreated, len(congregations))

	// Create publishers
	publisherMap := make(map[string]*models.Publisher)
	publisherCreated := 0
	for _, publisherData := range publishers {
		publisher, created, err := createPublisher(db, publisherData)
		if err != nil {
			return fmt.Errorf("failed to create publisher %s %s: %w", publisherData.FirstName, publisherData.LastName, err)
		}
		publisherMap[publisherFullName(publisherData.FirstName, publisherData.LastName)] = publisher
		if created {
			publisherCreated++
		}
	}
	log.Printf("📋 Publishers: %d created, %d total", publisherCreated, len(publishers))

	// Create departments
	departmentMap := make(map[string]*models.Department)
	departmentCreated := 0
	for _, departmentData := range departments {
		department, created, err := createDepartment(db, departmentData, publisherMap)
		if err != nil {
			return fmt.Errorf("failed to create department %s: %w", departmentData.Name, err)
		}
		departmentMap[departmentData.Name] = department
		if created {
			departmentCreated++
		}
	}
	log.Printf("📋 Departments: %d created, %d total", departmentCreated, len(departments))

	// Create responsibilities with their assignment configs
	responsibilityMap := make(map[string]*models.Responsibility)
	responsibilityCreated := 0
	for _, responsibilityData := range responsibilities {
		responsibility, created, err := createResponsibility(db, responsibilityData, departmentMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create responsibility %s: %v", responsibilityData.Name, err)
			continue // Continue with other responsibilities
		}
		responsibilityMap[responsibilityData.Name] = responsibility
		if created {
			responsibilityCreated++
		}
	}
	log.Printf("📋 Responsibilities: %d created, %d total", responsibilityCreated, len(responsibilities))

	// Create publisher qualifications last, now that both sides exist
	qualificationsCreated := createQualifications(db, publishers, publisherMap, responsibilityMap)
	log.Printf("📋 Qualifications: %d created", qualificationsCreated)

	return nil
}

func loadCongregations(dataDir string) ([]CongregationData, error) {
	var allCongregations []CongregationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "congregations") {
			var file CongregationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCongregations = append(allCongregations, file.Congregations...)
		}
		return nil
	})

	return allCongregations, err
}

func loadPublishers(dataDir string) ([]PublisherData, error) {
	var allPublishers []PublisherData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "publishers") {
			var file PublishersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPublishers = append(allPublishers, file.Publishers...)
		}
		return nil
	})

	return allPublishers, err
}

func loadDepartments(dataDir string) ([]DepartmentData, error) {
	var allDepartments []DepartmentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "departments") {
			var file DepartmentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allDepartments = append(allDepartments, file.Departments...)
		}
		return nil
	})

	return allDepartments, err
}

func loadResponsibilities(dataDir string) ([]ResponsibilityData, error) {
	var allResponsibilities []ResponsibilityData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "responsibilities") {
			var file ResponsibilitiesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allResponsibilities = append(allResponsibilities, file.Responsibilities...)
		}
		return nil
	})

	return allResponsibilities, err
}

func createCongregation(db *gorm.DB, congData CongregationData) (*models.Congregation, bool, error) {
	var congregation models.Congregation
	if err := db.Where("name = ?", congData.Name).First(&congregation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			midweekEven, err := parseWeekday(congData.MidweekMeetingDayEvenYear)
			if err != nil {
				return nil, false, err
			}
			midweekOdd, err := parseWeekday(congData.MidweekMeetingDayOddYear)
			if err != nil {
				return nil, false, err
			}
			weekendEven, err := parseWeekday(congData.WeekendMeetingDayEvenYear)
			if err != nil {
				return nil, false, err
			}
			weekendOdd, err := parseWeekday(congData.WeekendMeetingDayOddYear)
			if err != nil {
				return nil, false, err
			}

			congregation = models.Congregation{
				Name:                      congData.Name,
				MidweekMeetingDayEvenYear: midweekEven,
				MidweekMeetingDayOddYear:  midweekOdd,
				WeekendMeetingDayEvenYear: weekendEven,
				WeekendMeetingDayOddYear:  weekendOdd,
				Address:                   congData.Address,
				City:                      congData.City,
			}

			if err := db.Create(&congregation).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create congregation: %w", err)
			}
			return &congregation, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query congregation: %w", err)
		}
	}

	return &congregation, false, nil // created = false (existing)
}

func createPublisher(db *gorm.DB, publisherData PublisherData) (*models.Publisher, bool, error) {
	var publisher models.Publisher
	if err := db.Where("first_name = ? AND last_name = ?", publisherData.FirstName, publisherData.LastName).First(&publisher).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			var privilege *models.Privilege
			if publisherData.Privilege != "" {
				p := models.Privilege(publisherData.Privilege)
				if !p.IsValid() {
					return nil, false, fmt.Errorf("invalid privilege %q", publisherData.Privilege)
				}
				privilege = &p
			}

			gender := models.Gender(publisherData.Gender)
			if !gender.IsValid() {
				return nil, false, fmt.Errorf("invalid gender %q", publisherData.Gender)
			}

			publisher = models.Publisher{
				FirstName:      publisherData.FirstName,
				LastName:       publisherData.LastName,
				MotherLastName: publisherData.MotherLastName,
				Phone:          publisherData.Phone,
				Email:          publisherData.Email,
				Gender:         gender,
				Privilege:      privilege,
			}

			if err := db.Create(&publisher).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create publisher: %w", err)
			}
			return &publisher, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query publisher: %w", err)
		}
	}

	return &publisher, false, nil // created = false (existing)
}

func createDepartment(db *gorm.DB, departmentData DepartmentData, publisherMap map[string]*models.Publisher) (*models.Department, bool, error) {
	// Try to find the responsible publisher if specified
	var responsibleID *uuid.UUID
	if departmentData.ResponsiblePublisherName != "" {
		if publisher := publisherMap[departmentData.ResponsiblePublisherName]; publisher != nil {
			responsibleID = &publisher.ID
		} else {
			// Publisher not found, log warning but continue
			log.Printf("⚠️  Warning: publisher %s not found for department %s", departmentData.ResponsiblePublisherName, departmentData.Name)
		}
	}

	var department models.Department
	if err := db.Where("name = ?", departmentData.Name).First(&department).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			isActive := true
			if departmentData.IsActive != nil {
				isActive = *departmentData.IsActive
			}

			department = models.Department{
				Name:                   departmentData.Name,
				IsActive:               isActive,
				ResponsiblePublisherID: responsibleID,
			}

			if err := db.Create(&department).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create department: %w", err)
			}
			return &department, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query department: %w", err)
		}
	}

	return &department, false, nil // created = false (existing)
}

func createResponsibility(db *gorm.DB, responsibilityData ResponsibilityData, departmentMap map[string]*models.Department) (*models.Responsibility, bool, error) {
	var departmentID *uuid.UUID
	if responsibilityData.DepartmentName != "" {
		if department := departmentMap[responsibilityData.DepartmentName]; department != nil {
			departmentID = &department.ID
		} else {
			log.Printf("⚠️  Warning: department %s not found for responsibility %s", responsibilityData.DepartmentName, responsibilityData.Name)
		}
	}

	var responsibility models.Responsibility
	if err := db.Where("name = ?", responsibilityData.Name).First(&responsibility).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			responsibility = models.Responsibility{
				Name:         responsibilityData.Name,
				Description:  responsibilityData.Description,
				DepartmentID: departmentID,
			}

			if err := db.Create(&responsibility).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create responsibility: %w", err)
			}

			// Create per-meeting-type assignment configs
			for _, configData := range responsibilityData.AssignmentConfigs {
				meetingType := models.MeetingType(configData.MeetingType)
				if !meetingType.IsValid() {
					log.Printf("⚠️  Warning: invalid meeting type %q for responsibility %s", configData.MeetingType, responsibilityData.Name)
					continue
				}

				quantity := configData.Quantity
				if quantity < 1 {
					quantity = 1
				}

				config := models.ResponsibilityAssignmentConfig{
					ResponsibilityID: responsibility.ID,
					MeetingType:      meetingType,
					Quantity:         quantity,
				}
				if err := db.Where("responsibility_id = ? AND meeting_type = ?", responsibility.ID, meetingType).FirstOrCreate(&config, config).Error; err != nil {
					log.Printf("⚠️  Warning: failed to create assignment config for responsibility %s: %v", responsibilityData.Name, err)
				}
			}

			return &responsibility, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query responsibility: %w", err)
		}
	}

	return &responsibility, false, nil // created = false (existing)
}

func createQualifications(db *gorm.DB, publishers []PublisherData, publisherMap map[string]*models.Publisher, responsibilityMap map[string]*models.Responsibility) int {
	qualificationsCreated := 0

	for _, publisherData := range publishers {
		publisher := publisherMap[publisherFullName(publisherData.FirstName, publisherData.LastName)]
		if publisher == nil {
			continue
		}

		for _, responsibilityName := range publisherData.Qualifications {
			responsibility := responsibilityMap[responsibilityName]
			if responsibility == nil {
				log.Printf("⚠️  Warning: responsibility %s not found for publisher %s %s", responsibilityName, publisherData.FirstName, publisherData.LastName)
				continue
			}

			var existing models.PublisherResponsibility
			err := db.Where("publisher_id = ? AND responsibility_id = ?", publisher.ID, responsibility.ID).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				qualification := models.PublisherResponsibility{
					PublisherID:      publisher.ID,
					ResponsibilityID: responsibility.ID,
				}
				if err := db.Create(&qualification).Error; err != nil {
					log.Printf("⚠️  Warning: failed to create qualification: %v", err)
				} else {
					qualificationsCreated++
				}
			}
		}
	}

	return qualificationsCreated
}

func publisherFullName(firstName, lastName string) string {
	return firstName + " " + lastName
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", name)
}
