// Package seed loads the initial catalog and accounts from YAML files.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"balloon-flights-backend/internal/database/models"
	apperrors "balloon-flights-backend/internal/errors"
	"balloon-flights-backend/internal/logger"
	"balloon-flights-backend/internal/service"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// UserData is an account; passwords are hashed on load
type UserData struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	IsStaff  bool   `yaml:"is_staff"`
}

// PilotData is a pilot, matched on first and last name
type PilotData struct {
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	YearOfBirth int    `yaml:"year_of_birth"`
	TotalHours  int    `yaml:"total_hours"`
	Role        string `yaml:"role"`
}

// BalloonData is a balloon, matched on type and manufacturer
type BalloonData struct {
	Type             string `yaml:"type"`
	ManufacturerName string `yaml:"manufacturer_name"`
	MaxPassengers    int    `yaml:"max_passengers"`
}

// AirwaysData is a carrier, matched on name
type AirwaysData struct {
	Name        string `yaml:"name"`
	YearFounded int    `yaml:"year_founded"`
	CoverageEU  bool   `yaml:"coverage_eu"`
}

// AffiliationData names a pilot by "First Last" and a carrier by name. Either may
// come from the same seed run or already exist in the database.
type AffiliationData struct {
	Pilot   string `yaml:"pilot"`
	Airways string `yaml:"airways"`
}

// File is the layout of one seed file. Every section is optional.
type File struct {
	Users        []UserData        `yaml:"users"`
	Pilots       []PilotData       `yaml:"pilots"`
	Balloons     []BalloonData     `yaml:"balloons"`
	Airways      []AirwaysData     `yaml:"airways"`
	Affiliations []AffiliationData `yaml:"affiliations"`
}

func (f *File) merge(other File) {
	f.Users = append(f.Users, other.Users...)
	f.Pilots = append(f.Pilots, other.Pilots...)
	f.Balloons = append(f.Balloons, other.Balloons...)
	f.Airways = append(f.Airways, other.Airways...)
	f.Affiliations = append(f.Affiliations, other.Affiliations...)
}

// LoadDir reads and merges every .yaml/.yml file under dir, in lexical path order
func LoadDir(fsys afero.Fs, dir string) (*File, error) {
	merged := &File{}
	err := afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if info.IsDir() || (ext != ".yaml" && ext != ".yml") {
			return nil
		}

		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		var file File
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		merged.merge(file)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// UserRegistrar creates accounts with hashed passwords
type UserRegistrar interface {
	Register(ctx context.Context, req *service.RegisterRequest) (*models.User, error)
}

// Summary counts the records created by Apply
type Summary struct {
	Users        int
	Pilots       int
	Balloons     int
	Airways      int
	Affiliations int
}

// Loader writes seed data, skipping records that already exist
type Loader struct {
	db    *gorm.DB
	users UserRegistrar
}

// NewLoader creates a new seed loader
func NewLoader(db *gorm.DB, users UserRegistrar) *Loader {
	return &Loader{db: db, users: users}
}

// Apply creates the missing records of data. Running it twice creates nothing the second time.
func (l *Loader) Apply(ctx context.Context, data *File) (Summary, error) {
	var summary Summary
	log := logger.WithContext(ctx)

	for _, u := range data.Users {
		_, err := l.users.Register(ctx, &service.RegisterRequest{Username: u.Username, Password: u.Password, IsStaff: u.IsStaff})
		switch {
		case err == nil:
			summary.Users++
		case apperrors.IsAlreadyExists(err):
		default:
			return summary, fmt.Errorf("failed to create user %s: %w", u.Username, err)
		}
	}

	pilots := make(map[string]*models.Pilot)
	for _, p := range data.Pilots {
		pilot := models.Pilot{FirstName: p.FirstName, LastName: p.LastName, YearOfBirth: p.YearOfBirth, TotalHours: p.TotalHours, Role: p.Role}
		created, err := firstOrCreate(l.db, &pilot, "first_name = ? AND last_name = ?", p.FirstName, p.LastName)
		if err != nil {
			return summary, fmt.Errorf("failed to create pilot %s %s: %w", p.FirstName, p.LastName, err)
		}
		if created {
			summary.Pilots++
		}
		pilots[pilot.String()] = &pilot
	}

	for _, b := range data.Balloons {
		balloon := models.Balloon{Type: b.Type, ManufacturerName: b.ManufacturerName, MaxPassengers: b.MaxPassengers}
		created, err := firstOrCreate(l.db, &balloon, "type = ? AND manufacturer_name = ?", b.Type, b.ManufacturerName)
		if err != nil {
			return summary, fmt.Errorf("failed to create balloon %s: %w", balloon, err)
		}
		if created {
			summary.Balloons++
		}
	}

	carriers := make(map[string]*models.Airways)
	for _, a := range data.Airways {
		airways := models.Airways{Name: a.Name, YearFounded: a.YearFounded, CoverageEU: a.CoverageEU}
		created, err := firstOrCreate(l.db, &airways, "name = ?", a.Name)
		if err != nil {
			return summary, fmt.Errorf("failed to create airways %s: %w", a.Name, err)
		}
		if created {
			summary.Airways++
		}
		carriers[airways.Name] = &airways
	}

	for _, ap := range data.Affiliations {
		pilot, err := l.resolvePilot(pilots, ap.Pilot)
		if err != nil {
			return summary, err
		}
		airways, err := l.resolveAirways(carriers, ap.Airways)
		if err != nil {
			return summary, err
		}
		affiliation := models.AirwaysPilot{PilotID: pilot.ID, AirwaysID: airways.ID}
		created, err := firstOrCreate(l.db, &affiliation, "pilot_id = ? AND airways_id = ?", pilot.ID, airways.ID)
		if err != nil {
			return summary, fmt.Errorf("failed to create affiliation %s - %s: %w", ap.Pilot, ap.Airways, err)
		}
		if created {
			summary.Affiliations++
		}
	}

	log.WithFields(map[string]interface{}{
		"users":        summary.Users,
		"pilots":       summary.Pilots,
		"balloons":     summary.Balloons,
		"airways":      summary.Airways,
		"affiliations": summary.Affiliations,
	}).Info("Seed data applied")

	return summary, nil
}

// resolvePilot finds a pilot by its "First Last" label among this run's pilots, then in the database
func (l *Loader) resolvePilot(seen map[string]*models.Pilot, label string) (*models.Pilot, error) {
	if pilot, ok := seen[label]; ok {
		return pilot, nil
	}
	var pilot models.Pilot
	res := l.db.Where("first_name || ' ' || last_name = ?", label).Limit(1).Find(&pilot)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to look up pilot %q: %w", label, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("affiliation references unknown pilot %q", label)
	}
	seen[label] = &pilot
	return &pilot, nil
}

// resolveAirways finds a carrier by name among this run's carriers, then in the database
func (l *Loader) resolveAirways(seen map[string]*models.Airways, name string) (*models.Airways, error) {
	if airways, ok := seen[name]; ok {
		return airways, nil
	}
	var airways models.Airways
	res := l.db.Where("name = ?", name).Limit(1).Find(&airways)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to look up airways %q: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("affiliation references unknown airways %q", name)
	}
	seen[name] = &airways
	return &airways, nil
}

// firstOrCreate loads the row matching query into record, inserting record when there is none
func firstOrCreate(db *gorm.DB, record interface{}, query string, args ...interface{}) (bool, error) {
	existing := db.Where(query, args...).Limit(1).Find(record)
	if existing.Error != nil {
		return false, existing.Error
	}
	if existing.RowsAffected > 0 {
		return false, nil
	}
	if err := db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
