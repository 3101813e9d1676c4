package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vetportal/vetportal-backend/internal/modules/pharmacy/models"
	"github.com/vetportal/vetportal-backend/internal/shared/utils"
)

const (
	medicinesFile  = "medicines.json"
	categoriesFile = "categories.json"
	backupDir      = "backups"
)

// DefaultCategories seeds categories.json on first run.
var DefaultCategories = []string{
	"Antiparasitaire",
	"Antibiotique",
	"Vitamine",
	"Anti-inflammatoire",
	"Vaccin",
	"Désinfectant",
	"Consumables",
}

// Store persists the medicines and categories collections as whole-file JSON
// arrays in a shared directory. A single mutex guards every read-modify-write
// cycle so concurrent writers cannot lose updates.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates the shared directory if needed and seeds both files when they
// do not exist yet.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create shared directory: %w", err)
	}
	s := &Store{dir: dir}

	if _, err := os.Stat(s.medicinesPath()); os.IsNotExist(err) {
		s.writeMedicines([]models.Medicine{})
	}
	if _, err := os.Stat(s.categoriesPath()); os.IsNotExist(err) {
		s.writeCategories(append([]string(nil), DefaultCategories...))
	}
	return s, nil
}

func (s *Store) medicinesPath() string  { return filepath.Join(s.dir, medicinesFile) }
func (s *Store) categoriesPath() string { return filepath.Join(s.dir, categoriesFile) }

// Medicines returns the full array in creation order.
func (s *Store) Medicines() []models.Medicine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readMedicines()
}

// AppendMedicine appends and persists the whole array.
func (s *Store) AppendMedicine(m models.Medicine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	meds := s.readMedicines()
	meds = append(meds, m)
	s.writeMedicines(meds)
}

// UpdateMedicine applies the mutation to the record with the given id and
// persists the array. It reports false when the id is absent.
func (s *Store) UpdateMedicine(id int64, apply func(*models.Medicine)) (models.Medicine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	meds := s.readMedicines()
	for i := range meds {
		if meds[i].ID == id {
			apply(&meds[i])
			s.writeMedicines(meds)
			return meds[i], true
		}
	}
	return models.Medicine{}, false
}

// DeleteMedicine removes the record with the given id and persists the
// array. It reports false when the id is absent.
func (s *Store) DeleteMedicine(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	meds := s.readMedicines()
	for i := range meds {
		if meds[i].ID == id {
			meds = append(meds[:i], meds[i+1:]...)
			s.writeMedicines(meds)
			return true
		}
	}
	return false
}

// Categories returns the full category list, falling back to the default
// seed when the file is missing or unreadable.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readCategories()
}

// AddCategory appends the name unless an exact match already exists, and
// returns the resulting list either way.
func (s *Store) AddCategory(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	categories := s.readCategories()
	for _, c := range categories {
		if c == name {
			return categories
		}
	}
	categories = append(categories, name)
	s.writeCategories(categories)
	return categories
}

// Snapshot copies both files into a timestamped backup set under the shared
// directory.
func (s *Store) Snapshot() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Join(s.dir, backupDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	stamp := time.Now().Format("20060102-150405")
	for _, name := range []string{medicinesFile, categoriesFile} {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		dst := filepath.Join(dir, stamp+"-"+name)
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}
	}
	return nil
}

// readMedicines degrades to an empty list when the file is missing or
// corrupt; the API keeps serving.
func (s *Store) readMedicines() []models.Medicine {
	data, err := os.ReadFile(s.medicinesPath())
	if err != nil {
		return []models.Medicine{}
	}
	var meds []models.Medicine
	if err := json.Unmarshal(data, &meds); err != nil {
		utils.LogError("failed to parse medicines file", err, map[string]interface{}{"path": s.medicinesPath()})
		return []models.Medicine{}
	}
	if meds == nil {
		meds = []models.Medicine{}
	}
	return meds
}

func (s *Store) readCategories() []string {
	data, err := os.ReadFile(s.categoriesPath())
	if err != nil {
		return append([]string(nil), DefaultCategories...)
	}
	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		utils.LogError("failed to parse categories file", err, map[string]interface{}{"path": s.categoriesPath()})
		return append([]string(nil), DefaultCategories...)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories
}

// Write failures are logged and swallowed: callers never learn persistence
// failed, matching the store's degrade-don't-fail policy.
func (s *Store) writeMedicines(meds []models.Medicine) {
	if err := s.writeJSON(s.medicinesPath(), meds); err != nil {
		utils.LogError("failed to write medicines file", err, map[string]interface{}{"path": s.medicinesPath()})
	}
}

func (s *Store) writeCategories(categories []string) {
	if err := s.writeJSON(s.categoriesPath(), categories); err != nil {
		utils.LogError("failed to write categories file", err, map[string]interface{}{"path": s.categoriesPath()})
	}
}

// writeJSON replaces the file atomically: marshal, write a uniquely named
// temp file next to it, rename over the original.
func (s *Store) writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := fmt.Sprintf("%s.tmp-%s", path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
