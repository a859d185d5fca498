package repository

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/sefazor/pricing-web/internal/models"
	"github.com/sefazor/pricing-web/pkg/utils"
	"gopkg.in/yaml.v3"
)

//go:embed plans.yaml
var defaultCatalog []byte

var ErrPlanNotFound = errors.New("plan not found")

// PlanRepository serves the plan catalog. It is loaded once at startup and
// read-only afterwards.
type PlanRepository struct {
	catalog models.Catalog
	byTitle map[string]int
}

// NewPlanRepository loads the catalog from path, or the embedded default
// when path is empty.
func NewPlanRepository(path string, validator *utils.Validator) (*PlanRepository, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read plans file: %w", err)
		}
		data = b
	}
	return NewPlanRepositoryFromYAML(data, validator)
}

func NewPlanRepositoryFromYAML(data []byte, validator *utils.Validator) (*PlanRepository, error) {
	var catalog models.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse plans: %w", err)
	}
	if err := validator.Struct(catalog); err != nil {
		return nil, fmt.Errorf("invalid plans: %w", err)
	}

	byTitle := make(map[string]int, len(catalog.Plans))
	for i, p := range catalog.Plans {
		if _, dup := byTitle[p.Title]; dup {
			return nil, fmt.Errorf("invalid plans: duplicate title %q", p.Title)
		}
		byTitle[p.Title] = i
	}

	return &PlanRepository{
		catalog: catalog,
		byTitle: byTitle,
	}, nil
}

func (r *PlanRepository) Header() models.PricingHeader {
	return r.catalog.Header
}

func (r *PlanRepository) GetAll() []models.Plan {
	plans := make([]models.Plan, len(r.catalog.Plans))
	copy(plans, r.catalog.Plans)
	return plans
}

func (r *PlanRepository) GetByTitle(title string) (*models.Plan, error) {
	i, ok := r.byTitle[title]
	if !ok {
		return nil, ErrPlanNotFound
	}
	plan := r.catalog.Plans[i]
	return &plan, nil
}
