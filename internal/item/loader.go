package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/validation"
)

// Sentinel errors for item loader
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON inventory file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items" validate:"dive"`
}

// Def represents a single stocked item in the JSON
type Def struct {
	Name    string `json:"name" validate:"required"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

// Loader handles loading and validating inventory files
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Build(config *Config) []*domain.Item
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
	classifier      *Classifier
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	classifier, err := NewClassifier(DefaultClassifierSize)
	if err != nil {
		// DefaultClassifierSize is positive
		panic(err)
	}

	v := validator.New()
	v.RegisterStructValidation(validateDefQuality, Def{})

	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
		validate:        v,
		classifier:      classifier,
	}
}

// Load reads and parses an inventory JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, validation.InventorySchema); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the inventory for values the daily update cannot accept
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	for i := range config.Items {
		if err := l.validateDef(i, &config.Items[i]); err != nil {
			return err
		}
	}

	return nil
}

func (l *itemLoader) validateDef(index int, def *Def) error {
	err := l.validate.Struct(def)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// Report the first failure; the file must be fixed and reloaded anyway
	fieldErr := validationErrors[0]
	switch fieldErr.Tag() {
	case "required":
		return fmt.Errorf(ErrFmtItemEmptyName, ErrInvalidConfig, index)
	case tagQualityRange:
		return fmt.Errorf(ErrFmtItemQualityRange, ErrInvalidConfig, def.Name, index, def.Quality, domain.MinQuality, domain.MaxQuality)
	default:
		return fmt.Errorf(ErrFmtItemFieldValidation, ErrInvalidConfig, fieldErr.Tag(), fieldErr.Namespace())
	}
}

// validateDefQuality enforces the quality range for every item except the
// legendary one, which may carry any quality.
func validateDefQuality(sl validator.StructLevel) {
	def := sl.Current().Interface().(Def)

	if category, _ := domain.Classify(def.Name); category == domain.CategoryLegendary {
		return
	}
	if def.Quality < domain.MinQuality || def.Quality > domain.MaxQuality {
		sl.ReportError(def.Quality, "Quality", "quality", tagQualityRange, "")
	}
}

// Build creates items from a validated inventory, preserving file order
func (l *itemLoader) Build(config *Config) []*domain.Item {
	items := make([]*domain.Item, 0, len(config.Items))
	for _, def := range config.Items {
		items = append(items, l.classifier.NewItem(def.Name, def.SellIn, def.Quality))
	}
	return items
}

// LoadItems loads, validates and builds the inventory at path
func LoadItems(loader Loader, path string) ([]*domain.Item, error) {
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}
	return loader.Build(config), nil
}
