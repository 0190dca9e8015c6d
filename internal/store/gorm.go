package store

import (
	"errors"
	"time"

	"github.com/franciscosanchezn/pizza-builder-api/internal/models"
	"gorm.io/gorm"
)

// pizzaRecord is the database mapping for a stored order. The ingredient
// identifier list is serialized as JSON in a single column.
type pizzaRecord struct {
	ID            int      `gorm:"primaryKey;autoIncrement"`
	CustomerName  string   `gorm:"not null"`
	SizeID        string   `gorm:"not null"`
	IngredientIDs []string `gorm:"serializer:json;not null"`
	FinalPrice    float64  `gorm:"not null"`
	CreatedAt     time.Time
}

func (pizzaRecord) TableName() string {
	return "pizzas"
}

// GormRepository persists orders through gorm (sqlite or postgres, selected
// by the database package). The autoincrement primary key carries the
// monotonic-identifier invariant; listing orders by id preserves insertion
// order.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository migrates the pizzas table and returns a repository bound
// to the given connection
func NewGormRepository(db *gorm.DB) (*GormRepository, error) {
	if err := db.AutoMigrate(&pizzaRecord{}); err != nil {
		return nil, err
	}
	return &GormRepository{db: db}, nil
}

// Create stores the pizza; the database assigns the next identifier
func (r *GormRepository) Create(pizza models.Pizza) (models.Pizza, error) {
	record := pizzaRecord{
		CustomerName:  pizza.CustomerName,
		SizeID:        pizza.SizeID,
		IngredientIDs: pizza.IngredientIDs,
		FinalPrice:    pizza.FinalPrice,
		CreatedAt:     pizza.CreatedAt,
	}
	if err := r.db.Create(&record).Error; err != nil {
		return models.Pizza{}, err
	}
	return record.toModel(), nil
}

// List returns every stored pizza in insertion order
func (r *GormRepository) List() ([]models.Pizza, error) {
	var records []pizzaRecord
	if err := r.db.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	pizzas := make([]models.Pizza, 0, len(records))
	for _, record := range records {
		pizzas = append(pizzas, record.toModel())
	}
	return pizzas, nil
}

// FindByID returns the pizza with the given identifier, if any
func (r *GormRepository) FindByID(id int) (models.Pizza, bool, error) {
	var record pizzaRecord
	err := r.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Pizza{}, false, nil
	}
	if err != nil {
		return models.Pizza{}, false, err
	}
	return record.toModel(), true, nil
}

func (rec pizzaRecord) toModel() models.Pizza {
	return models.Pizza{
		ID:            rec.ID,
		CustomerName:  rec.CustomerName,
		SizeID:        rec.SizeID,
		IngredientIDs: rec.IngredientIDs,
		FinalPrice:    rec.FinalPrice,
		CreatedAt:     rec.CreatedAt,
	}
}
