package category

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ativos.GO/core/errs"
	entity "ativos.GO/model/entity"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// defaultCategories are inserted at initialization when missing.
var defaultCategories = []entity.Category{
	{Name: "Hardware", Description: "Computer equipment", Icon: "bi-laptop", Color: "#3498db"},
	{Name: "Furniture", Description: "Office furniture", Icon: "bi-door-open", Color: "#95a5a6"},
	{Name: "Peripherals", Description: "Computer peripherals", Icon: "bi-keyboard", Color: "#9b59b6"},
	{Name: "Printers", Description: "Printers and scanners", Icon: "bi-printer", Color: "#e74c3c"},
	{Name: "Telephony", Description: "Telephony equipment", Icon: "bi-telephone", Color: "#2ecc71"},
	{Name: "Network", Description: "Network equipment", Icon: "bi-router", Color: "#f39c12"},
	{Name: "Audio/Video", Description: "Audio and video equipment", Icon: "bi-camera-video", Color: "#e67e22"},
	{Name: "Other", Description: "Other assets", Icon: "bi-box", Color: "#34495e"},
}

// SeedDefaults inserts the default categories, skipping names that
// already exist.
func (r *CategoryRepository) SeedDefaults() error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaultCategories).Error
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	return r.db.Create(c).Error
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.db.First(&c, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NotFoundf("category %d", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) All() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.db.Order("name").Find(&cats).Error
	return cats, err
}

// NamesByID maps category id to name, for list rendering and exports.
func (r *CategoryRepository) NamesByID() (map[uint]string, error) {
	var cats []entity.Category
	if err := r.db.Select("id", "name").Find(&cats).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names, nil
}

type CategoryStat struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Total int64  `json:"total"`
}

// Stats counts assets per category, most populated first.
func (r *CategoryRepository) Stats() ([]CategoryStat, error) {
	var rows []CategoryStat
	err := r.db.Table("categories c").
		Select("c.name, c.color, c.icon, COUNT(a.id) AS total").
		Joins("LEFT JOIN assets a ON c.id = a.category_id").
		Group("c.id").Order("total DESC").Scan(&rows).Error
	return rows, err
}
