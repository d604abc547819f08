package repository

import (
	"gorm.io/gorm"
)

type Rubric struct {
	Id          int       `gorm:"primaryKey"`
	Name        string    `gorm:"column:nombre;not null"`
	Description string    `gorm:"column:descripcion"`
	EventId     int       `gorm:"column:evento_id;not null;index"`
	Active      bool      `gorm:"column:activo;not null;default:true"`
	Aspects     []*Aspect `gorm:"foreignKey:RubricId;constraint:OnDelete:CASCADE"`
}

func (Rubric) TableName() string {
	return "rubricas"
}

type Aspect struct {
	Id          int    `gorm:"primaryKey"`
	Name        string `gorm:"column:nombre;not null"`
	Description string `gorm:"column:descripcion"`
	RubricId    int    `gorm:"column:rubrica_id;not null;index"`
	Order       int    `gorm:"column:orden"`
	// Cache of the highest level's points, kept for schema compatibility.
	// Aggregation never reads it, the level rows are authoritative.
	MaxValue int      `gorm:"column:valor_maximo"`
	Active   bool     `gorm:"column:activo;not null;default:true"`
	Levels   []*Level `gorm:"foreignKey:AspectId;constraint:OnDelete:CASCADE"`
}

func (Aspect) TableName() string {
	return "aspectos_rubrica"
}

type Level struct {
	Id          int    `gorm:"primaryKey"`
	AspectId    int    `gorm:"column:aspecto_id;not null;uniqueIndex:niveles_aspecto_nivel"`
	Number      int    `gorm:"column:nivel;not null;uniqueIndex:niveles_aspecto_nivel"`
	Description string `gorm:"column:descripcion;not null"`
	Points      int    `gorm:"column:puntuacion;not null"`
	Order       int    `gorm:"column:orden"`
	Active      bool   `gorm:"column:activo;not null;default:true"`
}

func (Level) TableName() string {
	return "niveles_aspecto"
}

type RubricRepository struct {
	DB *gorm.DB
}

func NewRubricRepository(db *gorm.DB) *RubricRepository {
	return &RubricRepository{DB: db}
}

func (r *RubricRepository) GetRubricById(rubricId int, preloads ...string) (*Rubric, error) {
	var rubric Rubric
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&rubric, rubricId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &rubric, nil
}

func (r *RubricRepository) GetRubricsForEvent(eventId int) ([]*Rubric, error) {
	rubrics := make([]*Rubric, 0)
	result := r.DB.Where("evento_id = ? AND activo = ?", eventId, true).Find(&rubrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return rubrics, nil
}

func (r *RubricRepository) SaveRubric(rubric *Rubric) (*Rubric, error) {
	result := r.DB.Save(rubric)
	if result.Error != nil {
		return nil, result.Error
	}
	return rubric, nil
}

func (r *RubricRepository) SoftDeleteRubric(rubricId int) error {
	result := r.DB.Model(&Rubric{}).Where("id = ?", rubricId).Update("activo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RubricRepository) GetAspectById(aspectId int) (*Aspect, error) {
	var aspect Aspect
	result := r.DB.First(&aspect, aspectId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &aspect, nil
}

// GetAspectsForRubric returns active aspects in display order, each with its
// active levels ordered by level number.
func (r *RubricRepository) GetAspectsForRubric(rubricId int) ([]*Aspect, error) {
	aspects := make([]*Aspect, 0)
	result := r.DB.
		Preload("Levels", func(db *gorm.DB) *gorm.DB {
			return db.Where("activo = ?", true).Order("nivel ASC")
		}).
		Where("rubrica_id = ? AND activo = ?", rubricId, true).
		Order("orden ASC").
		Find(&aspects)
	if result.Error != nil {
		return nil, result.Error
	}
	return aspects, nil
}

func (r *RubricRepository) CountAspectsForRubric(rubricId int) (int64, error) {
	var count int64
	result := r.DB.Model(&Aspect{}).Where("rubrica_id = ?", rubricId).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *RubricRepository) SaveAspect(aspect *Aspect) (*Aspect, error) {
	result := r.DB.Omit("Levels").Save(aspect)
	if result.Error != nil {
		return nil, result.Error
	}
	return aspect, nil
}

func (r *RubricRepository) SoftDeleteAspect(aspectId int) error {
	result := r.DB.Model(&Aspect{}).Where("id = ?", aspectId).Update("activo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceLevels swaps an aspect's whole level set in one transaction: delete
// every old row, insert the new set, refresh the cached maximum. The unique
// (aspecto_id, nivel) index rules out an update in place, and the transaction
// closes the window where the aspect would otherwise have zero levels.
func (r *RubricRepository) ReplaceLevels(aspectId int, levels []*Level, maxValue int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("aspecto_id = ?", aspectId).Delete(&Level{}).Error; err != nil {
			return err
		}
		for _, level := range levels {
			level.Id = 0
			level.AspectId = aspectId
		}
		if len(levels) > 0 {
			if err := tx.Create(levels).Error; err != nil {
				return err
			}
		}
		return tx.Model(&Aspect{}).Where("id = ?", aspectId).Update("valor_maximo", maxValue).Error
	})
}

// GetLevelsForAspect returns the active levels of one aspect ordered by level
// number. An empty result is valid, the caller substitutes the default scale.
func (r *RubricRepository) GetLevelsForAspect(aspectId int) ([]*Level, error) {
	levels := make([]*Level, 0)
	result := r.DB.Where("aspecto_id = ? AND activo = ?", aspectId, true).Order("nivel ASC").Find(&levels)
	if result.Error != nil {
		return nil, result.Error
	}
	return levels, nil
}
