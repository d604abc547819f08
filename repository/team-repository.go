package repository

import (
	"gorm.io/gorm"
)

type Team struct {
	Id      int    `gorm:"primaryKey"`
	Name    string `gorm:"column:nombre;not null"`
	EventId int    `gorm:"column:evento_id;not null;index"`
	// 4-digit access code, stored as a string so leading zeros would survive.
	// It is the team's only credential for the public results view.
	Code   string `gorm:"column:contrasena;type:varchar(8)"`
	Active bool   `gorm:"column:activo;not null;default:true"`
	Event  *Event `gorm:"foreignKey:EventId"`
}

func (Team) TableName() string {
	return "equipos"
}

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) GetTeamById(teamId int) (*Team, error) {
	var team Team
	result := r.DB.First(&team, teamId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &team, nil
}

// GetTeamsForEvent returns active teams ordered by name. The order doubles as
// the tie-break order of the ranking, so it must be deterministic.
func (r *TeamRepository) GetTeamsForEvent(eventId int) ([]*Team, error) {
	teams := make([]*Team, 0)
	result := r.DB.Where("evento_id = ? AND activo = ?", eventId, true).Order("nombre ASC").Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}
	return teams, nil
}

// GetActiveTeamsByCode returns every active team whose code matches exactly.
// The caller decides what more than one match means.
func (r *TeamRepository) GetActiveTeamsByCode(code string) ([]*Team, error) {
	teams := make([]*Team, 0)
	result := r.DB.Where("contrasena = ? AND activo = ?", code, true).Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}
	return teams, nil
}

func (r *TeamRepository) Save(team *Team) (*Team, error) {
	result := r.DB.Save(team)
	if result.Error != nil {
		return nil, result.Error
	}
	return team, nil
}

func (r *TeamRepository) Update(teamId int, updateTeam *Team) (*Team, error) {
	team, err := r.GetTeamById(teamId)
	if err != nil {
		return nil, err
	}
	if updateTeam.Name != "" {
		team.Name = updateTeam.Name
	}
	if updateTeam.EventId != 0 {
		team.EventId = updateTeam.EventId
	}
	result := r.DB.Save(team)
	if result.Error != nil {
		return nil, result.Error
	}
	return team, nil
}

func (r *TeamRepository) SoftDelete(teamId int) error {
	result := r.DB.Model(&Team{}).Where("id = ?", teamId).Update("activo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
