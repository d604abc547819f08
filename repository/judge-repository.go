package repository

import (
	"gorm.io/gorm"
)

// Judge is an assignment of a user as jury member of one event. A user holds
// at most one active assignment per event, enforced by a partial unique index
// created in config.InitDB.
type Judge struct {
	Id            int    `gorm:"primaryKey"`
	ReferenceName string `gorm:"column:nombre_referencia"`
	UserId        int    `gorm:"column:usuario_id;not null;index"`
	EventId       int    `gorm:"column:evento_id;not null;index"`
	Active        bool   `gorm:"column:activo;not null;default:true"`
	Event         *Event `gorm:"foreignKey:EventId"`
}

func (Judge) TableName() string {
	return "jurados"
}

type JudgeRepository struct {
	DB *gorm.DB
}

func NewJudgeRepository(db *gorm.DB) *JudgeRepository {
	return &JudgeRepository{DB: db}
}

func (r *JudgeRepository) GetJudgeById(judgeId int) (*Judge, error) {
	var judge Judge
	result := r.DB.First(&judge, judgeId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &judge, nil
}

func (r *JudgeRepository) GetJudgesForEvent(eventId int) ([]*Judge, error) {
	judges := make([]*Judge, 0)
	result := r.DB.Where("evento_id = ? AND activo = ?", eventId, true).Find(&judges)
	if result.Error != nil {
		return nil, result.Error
	}
	return judges, nil
}

// GetJudgeForUser resolves the active assignment of a user within one event.
func (r *JudgeRepository) GetJudgeForUser(eventId int, userId int) (*Judge, error) {
	var judge Judge
	result := r.DB.Where("evento_id = ? AND usuario_id = ? AND activo = ?", eventId, userId, true).First(&judge)
	if result.Error != nil {
		return nil, result.Error
	}
	return &judge, nil
}

// GetEventsForUser returns the active events the user is assigned to as judge.
func (r *JudgeRepository) GetEventsForUser(userId int) ([]*Event, error) {
	events := make([]*Event, 0)
	result := r.DB.
		Joins("JOIN jurados ON jurados.evento_id = eventos.id").
		Where("jurados.usuario_id = ? AND jurados.activo = ? AND eventos.activo = ?", userId, true, true).
		Order("eventos.fecha_inicio DESC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *JudgeRepository) Save(judge *Judge) (*Judge, error) {
	result := r.DB.Save(judge)
	if result.Error != nil {
		return nil, result.Error
	}
	return judge, nil
}

func (r *JudgeRepository) Update(judgeId int, updateJudge *Judge) (*Judge, error) {
	judge, err := r.GetJudgeById(judgeId)
	if err != nil {
		return nil, err
	}
	if updateJudge.ReferenceName != "" {
		judge.ReferenceName = updateJudge.ReferenceName
	}
	if updateJudge.EventId != 0 {
		judge.EventId = updateJudge.EventId
	}
	if updateJudge.UserId != 0 {
		judge.UserId = updateJudge.UserId
	}
	result := r.DB.Save(judge)
	if result.Error != nil {
		return nil, result.Error
	}
	return judge, nil
}

func (r *JudgeRepository) SoftDelete(judgeId int) error {
	result := r.DB.Model(&Judge{}).Where("id = ?", judgeId).Update("activo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
