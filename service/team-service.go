package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"fll/app_error"
	"fll/metrics"
	"fll/repository"

	"gorm.io/gorm"
)

type TeamService struct {
	teamRepository *repository.TeamRepository
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		teamRepository: repository.NewTeamRepository(db),
	}
}

// generateTeamCode draws a uniform 4-digit code in [1000, 9999]. It is stored
// as a string because it is a credential, not a number.
func generateTeamCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// crypto/rand only fails when the platform source is broken
		panic(err)
	}
	return fmt.Sprintf("%d", 1000+n.Int64())
}

func (e *TeamService) GetTeamsForEvent(eventId int) ([]*repository.Team, error) {
	return e.teamRepository.GetTeamsForEvent(eventId)
}

func (e *TeamService) GetTeamById(teamId int) (*repository.Team, error) {
	return e.teamRepository.GetTeamById(teamId)
}

// CreateTeam stores a new team with a freshly generated access code. The code
// is returned exactly once here, the list endpoints keep exposing it only to
// admins.
func (e *TeamService) CreateTeam(team *repository.Team) (*repository.Team, error) {
	team.Code = generateTeamCode()
	team.Active = true
	return e.teamRepository.Save(team)
}

func (e *TeamService) UpdateTeam(teamId int, team *repository.Team) (*repository.Team, error) {
	return e.teamRepository.Update(teamId, team)
}

func (e *TeamService) DeleteTeam(teamId int) error {
	return e.teamRepository.SoftDelete(teamId)
}

// CheckTeamCode authenticates a team by its 4-digit code. Zero matches and
// more than one match are the same generic AccessError: the first avoids
// enumeration, the second is a store invariant violation where picking one
// team arbitrarily would leak another team's scores.
func (e *TeamService) CheckTeamCode(code string) (*repository.Team, error) {
	teams, err := e.teamRepository.GetActiveTeamsByCode(code)
	if err != nil {
		return nil, &app_error.StoreError{Err: err}
	}
	if len(teams) != 1 {
		metrics.TeamAccessCounter.WithLabelValues("denied").Inc()
		return nil, &app_error.AccessError{}
	}
	metrics.TeamAccessCounter.WithLabelValues("granted").Inc()
	return teams[0], nil
}
