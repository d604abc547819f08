package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTeamCode(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := generateTeamCode()
		assert.Len(t, code, 4)
		n, err := strconv.Atoi(code)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}
