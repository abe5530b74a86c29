package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/felixgeelhaar/fitsmart/adapter/cli/clitest"
	"github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	"github.com/felixgeelhaar/fitsmart/internal/onboarding/application/commands"
	onboardingDomain "github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

var maleMaintain = []string{
	"--age", "25", "--weight", "70", "--height", "170", "--gender", "male",
	"--goal", "maintain", "--activity", "moderate", "--location", "both",
}

func TestQuizCommand(t *testing.T) {
	a := clitest.NewApp(t, now)
	clitest.SignIn(t, a)

	out, err := clitest.Run(t, Cmd, maleMaintain...)
	require.NoError(t, err)
	assert.Contains(t, out, "All set, Ana!")
	assert.Contains(t, out, "Calories: 2635 kcal")
	assert.Contains(t, out, "Water:    2450 ml")
	assert.Contains(t, out, "Workouts: 4 per week")

	_, err = clitest.Run(t, Cmd, maleMaintain...)
	assert.ErrorIs(t, err, commands.ErrQuizAlreadyCompleted)
}

func TestQuizCommand_StoresListsAndName(t *testing.T) {
	a := clitest.NewApp(t, now)
	account := clitest.SignIn(t, a)

	args := append([]string{
		"--name", "Aninha",
		"--restrictions", "vegetarian,lactose_intolerance",
		"--allergies", "peanut",
		"--meal-times", "08:00,12:30",
	}, maleMaintain...)
	out, err := clitest.Run(t, Cmd, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "All set, Aninha!")

	record, err := a.GetDashboardHandler.Handle(context.Background(), account.ID())
	require.NoError(t, err)
	assert.Equal(t, "Aninha", record.Name)
}

func TestQuizCommand_InvalidAnswers(t *testing.T) {
	a := clitest.NewApp(t, now)
	clitest.SignIn(t, a)

	args := append([]string{}, maleMaintain...)
	args[3] = "heavy"
	_, err := clitest.Run(t, Cmd, args...)
	assert.ErrorIs(t, err, onboardingDomain.ErrInvalidAnswers)
}

func TestQuizCommand_RequiresSession(t *testing.T) {
	clitest.NewApp(t, now)

	_, err := clitest.Run(t, Cmd, maleMaintain...)
	var stageErr *cli.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domain.StageLogin, stageErr.Stage)
}
