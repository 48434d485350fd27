package commands_test

import (
	"testing"

	"ordertrack/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublishOutboxCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewPublishOutboxCommand(25)
	require.NoError(t, err)
	assert.Equal(t, 25, cmd.BatchSize())
}

func TestNewPublishOutboxCommand_InvalidBatchSize(t *testing.T) {
	_, err := commands.NewPublishOutboxCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBatchSizeIsInvalid)
}

func TestPublishOutboxCommand_NotConstructed(t *testing.T) {
	cmd := commands.PublishOutboxCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrPublishOutboxCommandIsNotConstructed)
}
