package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.grampus.dev/grampus/internal/app"
	"go.grampus.dev/grampus/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testProvider(t *testing.T) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)

	application := app.New(
		mocks.NewMockDocumentLoader(ctrl),
		mocks.NewMockTargetFactory(ctrl),
		mocks.NewMockJournalFactory(ctrl),
		mocks.NewMockTracer(ctrl),
		mocks.NewMockLogger(ctrl),
	)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	return func(_ context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: logger}, nil
	}
}

func TestRun_Success(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, testProvider(t))
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	// load without documents fails argument validation inside cobra.
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"load"}, stderr, testProvider(t))
	assert.Equal(t, 1, exitCode)
}
