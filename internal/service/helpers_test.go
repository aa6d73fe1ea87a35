package service

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/storage"
)

// fakeProcessor performs actions inline against writer, standing in for the
// operator queue without a database transaction.
type fakeProcessor struct {
	writer  *storage.Writer
	err     error
	actions []actions.IAction
}

func (f *fakeProcessor) Process(ctx context.Context, action actions.IAction) error {
	f.actions = append(f.actions, action)
	if f.err != nil {
		return f.err
	}
	return action.Perform(ctx, f.writer)
}

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func monthPtr(m time.Month) *time.Month { return &m }

func intPtr(i int) *int { return &i }
