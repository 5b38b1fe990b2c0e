package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/baharkarakas/church-backend/internal/logger"
	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/baharkarakas/church-backend/internal/repository/mocks"
	"github.com/baharkarakas/church-backend/internal/worker"
)

func TestAuditorWritesOnPool(t *testing.T) {
	logs := &mocks.AuditLogs{}
	wp := worker.NewPool(2)
	a := NewAuditor(logs, wp, logger.Discard())

	logs.On("Create", mock.Anything, mock.MatchedBy(func(l models.AuditLog) bool {
		return l.ChurchID == "c1" && *l.EntityID == "t1" && l.ActorID != nil && *l.ActorID == "u1"
	})).Return(nil).Once()
	logs.On("Create", mock.Anything, mock.MatchedBy(func(l models.AuditLog) bool {
		return l.ActorID == nil
	})).Return(nil).Once()

	a.Record("c1", "u1", "transaction", "t1", "created", nil)
	a.Record("c1", "", "registration", "r1", "checked_in", nil)
	wp.Stop()

	logs.AssertExpectations(t)

	// after Stop nothing is queued
	a.Record("c1", "u1", "transaction", "t2", "created", nil)
	logs.AssertNumberOfCalls(t, "Create", 2)
}

func TestNilAuditorIsNoop(t *testing.T) {
	var a *Auditor
	assert.NotPanics(t, func() { a.Record("c1", "", "x", "y", "z", nil) })
}
