package db

import (
	"github.com/okbaghel/devfolio/model"
)

// Storage persists page views.
type Storage interface {
	Store(visit *model.Visit) error
	Summary() (model.VisitSummary, error)
	Close()
}

// NopStorage is used when analytics are disabled.
type NopStorage struct{}

func (NopStorage) Store(*model.Visit) error { return nil }

func (NopStorage) Summary() (model.VisitSummary, error) { return model.VisitSummary{}, nil }

func (NopStorage) Close() {}
